package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/comalice/storetree/internal/config"
	"github.com/comalice/storetree/internal/core"
	"github.com/comalice/storetree/internal/extensibility"
	"github.com/comalice/storetree/internal/production"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the manifest named in args and prints the resulting tree to
// outW. Logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	base, err := config.Load()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	opts, shouldExit, err := parse(args, outW, base)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := opts.Config.Logger(logW)
	manifest, err := production.LoadManifest(opts.ManifestPath)
	if err != nil {
		return err
	}
	logger.Debug("Manifest loaded.", "path", opts.ManifestPath)

	if opts.OutPath != "" {
		if err := production.SaveManifest(opts.OutPath, manifest); err != nil {
			return err
		}
		logger.Info("Manifest written.", "path", opts.OutPath)
		return nil
	}

	raw, err := builtinRegistry().Resolve(manifest)
	if err != nil {
		return err
	}
	if opts.Trace {
		raw = extensibility.WithLogging(logger, raw)
	}

	tree, err := core.New(raw, opts.Config.TreeOptions(logW)...)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	return render(outW, tree, opts.Format)
}

func render(w io.Writer, tree *core.ModuleTree, format string) error {
	v := &production.DefaultVisualizer{}
	switch format {
	case "dot":
		dot, err := v.ExportDOT(tree)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, dot)
		return err
	case "json":
		data, err := v.ExportJSON(tree)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		data, err := v.ExportYAML(tree)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return renderNamespaces(w, tree)
	}
}

// renderNamespaces prints one row per module: its path, namespace and the
// fully qualified handler names it contributes.
func renderNamespaces(w io.Writer, tree *core.ModuleTree) error {
	root, err := production.Describe(tree)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAMESPACE\tGETTERS\tMUTATIONS\tACTIONS")
	var visit func(d *production.ModuleDescription)
	visit = func(d *production.ModuleDescription) {
		path := d.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", path, orDash(d.Namespace),
			list(d.Getters), list(d.Mutations), list(d.Actions))
		for _, c := range d.Children {
			visit(c)
		}
	}
	visit(root)
	return tw.Flush()
}

func list(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
