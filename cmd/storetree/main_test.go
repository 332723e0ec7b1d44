package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/comalice/storetree/internal/config"
	"github.com/comalice/storetree/internal/extensibility"
	"github.com/comalice/storetree/internal/production"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"STORETREE_STRICT", "STORETREE_LOG_LEVEL", "STORETREE_LOG_FORMAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// rows splits tabwriter output into whitespace separated fields per line.
func rows(out string) [][]string {
	var rs [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		rs = append(rs, strings.Fields(line))
	}
	return rs
}

func TestRunNamespaces(t *testing.T) {
	clearEnv(t)
	want := [][]string{
		{"PATH", "NAMESPACE", "GETTERS", "MUTATIONS", "ACTIONS"},
		{"(root)", "-", "-", "-", "-"},
		{"cart", "cart/", "cart/size", "cart/append,cart/clear", "cart/add"},
		{"cart.coupons", "cart/", "cart/couponCount", "-", "-"},
		{"counter", "counter/", "counter/value", "counter/increment,counter/set", "counter/incrementLater,reset"},
	}

	for _, file := range []string{"shop.yaml", "shop.hcl"} {
		t.Run(file, func(t *testing.T) {
			var out, logs bytes.Buffer
			if err := run(&out, &logs, []string{filepath.Join("testdata", file)}); err != nil {
				t.Fatalf("run failed: %v\nlogs: %s", err, logs.String())
			}
			if got := rows(out.String()); !reflect.DeepEqual(got, want) {
				t.Errorf("got:\n%s", out.String())
			}
		})
	}
}

func TestRunFormats(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		format string
		prefix string
	}{
		{"dot", "digraph ModuleTree {"},
		{"json", "{"},
		{"yaml", "key: \"\""},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var out, logs bytes.Buffer
			err := run(&out, &logs, []string{"-format", tt.format, filepath.Join("testdata", "shop.yaml")})
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(out.String(), tt.prefix) {
				t.Errorf("output starts with %q, want %q", firstLine(out.String()), tt.prefix)
			}
		})
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func TestRunConvert(t *testing.T) {
	clearEnv(t)
	out := filepath.Join(t.TempDir(), "shop.json")

	var stdout, logs bytes.Buffer
	if err := run(&stdout, &logs, []string{"-out", out, filepath.Join("testdata", "shop.hcl")}); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Errorf("convert should not print the tree, got %q", stdout.String())
	}

	m, err := production.LoadManifest(out)
	if err != nil {
		t.Fatal(err)
	}
	reset := m.Modules["counter"].Actions["reset"]
	if reset != (extensibility.ActionRef{Handler: "counter.reset", Root: true}) {
		t.Errorf("reset = %+v", reset)
	}
	if _, ok := m.Modules["cart"].Modules["coupons"]; !ok {
		t.Error("nested module lost in conversion")
	}
}

func TestRunTrace(t *testing.T) {
	clearEnv(t)
	var out, logs bytes.Buffer
	args := []string{"-trace", "-log-level", "debug", filepath.Join("testdata", "shop.yaml")}
	if err := run(&out, &logs, args); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "Registered module.") {
		t.Errorf("expected debug registration logs, got %q", logs.String())
	}
}

func TestRunErrors(t *testing.T) {
	clearEnv(t)

	var out, logs bytes.Buffer
	err := run(&out, &logs, []string{filepath.Join("testdata", "unknown.json")})
	if !errors.Is(err, extensibility.ErrHandlerNotRegistered) {
		t.Errorf("unknown handler: got %v", err)
	}

	err = run(&out, &logs, []string{filepath.Join("testdata", "missing.yaml")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing manifest: got %v", err)
	}

	err = run(&out, &logs, []string{"-format", "svg", filepath.Join("testdata", "shop.yaml")})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Errorf("bad format: got %v", err)
	}
}

func TestParse(t *testing.T) {
	base := config.Config{Strict: true, LogLevel: "info", LogFormat: "text"}

	var out bytes.Buffer
	opts, exit, err := parse(nil, &out, base)
	if err != nil || !exit || opts != nil {
		t.Errorf("no args: opts=%v exit=%v err=%v", opts, exit, err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Error("usage not printed")
	}

	opts, exit, err = parse([]string{"-strict=false", "-log-format", "JSON", "m.yaml"}, &out, base)
	if err != nil || exit {
		t.Fatalf("exit=%v err=%v", exit, err)
	}
	want := config.Config{Strict: false, LogLevel: "info", LogFormat: "json"}
	if opts.Config != want || opts.ManifestPath != "m.yaml" || opts.Format != "namespaces" {
		t.Errorf("opts = %+v", opts)
	}

	_, _, err = parse([]string{"-log-level", "loud", "m.yaml"}, &out, base)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Errorf("bad level: got %v", err)
	}

	_, exit, err = parse([]string{"-h"}, &out, base)
	if err != nil || !exit {
		t.Errorf("-h: exit=%v err=%v", exit, err)
	}
}
