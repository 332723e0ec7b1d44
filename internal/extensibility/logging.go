package extensibility

import (
	"context"
	"log/slog"
	"time"

	"github.com/comalice/storetree/internal/primitives"
)

// WithLogging returns a copy of the raw tree whose mutations and actions log
// their execution at debug level. Getters are left alone, as are references
// that do not resolve, so validation still reports them. raw is not modified.
func WithLogging(logger *slog.Logger, raw *primitives.RawModule) *primitives.RawModule {
	return withLogging(logger, primitives.Path{}, raw)
}

func withLogging(logger *slog.Logger, path primitives.Path, raw *primitives.RawModule) *primitives.RawModule {
	if raw == nil {
		return nil
	}
	out := *raw

	if raw.Mutations != nil {
		out.Mutations = make(map[string]any, len(raw.Mutations))
		for name, v := range raw.Mutations {
			fn, ok := primitives.ResolveMutation(v)
			if !ok {
				out.Mutations[name] = v
				continue
			}
			out.Mutations[name] = loggedMutation(logger, path, name, fn)
		}
	}

	if raw.Actions != nil {
		out.Actions = make(map[string]any, len(raw.Actions))
		for name, v := range raw.Actions {
			a, ok := primitives.ResolveAction(v)
			if !ok {
				out.Actions[name] = v
				continue
			}
			handler := loggedAction(logger, path, name, a.Handler)
			if a.Kind == primitives.ActionWithOptions {
				out.Actions[name] = primitives.ActionDef{Handler: handler, Root: a.Options.Root}
			} else {
				out.Actions[name] = handler
			}
		}
	}

	if raw.Modules != nil {
		out.Modules = make(map[string]*primitives.RawModule, len(raw.Modules))
		for key, child := range raw.Modules {
			out.Modules[key] = withLogging(logger, path.Child(key), child)
		}
	}
	return &out
}

func loggedMutation(logger *slog.Logger, path primitives.Path, name string, fn primitives.MutationFunc) primitives.MutationFunc {
	module := path.String()
	return func(state *primitives.State, payload any) {
		start := time.Now()
		fn(state, payload)
		logger.Debug("Mutation applied.", "module", module, "mutation", name, "duration", time.Since(start))
	}
}

func loggedAction(logger *slog.Logger, path primitives.Path, name string, fn primitives.ActionFunc) primitives.ActionFunc {
	module := path.String()
	return func(ctx context.Context, ac primitives.ActionContext, payload any) (any, error) {
		logger.Debug("Executing action.", "module", module, "action", name)
		start := time.Now()
		res, err := fn(ctx, ac, payload)
		if err != nil {
			logger.Error("Action failed.", "module", module, "action", name, "duration", time.Since(start), "error", err)
			return res, err
		}
		logger.Debug("Action completed.", "module", module, "action", name, "duration", time.Since(start))
		return res, nil
	}
}
