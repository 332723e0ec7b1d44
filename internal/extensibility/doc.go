// Package extensibility connects declarative module manifests to compiled
// Go handlers. A HandlerRegistry maps handler names to functions, and
// resolves a ModuleManifest tree into the raw definitions the module tree
// registers. It also provides decorators that instrument raw definitions.
package extensibility
