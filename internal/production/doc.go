// Package production provides integrations around the module tree: manifest
// files (YAML, JSON, HCL), tree visualization, and warning reporters.
package production
