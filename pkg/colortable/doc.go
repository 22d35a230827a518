// Package colortable overrides citymodel's builtin per-class default
// colors from a small YAML file, for deployments that want a site
// palette instead of the library's generic defaults.
package colortable
