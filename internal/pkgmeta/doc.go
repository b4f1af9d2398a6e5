// Package pkgmeta loads the package metadata (name and version) that names
// the generated index. Without a metadata file the index falls back to the
// branded defaults.
package pkgmeta
