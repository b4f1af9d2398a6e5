// Package index builds the marketplace index. It reads every *.json
// descriptor in a source directory, collects the union of their tags, sorts
// descriptors by identifier with locale-aware collation, and writes a single
// pretty-printed index document. A build either writes a complete index or
// fails without writing anything.
package index
