package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nothing-labs/marketplace/internal/descriptor"
	"github.com/nothing-labs/marketplace/internal/pkgmeta"
)

// Assemble combines a collection with the package metadata into a Document.
func Assemble(col *Collection, meta pkgmeta.Metadata) *Document {
	doc := &Document{
		Name:       meta.Name,
		Version:    meta.Version,
		Extensions: col.Extensions,
		Tags:       col.Tags,
	}
	if doc.Extensions == nil {
		doc.Extensions = []descriptor.Descriptor{}
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	return doc
}

// Marshal renders the document with two-space indentation. HTML characters
// are not escaped and there is no trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteFile renders doc and replaces the contents of path, creating parent
// directories as needed.
func WriteFile(path string, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing index %s: %w", path, err)
	}
	return nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}
