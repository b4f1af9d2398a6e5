package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// Descriptor is one extension record loaded from a single file.
// The raw JSON is kept as-is so that field order and number formatting
// survive a round trip into the index.
type Descriptor struct {
	Identifier string
	Tags       []string
	Source     string // path of the file the descriptor was read from

	raw []byte
}

// MarshalJSON re-emits the descriptor exactly as it was read.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	if len(d.raw) == 0 {
		return nil, fmt.Errorf("descriptor %q has no content", d.Identifier)
	}
	return d.raw, nil
}

// Shape errors, wrapped in a *ParseError naming the file.
var (
	ErrNotObject           = errors.New("descriptor is not a JSON object")
	ErrMissingIdentifier   = errors.New("descriptor missing required 'identifier' field")
	ErrIdentifierNotString = errors.New("descriptor 'identifier' field is not a string")
	ErrInvalidTags         = errors.New("descriptor 'meta.tags' is not an array of strings")
	ErrDuplicateKey        = errors.New("descriptor repeats an object key")
)

// ParseError reports a file that could not be read as a descriptor.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing descriptor %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a descriptor that failed schema validation.
type ValidationError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "descriptor %s failed schema validation", e.Path)
	for _, issue := range e.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.String())
	}
	return b.String()
}
