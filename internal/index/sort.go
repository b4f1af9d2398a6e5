package index

import (
	"fmt"
	"sort"

	"github.com/nothing-labs/marketplace/internal/descriptor"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a collator for the given BCP 47 locale.
func newCollator(locale string) (*collate.Collator, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	return collate.New(tag), nil
}

// sortByIdentifier orders descriptors by identifier. Ties keep their
// encounter order.
func sortByIdentifier(exts []descriptor.Descriptor, c *collate.Collator) {
	sort.SliceStable(exts, func(i, j int) bool {
		return c.CompareString(exts[i].Identifier, exts[j].Identifier) < 0
	})
}

// tagSet accumulates distinct tags.
type tagSet map[string]struct{}

func (s tagSet) add(tags ...string) {
	for _, tag := range tags {
		s[tag] = struct{}{}
	}
}

// sorted returns the tags in ascending byte order. Never nil.
func (s tagSet) sorted() []string {
	out := make([]string, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
