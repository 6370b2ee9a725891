// Package collation wraps golang.org/x/text so record names are ordered by
// Unicode CLDR collation for a configured locale instead of raw byte order.
package collation

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders strings by the CLDR collation rules of one locale.
// Case and diacritic differences fold the way the locale expects, so
// "apple" sorts before "Banana" and "Émile" sorts with the E entries.
type Comparator struct {
	collator *collate.Collator
}

// New builds a Comparator for a BCP 47 locale tag such as "en" or "de-DE".
func New(locale string) (*Comparator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse collation locale %q: %w", locale, err)
	}
	return &Comparator{collator: collate.New(tag)}, nil
}

// Compare returns -1, 0, or +1 following the locale's collation order.
func (c *Comparator) Compare(a, b string) int {
	return c.collator.CompareString(a, b)
}

// Less reports whether a orders before b.
func (c *Comparator) Less(a, b string) bool {
	return c.collator.CompareString(a, b) < 0
}
