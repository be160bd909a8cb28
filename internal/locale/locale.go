// Package locale formats headline numbers for the configured language.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter prints counts with the locale's digit grouping.
type Formatter struct {
	tag language.Tag
	p   *message.Printer
}

// New parses a BCP 47 tag such as "en" or "es-MX".
func New(tag string) (*Formatter, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", tag, err)
	}
	return &Formatter{tag: t, p: message.NewPrinter(t)}, nil
}

// Tag is the canonical language tag.
func (f *Formatter) Tag() string { return f.tag.String() }

// Count formats n with thousands separators, e.g. 51525 -> "51,525".
func (f *Formatter) Count(n int) string { return f.p.Sprintf("%d", n) }

// DatasetHeadline describes the full dataset.
func (f *Formatter) DatasetHeadline(n int) string {
	return f.p.Sprintf("This dataset has %d listings", n)
}

// ResultHeadline describes a filtered result.
func (f *Formatter) ResultHeadline(n int) string {
	return f.p.Sprintf("Filtered results: %d listings", n)
}
