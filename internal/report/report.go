// Package report renders entities into the textual reports printed by the commands.
//
// A report is a banner line followed by one block per entity. Each block is
// followed by a blank line.
package report

import "strings"

// Formattable is implemented by every entity that can appear in a report.
type Formattable interface {
	Format() string
}

// Banner returns the heading line for a listing of entity.
func Banner(entity string) string {
	return "-- DISPLAYING " + entity + " --"
}

// Render writes banner and then each item in order.
func Render[T Formattable](banner string, items []T) string {
	var b strings.Builder
	b.WriteString(banner)
	b.WriteByte('\n')
	for _, it := range items {
		b.WriteString(it.Format())
		b.WriteByte('\n')
	}
	return b.String()
}
