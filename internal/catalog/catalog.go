// Package catalog maps operation names to statically checked query templates.
//
// Each facade declares its default templates in code. The settings file may replace the
// text of a known template; it can never introduce a new name or change how many
// parameters a template binds.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"whatabook/internal/dberr"
	"whatabook/internal/store"
)

// Template is one named query and the number of parameters it binds.
type Template struct {
	Name   string
	Text   string
	Params int
}

type Catalog struct {
	section   string
	templates map[string]Template
}

// New validates the defaults, applies overrides and returns the catalog for section.
func New(section string, defaults []Template, overrides map[string]string) (*Catalog, error) {
	const op = "catalog.New"

	c := &Catalog{section: section, templates: make(map[string]Template, len(defaults))}
	for _, t := range defaults {
		if _, dup := c.templates[t.Name]; dup {
			return nil, dberr.Configuration(op, "%s: duplicate query %q", section, t.Name)
		}
		if err := check(t); err != nil {
			return nil, dberr.Configuration(op, "%s: %v", section, err)
		}
		c.templates[t.Name] = t
	}

	for name, text := range overrides {
		t, ok := c.templates[name]
		if !ok {
			return nil, dberr.Configuration(op, "%s: unknown query %q", section, name)
		}
		t.Text = strings.TrimSpace(text)
		if err := check(t); err != nil {
			return nil, dberr.Configuration(op, "%s: %v", section, err)
		}
		c.templates[name] = t
	}
	return c, nil
}

// CheckSections rejects query sections that no facade owns.
func CheckSections(queries map[string]map[string]string, known ...string) error {
	for section := range queries {
		found := false
		for _, k := range known {
			if k == section {
				found = true
				break
			}
		}
		if !found {
			return dberr.Configuration("catalog.CheckSections", "unknown query section %q", section)
		}
	}
	return nil
}

// Query binds args to the named template.
func (c *Catalog) Query(name string, args ...any) (store.Query, error) {
	t, ok := c.templates[name]
	if !ok {
		return store.Query{}, dberr.Query("catalog.Query", fmt.Errorf("%s: unknown query %q", c.section, name))
	}
	if len(args) != t.Params {
		return store.Query{}, dberr.Query("catalog.Query", fmt.Errorf("%s: query %q binds %d parameters, got %d", c.section, name, t.Params, len(args)))
	}
	return store.Query{Name: c.section + "." + name, Statement: t.Text, Args: args}, nil
}

// Text returns the current text of the named template.
func (c *Catalog) Text(name string) (string, bool) {
	t, ok := c.templates[name]
	return t.Text, ok
}

// Names lists the catalog's operation names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func check(t Template) error {
	if t.Name == "" {
		return fmt.Errorf("query with empty name")
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("query %q has empty text", t.Name)
	}
	if n := Placeholders(t.Text); n != t.Params {
		return fmt.Errorf("query %q has %d placeholders, want %d", t.Name, n, t.Params)
	}
	return nil
}

// Placeholders counts the ? markers outside quoted literals.
func Placeholders(text string) int {
	var (
		n     int
		quote rune
	)
	for _, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
		case r == '?':
			n++
		}
	}
	return n
}
