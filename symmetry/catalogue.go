// SPDX-License-Identifier: MIT

package symmetry

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var defaultCatalogue []byte

// Catalogue is a read-only list of space groups.
type Catalogue struct {
	groups []SpaceGroup
}

type catalogueDocument struct {
	Groups []struct {
		Entry      `yaml:",inline"`
		Operations []string `yaml:"operations"`
	} `yaml:"groups"`
}

// DefaultCatalogue parses the embedded catalogue (P1, P-1, P2/m, Pmmm, P4/mmm,
// Pm-3m, Fm-3m, Im-3m).
func DefaultCatalogue() (*Catalogue, error) {
	return LoadCatalogue(bytes.NewReader(defaultCatalogue))
}

// LoadCatalogue decodes a YAML catalogue document. Every group needs a
// positive index and at least one operation; an (index, specifier) pair may
// appear only once.
func LoadCatalogue(r io.Reader) (*Catalogue, error) {
	var doc catalogueDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidCatalogue)
	}

	c := &Catalogue{groups: make([]SpaceGroup, 0, len(doc.Groups))}
	for _, g := range doc.Groups {
		if g.Index <= 0 {
			return nil, fmt.Errorf("group %q index %d: %w", g.Specifier, g.Index, ErrInvalidCatalogue)
		}
		if len(g.Operations) == 0 {
			return nil, fmt.Errorf("group %s: no operations: %w", g.Entry, ErrInvalidCatalogue)
		}
		if _, err := c.Find(g.Index, g.Specifier); err == nil {
			return nil, fmt.Errorf("group %s: duplicate: %w", g.Entry, ErrInvalidCatalogue)
		}
		ops := make([]Operation, len(g.Operations))
		for i, literal := range g.Operations {
			op, err := ParseOperation(literal)
			if err != nil {
				return nil, fmt.Errorf("group %s operation %d: %w", g.Entry, i, err)
			}
			ops[i] = op
		}
		c.groups = append(c.groups, SpaceGroup{Entry: g.Entry, Operations: ops})
	}

	return c, nil
}

// Entries lists the catalogue entries in document order.
func (c *Catalogue) Entries() []Entry {
	out := make([]Entry, len(c.groups))
	for i, g := range c.groups {
		out[i] = g.Entry
	}

	return out
}

// Find returns the group with index and specifier. An empty specifier
// matches the first group with that index.
func (c *Catalogue) Find(index int, specifier string) (SpaceGroup, error) {
	for _, g := range c.groups {
		if g.Index == index && (specifier == "" || g.Specifier == specifier) {
			return SpaceGroup{Entry: g.Entry, Operations: slices.Clone(g.Operations)}, nil
		}
	}

	return SpaceGroup{}, fmt.Errorf("index %d specifier %q: %w", index, specifier, ErrGroupNotFound)
}
