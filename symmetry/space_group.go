// SPDX-License-Identifier: MIT

package symmetry

import "fmt"

// Entry identifies a space group setting.
type Entry struct {
	Index         int    `yaml:"index"`
	Specifier     string `yaml:"specifier"`
	Literal       string `yaml:"literal"`
	CrystalSystem string `yaml:"crystal_system"`
}

// String implements fmt.Stringer.
func (e Entry) String() string {
	return fmt.Sprintf("%d (%s)", e.Index, e.Specifier)
}

// SpaceGroup is an entry with its full operation list. The first operation is
// expected to be the identity.
type SpaceGroup struct {
	Entry
	Operations []Operation
}
