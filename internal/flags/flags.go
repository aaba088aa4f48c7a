package flags

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Flags is an ordered collection of flags for a command.
// Duplicates are kept: membership is checked by value.
type Flags []Flag

// Push appends a flag and returns the collection for chaining.
func (f *Flags) Push(flag Flag) *Flags {
	*f = append(*f, flag)
	return f
}

// Contains returns true if the flag is in the collection.
func (f Flags) Contains(flag Flag) bool {
	return slices.Contains(f, flag)
}

// IsEmpty returns true if no flags have been collected.
func (f Flags) IsEmpty() bool {
	return len(f) == 0
}

// String renders the flags as a single dash followed by all
// flag characters in insertion order, e.g. `-abc`. An empty
// collection renders as a bare dash.
func (f Flags) String() string {
	var flagStr strings.Builder

	flagStr.WriteRune('-')

	for _, flag := range f {
		flagStr.WriteRune(rune(flag))
	}

	return flagStr.String()
}
