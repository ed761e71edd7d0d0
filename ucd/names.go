package ucd

import (
	"errors"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/ucore/cpset"
	"github.com/npillmayer/ucore/ucd/udata"
)

// ErrUnknownProperty is returned by ResolveOrErr when name does not match
// any precompiled or composed property set.
var ErrUnknownProperty = errors.New("ucd: unknown property name")

// NormalizeName implements §6's loose-equality rule: ASCII case-insensitive,
// ignoring space, '-' and '_'.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case ' ', '-', '_':
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// registry maps a normalized name to its Set. Composed names are built
// eagerly in init from entries registered before them, so a composed
// name must be registered after every name it unions.
var registry = treemap.NewWithStringComparator()

func register(name string, set cpset.Set) {
	registry.Put(NormalizeName(name), set)
}

func init() {
	for name, iv := range udata.GeneralCategories {
		register(name, cpset.FromIntervals(iv...))
	}
	for name, iv := range udata.Scripts {
		register(name, cpset.FromIntervals(iv...))
	}
	for name, iv := range udata.Blocks {
		register(name, cpset.FromIntervals(iv...))
	}
	for name, iv := range udata.BinaryProperties {
		register(name, cpset.FromIntervals(iv...))
	}

	register("any", cpset.FromIntervals([2]uint32{0, 0x110000}))
	register("ascii", cpset.FromIntervals([2]uint32{0, 0x80}))

	register("L", union("Lu", "Ll", "Lt", "Lo", "Lm"))
	register("M", union("Mn", "Mc", "Me"))
	register("N", union("Nd", "Nl", "No"))
	register("P", union("Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po"))
	register("S", union("Sm", "Sc", "Sk", "So"))
	register("Z", union("Zs", "Zl", "Zp"))

	register("graphical", union("Alphabetic", "M", "N", "P", "Zs", "S"))
}

// union looks up already-registered names and folds them together with
// cpset.Union. Panics on an unknown name: this is only ever called from
// init with names this file itself registers a few lines above, so an
// unresolvable name is a programming error in this package, not a
// reportable runtime condition.
func union(names ...string) cpset.Set {
	var out cpset.Set
	for _, name := range names {
		v, ok := registry.Get(NormalizeName(name))
		if !ok {
			panic("ucd: union() references unregistered name " + name)
		}
		out = out.Union(v.(cpset.Set))
	}
	return out
}

// Resolve maps a requested property or composed name to its Set. Matching
// is loose per NormalizeName. The second return value is false if name
// does not match anything known.
func Resolve(name string) (cpset.Set, bool) {
	v, ok := registry.Get(NormalizeName(name))
	if !ok {
		return cpset.Set{}, false
	}
	return v.(cpset.Set), true
}

// ResolveOrErr is Resolve with the "unknown property name" error kind of
// §7 made explicit, for callers that want an error rather than a bool.
func ResolveOrErr(name string) (cpset.Set, error) {
	set, ok := Resolve(name)
	if !ok {
		return cpset.Set{}, ErrUnknownProperty
	}
	return set, nil
}
