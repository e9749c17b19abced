package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the level of the tree a Key addresses.
type Kind int

const (
	KindSection Kind = iota + 1
	KindFloor
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindFloor:
		return "floor"
	case KindUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// depth is the number of indices needed to address an entity of this kind.
func (k Kind) depth() int {
	switch k {
	case KindSection:
		return 1
	case KindFloor:
		return 2
	case KindUnit:
		return 3
	default:
		return 0
	}
}

// Key addresses one section, floor or unit by its index path.
type Key struct {
	Kind Kind
	Path []int
}

func SectionKey(s int) Key { return Key{Kind: KindSection, Path: []int{s}} }
func FloorKey(s, f int) Key { return Key{Kind: KindFloor, Path: []int{s, f}} }
func UnitKey(s, f, u int) Key { return Key{Kind: KindUnit, Path: []int{s, f, u}} }

// Valid reports whether the path length matches the kind and no index is negative.
func (k Key) Valid() bool {
	if k.Kind.depth() == 0 || len(k.Path) != k.Kind.depth() {
		return false
	}
	for _, i := range k.Path {
		if i < 0 {
			return false
		}
	}
	return true
}

// Index is the position of the entity among its siblings.
func (k Key) Index() int {
	return k.Path[len(k.Path)-1]
}

// String renders the drag identifier form, e.g. "unit-0-1-2".
func (k Key) String() string {
	parts := make([]string, 0, len(k.Path)+1)
	parts = append(parts, k.Kind.String())
	for _, i := range k.Path {
		parts = append(parts, strconv.Itoa(i))
	}
	return strings.Join(parts, "-")
}

// ParseKey decodes a drag identifier produced by Key.String.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, "-")
	var k Key
	switch parts[0] {
	case "section":
		k.Kind = KindSection
	case "floor":
		k.Kind = KindFloor
	case "unit":
		k.Kind = KindUnit
	default:
		return Key{}, fmt.Errorf("unknown drag target kind %q", parts[0])
	}
	if len(parts)-1 != k.Kind.depth() {
		return Key{}, fmt.Errorf("drag target %q: expected %d indices, got %d", s, k.Kind.depth(), len(parts)-1)
	}
	k.Path = make([]int, 0, len(parts)-1)
	for _, p := range parts[1:] {
		i, err := strconv.Atoi(p)
		if err != nil || i < 0 {
			return Key{}, fmt.Errorf("drag target %q: invalid index %q", s, p)
		}
		k.Path = append(k.Path, i)
	}
	return k, nil
}

// SameParent reports whether a and b address siblings of the same kind.
func SameParent(a, b Key) bool {
	if a.Kind != b.Kind || !a.Valid() || !b.Valid() {
		return false
	}
	for i := 0; i < len(a.Path)-1; i++ {
		if a.Path[i] != b.Path[i] {
			return false
		}
	}
	return true
}

// Reorder moves the entity at from to the position of to. Requests across
// kinds or parents are ignored: moving a floor into another section would
// need an explicit re-parenting step this editor does not have.
func (e *Editor) Reorder(from, to Key) bool {
	if !SameParent(from, to) {
		return false
	}
	i, j := from.Index(), to.Index()
	switch from.Kind {
	case KindSection:
		if i >= len(e.board.Sections) || j >= len(e.board.Sections) {
			return false
		}
		e.board.Sections = move(e.board.Sections, i, j)
	case KindFloor:
		sec := e.section(from.Path[0])
		if sec == nil || i >= len(sec.Floors) || j >= len(sec.Floors) {
			return false
		}
		sec.Floors = move(sec.Floors, i, j)
	case KindUnit:
		fl := e.floor(from.Path[0], from.Path[1])
		if fl == nil || i >= len(fl.Units) || j >= len(fl.Units) {
			return false
		}
		fl.Units = move(fl.Units, i, j)
	default:
		return false
	}
	return i != j
}

// move returns a new slice with the element at from relocated to index to.
func move[T any](xs []T, from, to int) []T {
	if from == to {
		return xs
	}
	item := xs[from]
	rest := removeAt(xs, from)
	out := make([]T, 0, len(xs))
	out = append(out, rest[:to]...)
	out = append(out, item)
	return append(out, rest[to:]...)
}
