// Package editor holds the in-memory chessboard tree and every structural
// operation on it. Nothing here performs I/O; persistence is the service
// layer's job.
package editor

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/google/uuid"
)

// Editor owns a private working copy of a chessboard. Operations mutate that
// copy in place and never hand out references into it; Board returns a deep
// copy. Rejected operations (removing a last child, out-of-range indices,
// cross-parent reorders) leave the tree untouched and report false.
type Editor struct {
	board *domain.Chessboard
	newID func() string
}

// New returns an editor for a fresh chessboard with one section holding one
// floor holding one unit. defaultRate seeds the exchange rate.
func New(defaultRate float64) *Editor {
	e := &Editor{newID: NewUnitID}
	e.board = &domain.Chessboard{
		ExchangeRate: defaultRate,
		Sections:     []domain.Section{e.defaultSection(0)},
	}
	e.board.Sections[0].Floors[0].Label = intPtr(1)
	return e
}

// Hydrate returns an editor over a deep copy of a stored chessboard.
func Hydrate(b *domain.Chessboard) *Editor {
	return &Editor{board: b.Clone(), newID: NewUnitID}
}

// NewUnitID returns a short opaque unit identifier.
func NewUnitID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// Board returns a deep copy of the working tree.
func (e *Editor) Board() *domain.Chessboard {
	return e.board.Clone()
}

// ID returns the persisted id, or "" for a chessboard not yet saved.
func (e *Editor) ID() string { return e.board.ID }

func (e *Editor) ExchangeRate() float64 { return e.board.ExchangeRate }

// SetComplex links the working tree to a complex. The name is the complex's
// display name and is replaced by the stored one on save.
func (e *Editor) SetComplex(complexID, name string) {
	if complexID == "" {
		e.board.ComplexID = nil
		e.board.Name = ""
		return
	}
	id := complexID
	e.board.ComplexID = &id
	e.board.Name = name
}

// AddSection appends a section with one floor and one unit and returns its index.
func (e *Editor) AddSection() int {
	sec := e.defaultSection(len(e.board.Sections))
	sec.Floors[0].Label = intPtr(1)
	e.board.Sections = append(e.board.Sections, sec)
	return len(e.board.Sections) - 1
}

// AddFloor appends an unnumbered floor with one unit to section s.
func (e *Editor) AddFloor(s int) (int, bool) {
	sec := e.section(s)
	if sec == nil {
		return 0, false
	}
	sec.Floors = append(sec.Floors, e.defaultFloor())
	return len(sec.Floors) - 1, true
}

// AddUnit appends a unit to floor f of section s and returns the index it
// was inserted at so the caller can bring it into view.
func (e *Editor) AddUnit(s, f int) (int, bool) {
	fl := e.floor(s, f)
	if fl == nil {
		return 0, false
	}
	fl.Units = append(fl.Units, defaultUnit(e.newID()))
	return len(fl.Units) - 1, true
}

// CopyUnit appends a deep copy of unit u under a fresh id to the same floor.
func (e *Editor) CopyUnit(s, f, u int) (int, bool) {
	fl := e.floor(s, f)
	if fl == nil || u < 0 || u >= len(fl.Units) {
		return 0, false
	}
	dup := fl.Units[u].Clone()
	dup.ID = e.newID()
	fl.Units = append(fl.Units, dup)
	return len(fl.Units) - 1, true
}

func (e *Editor) RemoveSection(s int) bool {
	if len(e.board.Sections) <= 1 || e.section(s) == nil {
		return false
	}
	e.board.Sections = removeAt(e.board.Sections, s)
	return true
}

func (e *Editor) RemoveFloor(s, f int) bool {
	sec := e.section(s)
	if sec == nil || len(sec.Floors) <= 1 || f < 0 || f >= len(sec.Floors) {
		return false
	}
	sec.Floors = removeAt(sec.Floors, f)
	return true
}

func (e *Editor) RemoveUnit(s, f, u int) bool {
	fl := e.floor(s, f)
	if fl == nil || len(fl.Units) <= 1 || u < 0 || u >= len(fl.Units) {
		return false
	}
	fl.Units = removeAt(fl.Units, u)
	return true
}

func (e *Editor) MoveSectionUp(i int) bool {
	if i <= 0 || i >= len(e.board.Sections) {
		return false
	}
	e.board.Sections[i-1], e.board.Sections[i] = e.board.Sections[i], e.board.Sections[i-1]
	return true
}

func (e *Editor) MoveSectionDown(i int) bool {
	if i < 0 || i >= len(e.board.Sections)-1 {
		return false
	}
	e.board.Sections[i], e.board.Sections[i+1] = e.board.Sections[i+1], e.board.Sections[i]
	return true
}

// SetSectionName stores name uppercased with everything outside A-Z, 0-9 and
// space dropped.
func (e *Editor) SetSectionName(s int, name string) bool {
	sec := e.section(s)
	if sec == nil {
		return false
	}
	sec.Name = sanitizeSectionName(name)
	return true
}

// SetFloorLabel sets or clears (nil) the floor number.
func (e *Editor) SetFloorLabel(s, f int, label *int) bool {
	fl := e.floor(s, f)
	if fl == nil {
		return false
	}
	fl.Label = cloneInt(label)
	return true
}

func (e *Editor) SetFloorType(s, f int, t domain.FloorType) bool {
	fl := e.floor(s, f)
	if fl == nil || (t != domain.FloorTypeFloor && t != domain.FloorTypeRow) {
		return false
	}
	fl.Type = t
	return true
}

func (e *Editor) section(s int) *domain.Section {
	if s < 0 || s >= len(e.board.Sections) {
		return nil
	}
	return &e.board.Sections[s]
}

func (e *Editor) floor(s, f int) *domain.Floor {
	sec := e.section(s)
	if sec == nil || f < 0 || f >= len(sec.Floors) {
		return nil
	}
	return &sec.Floors[f]
}

func (e *Editor) unit(s, f, u int) *domain.Unit {
	fl := e.floor(s, f)
	if fl == nil || u < 0 || u >= len(fl.Units) {
		return nil
	}
	return &fl.Units[u]
}

func (e *Editor) defaultSection(ordinal int) domain.Section {
	return domain.Section{
		Name:   nextSectionName(e.board, ordinal),
		Floors: []domain.Floor{e.defaultFloor()},
	}
}

func (e *Editor) defaultFloor() domain.Floor {
	return domain.Floor{
		Type:  domain.FloorTypeFloor,
		Units: []domain.Unit{defaultUnit(e.newID())},
	}
}

func defaultUnit(id string) domain.Unit {
	return domain.Unit{
		ID:           id,
		PropertyType: domain.PropertyApartment,
		Rooms:        "1",
		Bathrooms:    1,
		Levels:       1,
		ShowPrice:    true,
		ShowPriceIDR: true,
		Status:       domain.UnitFree,
	}
}

// nextSectionName picks the first letter A..Z not used by an existing
// section, falling back to S<n> labels past Z.
func nextSectionName(b *domain.Chessboard, ordinal int) string {
	used := make(map[string]bool)
	if b != nil {
		for _, s := range b.Sections {
			used[s.Name] = true
		}
	}
	for c := 'A'; c <= 'Z'; c++ {
		if name := string(c); !used[name] {
			return name
		}
	}
	for n := ordinal + 1; ; n++ {
		if name := fmt.Sprintf("S%d", n); !used[name] {
			return name
		}
	}
}

func sanitizeSectionName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// removeAt returns a new slice without element i.
func removeAt[T any](xs []T, i int) []T {
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}

func intPtr(v int) *int { return &v }

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
