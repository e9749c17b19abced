package editor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexanderramin/chessboard/internal/domain"
)

// Problem is one validation finding. Section, Floor and Unit are zero-based
// positions, -1 when the problem is not scoped that deep.
type Problem struct {
	Section int
	Floor   int
	Unit    int
	Where   string
	Message string
}

func (p Problem) Error() string {
	if p.Where == "" {
		return p.Message
	}
	return p.Where + ": " + p.Message
}

// Validate runs every structural and field check over b and returns all
// findings. A nil result means the chessboard may be saved.
func Validate(b *domain.Chessboard) []Problem {
	var problems []Problem
	add := func(s, f, u int, where, format string, args ...any) {
		problems = append(problems, Problem{
			Section: s, Floor: f, Unit: u, Where: where,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if b.Name == "" {
		add(-1, -1, -1, "", "complex is required")
	}
	if len(b.Sections) == 0 {
		add(-1, -1, -1, "", "at least one section is required")
	}
	if !(b.ExchangeRate > 0) || math.IsInf(b.ExchangeRate, 0) {
		add(-1, -1, -1, "", "exchange rate must be a positive number")
	}

	for si, sec := range b.Sections {
		secWhere := sectionLabel(si, sec)
		if sec.Name == "" {
			add(si, -1, -1, secWhere, "name is required")
		}

		seen := make(map[int]bool)
		reported := make(map[int]bool)
		for fi, fl := range sec.Floors {
			if fl.Label == nil {
				continue
			}
			n := *fl.Label
			if seen[n] && !reported[n] {
				add(si, fi, -1, secWhere, "duplicate floor number %d", n)
				reported[n] = true
			}
			seen[n] = true
		}

		for fi, fl := range sec.Floors {
			floorWhere := secWhere + ", " + floorLabel(fi, fl)
			for ui, u := range fl.Units {
				if u.ID == "" {
					add(si, fi, ui, floorWhere, "unit #%d has no id", ui+1)
				}
			}
			for ui, u := range fl.Units {
				if u.Area != nil && (!(*u.Area > 0) || math.IsInf(*u.Area, 0)) {
					add(si, fi, ui, unitLabel(floorWhere, ui, u), "area must be a positive number")
				}
			}
			for ui, u := range fl.Units {
				switch {
				case u.PriceUSD == nil:
				case !finite(*u.PriceUSD):
					add(si, fi, ui, unitLabel(floorWhere, ui, u), "price USD must be a finite number")
				case *u.PriceUSD < 0:
					add(si, fi, ui, unitLabel(floorWhere, ui, u), "price USD must not be negative")
				}
				if u.PriceIDR != nil && !finite(*u.PriceIDR) {
					add(si, fi, ui, unitLabel(floorWhere, ui, u), "price IDR is out of range")
				}
			}
			for ui, u := range fl.Units {
				for _, msg := range domain.ValidateUnitFields(u) {
					add(si, fi, ui, unitLabel(floorWhere, ui, u), "%s", msg)
				}
			}
		}
	}
	return problems
}

// Validate checks the editor's working tree.
func (e *Editor) Validate() []Problem {
	return Validate(e.board)
}

func sectionLabel(i int, s domain.Section) string {
	if s.Name == "" {
		return fmt.Sprintf("section #%d", i+1)
	}
	return fmt.Sprintf("section %q", s.Name)
}

func floorLabel(i int, f domain.Floor) string {
	if f.Label == nil {
		return fmt.Sprintf("floor #%d (no number)", i+1)
	}
	return "floor " + strconv.Itoa(*f.Label)
}

func unitLabel(floorWhere string, i int, u domain.Unit) string {
	if u.ID == "" {
		return fmt.Sprintf("%s, unit #%d", floorWhere, i+1)
	}
	return fmt.Sprintf("%s, unit %q", floorWhere, u.ID)
}
