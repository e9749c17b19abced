package domain

import "time"

// Chessboard is the unit inventory of one complex: sections, their floors, and
// the sellable units on each floor. Order at every level is user controlled.
type Chessboard struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ComplexID    *string   `json:"complexId"`
	ExchangeRate float64   `json:"exchangeRate"`
	Sections     []Section `json:"sections"`
	PublicURL    string    `json:"publicUrl"`
	CreatedBy    string    `json:"createdBy"`
	UpdatedBy    string    `json:"updatedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Section struct {
	Name   string  `json:"name"`
	Floors []Floor `json:"floors"`
}

// Floor is a horizontal level (or presentational row) inside a section.
// Label is nil when the floor has no number.
type Floor struct {
	Label *int      `json:"floor"`
	Type  FloorType `json:"type"`
	Units []Unit    `json:"units"`
}

// Unit is a single sellable property. PriceIDR is derived from PriceUSD and
// the owning chessboard's exchange rate and is never edited directly.
type Unit struct {
	ID           string       `json:"id" validate:"required"`
	PropertyType PropertyType `json:"propertyType" validate:"oneof=apartment villa apart-villa townhouse penthouse"`
	Rooms        Rooms        `json:"rooms" validate:"oneof=studio 1 2 3 4 5 6"`
	Bathrooms    int          `json:"bathrooms" validate:"min=1,max=6"`
	Levels       int          `json:"floors" validate:"min=1,max=3"`
	Area         *float64     `json:"area"`
	View         View         `json:"view,omitempty" validate:"omitempty,oneof=sea ocean jungle garden pool mountain river city"`
	Side         Side         `json:"side,omitempty" validate:"omitempty,oneof=north south east west"`
	PriceUSD     *float64     `json:"priceUSD"`
	PriceIDR     *float64     `json:"priceIDR"`
	ShowPrice    bool         `json:"showPrice"`
	ShowPriceIDR bool         `json:"showPriceIDR"`
	Status       UnitStatus   `json:"status" validate:"oneof=free booked sold"`
	Rooftop      bool         `json:"rooftop"`
	Terrace      bool         `json:"terrace"`
}

// Linked reports whether the chessboard references a complex.
func (b *Chessboard) Linked() bool {
	return b.ComplexID != nil && *b.ComplexID != ""
}

// UnitCount returns the number of units across all sections and floors.
func (b *Chessboard) UnitCount() int {
	n := 0
	for _, s := range b.Sections {
		for _, f := range s.Floors {
			n += len(f.Units)
		}
	}
	return n
}

// Clone returns a deep copy that shares no slices or pointers with b.
func (b *Chessboard) Clone() *Chessboard {
	if b == nil {
		return nil
	}
	c := *b
	c.ComplexID = cloneString(b.ComplexID)
	c.Sections = make([]Section, len(b.Sections))
	for i, s := range b.Sections {
		c.Sections[i] = s.Clone()
	}
	return &c
}

func (s Section) Clone() Section {
	c := Section{Name: s.Name, Floors: make([]Floor, len(s.Floors))}
	for i, f := range s.Floors {
		c.Floors[i] = f.Clone()
	}
	return c
}

func (f Floor) Clone() Floor {
	c := Floor{Label: cloneInt(f.Label), Type: f.Type, Units: make([]Unit, len(f.Units))}
	for i, u := range f.Units {
		c.Units[i] = u.Clone()
	}
	return c
}

func (u Unit) Clone() Unit {
	c := u
	c.Area = cloneFloat(u.Area)
	c.PriceUSD = cloneFloat(u.PriceUSD)
	c.PriceIDR = cloneFloat(u.PriceIDR)
	return c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
