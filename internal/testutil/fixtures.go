package testutil

import (
	"strings"
	"time"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/google/uuid"
)

func NewTestDeveloper(name string) *domain.Developer {
	return &domain.Developer{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Complex options
type ComplexOption func(*domain.Complex)

func WithDeveloper(id string) ComplexOption {
	return func(c *domain.Complex) {
		c.DeveloperID = &id
	}
}

func WithBackLink(chessboardID, publicID, publicURL string) ComplexOption {
	return func(c *domain.Complex) {
		c.BackLink = domain.BackLink{
			ChessboardID:        &chessboardID,
			ChessboardPublicID:  &publicID,
			ChessboardPublicURL: &publicURL,
		}
	}
}

func NewTestComplex(name string, opts ...ComplexOption) *domain.Complex {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Complex{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chessboard options
type ChessboardOption func(*domain.Chessboard)

func WithComplex(c *domain.Complex) ChessboardOption {
	return func(b *domain.Chessboard) {
		id := c.ID
		b.ComplexID = &id
		b.Name = c.Name
	}
}

func WithExchangeRate(rate float64) ChessboardOption {
	return func(b *domain.Chessboard) {
		b.ExchangeRate = rate
	}
}

func WithPublicURL(token string) ChessboardOption {
	return func(b *domain.Chessboard) {
		b.PublicURL = token
	}
}

func WithSections(sections ...domain.Section) ChessboardOption {
	return func(b *domain.Chessboard) {
		b.Sections = sections
	}
}

// NewTestUnit returns a unit that passes validation.
func NewTestUnit(id string) domain.Unit {
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

// NewTestSection returns a section with one numbered floor holding the units.
func NewTestSection(name string, floor int, units ...domain.Unit) domain.Section {
	if len(units) == 0 {
		units = []domain.Unit{NewTestUnit(strings.ToUpper(uuid.NewString()[:8]))}
	}
	return domain.Section{
		Name:   name,
		Floors: []domain.Floor{{Label: &floor, Type: domain.FloorTypeFloor, Units: units}},
	}
}

// NewTestChessboard returns an unlinked, unsaved chessboard with one section.
// Apply WithComplex to make it savable.
func NewTestChessboard(opts ...ChessboardOption) *domain.Chessboard {
	now := time.Now().UTC().Truncate(time.Second)
	b := &domain.Chessboard{
		ID:           uuid.New().String(),
		ExchangeRate: 16000,
		Sections:     []domain.Section{NewTestSection("A", 1)},
		PublicURL:    strings.ReplaceAll(uuid.NewString(), "-", "")[:10],
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}
