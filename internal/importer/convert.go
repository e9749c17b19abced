package importer

import (
	"strings"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
)

// Convert transforms a validated ImportSchema into an unsaved chessboard.
// Call ValidateImportSchema first. defaultRate applies when the file has no
// exchange_rate. PriceIDR is derived, never read from the file.
func Convert(schema *ImportSchema, defaultRate float64) *domain.Chessboard {
	rate := defaultRate
	if schema.ExchangeRate != nil {
		rate = *schema.ExchangeRate
	}
	complexID := schema.ComplexID

	b := &domain.Chessboard{
		ComplexID:    &complexID,
		ExchangeRate: rate,
		Sections:     make([]domain.Section, 0, len(schema.Sections)),
	}
	for _, s := range schema.Sections {
		sec := domain.Section{
			Name:   strings.ToUpper(strings.TrimSpace(s.Name)),
			Floors: make([]domain.Floor, 0, len(s.Floors)),
		}
		for _, f := range s.Floors {
			fl := domain.Floor{
				Label: f.Floor,
				Type:  domain.FloorTypeFloor,
				Units: make([]domain.Unit, 0, len(f.Units)),
			}
			if f.Type != "" {
				fl.Type = domain.FloorType(f.Type)
			}
			for _, u := range f.Units {
				fl.Units = append(fl.Units, convertUnit(u, rate))
			}
			sec.Floors = append(sec.Floors, fl)
		}
		b.Sections = append(b.Sections, sec)
	}
	return b
}

func convertUnit(u UnitImport, rate float64) domain.Unit {
	out := domain.Unit{
		ID:           u.ID,
		PropertyType: domain.PropertyApartment,
		Rooms:        "1",
		Bathrooms:    1,
		Levels:       1,
		Area:         u.Area,
		View:         domain.View(u.View),
		Side:         domain.Side(u.Side),
		PriceUSD:     u.PriceUSD,
		PriceIDR:     editor.LocalPrice(u.PriceUSD, rate),
		ShowPrice:    boolOr(u.ShowPrice, true),
		ShowPriceIDR: boolOr(u.ShowPriceIDR, true),
		Status:       domain.UnitFree,
		Rooftop:      u.Rooftop,
		Terrace:      u.Terrace,
	}
	if out.ID == "" {
		out.ID = editor.NewUnitID()
	}
	if u.PropertyType != "" {
		out.PropertyType = domain.PropertyType(u.PropertyType)
	}
	if u.Rooms != "" {
		out.Rooms = domain.Rooms(u.Rooms)
	}
	if u.Bathrooms != nil {
		out.Bathrooms = *u.Bathrooms
	}
	if u.Levels != nil {
		out.Levels = *u.Levels
	}
	if u.Status != "" {
		out.Status = domain.UnitStatus(u.Status)
	}
	return out
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
