package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for chessboard import.
type ImportSchema struct {
	ComplexID    string          `json:"complex_id"`
	ExchangeRate *float64        `json:"exchange_rate,omitempty"`
	Sections     []SectionImport `json:"sections"`
}

type SectionImport struct {
	Name   string        `json:"name"`
	Floors []FloorImport `json:"floors"`
}

// FloorImport defines one floor; Floor is omitted for an unnumbered level.
type FloorImport struct {
	Floor *int         `json:"floor,omitempty"`
	Type  string       `json:"type,omitempty"`
	Units []UnitImport `json:"units"`
}

// UnitImport defines a unit. Omitted fields take the same defaults as a unit
// added in the editor; an omitted id is generated.
type UnitImport struct {
	ID           string   `json:"id,omitempty"`
	PropertyType string   `json:"property_type,omitempty"`
	Rooms        string   `json:"rooms,omitempty"`
	Bathrooms    *int     `json:"bathrooms,omitempty"`
	Levels       *int     `json:"levels,omitempty"`
	Area         *float64 `json:"area,omitempty"`
	View         string   `json:"view,omitempty"`
	Side         string   `json:"side,omitempty"`
	PriceUSD     *float64 `json:"price_usd,omitempty"`
	ShowPrice    *bool    `json:"show_price,omitempty"`
	ShowPriceIDR *bool    `json:"show_price_idr,omitempty"`
	Status       string   `json:"status,omitempty"`
	Rooftop      bool     `json:"rooftop,omitempty"`
	Terrace      bool     `json:"terrace,omitempty"`
}

// LoadImportSchema reads and parses a chessboard import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
