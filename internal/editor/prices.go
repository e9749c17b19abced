package editor

import (
	"math"

	"github.com/alexanderramin/chessboard/internal/domain"
)

// Field names a unit attribute settable through SetUnitField. PriceIDR has
// no Field; it follows PriceUSD and the exchange rate.
type Field string

const (
	FieldID           Field = "id"
	FieldPropertyType Field = "propertyType"
	FieldRooms        Field = "rooms"
	FieldBathrooms    Field = "bathrooms"
	FieldLevels       Field = "floors"
	FieldArea         Field = "area"
	FieldView         Field = "view"
	FieldSide         Field = "side"
	FieldPriceUSD     Field = "priceUSD"
	FieldShowPrice    Field = "showPrice"
	FieldShowPriceIDR Field = "showPriceIDR"
	FieldStatus       Field = "status"
	FieldRooftop      Field = "rooftop"
	FieldTerrace      Field = "terrace"
)

// SetExchangeRate replaces the document rate and recomputes PriceIDR for
// every unit. Non-positive or non-finite rates are rejected, as is a rate
// that would push any local price out of float range.
func (e *Editor) SetExchangeRate(rate float64) bool {
	if rate <= 0 || !finite(rate) {
		return false
	}
	for _, sec := range e.board.Sections {
		for _, fl := range sec.Floors {
			for _, u := range fl.Units {
				if p := LocalPrice(u.PriceUSD, rate); p != nil && !finite(*p) {
					return false
				}
			}
		}
	}
	e.board.ExchangeRate = rate
	for s := range e.board.Sections {
		floors := e.board.Sections[s].Floors
		for f := range floors {
			units := floors[f].Units
			for u := range units {
				units[u].PriceIDR = LocalPrice(units[u].PriceUSD, rate)
			}
		}
	}
	return true
}

// SetUnitField assigns value to one field of unit u. The value must have the
// field's Go type (optional numbers accept float64, *float64 or nil). A
// PriceUSD change recomputes that unit's PriceIDR.
func (e *Editor) SetUnitField(s, f, u int, field Field, value any) bool {
	unit := e.unit(s, f, u)
	if unit == nil {
		return false
	}
	switch field {
	case FieldID:
		v, ok := value.(string)
		if !ok {
			return false
		}
		unit.ID = v
	case FieldPropertyType:
		v, ok := asString(value)
		if !ok {
			return false
		}
		unit.PropertyType = domain.PropertyType(v)
	case FieldRooms:
		v, ok := asString(value)
		if !ok {
			return false
		}
		unit.Rooms = domain.Rooms(v)
	case FieldBathrooms:
		v, ok := value.(int)
		if !ok {
			return false
		}
		unit.Bathrooms = v
	case FieldLevels:
		v, ok := value.(int)
		if !ok {
			return false
		}
		unit.Levels = v
	case FieldArea:
		v, ok := optionalFloat(value)
		if !ok {
			return false
		}
		unit.Area = v
	case FieldView:
		v, ok := asString(value)
		if !ok {
			return false
		}
		unit.View = domain.View(v)
	case FieldSide:
		v, ok := asString(value)
		if !ok {
			return false
		}
		unit.Side = domain.Side(v)
	case FieldPriceUSD:
		v, ok := optionalFloat(value)
		if !ok {
			return false
		}
		idr := LocalPrice(v, e.board.ExchangeRate)
		if idr != nil && !finite(*idr) {
			return false
		}
		unit.PriceUSD = v
		unit.PriceIDR = idr
	case FieldShowPrice, FieldShowPriceIDR, FieldRooftop, FieldTerrace:
		v, ok := value.(bool)
		if !ok {
			return false
		}
		switch field {
		case FieldShowPrice:
			unit.ShowPrice = v
		case FieldShowPriceIDR:
			unit.ShowPriceIDR = v
		case FieldRooftop:
			unit.Rooftop = v
		case FieldTerrace:
			unit.Terrace = v
		}
	case FieldStatus:
		v, ok := asString(value)
		if !ok {
			return false
		}
		unit.Status = domain.UnitStatus(v)
	default:
		return false
	}
	return true
}

// LocalPrice returns usd * rate, or nil when usd is nil.
func LocalPrice(usd *float64, rate float64) *float64 {
	if usd == nil {
		return nil
	}
	v := *usd * rate
	return &v
}

// optionalFloat accepts nil or a finite number.
func optionalFloat(value any) (*float64, bool) {
	var f float64
	switch v := value.(type) {
	case nil:
		return nil, true
	case float64:
		f = v
	case int:
		f = float64(v)
	case *float64:
		if v == nil {
			return nil, true
		}
		f = *v
	default:
		return nil, false
	}
	if !finite(f) {
		return nil, false
	}
	return &f, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// asString accepts plain strings and the domain's string-backed enums.
func asString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case domain.PropertyType:
		return string(v), true
	case domain.Rooms:
		return string(v), true
	case domain.View:
		return string(v), true
	case domain.Side:
		return string(v), true
	case domain.UnitStatus:
		return string(v), true
	default:
		return "", false
	}
}
