package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateUnitFields checks the enum-constrained fields of a unit and returns
// one message per offending field. Presence of the id is checked elsewhere.
func ValidateUnitFields(u Unit) []string {
	err := validate.StructExcept(u, "ID")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v", jsonFieldName(fe.Field()), fe.Value()))
	}
	return msgs
}

func jsonFieldName(field string) string {
	switch field {
	case "PropertyType":
		return "propertyType"
	case "Rooms":
		return "rooms"
	case "Bathrooms":
		return "bathrooms"
	case "Levels":
		return "floors"
	case "View":
		return "view"
	case "Side":
		return "side"
	case "Status":
		return "status"
	default:
		return field
	}
}
