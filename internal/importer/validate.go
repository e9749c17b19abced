package importer

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexanderramin/chessboard/internal/domain"
)

// ValidateImportSchema checks the structure of an import file before
// conversion. Field values (enums, area, prices, duplicate floor numbers) are
// checked on the converted chessboard by the same validation the editor uses.
// Unit ids may repeat, as they may in the editor.
// Returns a slice of all errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.ComplexID == "" {
		errs = append(errs, fmt.Errorf("complex_id is required"))
	}
	if r := schema.ExchangeRate; r != nil && (*r <= 0 || math.IsNaN(*r) || math.IsInf(*r, 0)) {
		errs = append(errs, fmt.Errorf("exchange_rate must be a positive number, got %v", *r))
	}
	if len(schema.Sections) == 0 {
		errs = append(errs, fmt.Errorf("at least one section is required"))
	}

	for si, s := range schema.Sections {
		prefix := fmt.Sprintf("sections[%d]", si)
		if len(s.Floors) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one floor is required", prefix))
		}
		for fi, f := range s.Floors {
			fprefix := fmt.Sprintf("%s.floors[%d]", prefix, fi)
			if f.Type != "" && !slices.Contains(domain.FloorTypes, domain.FloorType(f.Type)) {
				errs = append(errs, fmt.Errorf("%s.type: invalid value %q", fprefix, f.Type))
			}
			if len(f.Units) == 0 {
				errs = append(errs, fmt.Errorf("%s: at least one unit is required", fprefix))
			}
		}
	}

	return errs
}
