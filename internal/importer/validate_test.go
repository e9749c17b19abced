package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }
func ptrBool(b bool) *bool        { return &b }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		ComplexID: "cx-1",
		Sections: []SectionImport{
			{Name: "A", Floors: []FloorImport{
				{Floor: ptrInt(1), Units: []UnitImport{{ID: "A101"}}},
			}},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_MissingStructure(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "complex_id is required")
	assert.EqualError(t, errs[1], "at least one section is required")
}

func TestValidateImportSchema_EmptyLevels(t *testing.T) {
	schema := validMinimalSchema()
	schema.Sections = append(schema.Sections,
		SectionImport{Name: "B"},
		SectionImport{Name: "C", Floors: []FloorImport{{Floor: ptrInt(1)}}},
	)

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "sections[1]: at least one floor")
	assert.Contains(t, errs[1].Error(), "sections[2].floors[0]: at least one unit")
}

func TestValidateImportSchema_RateAndFloorType(t *testing.T) {
	schema := validMinimalSchema()
	schema.ExchangeRate = ptrFloat(0)
	schema.Sections[0].Floors[0].Type = "basement"

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "exchange_rate must be a positive number")
	assert.Contains(t, errs[1].Error(), `type: invalid value "basement"`)
}

func TestValidateImportSchema_DuplicateUnitIDAllowed(t *testing.T) {
	schema := validMinimalSchema()
	schema.Sections[0].Floors = append(schema.Sections[0].Floors,
		FloorImport{Floor: ptrInt(2), Units: []UnitImport{{ID: "A101"}, {ID: "A101"}}},
	)

	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_FloorType(t *testing.T) {
	for _, typ := range []string{"", "floor", "row"} {
		schema := validMinimalSchema()
		schema.Sections[0].Floors[0].Type = typ
		assert.Empty(t, ValidateImportSchema(schema), "type %q", typ)
	}

	schema := validMinimalSchema()
	schema.Sections[0].Floors[0].Type = "basement"
	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `sections[0].floors[0].type: invalid value "basement"`)
}
