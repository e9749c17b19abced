package editor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetExchangeRate_CascadesToEveryPricedUnit(t *testing.T) {
	e := gridEditor(t, 3, 2, 2)

	priced := 0
	for s := 0; s < 3; s++ {
		for f := 0; f < 2; f++ {
			for u := 0; u < 2; u++ {
				if (s*4+f*2+u)%3 == 2 {
					continue // 4 of the 12 units stay unpriced
				}
				require.True(t, e.SetUnitField(s, f, u, FieldPriceUSD, float64(100000+priced*5000)))
				priced++
			}
		}
	}
	require.Equal(t, 8, priced)

	require.True(t, e.SetExchangeRate(16500))

	b := e.Board()
	var withPrice, without int
	for _, sec := range b.Sections {
		for _, fl := range sec.Floors {
			for _, u := range fl.Units {
				if u.PriceUSD == nil {
					assert.Nil(t, u.PriceIDR, "unit %s", u.ID)
					without++
					continue
				}
				require.NotNil(t, u.PriceIDR, "unit %s", u.ID)
				assert.InDelta(t, *u.PriceUSD*16500, *u.PriceIDR, 1e-6)
				withPrice++
			}
		}
	}
	assert.Equal(t, 8, withPrice)
	assert.Equal(t, 4, without)
	assert.Equal(t, 16500.0, b.ExchangeRate)
}

func TestSetUnitField_PriceUSDRecomputesOnlyThatUnit(t *testing.T) {
	e := gridEditor(t, 1, 1, 2)
	require.True(t, e.SetUnitField(0, 0, 1, FieldPriceUSD, 1000.0))
	require.True(t, e.SetUnitField(0, 0, 0, FieldPriceUSD, 250000.0))

	units := e.Board().Sections[0].Floors[0].Units
	assert.InDelta(t, 250000.0*16000, *units[0].PriceIDR, 1e-6)
	assert.InDelta(t, 1000.0*16000, *units[1].PriceIDR, 1e-6)

	require.True(t, e.SetUnitField(0, 0, 0, FieldPriceUSD, nil))
	units = e.Board().Sections[0].Floors[0].Units
	assert.Nil(t, units[0].PriceUSD)
	assert.Nil(t, units[0].PriceIDR)
}

func TestSetExchangeRate_RejectsInvalid(t *testing.T) {
	e := New(16000)
	require.True(t, e.SetUnitField(0, 0, 0, FieldPriceUSD, 10.0))

	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.False(t, e.SetExchangeRate(r))
	}
	assert.Equal(t, 16000.0, e.ExchangeRate())
	assert.InDelta(t, 160000.0, *e.Board().Sections[0].Floors[0].Units[0].PriceIDR, 1e-9)
}

func TestSetUnitField_TypeMismatchRejected(t *testing.T) {
	e := New(16000)
	before := e.Board()

	assert.False(t, e.SetUnitField(0, 0, 0, FieldBathrooms, "two"))
	assert.False(t, e.SetUnitField(0, 0, 0, FieldPriceUSD, "100"))
	assert.False(t, e.SetUnitField(0, 0, 0, FieldShowPrice, 1))
	assert.False(t, e.SetUnitField(0, 0, 0, Field("priceIDR"), 5.0))
	assert.False(t, e.SetUnitField(0, 0, 4, FieldArea, 5.0))
	assert.Equal(t, before, e.Board())
}

func TestSetUnitField_AllFields(t *testing.T) {
	e := New(16000)
	area := 88.0
	require.True(t, e.SetUnitField(0, 0, 0, FieldID, "V-01"))
	require.True(t, e.SetUnitField(0, 0, 0, FieldPropertyType, "villa"))
	require.True(t, e.SetUnitField(0, 0, 0, FieldRooms, "studio"))
	require.True(t, e.SetUnitField(0, 0, 0, FieldBathrooms, 2))
	require.True(t, e.SetUnitField(0, 0, 0, FieldLevels, 3))
	require.True(t, e.SetUnitField(0, 0, 0, FieldArea, &area))
	require.True(t, e.SetUnitField(0, 0, 0, FieldView, "jungle"))
	require.True(t, e.SetUnitField(0, 0, 0, FieldSide, "east"))
	require.True(t, e.SetUnitField(0, 0, 0, FieldShowPrice, false))
	require.True(t, e.SetUnitField(0, 0, 0, FieldShowPriceIDR, false))
	require.True(t, e.SetUnitField(0, 0, 0, FieldStatus, "sold"))
	require.True(t, e.SetUnitField(0, 0, 0, FieldRooftop, true))
	require.True(t, e.SetUnitField(0, 0, 0, FieldTerrace, true))
	area = 1

	u := e.Board().Sections[0].Floors[0].Units[0]
	assert.Equal(t, "V-01", u.ID)
	assert.EqualValues(t, "villa", u.PropertyType)
	assert.EqualValues(t, "studio", u.Rooms)
	assert.Equal(t, 2, u.Bathrooms)
	assert.Equal(t, 3, u.Levels)
	assert.Equal(t, 88.0, *u.Area)
	assert.EqualValues(t, "jungle", u.View)
	assert.EqualValues(t, "east", u.Side)
	assert.False(t, u.ShowPrice)
	assert.False(t, u.ShowPriceIDR)
	assert.EqualValues(t, "sold", u.Status)
	assert.True(t, u.Rooftop)
	assert.True(t, u.Terrace)
}
