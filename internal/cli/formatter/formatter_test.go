package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/alexanderramin/chessboard/internal/service"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripANSI(s string) string {
	return xansi.Strip(s)
}

func ptr(v float64) *float64 { return &v }

func TestFormatPrices(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"usd", FormatUSD(ptr(120000)), "$120,000"},
		{"usd rounds fraction", FormatUSD(ptr(999.6)), "$1,000"},
		{"usd nil", FormatUSD(nil), Dash},
		{"usd zero", FormatUSD(ptr(0)), Dash},
		{"idr", FormatIDR(ptr(1920000000)), "Rp 1.920.000.000"},
		{"idr nil", FormatIDR(nil), Dash},
		{"idr zero", FormatIDR(ptr(0)), Dash},
		{"rate", FormatRate(16000), "1 USD = Rp 16.000"},
		{"area", FormatArea(ptr(54.5)), "54.5 m²"},
		{"area nil", FormatArea(nil), Dash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestFloorLabel(t *testing.T) {
	seven := 7
	assert.Equal(t, "7", FloorLabel(domain.Floor{Label: &seven, Type: domain.FloorTypeFloor}))
	assert.Equal(t, Dash, FloorLabel(domain.Floor{Type: domain.FloorTypeFloor}))
	assert.Equal(t, "row", FloorLabel(domain.Floor{Label: &seven, Type: domain.FloorTypeRow}))
}

func testBoard() *domain.Chessboard {
	e := editor.New(16000)
	e.SetComplex("c1", "Ocean Park")
	_, _ = e.AddUnit(0, 0)
	e.SetUnitField(0, 0, 0, editor.FieldID, "A-101")
	e.SetUnitField(0, 0, 0, editor.FieldPriceUSD, 120000.0)
	e.SetUnitField(0, 0, 0, editor.FieldShowPriceIDR, false)
	e.SetUnitField(0, 0, 1, editor.FieldID, "A-102")
	e.SetUnitField(0, 0, 1, editor.FieldPriceUSD, 95000.0)
	e.SetUnitField(0, 0, 1, editor.FieldStatus, domain.UnitSold)
	e.SetUnitField(0, 0, 1, editor.FieldRooftop, true)
	e.SetUnitField(0, 0, 1, editor.FieldShowPrice, false)
	e.SetUnitField(0, 0, 1, editor.FieldShowPriceIDR, false)
	b := e.Board()
	b.ID = "0d3c6a2e-1111-2222-3333-444455556666"
	b.PublicURL = "Ab3dE5gH9k"
	b.UpdatedAt = time.Now().UTC()
	return b
}

func TestFormatChessboard_AdminShowsEveryPrice(t *testing.T) {
	out := stripANSI(FormatChessboard(testBoard(), "https://example.com/chessboard/Ab3dE5gH9k", GridOptions{}))

	assert.Contains(t, out, "Ocean Park")
	assert.Contains(t, out, "0d3c6a2e")
	assert.Contains(t, out, "1 USD = Rp 16.000")
	assert.Contains(t, out, "SECTION A")
	assert.Contains(t, out, "A-101")
	assert.Contains(t, out, "$120,000")
	assert.Contains(t, out, "Rp 1.920.000.000")
	assert.Contains(t, out, "$95,000")
	assert.Contains(t, out, "1 free")
	assert.Contains(t, out, "1 sold")
	assert.Contains(t, out, "rooftop")
	assert.Contains(t, out, "https://example.com/chessboard/Ab3dE5gH9k")
}

func TestFormatChessboard_PublicHidesUnpublishedPrices(t *testing.T) {
	out := stripANSI(FormatChessboard(testBoard(), "", GridOptions{Public: true}))

	assert.Contains(t, out, "$120,000", "unit with showPrice keeps its USD price")
	assert.NotContains(t, out, "$95,000")
	assert.NotContains(t, out, "Rp 1.920.000.000", "IDR price is hidden unless showPriceIDR")
	assert.Contains(t, out, "price on request")
	assert.NotContains(t, out, "0d3c6a2e", "public view omits internal ids")
}

func TestFormatGrid_KeepsStoredOrder(t *testing.T) {
	b := testBoard()
	b.Sections = append(b.Sections, domain.Section{Name: "B", Floors: b.Sections[0].Floors})
	out := stripANSI(FormatGrid(b, GridOptions{}))

	a := strings.Index(out, "SECTION A")
	bIdx := strings.Index(out, "SECTION B")
	require.True(t, a >= 0 && bIdx >= 0)
	assert.Less(t, a, bIdx)
	assert.Less(t, strings.Index(out, "A-101"), strings.Index(out, "A-102"))
}

func TestFormatGrid_CursorMarksFloor(t *testing.T) {
	out := stripANSI(FormatGrid(testBoard(), GridOptions{Cursor: editor.FloorKey(0, 0)}))
	assert.Contains(t, out, "▸ 1")
}

func TestUnitCell_MissingID(t *testing.T) {
	out := stripANSI(UnitCell(domain.Unit{Status: domain.UnitFree, PropertyType: domain.PropertyVilla, Rooms: "3", Bathrooms: 2}, false, false))
	assert.Contains(t, out, "no id")
	assert.Contains(t, out, "villa 3br/2ba")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"ID", "NAME"}, [][]string{{"1", "Ocean Park"}, {"22", "Sky"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "──  ──────────", lines[1])
	assert.Equal(t, "1   Ocean Park", lines[2])
	assert.Equal(t, "22  Sky", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatComplexList(t *testing.T) {
	out := stripANSI(FormatComplexList([]service.ComplexOption{
		{ID: "c1", Name: "Ocean Park", DeveloperName: "Bali Dev", HasChessboard: true},
		{ID: "c2", Name: "Sky Villas"},
	}))
	assert.Contains(t, out, "Ocean Park")
	assert.Contains(t, out, "Bali Dev")
	assert.Contains(t, out, "✔ linked")
	assert.Contains(t, out, "Sky Villas")
}

func TestFormatHistory(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	out := stripANSI(FormatHistory([]*domain.HistoryRecord{
		{Action: domain.ActionCreate, ActorID: "u1", ActorLabel: "Ana", Timestamp: ts},
		{Action: domain.ActionUpdate, ActorID: "u2", Timestamp: ts.Add(time.Hour)},
	}))
	assert.Contains(t, out, "2026-03-01 10:30:00")
	assert.Contains(t, out, "+ create")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "~ update")
	assert.Contains(t, out, "u2")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Feb 1, 2026 12:00", HumanTimestampFrom(now.AddDate(0, 0, -6), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Ocean Park", Truncate("Ocean Park", 32))
	assert.Equal(t, "Ocean…", Truncate("Ocean Park Residences", 6))

	styled := Truncate(StyleFree.Render("Ocean Park Residences"), 6)
	assert.Equal(t, "Ocean…", stripANSI(styled))
}

func TestUseColor_PlainText(t *testing.T) {
	UseColor(false)
	t.Cleanup(func() { UseColor(true) })

	out := StatusPill(domain.UnitBooked)
	assert.Equal(t, "◐ booked", out)
	assert.NotContains(t, out, "\x1b[")
}
