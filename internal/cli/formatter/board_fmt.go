package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/charmbracelet/lipgloss"
)

// GridOptions controls how a chessboard grid is drawn.
type GridOptions struct {
	// Public hides prices the unit does not publish.
	Public bool
	// Cursor highlights one section, floor or unit. The zero Key highlights
	// nothing.
	Cursor editor.Key
}

// StatusCounts tallies units by status.
func StatusCounts(b *domain.Chessboard) map[domain.UnitStatus]int {
	counts := make(map[domain.UnitStatus]int, 3)
	for _, s := range b.Sections {
		for _, f := range s.Floors {
			for _, u := range f.Units {
				counts[u.Status]++
			}
		}
	}
	return counts
}

// FormatChessboard renders the metadata card and the full grid of a
// chessboard. link is the public share URL, empty to omit it.
func FormatChessboard(b *domain.Chessboard, link string, opts GridOptions) string {
	var meta strings.Builder
	meta.WriteString(StyleBold.Render(b.Name) + "\n\n")
	if !opts.Public {
		meta.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), TruncID(b.ID)))
		complexID := ""
		if b.ComplexID != nil {
			complexID = *b.ComplexID
		}
		meta.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COMPLEX"), orDash(complexID)))
	}
	meta.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("RATE   "), StyleFg.Render(FormatRate(b.ExchangeRate))))
	meta.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UNITS  "), unitSummary(b)))
	if link != "" {
		meta.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("LINK   "), StyleLink.Render(link)))
	}
	if !opts.Public && !b.UpdatedAt.IsZero() {
		meta.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UPDATED"), Dim(HumanTimestamp(b.UpdatedAt))))
	}

	return RenderBox("Chessboard", strings.TrimRight(meta.String(), "\n")) + "\n" + FormatGrid(b, opts)
}

func unitSummary(b *domain.Chessboard) string {
	counts := StatusCounts(b)
	return fmt.Sprintf("%d  %s  %s  %s",
		b.UnitCount(),
		StyleFree.Render(strconv.Itoa(counts[domain.UnitFree])+" free"),
		StyleBooked.Render(strconv.Itoa(counts[domain.UnitBooked])+" booked"),
		StyleSold.Render(strconv.Itoa(counts[domain.UnitSold])+" sold"),
	)
}

// FormatGrid renders every section as a block of floor rows, each row a
// line of unit cells in stored order.
func FormatGrid(b *domain.Chessboard, opts GridOptions) string {
	blocks := make([]string, 0, len(b.Sections))
	for si, sec := range b.Sections {
		title := "Section " + sec.Name
		if sec.Name == "" {
			title = fmt.Sprintf("Section #%d", si+1)
		}
		header := Header(title)
		if cursorAt(opts.Cursor, editor.KindSection, si) {
			header = lipgloss.NewStyle().Foreground(ColorAccent).Reverse(true).Render(strings.ToUpper(title)) +
				"\n" + StyleDim.Render(strings.Repeat("─", lipgloss.Width(title)))
		}

		rows := []string{header}
		for fi, fl := range sec.Floors {
			rows = append(rows, floorRow(si, fi, fl, opts))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}
	return strings.Join(blocks, "\n\n")
}

func floorRow(si, fi int, fl domain.Floor, opts GridOptions) string {
	label := FloorLabel(fl)
	labelStyle := lipgloss.NewStyle().Width(7).Foreground(ColorDim)
	if cursorAt(opts.Cursor, editor.KindFloor, si, fi) {
		labelStyle = labelStyle.Foreground(ColorAccent).Bold(true)
		label = "▸ " + label
	}

	cells := []string{labelStyle.Render(label)}
	for ui, u := range fl.Units {
		cells = append(cells, UnitCell(u, opts.Public, cursorAt(opts.Cursor, editor.KindUnit, si, fi, ui)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// FloorLabel returns the floor number, "row" for presentational rows, or a
// dash for unnumbered floors.
func FloorLabel(fl domain.Floor) string {
	switch {
	case fl.Type == domain.FloorTypeRow:
		return "row"
	case fl.Label == nil:
		return Dash
	default:
		return strconv.Itoa(*fl.Label)
	}
}

// UnitCell renders a single unit as a bordered cell tinted by its status.
func UnitCell(u domain.Unit, public, selected bool) string {
	id := Bold(u.ID)
	if u.ID == "" {
		id = StyleError.Render("no id")
	}
	lines := []string{
		id,
		roomsLabel(u) + Dim(" · ") + FormatArea(u.Area),
	}
	lines = append(lines, priceLines(u, public)...)
	if extras := unitExtras(u); extras != "" {
		lines = append(lines, Dim(extras))
	}
	lines = append(lines, StatusPill(u.Status))

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(StatusColor(u.Status)).
		Padding(0, 1)
	if selected {
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(ColorAccent)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func roomsLabel(u domain.Unit) string {
	kind := string(u.PropertyType)
	if u.Rooms == domain.RoomsStudio {
		return kind + " studio"
	}
	return fmt.Sprintf("%s %sbr/%dba", kind, u.Rooms, u.Bathrooms)
}

func priceLines(u domain.Unit, public bool) []string {
	if !public {
		return []string{StyleFg.Render(FormatUSD(u.PriceUSD)), Dim(FormatIDR(u.PriceIDR))}
	}
	var lines []string
	if u.ShowPrice {
		lines = append(lines, StyleFg.Render(FormatUSD(u.PriceUSD)))
	}
	if u.ShowPriceIDR {
		lines = append(lines, Dim(FormatIDR(u.PriceIDR)))
	}
	if len(lines) == 0 {
		lines = append(lines, Dim("price on request"))
	}
	return lines
}

func unitExtras(u domain.Unit) string {
	var parts []string
	if u.Levels > 1 {
		parts = append(parts, fmt.Sprintf("%d levels", u.Levels))
	}
	if u.View != domain.ViewNone {
		parts = append(parts, string(u.View)+" view")
	}
	if u.Side != domain.SideNone {
		parts = append(parts, string(u.Side))
	}
	if u.Rooftop {
		parts = append(parts, "rooftop")
	}
	if u.Terrace {
		parts = append(parts, "terrace")
	}
	return strings.Join(parts, ", ")
}

func cursorAt(k editor.Key, kind editor.Kind, path ...int) bool {
	if k.Kind != kind || len(k.Path) != len(path) {
		return false
	}
	for i := range path {
		if k.Path[i] != path[i] {
			return false
		}
	}
	return true
}
