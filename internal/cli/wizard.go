package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/chessboard/internal/cli/formatter"
	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// chessboardHuhTheme returns a huh theme using the Gruvbox palette.
func chessboardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorAccent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFree)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorSold)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardSelectComplex creates a huh form listing the complexes the actor may
// attach a new chessboard to. Complexes that already have one are left out.
// It returns nil when there is nothing to pick.
func wizardSelectComplex(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	complexes, err := app.Chessboards.ListSelectableComplexes(ctx, app.Actor)
	if err != nil {
		return nil, err
	}

	options := make([]huh.Option[string], 0, len(complexes))
	for _, c := range complexes {
		if c.HasChessboard {
			continue
		}
		label := c.Name
		if c.DeveloperName != "" {
			label = fmt.Sprintf("%s (%s)", c.Name, c.DeveloperName)
		}
		options = append(options, huh.NewOption(label, c.ID))
	}
	if len(options) == 0 {
		return nil, nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which complex?").
				Options(options...).
				Value(result),
		),
	).WithTheme(chessboardHuhTheme()).WithShowHelp(false), nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(chessboardHuhTheme()).WithShowHelp(false)
}

// ── editor forms ─────────────────────────────────────────────────────────────

// sectionForm edits a section name.
func sectionForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Section name").
				Description("Letters, digits and spaces; stored in upper case").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	).WithTheme(chessboardHuhTheme()).WithShowHelp(false)
}

// floorFields holds the string form of a floor while it is being edited.
type floorFields struct {
	Number string
	Type   domain.FloorType
}

func newFloorFields(fl domain.Floor) *floorFields {
	f := &floorFields{Type: fl.Type}
	if fl.Label != nil {
		f.Number = strconv.Itoa(*fl.Label)
	}
	return f
}

func (f *floorFields) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Floor number").
				Description("Leave empty for an unnumbered floor").
				Value(&f.Number).
				Validate(validateOptionalInt),
			huh.NewSelect[domain.FloorType]().
				Title("Type").
				Options(enumOptions(domain.FloorTypes)...).
				Value(&f.Type),
		),
	).WithTheme(chessboardHuhTheme()).WithShowHelp(false)
}

// apply writes the edited floor back through the editor.
func (f *floorFields) apply(ed *editor.Editor, s, fl int) {
	var label *int
	if n, err := strconv.Atoi(strings.TrimSpace(f.Number)); err == nil {
		label = &n
	}
	ed.SetFloorLabel(s, fl, label)
	ed.SetFloorType(s, fl, f.Type)
}

// unitFields holds the editable form of a unit. Numbers are kept as text
// so an empty input can mean "not set".
type unitFields struct {
	ID           string
	PropertyType domain.PropertyType
	Rooms        domain.Rooms
	Bathrooms    int
	Levels       int
	Area         string
	View         domain.View
	Side         domain.Side
	PriceUSD     string
	ShowPrice    bool
	ShowPriceIDR bool
	Status       domain.UnitStatus
	Rooftop      bool
	Terrace      bool
}

func newUnitFields(u domain.Unit) *unitFields {
	return &unitFields{
		ID:           u.ID,
		PropertyType: u.PropertyType,
		Rooms:        u.Rooms,
		Bathrooms:    u.Bathrooms,
		Levels:       u.Levels,
		Area:         floatText(u.Area),
		View:         u.View,
		Side:         u.Side,
		PriceUSD:     floatText(u.PriceUSD),
		ShowPrice:    u.ShowPrice,
		ShowPriceIDR: u.ShowPriceIDR,
		Status:       u.Status,
		Rooftop:      u.Rooftop,
		Terrace:      u.Terrace,
	}
}

func (f *unitFields) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Unit ID").Value(&f.ID).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("id is required")
					}
					return nil
				}),
			huh.NewSelect[domain.PropertyType]().Title("Property type").
				Options(enumOptions(domain.PropertyTypes)...).Value(&f.PropertyType),
			huh.NewSelect[domain.Rooms]().Title("Rooms").
				Options(enumOptions(domain.RoomChoices)...).Value(&f.Rooms),
			huh.NewSelect[int]().Title("Bathrooms").
				Options(intOptions(1, 6)...).Value(&f.Bathrooms),
			huh.NewSelect[int]().Title("Levels").
				Options(intOptions(1, 3)...).Value(&f.Levels),
			huh.NewInput().Title("Area, m²").Value(&f.Area).Validate(validateOptionalPositive),
		),
		huh.NewGroup(
			huh.NewInput().Title("Price, USD").Value(&f.PriceUSD).Validate(validateOptionalNonNegative),
			huh.NewConfirm().Title("Show USD price publicly?").Value(&f.ShowPrice),
			huh.NewConfirm().Title("Show IDR price publicly?").Value(&f.ShowPriceIDR),
			huh.NewSelect[domain.UnitStatus]().Title("Status").
				Options(enumOptions(domain.UnitStatuses)...).Value(&f.Status),
		),
		huh.NewGroup(
			huh.NewSelect[domain.View]().Title("View").
				Options(enumOptions(domain.Views)...).Value(&f.View),
			huh.NewSelect[domain.Side]().Title("Side").
				Options(enumOptions(domain.Sides)...).Value(&f.Side),
			huh.NewConfirm().Title("Rooftop?").Value(&f.Rooftop),
			huh.NewConfirm().Title("Terrace?").Value(&f.Terrace),
		),
	).WithTheme(chessboardHuhTheme()).WithShowHelp(false)
}

// apply writes every field back through the editor so the IDR price follows
// the USD price.
func (f *unitFields) apply(ed *editor.Editor, s, fl, u int) {
	ed.SetUnitField(s, fl, u, editor.FieldID, strings.TrimSpace(f.ID))
	ed.SetUnitField(s, fl, u, editor.FieldPropertyType, f.PropertyType)
	ed.SetUnitField(s, fl, u, editor.FieldRooms, f.Rooms)
	ed.SetUnitField(s, fl, u, editor.FieldBathrooms, f.Bathrooms)
	ed.SetUnitField(s, fl, u, editor.FieldLevels, f.Levels)
	ed.SetUnitField(s, fl, u, editor.FieldArea, parseOptionalFloat(f.Area))
	ed.SetUnitField(s, fl, u, editor.FieldPriceUSD, parseOptionalFloat(f.PriceUSD))
	ed.SetUnitField(s, fl, u, editor.FieldShowPrice, f.ShowPrice)
	ed.SetUnitField(s, fl, u, editor.FieldShowPriceIDR, f.ShowPriceIDR)
	ed.SetUnitField(s, fl, u, editor.FieldStatus, f.Status)
	ed.SetUnitField(s, fl, u, editor.FieldView, f.View)
	ed.SetUnitField(s, fl, u, editor.FieldSide, f.Side)
	ed.SetUnitField(s, fl, u, editor.FieldRooftop, f.Rooftop)
	ed.SetUnitField(s, fl, u, editor.FieldTerrace, f.Terrace)
}

// rateForm edits the exchange rate.
func rateForm(rate *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exchange rate").
				Description("IDR for 1 USD; every IDR price is recomputed").
				Value(rate).
				Validate(validateRate),
		),
	).WithTheme(chessboardHuhTheme()).WithShowHelp(false)
}

// enumOptions turns a choice list into select options titled "Apart-villa",
// "Studio", "3" and so on. The empty value reads "None".
func enumOptions[T ~string](values []T) []huh.Option[T] {
	opts := make([]huh.Option[T], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(optionTitle(string(v)), v))
	}
	return opts
}

func optionTitle(v string) string {
	if v == "" {
		return "None"
	}
	return strings.ToUpper(v[:1]) + v[1:]
}

func intOptions(from, to int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, to-from+1)
	for i := from; i <= to; i++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
	}
	return opts
}

// parseOptionalFloat returns nil for empty or unparsable text.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func floatText(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func validateOptionalInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validateOptionalPositive(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateOptionalNonNegative(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("enter zero or a positive number")
	}
	return nil
}

func validateRate(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a positive rate")
	}
	return nil
}
