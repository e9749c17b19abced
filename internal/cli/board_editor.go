package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/chessboard/internal/cli/formatter"
	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/alexanderramin/chessboard/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type editorMode int

const (
	modeBrowse editorMode = iota
	modeForm
)

// chromeHeight is the number of lines around the grid viewport.
const chromeHeight = 6

// maxShownProblems caps the validation findings listed under the grid.
const maxShownProblems = 5

// savedMsg carries the result of a save started by ctrl+s.
type savedMsg struct {
	board *domain.Chessboard
	err   error
}

// boardEditorModel is the keyboard editor for one chessboard. All mutations
// go through the editor; board is the snapshot rendered and navigated.
type boardEditorModel struct {
	ed      *editor.Editor
	board   *domain.Chessboard
	session *service.Session
	fail    func(op string, err error) error
	link    func(token string) string

	keys editorKeyMap
	help help.Model
	vp   viewport.Model

	cursor   editor.Key
	mode     editorMode
	form     *huh.Form
	formDone func(m *boardEditorModel)

	saving      bool
	dirty       bool
	confirmQuit bool
	status      string
	problems    []editor.Problem
}

func newBoardEditorModel(app *App, ed *editor.Editor) boardEditorModel {
	vp := viewport.New(100, 20)
	vp.KeyMap = gridViewportKeyMap()

	m := boardEditorModel{
		ed:      ed,
		session: service.NewSession(app.Chessboards, app.Actor),
		fail:    app.failed,
		link:    app.Chessboards.PublicLink,
		keys:    defaultEditorKeyMap(),
		help:    help.New(),
		vp:      vp,
		cursor:  editor.SectionKey(0),
	}
	m.sync()
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m boardEditorModel) Init() tea.Cmd {
	return nil
}

func (m boardEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(3, msg.Height-chromeHeight)
		return m, nil
	case savedMsg:
		m.onSaved(msg)
		return m, nil
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.updateKeys(keyMsg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m boardEditorModel) View() string {
	if m.mode == modeForm && m.form != nil {
		return m.header() + "\n\n" + m.form.View()
	}

	var b strings.Builder
	b.WriteString(m.header() + "\n")
	b.WriteString(m.vp.View() + "\n")
	for i, p := range m.problems {
		if i == maxShownProblems {
			b.WriteString(formatter.Dim(fmt.Sprintf("  … and %d more", len(m.problems)-maxShownProblems)) + "\n")
			break
		}
		b.WriteString(formatter.StyleError.Render("  ✖ "+p.Error()) + "\n")
	}
	if m.status != "" {
		b.WriteString(formatter.StyleWarn.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// ── browse mode ──────────────────────────────────────────────────────────────

func (m boardEditorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Quit) {
		m.confirmQuit = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && !m.confirmQuit {
			m.confirmQuit = true
			m.status = "Unsaved changes. Press q again to discard them."
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.MoveUp):
		m.reorder(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.reorder(1)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Descend):
		m.descend()
	case key.Matches(msg, m.keys.Ascend):
		m.ascend()
	case key.Matches(msg, m.keys.Add):
		m.add()
	case key.Matches(msg, m.keys.Copy):
		m.copyUnit()
	case key.Matches(msg, m.keys.Remove):
		m.remove()
	case key.Matches(msg, m.keys.Edit):
		return m.edit()
	case key.Matches(msg, m.keys.Rate):
		return m.editRate()
	default:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	m.render()
	return m, nil
}

// locked reports, and tells the user, that the tree is frozen while a save
// is outstanding.
func (m *boardEditorModel) locked() bool {
	if m.saving {
		m.status = "Saving… changes are paused until it finishes."
		return true
	}
	return false
}

func (m *boardEditorModel) step(delta int) {
	i := m.cursor.Index() + delta
	if i < 0 || i >= m.siblingCount(m.cursor) {
		return
	}
	m.cursor = withIndex(m.cursor, i)
}

func (m *boardEditorModel) descend() {
	p := m.cursor.Path
	switch m.cursor.Kind {
	case editor.KindSection:
		if len(m.board.Sections[p[0]].Floors) > 0 {
			m.cursor = editor.FloorKey(p[0], 0)
		}
	case editor.KindFloor:
		if len(m.board.Sections[p[0]].Floors[p[1]].Units) > 0 {
			m.cursor = editor.UnitKey(p[0], p[1], 0)
		}
	}
}

func (m *boardEditorModel) ascend() {
	p := m.cursor.Path
	switch m.cursor.Kind {
	case editor.KindFloor:
		m.cursor = editor.SectionKey(p[0])
	case editor.KindUnit:
		m.cursor = editor.FloorKey(p[0], p[1])
	}
}

func (m *boardEditorModel) reorder(delta int) {
	if m.locked() {
		return
	}
	j := m.cursor.Index() + delta
	if j < 0 || j >= m.siblingCount(m.cursor) {
		return
	}
	to := withIndex(m.cursor, j)
	if m.ed.Reorder(m.cursor, to) {
		m.cursor = to
		m.changed()
	}
}

func (m *boardEditorModel) add() {
	if m.locked() {
		return
	}
	p := m.cursor.Path
	switch m.cursor.Kind {
	case editor.KindSection:
		m.cursor = editor.SectionKey(m.ed.AddSection())
	case editor.KindFloor:
		if f, ok := m.ed.AddFloor(p[0]); ok {
			m.cursor = editor.FloorKey(p[0], f)
		}
	case editor.KindUnit:
		if u, ok := m.ed.AddUnit(p[0], p[1]); ok {
			m.cursor = editor.UnitKey(p[0], p[1], u)
		}
	}
	m.changed()
}

func (m *boardEditorModel) copyUnit() {
	if m.cursor.Kind != editor.KindUnit {
		m.status = "Only units can be copied."
		return
	}
	if m.locked() {
		return
	}
	p := m.cursor.Path
	if u, ok := m.ed.CopyUnit(p[0], p[1], p[2]); ok {
		m.cursor = editor.UnitKey(p[0], p[1], u)
		m.changed()
	}
}

func (m *boardEditorModel) remove() {
	if m.locked() {
		return
	}
	p := m.cursor.Path
	var ok bool
	switch m.cursor.Kind {
	case editor.KindSection:
		ok = m.ed.RemoveSection(p[0])
	case editor.KindFloor:
		ok = m.ed.RemoveFloor(p[0], p[1])
	case editor.KindUnit:
		ok = m.ed.RemoveUnit(p[0], p[1], p[2])
	}
	if !ok {
		m.status = fmt.Sprintf("The last %s here cannot be removed.", m.cursor.Kind)
		return
	}
	m.changed()
}

// ── forms ────────────────────────────────────────────────────────────────────

func (m boardEditorModel) edit() (tea.Model, tea.Cmd) {
	if m.locked() {
		return m, nil
	}
	p := m.cursor.Path
	switch m.cursor.Kind {
	case editor.KindSection:
		name := new(string)
		*name = m.board.Sections[p[0]].Name
		return m.openForm(sectionForm(name), func(m *boardEditorModel) {
			if m.ed.SetSectionName(p[0], *name) {
				m.changed()
			}
		})
	case editor.KindFloor:
		fields := newFloorFields(m.board.Sections[p[0]].Floors[p[1]])
		return m.openForm(fields.form(), func(m *boardEditorModel) {
			fields.apply(m.ed, p[0], p[1])
			m.changed()
		})
	case editor.KindUnit:
		fields := newUnitFields(m.board.Sections[p[0]].Floors[p[1]].Units[p[2]])
		return m.openForm(fields.form(), func(m *boardEditorModel) {
			fields.apply(m.ed, p[0], p[1], p[2])
			m.changed()
		})
	}
	return m, nil
}

func (m boardEditorModel) editRate() (tea.Model, tea.Cmd) {
	if m.locked() {
		return m, nil
	}
	rate := new(string)
	*rate = strconv.FormatFloat(m.board.ExchangeRate, 'f', -1, 64)
	return m.openForm(rateForm(rate), func(m *boardEditorModel) {
		v, err := strconv.ParseFloat(strings.TrimSpace(*rate), 64)
		if err == nil && m.ed.SetExchangeRate(v) {
			m.changed()
		}
	})
}

func (m boardEditorModel) openForm(form *huh.Form, done func(m *boardEditorModel)) (tea.Model, tea.Cmd) {
	m.mode = modeForm
	m.form = form
	m.formDone = done
	return m, m.form.Init()
}

func (m boardEditorModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		m.status = "Cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		done := m.formDone
		m.closeForm()
		if done != nil {
			done(&m)
		}
		m.render()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		m.status = "Cancelled."
		return m, nil
	}
	return m, cmd
}

func (m *boardEditorModel) closeForm() {
	m.mode = modeBrowse
	m.form = nil
	m.formDone = nil
}

// ── saving ───────────────────────────────────────────────────────────────────

func (m boardEditorModel) save() (tea.Model, tea.Cmd) {
	if m.saving || m.session.Saving() {
		m.status = service.UserMessage(service.ErrSaveInFlight)
		return m, nil
	}
	m.saving = true
	m.status = "Saving…"
	snapshot := m.ed.Board()
	session := m.session
	return m, func() tea.Msg {
		saved, err := session.Save(context.Background(), snapshot)
		return savedMsg{board: saved, err: err}
	}
}

// onSaved adopts the stored document on success. On failure the working tree
// is kept as it was so the user can fix it and retry.
func (m *boardEditorModel) onSaved(msg savedMsg) {
	m.saving = false
	if msg.err != nil {
		var verr *service.ValidationError
		if errors.As(msg.err, &verr) {
			m.problems = verr.Problems
		}
		m.status = m.fail("board.save", msg.err).Error()
		m.render()
		return
	}
	m.ed = editor.Hydrate(msg.board)
	m.dirty = false
	m.problems = nil
	m.status = "Saved. Public link: " + m.link(msg.board.PublicURL)
	m.sync()
}

// ── helpers ──────────────────────────────────────────────────────────────────

// changed marks the tree dirty and refreshes the snapshot.
func (m *boardEditorModel) changed() {
	m.dirty = true
	m.problems = nil
	m.sync()
}

// sync reloads the snapshot from the editor and keeps the cursor inside it.
func (m *boardEditorModel) sync() {
	m.board = m.ed.Board()
	m.cursor = clampKey(m.board, m.cursor)
	m.render()
}

func (m *boardEditorModel) render() {
	m.vp.SetContent(formatter.FormatGrid(m.board, formatter.GridOptions{Cursor: m.cursor}))
}

func (m boardEditorModel) header() string {
	name := m.board.Name
	if name == "" {
		name = "New chessboard"
	}
	parts := []string{formatter.Bold(name), formatter.Dim(formatter.FormatRate(m.board.ExchangeRate)), formatter.Dim(describeKey(m.board, m.cursor))}
	if m.dirty {
		parts = append(parts, formatter.StyleWarn.Render("● unsaved"))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}

func (m *boardEditorModel) siblingCount(k editor.Key) int {
	p := k.Path
	switch k.Kind {
	case editor.KindSection:
		return len(m.board.Sections)
	case editor.KindFloor:
		return len(m.board.Sections[p[0]].Floors)
	case editor.KindUnit:
		return len(m.board.Sections[p[0]].Floors[p[1]].Units)
	}
	return 0
}

// clampKey moves k to the nearest existing entity, climbing a level when the
// addressed parent has no children.
func clampKey(b *domain.Chessboard, k editor.Key) editor.Key {
	if len(b.Sections) == 0 {
		return editor.SectionKey(0)
	}
	s := clampIndex(k.Path[0], len(b.Sections))
	if k.Kind == editor.KindSection {
		return editor.SectionKey(s)
	}
	floors := b.Sections[s].Floors
	if len(floors) == 0 {
		return editor.SectionKey(s)
	}
	f := clampIndex(k.Path[1], len(floors))
	if k.Kind == editor.KindFloor {
		return editor.FloorKey(s, f)
	}
	units := floors[f].Units
	if len(units) == 0 {
		return editor.FloorKey(s, f)
	}
	return editor.UnitKey(s, f, clampIndex(k.Path[2], len(units)))
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}

func withIndex(k editor.Key, i int) editor.Key {
	path := append([]int(nil), k.Path...)
	path[len(path)-1] = i
	return editor.Key{Kind: k.Kind, Path: path}
}

// describeKey names the cursor position, e.g. "section A › floor 3 › unit A-101".
func describeKey(b *domain.Chessboard, k editor.Key) string {
	if len(b.Sections) == 0 {
		return "empty"
	}
	p := k.Path
	sec := b.Sections[p[0]]
	out := "section " + sec.Name
	if k.Kind == editor.KindSection {
		return out
	}
	fl := sec.Floors[p[1]]
	out += " › floor " + formatter.FloorLabel(fl)
	if k.Kind == editor.KindFloor {
		return out
	}
	return out + " › unit " + fl.Units[p[2]].ID
}
