package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/alexanderramin/chessboard/internal/repository"
	"github.com/alexanderramin/chessboard/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys to the model in order and returns it with the last command.
func press(t *testing.T, m boardEditorModel, keys ...tea.KeyMsg) (boardEditorModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		var ok bool
		m, ok = next.(boardEditorModel)
		require.True(t, ok)
	}
	return m, cmd
}

// finishSave runs the save command and feeds its result back.
func finishSave(t *testing.T, m boardEditorModel, cmd tea.Cmd) boardEditorModel {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(savedMsg)
	require.True(t, ok, "save command yields savedMsg, got %T", msg)
	next, _ := m.Update(msg)
	return next.(boardEditorModel)
}

func newLinkedEditor(t *testing.T, app *App) (*editor.Editor, *domain.Complex) {
	t.Helper()
	c := seedComplex(t, app, "Ocean Park")
	ed := editor.New(16000)
	ed.SetComplex(c.ID, c.Name)
	return ed, c
}

func TestBoardEditor_NavigateAddAndReorder(t *testing.T) {
	app := testApp(t)
	ed, _ := newLinkedEditor(t, app)
	m := newBoardEditorModel(app, ed)
	firstID := m.board.Sections[0].Floors[0].Units[0].ID

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, editor.UnitKey(0, 0, 0), m.cursor)

	m, _ = press(t, m, runes("a"))
	assert.Equal(t, editor.UnitKey(0, 0, 1), m.cursor, "cursor follows the new unit")
	assert.True(t, m.dirty)
	newID := m.board.Sections[0].Floors[0].Units[1].ID

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Equal(t, editor.UnitKey(0, 0, 0), m.cursor)
	units := m.board.Sections[0].Floors[0].Units
	assert.Equal(t, newID, units[0].ID)
	assert.Equal(t, firstID, units[1].ID)

	// Moving past the first position is a no-op.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftLeft})
	assert.Equal(t, newID, m.board.Sections[0].Floors[0].Units[0].ID)

	m, _ = press(t, m, runes("c"))
	assert.Len(t, m.board.Sections[0].Floors[0].Units, 3)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("a"))
	assert.Equal(t, editor.FloorKey(0, 1), m.cursor)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, runes("a"))
	assert.Equal(t, editor.SectionKey(1), m.cursor)
	assert.Equal(t, "B", m.board.Sections[1].Name)
}

func TestBoardEditor_RemoveLastChildRefused(t *testing.T) {
	app := testApp(t)
	ed, _ := newLinkedEditor(t, app)
	m := newBoardEditorModel(app, ed)

	m, _ = press(t, m, runes("x"))
	assert.Contains(t, m.status, "The last section here cannot be removed.")
	assert.False(t, m.dirty)
	assert.Len(t, m.board.Sections, 1)
}

func TestBoardEditor_SaveCreatesThenUpdates(t *testing.T) {
	app := testApp(t)
	ed, c := newLinkedEditor(t, app)
	m := newBoardEditorModel(app, ed)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, runes("a"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.saving)

	// While the save is out, a second save and mutations are refused.
	m, again := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, again)
	assert.Equal(t, "A save is already in progress.", m.status)
	m, _ = press(t, m, runes("a"))
	assert.Len(t, m.board.Sections[0].Floors[0].Units, 2)

	m = finishSave(t, m, cmd)
	assert.False(t, m.saving)
	assert.False(t, m.dirty)
	require.NotEmpty(t, m.ed.ID())
	assert.Contains(t, m.status, "Saved. Public link: "+testBaseURL+"/")

	stored, err := app.Complexes.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, stored.BackLink.PointsAt(m.ed.ID()))

	// A second save updates the same document.
	id := m.ed.ID()
	m, _ = press(t, m, runes("c"))
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = finishSave(t, m, cmd)
	assert.Equal(t, id, m.ed.ID())

	b, err := app.Chessboards.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, b.UnitCount())
}

func TestBoardEditor_FailedSaveKeepsWorkingTree(t *testing.T) {
	app := testApp(t)
	m := newBoardEditorModel(app, editor.New(16000))

	m, _ = press(t, m, runes("a"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = finishSave(t, m, cmd)

	assert.Equal(t, "Fix 1 problem before saving: complex is required", m.status)
	require.Len(t, m.problems, 1)
	assert.True(t, m.dirty, "unsaved edits survive a failed save")
	assert.Len(t, m.board.Sections, 2)
	assert.Empty(t, m.ed.ID())

	boards, err := app.Chessboards.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestBoardEditor_StaleDocumentReportsNotFound(t *testing.T) {
	app := testApp(t)
	b := seedBoard(t, app, "Ocean Park")
	m := newBoardEditorModel(app, editor.Hydrate(b))
	require.NoError(t, app.Chessboards.Delete(context.Background(), app.Actor, b.ID))

	m, cmd := press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyCtrlS})
	m = finishSave(t, m, cmd)
	assert.Equal(t, "The chessboard or complex no longer exists.", m.status)

	_, err := app.Chessboards.Get(context.Background(), b.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBoardEditor_QuitWithUnsavedChangesAsksTwice(t *testing.T) {
	app := testApp(t)
	ed, _ := newLinkedEditor(t, app)
	m := newBoardEditorModel(app, ed)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd, "clean editor quits at once")

	m, _ = press(t, m, runes("a"))
	m, cmd = press(t, m, runes("q"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.status, "Unsaved changes")

	_, cmd = press(t, m, runes("q"))
	assert.NotNil(t, cmd)
}

func TestBoardEditor_FormOpensAndCancels(t *testing.T) {
	app := testApp(t)
	ed, _ := newLinkedEditor(t, app)
	m := newBoardEditorModel(app, ed)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeForm, m.mode)
	require.NotNil(t, m.form)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Cancelled.", m.status)
	assert.False(t, m.dirty)
}

func TestBoardEdit_RunsProgram(t *testing.T) {
	app := testApp(t)
	b := seedBoard(t, app, "Ocean Park")

	var ran bool
	app.RunProgram = func(model tea.Model) (tea.Model, error) {
		ran = true
		m := model.(boardEditorModel)
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, runes("a"))
		m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
		return finishSave(t, m, cmd), nil
	}

	out, err := executeCmd(t, app, "board", "edit", b.ID)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.NotContains(t, out, "Discarded")

	stored, err := app.Chessboards.Get(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.UnitCount())
}

func TestClampKey(t *testing.T) {
	b := editor.New(16000).Board()
	assert.Equal(t, editor.UnitKey(0, 0, 0), clampKey(b, editor.UnitKey(3, 4, 5)))
	assert.Equal(t, editor.FloorKey(0, 0), clampKey(b, editor.FloorKey(0, 9)))

	b.Sections[0].Floors[0].Units = nil
	assert.Equal(t, editor.FloorKey(0, 0), clampKey(b, editor.UnitKey(0, 0, 0)))
}

func TestBoardEditor_DrivenSession(t *testing.T) {
	app := testApp(t)
	ed, _ := newLinkedEditor(t, app)
	d := teatest.New(t, newBoardEditorModel(app, ed), teatest.WithSize(120, 40), teatest.WithCmdTimeout(2*time.Second))

	d.Press("tab", "tab", "a", "a", "shift+left", "ctrl+s")

	m := d.Model.(boardEditorModel)
	assert.False(t, m.saving, "save result was delivered")
	assert.False(t, m.dirty)
	require.NotEmpty(t, m.ed.ID())
	assert.Contains(t, d.View(), "Saved. Public link:")

	stored, err := app.Chessboards.Get(context.Background(), m.ed.ID())
	require.NoError(t, err)
	assert.Equal(t, 3, stored.UnitCount())

	d.Press("q")
	assert.True(t, d.Quitting)
}
