package cli

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Chessboards   service.ChessboardService
	Developers    service.DeveloperService
	Complexes     service.ComplexService
	Notifications service.NotificationService
	Import        service.ImportService

	// Actor is the user every command acts as.
	Actor       domain.Actor
	DefaultRate float64

	// Logger receives the detailed error behind every short message a
	// command prints. Nil discards.
	Logger *slog.Logger

	// IsInteractive reports whether prompts and the editor may take over
	// the terminal.
	IsInteractive func() bool

	// RunProgram runs a full-screen bubbletea model. Nil uses tea.NewProgram.
	RunProgram func(m tea.Model) (tea.Model, error)
}

// NewRootCmd creates the top-level "chessboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chessboard",
		Short:         "Unit inventory editor for real-estate complexes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newBoardCmd(app),
		newComplexCmd(app),
		newDeveloperCmd(app),
		newNotificationsCmd(app),
	)

	return root
}

func (app *App) logger() *slog.Logger {
	if app.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return app.Logger
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) runProgram(m tea.Model) (tea.Model, error) {
	if app.RunProgram != nil {
		return app.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}
