package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/cli/formatter"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "board",
		Aliases: []string{"b"},
		Short:   "Manage chessboards",
	}

	cmd.AddCommand(
		newBoardNewCmd(app),
		newBoardListCmd(app),
		newBoardShowCmd(app),
		newBoardPublicCmd(app),
		newBoardRateCmd(app),
		newBoardLinkCmd(app),
		newBoardDeleteCmd(app),
		newBoardDuplicateCmd(app),
		newBoardImportCmd(app),
		newBoardHistoryCmd(app),
		newBoardEditCmd(app),
	)

	return cmd
}

func newBoardNewCmd(app *App) *cobra.Command {
	var complexRef string
	var rate rateValue
	var edit bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a chessboard for a complex",
		Long: `Create a chessboard with one section, one floor and one unit.
Without --complex an interactive terminal offers a picker of the complexes
that have no chessboard yet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ed := editor.New(app.DefaultRate)
			if rate.set && !ed.SetExchangeRate(rate.rate) {
				return errBadRate
			}

			switch {
			case complexRef != "":
				c, err := resolveComplex(ctx, app, complexRef)
				if err != nil {
					return err
				}
				ed.SetComplex(c.ID, c.Name)
			case app.interactive():
				var picked string
				form, err := wizardSelectComplex(ctx, app, &picked)
				if err != nil {
					return app.failed("board.new", err)
				}
				if form == nil {
					return fmt.Errorf("every complex already has a chessboard; add one with 'chessboard complex add'")
				}
				if err := form.Run(); err != nil {
					return err
				}
				c, err := resolveComplex(ctx, app, picked)
				if err != nil {
					return err
				}
				ed.SetComplex(c.ID, c.Name)
			}

			if edit {
				return runBoardEditor(cmd, app, ed)
			}

			saved, err := app.Chessboards.Save(ctx, app.Actor, ed.Board())
			if err != nil {
				return app.failed("board.new", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created chessboard %s (%s)\nPublic link: %s\n",
				saved.Name, saved.ID, app.Chessboards.PublicLink(saved.PublicURL))
			return nil
		},
	}

	cmd.Flags().StringVar(&complexRef, "complex", "", "Complex ID or name")
	cmd.Flags().Var(&rate, "rate", "USD to IDR exchange rate (default from config)")
	cmd.Flags().BoolVar(&edit, "edit", false, "Open the editor instead of saving the default layout")

	return cmd
}

func newBoardListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List chessboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := app.Chessboards.List(context.Background())
			if err != nil {
				return app.failed("board.list", err)
			}
			if len(boards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No chessboards found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChessboardList(boards))
			return nil
		},
	}
}

func newBoardShowCmd(app *App) *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a chessboard grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveChessboardID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Chessboards.Get(ctx, id)
			if err != nil {
				return app.failed("board.show", err)
			}
			link := app.Chessboards.PublicLink(b.PublicURL)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChessboard(b, link, formatter.GridOptions{Public: public}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "Render as the public share page would")

	return cmd
}

func newBoardPublicCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "public TOKEN",
		Short: "Open a chessboard by its public share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Chessboards.GetByPublicURL(context.Background(), args[0])
			if err != nil {
				return app.failed("board.public", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChessboard(b, "", formatter.GridOptions{Public: true}))
			return nil
		},
	}
}

func newBoardRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate ID RATE",
		Short: "Change the exchange rate and recompute every IDR price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rate, err := parseRate(args[1])
			if err != nil {
				return err
			}
			id, err := resolveChessboardID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Chessboards.Get(ctx, id)
			if err != nil {
				return app.failed("board.rate", err)
			}

			ed := editor.Hydrate(b)
			if !ed.SetExchangeRate(rate) {
				return errBadRate
			}
			saved, err := app.Chessboards.Save(ctx, app.Actor, ed.Board())
			if err != nil {
				return app.failed("board.rate", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", saved.Name, formatter.FormatRate(saved.ExchangeRate))
			return nil
		},
	}
}

func newBoardLinkCmd(app *App) *cobra.Command {
	var complexRef string

	cmd := &cobra.Command{
		Use:   "link ID",
		Short: "Attach a chessboard to a complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveChessboardID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := resolveComplex(ctx, app, complexRef)
			if err != nil {
				return err
			}
			b, err := app.Chessboards.Get(ctx, id)
			if err != nil {
				return app.failed("board.link", err)
			}

			ed := editor.Hydrate(b)
			ed.SetComplex(c.ID, c.Name)
			saved, err := app.Chessboards.Save(ctx, app.Actor, ed.Board())
			if err != nil {
				return app.failed("board.link", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked chessboard %s to %s\n", saved.ID, saved.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&complexRef, "complex", "", "Complex ID or name")
	_ = cmd.MarkFlagRequired("complex")

	return cmd
}

func newBoardDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a chessboard and unlink its complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveChessboardID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("pass --yes to delete without a prompt")
				}
				var confirmed bool
				if err := wizardConfirm("Delete this chessboard?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Chessboards.Delete(ctx, app.Actor, id); err != nil {
				return app.failed("board.delete", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted chessboard %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newBoardDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate ID",
		Short: "Copy a chessboard without linking it to a complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveChessboardID(ctx, app, args[0])
			if err != nil {
				return err
			}
			dup, err := app.Chessboards.Duplicate(ctx, app.Actor, id)
			if err != nil {
				return app.failed("board.duplicate", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\nLink it with: chessboard board link %s --complex <complex>\n",
				dup.Name, dup.ID, dup.ID)
			return nil
		},
	}
}

func newBoardImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create a chessboard from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Import.ImportChessboard(context.Background(), app.Actor, args[0])
			if err != nil {
				return app.failed("board.import", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported chessboard %s (%s): %d units\nPublic link: %s\n",
				b.Name, b.ID, b.UnitCount(), app.Chessboards.PublicLink(b.PublicURL))
			return nil
		},
	}
}

func newBoardHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history ID",
		Short: "Show who created and changed a chessboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveChessboardID(ctx, app, args[0])
			if err != nil {
				return err
			}
			records, err := app.Chessboards.History(ctx, id)
			if err != nil {
				return app.failed("board.history", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history recorded.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(records))
			return nil
		},
	}
}

func newBoardEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a chessboard with the keyboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveChessboardID(ctx, app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Chessboards.Get(ctx, id)
			if err != nil {
				return app.failed("board.edit", err)
			}
			return runBoardEditor(cmd, app, editor.Hydrate(b))
		},
	}
}

var errNotInteractive = errors.New("the editor needs an interactive terminal")

// runBoardEditor runs the keyboard editor until the user quits.
func runBoardEditor(cmd *cobra.Command, app *App, ed *editor.Editor) error {
	if !app.interactive() && app.RunProgram == nil {
		return errNotInteractive
	}
	final, err := app.runProgram(newBoardEditorModel(app, ed))
	if err != nil {
		return err
	}
	if m, ok := final.(boardEditorModel); ok && m.dirty {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Discarded unsaved changes."))
	}
	return nil
}
