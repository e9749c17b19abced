package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDeveloperCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "developer",
		Short: "Manage developers",
	}
	cmd.AddCommand(newDeveloperAddCmd(app), newDeveloperListCmd(app))
	return cmd
}

func newDeveloperAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a developer",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.Developers.Create(context.Background(), name)
			if err != nil {
				return app.failed("developer.add", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created developer %s (%s)\n", d.Name, d.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Developer name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newDeveloperListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List developers",
		RunE: func(cmd *cobra.Command, args []string) error {
			developers, err := app.Developers.List(context.Background())
			if err != nil {
				return app.failed("developer.list", err)
			}
			if len(developers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No developers found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDeveloperList(developers))
			return nil
		},
	}
}

func newComplexCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complex",
		Short: "Manage complexes",
	}
	cmd.AddCommand(newComplexAddCmd(app), newComplexListCmd(app))
	return cmd
}

func newComplexAddCmd(app *App) *cobra.Command {
	var name, developer string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a complex",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			developerID, err := resolveDeveloperID(ctx, app, developer)
			if err != nil {
				return err
			}
			c, err := app.Complexes.Create(ctx, name, developerID)
			if err != nil {
				return app.failed("complex.add", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created complex %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Complex name")
	cmd.Flags().StringVar(&developer, "developer", "", "Developer ID or name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newComplexListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the complexes you can attach a chessboard to",
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := app.Chessboards.ListSelectableComplexes(context.Background(), app.Actor)
			if err != nil {
				return app.failed("complex.list", err)
			}
			if len(options) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No complexes found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatComplexList(options))
			return nil
		},
	}
}

func newNotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inventory activity for your role",
	}
	cmd.AddCommand(newNotificationsListCmd(app), newNotificationsReadCmd(app))
	return cmd
}

func newNotificationsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List unread notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Notifications.ListUnread(context.Background(), app.Actor.Role)
			if err != nil {
				return app.failed("notifications.list", err)
			}
			if len(notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No unread notifications.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNotifications(notes))
			return nil
		},
	}
}

func newNotificationsReadCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [ID]",
		Short: "Mark a notification, or all of them, as read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !all && len(args) == 0 {
				return fmt.Errorf("pass a notification ID or --all")
			}
			notes, err := app.Notifications.ListUnread(ctx, app.Actor.Role)
			if err != nil {
				return app.failed("notifications.read", err)
			}

			marked := 0
			for _, n := range notes {
				if !all && !matchesID(n.ID, args[0]) {
					continue
				}
				if err := app.Notifications.MarkRead(ctx, n.ID); err != nil {
					return app.failed("notifications.read", err)
				}
				marked++
			}
			if marked == 0 && !all {
				return fmt.Errorf("no unread notification matches %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %d notification(s) as read\n", marked)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Mark every unread notification")

	return cmd
}

// matchesID accepts a full id or an id prefix of at least 4 characters.
func matchesID(id, input string) bool {
	return id == input || (len(input) >= 4 && len(input) < len(id) && id[:len(input)] == input)
}
