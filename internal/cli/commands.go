package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/todosync/internal/api"
	"github.com/idilsaglam/todosync/internal/todo"
	"github.com/idilsaglam/todosync/internal/ui"
)

func newLsCmd(app *App) *cobra.Command {
	var active, completed bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := todo.FilterAll
			switch {
			case active && completed:
				return fmt.Errorf("%w: --active and --completed are mutually exclusive", ErrUsage)
			case active:
				filter = todo.FilterActive
			case completed:
				filter = todo.FilterCompleted
			}
			items, err := app.client.List(cmd.Context())
			if err != nil {
				ui.Fail("load: " + err.Error())
				return err
			}
			renderList(items, filter)
			return nil
		},
	}
	cmd.Flags().BoolVar(&active, "active", false, "only items not yet completed")
	cmd.Flags().BoolVar(&completed, "completed", false, "only completed items")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a new todo (title can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return fmt.Errorf("%w: empty title", ErrUsage)
			}
			created, err := app.client.Create(cmd.Context(), title)
			if err != nil {
				ui.Fail("add: " + err.Error())
				return err
			}
			ui.OK("added " + created.ID)
			return nil
		},
	}
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <index|id>",
		Short: "Toggle completion for one todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.resolveItem(cmd.Context(), args[0])
			if err != nil {
				ui.Fail("done: " + err.Error())
				return err
			}
			next := !it.Completed
			if err := app.client.Update(cmd.Context(), it.ID, api.Patch{Completed: &next}); err != nil {
				ui.Fail("done: " + err.Error())
				return err
			}
			if next {
				ui.OK("completed: " + it.Title)
			} else {
				ui.OK("reopened: " + it.Title)
			}
			return nil
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index|id>",
		Short: "Delete one todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := app.resolveItem(cmd.Context(), args[0])
			if err != nil {
				ui.Fail("rm: " + err.Error())
				return err
			}
			if err := app.client.Delete(cmd.Context(), it.ID); err != nil {
				ui.Fail("rm: " + err.Error())
				return err
			}
			ui.OK("removed: " + it.Title)
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed todo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.client.List(cmd.Context())
			if err != nil {
				ui.Fail("clear: " + err.Error())
				return err
			}
			completed := todo.FilterCompleted.Apply(items)
			if len(completed) == 0 {
				ui.OK("nothing to clear")
				return nil
			}
			g, ctx := errgroup.WithContext(cmd.Context())
			for _, it := range completed {
				id := it.ID
				g.Go(func() error {
					return app.client.Delete(ctx, id)
				})
			}
			if err := g.Wait(); err != nil {
				ui.Fail("clear: " + err.Error())
				return err
			}
			ui.OK(fmt.Sprintf("cleared %d completed", len(completed)))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check whether the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := ui.Current()
			start := time.Now()
			err := app.client.Ping(cmd.Context())
			lines := []string{
				ui.C(t.Title, "Backend status"),
				"",
				ui.C(t.Muted, "URL: ") + app.client.BaseURL(),
			}
			if err != nil {
				lines = append(lines, ui.C(t.Error, "unreachable: ")+err.Error())
				ui.Panel(lines)
				return err
			}
			lines = append(lines,
				ui.C(t.Success, "reachable"),
				ui.C(t.Muted, fmt.Sprintf("latency: %s", time.Since(start).Round(time.Millisecond))),
			)
			ui.Panel(lines)
			return nil
		},
	}
}

// resolveItem accepts either a 1-based index into the current server
// order or a raw item id.
func (a *App) resolveItem(ctx context.Context, arg string) (todo.Item, error) {
	items, err := a.client.List(ctx)
	if err != nil {
		return todo.Item{}, err
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(items) {
			return todo.Item{}, fmt.Errorf("%w: index out of range: have %d, got %d", ErrUsage, len(items), n)
		}
		return items[n-1], nil
	}
	for _, it := range items {
		if it.ID == arg {
			return it, nil
		}
	}
	return todo.Item{}, fmt.Errorf("%w: no todo with id %q", ErrUsage, arg)
}
