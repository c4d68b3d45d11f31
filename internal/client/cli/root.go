package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mealcatalog/internal/buildinfo"
	"github.com/dmitrijs2005/mealcatalog/internal/client/browse"
	"github.com/dmitrijs2005/mealcatalog/internal/client/client"
	"github.com/dmitrijs2005/mealcatalog/internal/client/config"
	"github.com/spf13/cobra"
)

// action is a command body that runs once the App is configured.
type action func(ctx context.Context, a *App, args []string) error

// NewRootCommand builds the mealctl command tree over the HTTP client.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	return newRootCommand(in, out, errOut, func(cfg *config.Config) client.Client {
		return client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout)
	})
}

func newRootCommand(in io.Reader, out, errOut io.Writer, newClient func(*config.Config) client.Client) *cobra.Command {
	var (
		flags config.Flags
		app   *App
	)

	root := &cobra.Command{
		Use:   "mealctl",
		Short: "Browse the meal catalog",
		Long: `mealctl browses the meal catalog served by mealsrv.

Meals can be narrowed by a text search over name and description, one
filter and one sort order; all of it runs locally on the fetched list.

Examples:
  mealctl categories
  mealctl meals breakfast --filter vegetarian --sort calories-asc
  mealctl meal 5
  mealctl browse`,
		Version:      buildinfo.Version(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.Load(cmd)
			if err != nil {
				return err
			}
			app, err = NewApp(cfg, newClient(cfg), in, out, errOut)
			return err
		},
	}
	flags.Register(root)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	run := func(fn action) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return fn(cmd.Context(), app, args)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "categories",
			Short: "List categories with their meal counts",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, a *App, _ []string) error {
				return a.Categories(ctx)
			}),
		},
		&cobra.Command{
			Use:   "category <slug>",
			Short: "Show one category and its meals",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, a *App, args []string) error {
				return a.Category(ctx, args[0])
			}),
		},
		newMealsCommand(run),
		&cobra.Command{
			Use:   "meal <id>",
			Short: "Show a meal with nutrition, ingredients and steps",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, a *App, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid meal id %q", args[0])
				}
				return a.Meal(ctx, id)
			}),
		},
		&cobra.Command{
			Use:   "browse",
			Short: "Browse interactively",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, a *App, _ []string) error {
				return a.Browse(ctx)
			}),
		},
	)

	return root
}

func newMealsCommand(run func(action) func(*cobra.Command, []string) error) *cobra.Command {
	var search, filter, sortKey string

	cmd := &cobra.Command{
		Use:   "meals [category]",
		Short: "List meals, optionally of one category",
		Long: fmt.Sprintf(`List meals, optionally of one category.

Filters: %s
Sorts:   %s`, joinFilters(), joinSortKeys()),
		Args: cobra.MaximumNArgs(1),
		RunE: run(func(ctx context.Context, a *App, args []string) error {
			f, err := browse.ParseFilter(filter)
			if err != nil {
				return fmt.Errorf("%w (valid: %s)", err, joinFilters())
			}
			s, err := browse.ParseSort(sortKey)
			if err != nil {
				return fmt.Errorf("%w (valid: %s)", err, joinSortKeys())
			}

			var category string
			if len(args) == 1 {
				category = args[0]
			}
			return a.Meals(ctx, category, browse.Query{Search: search, Filter: f, Sort: s})
		}),
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text to look for in name or description")
	cmd.Flags().StringVar(&filter, "filter", string(browse.FilterAll), "one of: "+joinFilters())
	cmd.Flags().StringVar(&sortKey, "sort", string(browse.SortDefault), "one of: "+joinSortKeys())
	return cmd
}

func joinFilters() string {
	names := make([]string, 0, len(browse.Filters()))
	for _, f := range browse.Filters() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func joinSortKeys() string {
	names := make([]string, 0, len(browse.SortKeys()))
	for _, k := range browse.SortKeys() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
