package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/mealcatalog/internal/client/browse"
	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
	"github.com/dmitrijs2005/mealcatalog/internal/common"
)

const browseHelp = `Commands:
  categories          list categories
  open [slug]         list the meals of a category (all meals without slug)
  search [text]       search name and description (empty clears)
  filter <name>       %s
  sort <name>         %s
  list                show the current list again
  show <id>           show a meal
  back                leave the meal view, or the list
  exit | quit         leave mealctl`

// session is the state of one browse loop. The fetched list is kept as
// is; every view is recomputed from it with the current query.
type session struct {
	app *App

	// nil means all meals
	category *models.Category
	meals    []models.Meal
	loaded   bool
	query    browse.Query

	// id of the meal on screen, 0 when the list is shown
	detail int64
}

func (s *session) status() string {
	switch {
	case s.detail != 0:
		return fmt.Sprintf("(meal #%d)", s.detail)
	case s.category != nil:
		return fmt.Sprintf("(%s)", s.category.Slug)
	case s.loaded:
		return "(all)"
	default:
		return ""
	}
}

// Browse runs the interactive loop on the App's input until EOF or exit.
func (a *App) Browse(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		a.out.warn("catalog server at %s does not answer; commands may fail", a.config.ServerURL)
		a.logger.Debug(ctx, "ping failed", "error", err)
	}

	a.out.info("Welcome to mealctl (type 'help' for commands)")

	s := &session{app: a}
	s.showCategories(ctx)

	runREPL(ctx, s, bufio.NewScanner(a.in))
	return nil
}

// runREPL reads one command per line and dispatches it to s. It returns on
// EOF, exit or quit. Command failures are reported and the loop goes on.
func runREPL(ctx context.Context, s *session, scanner *bufio.Scanner) {
	out := s.app.out
	for {
		out.printf("mealctl %s> ", s.status())
		if !scanner.Scan() {
			out.printf("\n")
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help", "h":
			out.printf(browseHelp+"\n", joinFilters(), joinSortKeys())

		case "categories", "c":
			s.showCategories(ctx)

		case "open", "o":
			s.open(ctx, rest)

		case "search", "s":
			s.query.Search = rest
			s.showList(ctx)

		case "filter", "f":
			f, err := browse.ParseFilter(rest)
			if err != nil {
				out.fail("unknown filter %q (valid: %s)", rest, joinFilters())
				continue
			}
			s.query.Filter = f
			s.showList(ctx)

		case "sort":
			k, err := browse.ParseSort(rest)
			if err != nil {
				out.fail("unknown sort %q (valid: %s)", rest, joinSortKeys())
				continue
			}
			s.query.Sort = k
			s.showList(ctx)

		case "list", "l":
			s.showList(ctx)

		case "show":
			s.show(ctx, rest)

		case "back", "b":
			s.back(ctx)

		case "exit", "quit", "q":
			out.info("Bye!")
			return

		default:
			out.fail("unknown command %q, type 'help'", cmd)
		}
	}
}

func (s *session) showCategories(ctx context.Context) {
	if err := s.app.Categories(ctx); err != nil {
		s.app.out.fail("%v", err)
	}
}

// open loads a new list and starts over with an empty query.
func (s *session) open(ctx context.Context, slug string) {
	if !s.load(ctx, slug) {
		return
	}
	s.query = browse.Query{}
	s.render()
}

// load fetches the meals of slug, or all meals when slug is empty. The
// session is left as it was when the fetch fails.
func (s *session) load(ctx context.Context, slug string) bool {
	a := s.app

	var category *models.Category
	if slug != "" {
		c, err := a.client.GetCategory(ctx, slug)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				a.out.fail("category %q not found", slug)
			} else {
				a.out.fail("%v", a.apiError(ctx, "loading category", err))
			}
			return false
		}
		category = c
	}

	var (
		meals []models.Meal
		err   error
	)
	if category == nil {
		meals, err = a.client.ListMeals(ctx)
	} else {
		meals, err = a.client.ListMealsByCategory(ctx, category.Slug)
	}
	if err != nil {
		a.out.fail("%v", a.apiError(ctx, "listing meals", err))
		return false
	}

	s.category = category
	s.meals = meals
	s.loaded = true
	s.detail = 0
	return true
}

// showList prints the current list, loading all meals on first use.
func (s *session) showList(ctx context.Context) {
	if !s.loaded && !s.load(ctx, "") {
		return
	}
	s.detail = 0
	s.render()
}

func (s *session) render() {
	heading := "All meals"
	if s.category != nil {
		heading = s.category.Name
	}
	s.app.out.mealList(heading, browse.Apply(s.meals, s.query), len(s.meals), s.query)
}

// show opens the meal view. Any failure, including an unknown id, drops
// back to the current list.
func (s *session) show(ctx context.Context, arg string) {
	a := s.app

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		a.out.fail("usage: show <id>")
		return
	}

	m, err := a.client.GetMeal(ctx, id)
	if err != nil {
		a.logger.Warn(ctx, "meal detail failed", "id", id, "error", err)
		a.out.warn("could not load meal #%d, back to the list", id)
		s.showList(ctx)
		return
	}

	s.detail = m.ID
	a.out.meal(*m)
}

func (s *session) back(ctx context.Context) {
	switch {
	case s.detail != 0:
		s.showList(ctx)
	case s.loaded:
		s.category = nil
		s.meals = nil
		s.loaded = false
		s.query = browse.Query{}
		s.showCategories(ctx)
	default:
		s.showCategories(ctx)
	}
}
