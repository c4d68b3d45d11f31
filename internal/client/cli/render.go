package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/mealcatalog/internal/client/browse"
	"github.com/dmitrijs2005/mealcatalog/internal/client/models"
	"golang.org/x/term"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	text    lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	info    lipgloss.Style
	tag     lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
}

// renderer writes catalog views to w. Lines are cut to width when it is
// positive.
type renderer struct {
	w     io.Writer
	width int
	st    styles
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	r := lipgloss.NewRenderer(w)

	st := styles{
		text:    r.NewStyle(),
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		muted:   r.NewStyle().Foreground(colorMuted),
		info:    r.NewStyle().Foreground(colorInfo),
		tag:     r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning).Bold(true),
		danger:  r.NewStyle().Foreground(colorDanger).Bold(true),
	}
	if noColor {
		plain := r.NewStyle()
		st = styles{text: plain, title: plain, muted: plain, info: plain, tag: plain, warning: plain, danger: plain}
	}

	return &renderer{w: w, width: terminalWidth(w), st: st}
}

// terminalWidth is the column count of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func (r *renderer) line(style lipgloss.Style, indent int, s string) {
	fmt.Fprintln(r.w, strings.Repeat(" ", indent)+style.Render(truncate(s, r.width-indent)))
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *renderer) info(format string, args ...any) {
	fmt.Fprintln(r.w, r.st.info.Render(fmt.Sprintf(format, args...)))
}

func (r *renderer) warn(format string, args ...any) {
	fmt.Fprintln(r.w, r.st.warning.Render("! ")+fmt.Sprintf(format, args...))
}

func (r *renderer) fail(format string, args ...any) {
	fmt.Fprintln(r.w, r.st.danger.Render("✗ ")+fmt.Sprintf(format, args...))
}

func grams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "g"
}

func kcal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " kcal"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func (r *renderer) categories(cats []models.Category) {
	if len(cats) == 0 {
		r.info("No categories.")
		return
	}
	for _, c := range cats {
		r.category(c)
	}
}

func (r *renderer) category(c models.Category) {
	r.line(r.st.title, 0, fmt.Sprintf("%s (%s) · %s", c.Name, c.Slug, plural(c.MealCount, "meal")))
	if c.Description != "" {
		r.line(r.st.muted, 2, c.Description)
	}
}

// querySummary describes the non-default parts of q, or "".
func querySummary(q browse.Query) string {
	var parts []string
	if q.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", q.Search))
	}
	if q.Filter != "" && q.Filter != browse.FilterAll {
		parts = append(parts, "filter "+string(q.Filter))
	}
	if q.Sort != "" && q.Sort != browse.SortDefault {
		parts = append(parts, "sort "+string(q.Sort))
	}
	return strings.Join(parts, ", ")
}

// mealList prints the pipeline result for a heading such as a category
// name. total is the size of the unfiltered list.
func (r *renderer) mealList(heading string, shown []models.Meal, total int, q browse.Query) {
	header := fmt.Sprintf("%s · %d of %s", heading, len(shown), plural(total, "meal"))
	if s := querySummary(q); s != "" {
		header += " · " + s
	}
	r.line(r.st.title, 0, header)

	if len(shown) == 0 {
		r.line(r.st.muted, 2, "No meals match.")
		return
	}

	for _, m := range shown {
		r.mealRow(m)
	}
}

func (r *renderer) mealRow(m models.Meal) {
	n := m.NutritionalInfo
	row := fmt.Sprintf("#%-3d %s · %s · P %s · C %s · F %s",
		m.ID, m.Name, kcal(n.Calories), grams(n.Protein), grams(n.Carbs), grams(n.Fats))
	r.line(r.st.text, 2, row)
	if len(m.Tags) > 0 {
		r.line(r.st.tag, 7, strings.Join(m.Tags, ", "))
	}
}

func (r *renderer) meal(m models.Meal) {
	r.line(r.st.title, 0, m.Name)
	r.line(r.st.muted, 0, fmt.Sprintf("#%d · %s", m.ID, m.Category))
	if m.Description != "" {
		r.line(r.st.text, 0, m.Description)
	}
	if m.ImageURL != "" {
		r.line(r.st.muted, 0, m.ImageURL)
	}

	n := m.NutritionalInfo
	r.printf("\n")
	r.line(r.st.info, 0, "Nutrition")
	r.line(r.st.text, 2, fmt.Sprintf("Calories %s · Protein %s · Carbs %s · Fats %s",
		kcal(n.Calories), grams(n.Protein), grams(n.Carbs), grams(n.Fats)))

	if len(m.Tags) > 0 {
		r.line(r.st.tag, 2, strings.Join(m.Tags, ", "))
	}

	r.printf("\n")
	r.line(r.st.info, 0, "Ingredients")
	if len(m.Ingredients) == 0 {
		r.line(r.st.muted, 2, "None listed.")
	}
	for _, ing := range m.Ingredients {
		r.line(r.st.text, 2, "• "+ing)
	}

	r.printf("\n")
	r.line(r.st.info, 0, "Steps")
	if len(m.Steps) == 0 {
		r.line(r.st.muted, 2, "None listed.")
	}
	for i, step := range m.Steps {
		r.line(r.st.text, 2, fmt.Sprintf("%d. %s", i+1, step))
	}
}
