package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/shoplist"
	"github.com/idilsaglam/shoplist/internal/summary"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
	"github.com/idilsaglam/shoplist/internal/validate"
)

// Options tune behavior from root flags.
type Options struct {
	Group     bool // check output grouped by pending/purchased
	AltScreen bool
	DebugLog  string
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail("usage: shoplist ui")
			return 2
		}
		return doUI(opt)

	case "check":
		return doCheck(a, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout, `shoplist - a shopping list for the terminal

Usage:
  shoplist [flags] [subcommand] [args]

Subcommands:
  ui                 Interactive list (default)
  check [-p i]... [-d i]... <name> <quantity> <unit> [...]
                     Add each triple in order and print the resulting list.
                     -p marks the i-th resulting item purchased, -d deletes it
                     (1-based, applied after all adds)

Flags:
  -theme classic|neon|mono   (env SHOPLIST_THEME)
  -no-color, -force-color    (env NO_COLOR)
  -alt-screen=false          keep the list in the normal screen
  -group                     group check output by pending/purchased

Debug log: set SHOPLIST_DEBUG to a file path.

Examples:
  shoplist
  shoplist check Milk 2 liters "Olive oil" 1 bottle
  shoplist -group check -p 1 Milk 2 liters Bread 1 loaf
`)
}

func doUI(opt Options) int {
	if !ui.IsTTY(os.Stdout) {
		ui.Fail("ui: stdout is not a terminal")
		ui.Hint("Hint: use `shoplist check <name> <quantity> <unit>` in scripts")
		return 1
	}
	err := tui.Run(shoplist.New(nil), tui.Options{
		AltScreen: opt.AltScreen,
		DebugLog:  opt.DebugLog,
	})
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// indexList collects repeated 1-based index flags.
type indexList []int

func (l *indexList) String() string { return fmt.Sprint(*l) }

func (l *indexList) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number: %s", s)
	}
	*l = append(*l, n)
	return nil
}

func doCheck(args []string, opt Options) int {
	var purchased, deleted indexList
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&purchased, "p", "mark the i-th item purchased")
	fs.Var(&deleted, "d", "delete the i-th item")
	if err := fs.Parse(args); err != nil {
		ui.Fail("check: " + err.Error())
		return 2
	}
	a := fs.Args()
	if len(a) == 0 || len(a)%3 != 0 {
		ui.Fail("usage: shoplist check <name> <quantity> <unit> [...]")
		return 2
	}

	c := shoplist.New(nil)
	code := 0
	for i := 0; i < len(a); i += 3 {
		item, err := c.Add(a[i], a[i+1], a[i+2])
		if err != nil && !validate.IsRejection(err) {
			ui.Fail("check: " + err.Error())
			return 1
		}
		if err != nil {
			ui.Fail(fmt.Sprintf("%s: %s", quote(a[i]), c.State().Message))
			code = 1
			continue
		}
		ui.OK("added " + quote(item.Name))
	}

	// resolve indexes against the list as it stands after the adds
	items := c.Items()
	for _, idx := range append(append(indexList{}, purchased...), deleted...) {
		if idx < 1 || idx > len(items) {
			ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), idx))
			ui.Hint("Hint: indexes count accepted items, starting at 1")
			return 2
		}
	}
	for _, idx := range purchased {
		c.Toggle(items[idx-1].ID, true)
	}
	for _, idx := range deleted {
		c.Delete(items[idx-1].ID)
	}

	render(c.Items(), opt)
	return code
}

// -------------- rendering helpers --------------

func render(items []model.Item, opt Options) {
	t := ui.Current()
	s := summary.Derive(items)

	lines := []string{t.Title.Render("Shopping list")}
	if opt.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	if s.Visible() {
		style := t.Pending
		if s.Kind == summary.AllPurchased {
			style = t.Success
		}
		lines = append(lines, "", style.Render(s.Text()), t.Muted.Render(ui.ProgressBar(s.Purchased, s.Total, 28)))
	}
	ui.Panel(lines...)
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := t.Muted.Render(t.BoxUnchecked)
		label := tui.Label(it)
		if it.Purchased {
			box = t.Success.Render(t.BoxChecked)
			label = t.Done.Render(label)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, label))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Purchased {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	t := ui.Current()
	var lines []string
	for _, g := range []struct {
		title string
		items []model.Item
	}{{"Pending", pend}, {"Purchased", done}} {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Accent.Render(g.title))
		if len(g.items) == 0 {
			lines = append(lines, t.Muted.Render("(none)"))
			continue
		}
		lines = append(lines, flatLines(g.items)...)
	}
	return lines
}

// quote makes leading/trailing spaces in a name visible.
func quote(s string) string {
	if strings.TrimSpace(s) != s {
		return strconv.Quote(s)
	}
	return s
}
