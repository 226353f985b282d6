package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/taskboard/internal/config"
	"github.com/idilsaglam/taskboard/internal/exitcode"
	"github.com/idilsaglam/taskboard/internal/fetch"
	"github.com/idilsaglam/taskboard/internal/logging"
	"github.com/idilsaglam/taskboard/internal/model"
	"github.com/idilsaglam/taskboard/internal/theme"
	"github.com/idilsaglam/taskboard/internal/tui"
	"github.com/idilsaglam/taskboard/internal/ui"
	"github.com/idilsaglam/taskboard/internal/view"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Fetcher loads the todo collection.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.Task, error)
}

// Options carry what the root command resolved.
type Options struct {
	Config   *config.Config
	Out, Err io.Writer

	// Fetcher overrides the HTTP fetcher built from Config.Endpoint.
	Fetcher Fetcher
}

// Run dispatches subcommands and returns an exit code.
func Run(ctx context.Context, args []string, opt Options) int {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Err == nil {
		opt.Err = os.Stderr
	}
	if opt.Config == nil {
		opt.Config = config.Default()
	}
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return exitcode.Usage
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return exitcode.Success

	case "version":
		fmt.Fprintf(opt.Out, "taskboard %s\n", Version)
		return exitcode.Success

	case "ls":
		return doList(ctx, a, opt)

	case "browse":
		if len(a) != 0 {
			failf(opt, "usage: taskboard browse")
			return exitcode.Usage
		}
		return doBrowse(ctx, opt)
	}

	failf(opt, "unknown subcommand: %s", cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return exitcode.Usage
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `taskboard - browse a remote todo list

Usage:
  taskboard [flags] <subcommand> [args]

Subcommands:
  browse                       Interactive board (search, pages, counter, theme)
  ls [-search s] [-page n]     Print one page of todos
  version                      Print the version
  help                         Show this help

Flags:
  -endpoint url    todo collection URL (TASKBOARD_ENDPOINT)
  -theme name      classic | neon | mono (TASKBOARD_THEME)
  -dark mode       auto | on | off (TASKBOARD_DARK)
  -log-level lvl   debug | info | warn | error (TASKBOARD_LOG_LEVEL)
  -log-file path   write logs to a file (TASKBOARD_LOG_FILE)
  -group           group ls output by pending/done

Examples:
  taskboard browse
  taskboard ls -search milk
  taskboard -theme neon ls -page 2
`)
}

// failf reports a usage or setup problem before a themed printer exists.
func failf(opt Options, format string, args ...any) {
	fmt.Fprintln(opt.Err, "✖ "+fmt.Sprintf(format, args...))
}

func buildTheme(cfg *config.Config) (theme.Theme, error) {
	dark, err := theme.ResolveDark(cfg.Dark)
	if err != nil {
		return theme.Theme{}, err
	}
	return theme.New(cfg.Theme, dark)
}

func buildFetcher(opt Options, logger *log.Logger) (Fetcher, error) {
	if opt.Fetcher != nil {
		return opt.Fetcher, nil
	}
	return fetch.New(opt.Config.Endpoint, fetch.WithLogger(logger))
}

// -------------- subcommand impls ----------------

func doBrowse(ctx context.Context, opt Options) int {
	cfg := opt.Config
	// the board owns the terminal; logs only go to a file
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, io.Discard)
	if err != nil {
		failf(opt, "log: %v", err)
		return exitcode.Error
	}
	defer closer.Close()

	th, err := buildTheme(cfg)
	if err != nil {
		failf(opt, "theme: %v", err)
		return exitcode.Error
	}
	f, err := buildFetcher(opt, logger)
	if err != nil {
		failf(opt, "fetch: %v", err)
		return exitcode.Error
	}
	logger.Info("starting board", "endpoint", cfg.Endpoint, "theme", th.Name, "dark", th.Dark)

	store := theme.NewStore(th)
	if err := tui.Run(ctx, f, store, []tui.Option{tui.WithLogger(logger)}); err != nil {
		failf(opt, "%v", err)
		return exitcode.Error
	}
	return exitcode.Success
}

func doList(ctx context.Context, args []string, opt Options) int {
	cfg := opt.Config
	fs := flag.NewFlagSet("taskboard ls", flag.ContinueOnError)
	fs.SetOutput(opt.Err)
	search := fs.String("search", "", "only titles containing this text")
	page := fs.Int("page", 1, "1-based page to print")
	if err := fs.Parse(args); err != nil {
		return exitcode.Usage
	}
	if fs.NArg() != 0 {
		failf(opt, "usage: taskboard ls [-search s] [-page n]")
		return exitcode.Usage
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel, opt.Err)
	if err != nil {
		failf(opt, "log: %v", err)
		return exitcode.Error
	}
	defer closer.Close()

	th, err := buildTheme(cfg)
	if err != nil {
		failf(opt, "theme: %v", err)
		return exitcode.Error
	}
	p := ui.NewPrinter(opt.Out, opt.Err, th)

	f, err := buildFetcher(opt, logger)
	if err != nil {
		p.Fail("fetch: " + err.Error())
		return exitcode.Error
	}

	st := view.NewState()
	st.Resolve(f.Fetch(ctx))
	st.SetSearch(*search)
	st.SetPage(*page)
	logger.Debug("listing", "phase", st.Phase(), "search", st.Search(), "page", st.PageIndex())

	p.Panel(listLines(p, &st, cfg.Group))
	if st.Phase() == view.PhaseError {
		return exitcode.Unavailable
	}
	return exitcode.Success
}

// -------------- rendering helpers --------------

func listLines(p *ui.Printer, st *view.State, group bool) []string {
	t := p.Theme
	pg := st.Current()

	lines := []string{p.C(t.Title, "API Data")}
	if st.Phase() == view.PhaseError {
		return append(lines, "", p.C(t.Error, "Failed to fetch API data."))
	}

	d, pn := model.Stats(view.Filter(st.Tasks(), st.Search()))
	lines[0] = fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		p.C(t.Title, "API Data"),
		p.C(t.Success, t.SymDone), d,
		p.C(t.Pending, t.SymPending), pn,
		p.C(t.Accent, "Total"), pg.Matches,
	)
	lines = append(lines, p.C(t.Muted, ui.ProgressBar(d, d+pn, 28)))
	if st.Search() != "" {
		lines = append(lines, p.C(t.Muted, "Search: ")+st.Search())
	}
	lines = append(lines, "")

	offset := (pg.Number - 1) * view.PageSize
	if group {
		lines = append(lines, groupLines(p, pg.Items, offset)...)
	} else {
		lines = append(lines, flatLines(p, pg.Items, offset)...)
	}

	if pg.ShowControls() {
		lines = append(lines, "", pageLine(p, pg))
	}
	lines = append(lines, "")
	lines = append(lines, p.C(t.Muted, "Tip: narrow with `taskboard ls -search milk`"))
	return lines
}

func flatLines(p *ui.Printer, items []model.Task, offset int) []string {
	t := p.Theme
	if len(items) == 0 {
		return []string{p.C(t.Muted, "No API todos found")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", offset+i+1)
		box := t.BoxUnchecked
		color := t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		title := runewidth.Truncate(it.Title, 80, "...")
		if it.Completed {
			title += " (done)"
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			p.C(t.Muted, idx), p.C(color, box), title))
	}
	return out
}

// groupLines keeps numbering from the page so indexes match the flat view.
func groupLines(p *ui.Printer, items []model.Task, offset int) []string {
	t := p.Theme
	if len(items) == 0 {
		return flatLines(p, items, offset)
	}
	var pend, done []string
	for i, line := range flatLines(p, items, offset) {
		if items[i].Completed {
			done = append(done, line)
		} else {
			pend = append(pend, line)
		}
	}
	var lines []string
	lines = append(lines, p.C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, p.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, pend...)
	}
	lines = append(lines, "")
	lines = append(lines, p.C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, p.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, done...)
	}
	return lines
}

func pageLine(p *ui.Printer, pg view.Page) string {
	t := p.Theme
	prevColor, nextColor := t.Accent, t.Accent
	if !pg.HasPrev() {
		prevColor = t.Muted
	}
	if !pg.HasNext() {
		nextColor = t.Muted
	}
	return fmt.Sprintf("%s  Page %d of %d  %s",
		p.C(prevColor, "‹ Prev"), pg.Number, pg.Total, p.C(nextColor, "Next ›"))
}
