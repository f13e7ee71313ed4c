// Package tui provides the interactive Bubble Tea budget dashboard for budgy.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/theirongolddev/budgy/internal/ledger"
	"github.com/theirongolddev/budgy/internal/logging"
	"github.com/theirongolddev/budgy/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Options configures a new App.
type Options struct {
	// DefaultKind preselects the entry form type. Invalid kinds mean Income.
	DefaultKind model.Kind
	// FirstRun shows the setup form before the dashboard.
	FirstRun bool
	Logger   *slog.Logger
	// Now is used for the month heading; defaults to time.Now.
	Now func() time.Time
}

// App is the root Bubble Tea model. It drives the ledger: every add or delete
// is followed by a recompute pass before the aggregates are read back.
type App struct {
	ledger *ledger.Ledger
	log    *slog.Logger
	now    func() time.Time

	// Read back after every recompute
	budget      model.Budget
	percentages []model.Percent
	incomes     []model.IncomeEntry
	expenses    []model.ExpenseEntry

	// UI state
	width     int
	height    int
	focus     model.Kind
	incCursor int
	expCursor int
	entryKind model.Kind
	showHelp  bool

	status    string
	statusErr bool

	// huh binds field values by pointer, so the backing values live on the
	// heap and survive App being copied on every Update.
	entryForm   *huh.Form
	entryVals   *entryValues
	entryAccent model.Kind // kind the entry form is currently colored for
	setupForm   *huh.Form
	setupVals   *SetupValues
}

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model around l.
func NewApp(l *ledger.Ledger, opts Options) App {
	kind := opts.DefaultKind
	if !kind.Valid() {
		kind = model.Income
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := App{
		ledger:    l,
		log:       logger.With("component", "tui"),
		now:       now,
		focus:     kind,
		entryKind: kind,
	}
	if opts.FirstRun {
		a.setupVals = DefaultSetupValues()
		a.setupForm = NewSetupForm(a.setupVals)
	}
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// refresh runs the recompute pass and reads everything the view needs.
func (a *App) refresh() {
	a.ledger.Recompute()
	a.budget = a.ledger.Budget()
	a.percentages = a.ledger.Percentages()
	a.incomes = a.ledger.Incomes()
	a.expenses = a.ledger.Expenses()

	a.incCursor = clampCursor(a.incCursor, len(a.incomes))
	a.expCursor = clampCursor(a.expCursor, len(a.expenses))
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.entryForm != nil {
			a.entryForm = a.entryForm.WithWidth(a.formWidth())
		}
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(a.formWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.entryForm != nil {
			if key == "esc" {
				a.entryForm = nil
				a.setStatus("Cancelled", false)
				return a, nil
			}
			return a.updateEntryForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "a", "n", "enter":
			return a.openEntryForm()
		case "t":
			// Flip the default type for the next entry
			a.entryKind = a.entryKind.Other()
			return a, nil
		case "tab", "shift+tab", "left", "right", "h", "l":
			a.focus = a.focus.Other()
			return a, nil
		case "j", "down":
			a.moveCursor(1)
			return a, nil
		case "k", "up":
			a.moveCursor(-1)
			return a, nil
		case "g":
			a.setCursor(0)
			return a, nil
		case "G":
			a.setCursor(a.ledger.Len(a.focus) - 1)
			return a, nil
		case "d", "x", "delete", "backspace":
			a.deleteSelected()
			return a, nil
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.entryForm != nil {
		return a.updateEntryForm(msg)
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	if a.focus == model.Income {
		a.incCursor = clampCursor(a.incCursor+delta, len(a.incomes))
		return
	}
	a.expCursor = clampCursor(a.expCursor+delta, len(a.expenses))
}

func (a *App) setCursor(pos int) {
	if a.focus == model.Income {
		a.incCursor = clampCursor(pos, len(a.incomes))
		return
	}
	a.expCursor = clampCursor(pos, len(a.expenses))
}

// selected returns the record under the cursor of the focused list.
func (a App) selected() (model.Record, bool) {
	if a.focus == model.Income {
		if a.incCursor < len(a.incomes) {
			return a.incomes[a.incCursor], true
		}
		return nil, false
	}
	if a.expCursor < len(a.expenses) {
		return a.expenses[a.expCursor], true
	}
	return nil, false
}

// addEntry adds a record to the ledger and refreshes the aggregates. The new
// record becomes the selection in its list.
func (a *App) addEntry(kind model.Kind, description string, value float64) (model.Record, error) {
	r, err := a.ledger.Add(kind, description, value)
	if err != nil {
		a.log.Warn("add rejected", "kind", kind, "error", err)
		a.setStatus(fmt.Sprintf("Not added: %s", err), true)
		return nil, err
	}
	a.log.Debug("item added", "ref", r.Ref(), "value", value)

	a.refresh()
	a.focus = kind
	a.setCursor(a.ledger.Len(kind) - 1)
	a.setStatus("Added "+r.Ref(), false)
	return r, nil
}

// deleteSelected removes the record under the cursor and refreshes.
func (a *App) deleteSelected() {
	r, ok := a.selected()
	if !ok {
		return
	}
	if err := a.ledger.Delete(r.Kind(), r.Base().ID); err != nil {
		a.log.Error("delete failed", "ref", r.Ref(), "error", err)
		a.setStatus(err.Error(), true)
		return
	}
	a.log.Debug("item deleted", "ref", r.Ref())

	a.refresh()
	a.setStatus("Deleted "+r.Ref(), false)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// errFormIncomplete is reported if a completed form somehow fails to parse.
var errFormIncomplete = errors.New("entry form incomplete")
