package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/budgy/internal/cli"
	"github.com/theirongolddev/budgy/internal/config"
	"github.com/theirongolddev/budgy/internal/model"
	"github.com/theirongolddev/budgy/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// entryValues backs the add-entry form fields.
type entryValues struct {
	kind        model.Kind
	description string
	amount      string
}

// entry converts completed form values into a parsed entry.
func (v entryValues) entry() (cli.Entry, error) {
	if err := cli.ValidateDescription(v.description); err != nil {
		return cli.Entry{}, err
	}
	value, err := cli.ParseAmount(v.amount)
	if err != nil {
		return cli.Entry{}, err
	}
	return cli.Entry{Kind: v.kind, Description: strings.TrimSpace(v.description), Value: value}, nil
}

func validateAmount(s string) error {
	_, err := cli.ParseAmount(s)
	return err
}

func newEntryForm(vals *entryValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.Kind]().
				Title("Type").
				Options(
					huh.NewOption("Income (+)", model.Income),
					huh.NewOption("Expense (-)", model.Expense),
				).
				Value(&vals.kind),
			huh.NewInput().
				Title("Description").
				Placeholder("Add description").
				CharLimit(120).
				Value(&vals.description).
				Validate(cli.ValidateDescription),
			huh.NewInput().
				Title("Value").
				Placeholder("0.00").
				CharLimit(20).
				Value(&vals.amount).
				Validate(validateAmount),
		),
	).WithTheme(entryTheme(vals.kind)).WithShowHelp(true)
}

// entryTheme accents the form with the income or expense color, so expense
// entry reads red at a glance.
func entryTheme(kind model.Kind) *huh.Theme {
	accent := theme.Active.Income
	if kind == model.Expense {
		accent = theme.Active.Expense
	}

	th := huh.ThemeBase()
	th.Focused.Base = th.Focused.Base.BorderForeground(accent)
	th.Focused.Title = th.Focused.Title.Foreground(accent).Bold(true)
	th.Focused.SelectSelector = th.Focused.SelectSelector.Foreground(accent)
	th.Focused.ErrorMessage = th.Focused.ErrorMessage.Foreground(theme.Active.Warn)
	th.Focused.ErrorIndicator = th.Focused.ErrorIndicator.Foreground(theme.Active.Warn)
	return th
}

func (a App) openEntryForm() (tea.Model, tea.Cmd) {
	a.entryVals = &entryValues{kind: a.entryKind}
	a.entryForm = newEntryForm(a.entryVals)
	a.entryAccent = a.entryKind
	if a.width > 0 {
		a.entryForm = a.entryForm.WithWidth(a.formWidth())
	}
	a.showHelp = false
	return a, a.entryForm.Init()
}

func (a App) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.entryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.entryForm = f
	}
	a.syncEntryTheme()

	switch a.entryForm.State {
	case huh.StateCompleted:
		a.entryForm = nil
		a.completeEntry(*a.entryVals)
		return a, nil
	case huh.StateAborted:
		a.entryForm = nil
		a.setStatus("Cancelled", false)
		return a, nil
	}
	return a, cmd
}

// syncEntryTheme recolors the entry form when its Type select changes.
func (a *App) syncEntryTheme() {
	if a.entryForm == nil || a.entryVals == nil {
		return
	}
	kind := a.entryVals.kind
	if !kind.Valid() || kind == a.entryAccent {
		return
	}
	a.entryForm = a.entryForm.WithTheme(entryTheme(kind))
	a.entryAccent = kind
}

// completeEntry commits the submitted form values to the ledger.
func (a *App) completeEntry(vals entryValues) {
	e, err := vals.entry()
	if err != nil {
		a.log.Warn("entry form rejected", "error", err)
		a.setStatus(fmt.Sprintf("%s: %s", errFormIncomplete, err), true)
		return
	}
	// addEntry reports failures through the status bar
	a.addEntry(e.Kind, e.Description, e.Value)
}

// SetupValues backs the setup form fields.
type SetupValues struct {
	Theme       string
	DefaultKind model.Kind
}

// DefaultSetupValues seeds the setup form from the saved config.
func DefaultSetupValues() *SetupValues {
	cfg := config.LoadOrDefault()
	kind, err := model.ParseKind(cfg.General.DefaultKind)
	if err != nil {
		kind = model.Income
	}
	return &SetupValues{Theme: cfg.Appearance.Theme, DefaultKind: kind}
}

// NewSetupForm builds the theme and default-type form shared by the first-run
// wizard and `budgy setup`.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to budgy!").
				Description("Track income and expenses for the month.\nLet's set up a few things."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewSelect[model.Kind]().
				Title("Default entry type").
				Options(
					huh.NewOption("Income", model.Income),
					huh.NewOption("Expense", model.Expense),
				).
				Value(&vals.DefaultKind),
		),
	).WithTheme(huh.ThemeBase()).WithShowHelp(true)
}

// SaveSetup applies the setup values to the config and saves it.
func SaveSetup(vals SetupValues) error {
	cfg := config.LoadOrDefault()
	if theme.Exists(vals.Theme) {
		cfg.Appearance.Theme = vals.Theme
		theme.SetActive(vals.Theme)
	}
	if vals.DefaultKind.Valid() {
		cfg.General.DefaultKind = vals.DefaultKind.String()
	}
	return config.Save(cfg)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := SaveSetup(*a.setupVals); err != nil {
			a.log.Error("saving setup", "error", err)
			a.setStatus("Could not save config: "+err.Error(), true)
		} else {
			a.setStatus("Saved to "+config.Path(), false)
		}
		a.entryKind = a.setupVals.DefaultKind
		a.focus = a.entryKind
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) formWidth() int {
	return min(max(a.width-8, 30), 70)
}

// formCard wraps a form view in the accent-bordered card used for overlays.
func formCard(body string) string {
	t := theme.Active
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(body)
}
