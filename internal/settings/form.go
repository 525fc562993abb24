package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	cfg "huelog/internal/config"
	"huelog/internal/store"
	"huelog/logger"
)

// Run launches an interactive form to edit the suppression settings in
// config.json. The current settings are preselected and saved on submit.
func Run() error {
	current, err := cfg.Load()
	if err != nil {
		return err
	}

	severities := make([]string, len(current.IgnoredSeverities))
	copy(severities, current.IgnoredSeverities)
	subjects := strings.Join(current.IgnoredSubjects, ", ")
	ignoreAll := current.IgnoreAllSubjects
	noColor := current.NoColor

	theme := Theme()

	opts := make([]huh.Option[string], 0, 3)
	for _, s := range logger.Severities() {
		opts = append(opts, huh.NewOption(s.String(), s.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Suppression").Description("Messages matching these settings are dropped."),
			huh.NewMultiSelect[string]().
				Title("Ignored severities").
				Options(opts...).
				Height(len(opts)+1).
				Value(&severities),
			huh.NewInput().
				Title("Ignored subjects").
				Placeholder("comma separated, e.g. debug, net").
				Value(&subjects),
			huh.NewConfirm().
				Title("Ignore all subjects").
				Value(&ignoreAll),
			huh.NewConfirm().
				Title("Disable colour").
				Value(&noColor),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	next := cfg.Settings{
		IgnoredSubjects:   SplitList(subjects),
		IgnoredSeverities: severities,
		IgnoreAllSubjects: ignoreAll,
		NoColor:           noColor,
	}
	if err := cfg.Save(next); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved config.json (%d subjects, %d severities)\n\n", len(next.IgnoredSubjects), len(next.IgnoredSeverities))
	return nil
}

// Theme is the huh theme used by the settings form.
func Theme() *huh.Theme {
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(20).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(20).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)
	return theme
}

// SplitList splits a comma or whitespace separated list into normalized items.
func SplitList(s string) []string {
	return store.Normalize(strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	}))
}
