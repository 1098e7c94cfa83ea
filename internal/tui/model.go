// Package tui provides the Bubble Tea interval timer interface.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/intervals/internal/config"
	"github.com/verte-zerg/intervals/internal/engine"
	"github.com/verte-zerg/intervals/internal/model"
	"github.com/verte-zerg/intervals/internal/sound"
)

const (
	tabTimer = iota
	tabSettings
)

const (
	fieldWork = iota
	fieldRest
	fieldRepetitions
)

const (
	workColor     = "#00FF00"
	restColor     = "#FFD700"
	maxBarWidth   = 60
	repMarker     = "•"
	settingsWidth = 4
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	workStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(workColor)).Bold(true)
	restStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(restColor)).Bold(true)
	clockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea timer UI.
type Model struct {
	engine  *engine.Engine
	alerter *sound.Alerter

	timerKeys    timerKeys
	settingsKeys settingsKeys
	help         help.Model
	bar          progress.Model

	activeTab int
	inputs    []textinput.Model
	focus     int
	formErr   string

	width  int
	height int
}

// NewModel constructs a timer TUI model. alerter may be nil.
func NewModel(eng *engine.Engine, alerter *sound.Alerter) *Model {
	m := &Model{
		engine:       eng,
		alerter:      alerter,
		timerKeys:    newTimerKeys(),
		settingsKeys: newSettingsKeys(),
		help:         help.New(),
		bar:          progress.New(progress.WithSolidFill(workColor), progress.WithoutPercentage()),
	}
	m.bar.Width = maxBarWidth
	m.initInputs()
	return m
}

func (m *Model) initInputs() {
	prompts := []string{"Work duration (minutes): ", "Rest duration (minutes): ", "Repetitions:              "}
	m.inputs = make([]textinput.Model, len(prompts))
	for i, prompt := range prompts {
		ti := textinput.New()
		ti.Prompt = prompt
		ti.CharLimit = settingsWidth
		ti.Width = settingsWidth
		m.inputs[i] = ti
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil
	case TickMsg:
		m.engine.Tick()
		m.alerter.Observe(m.engine.Snapshot())
		return m, nil
	case tea.KeyMsg:
		if m.activeTab == tabSettings {
			return m.updateSettings(msg)
		}
		return m.updateTimer(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.timerKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.timerKeys.Start):
		m.engine.Start()
	case key.Matches(msg, m.timerKeys.Pause):
		m.engine.Pause()
	case key.Matches(msg, m.timerKeys.Stop):
		m.engine.Stop()
	case key.Matches(msg, m.timerKeys.Next):
		m.engine.SkipForward()
	case key.Matches(msg, m.timerKeys.Back):
		m.engine.SkipBackward()
	case key.Matches(msg, m.timerKeys.Settings):
		return m, m.openSettings()
	}
	return m, nil
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.settingsKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.settingsKeys.Cancel):
		m.closeSettings()
		return m, nil
	case key.Matches(msg, m.settingsKeys.Apply):
		m.applySettings()
		return m, nil
	case key.Matches(msg, m.settingsKeys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.settingsKeys.Prev):
		return m, m.moveFocus(-1)
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) openSettings() tea.Cmd {
	cfg := m.engine.Config()
	m.inputs[fieldWork].SetValue(strconv.Itoa(cfg.WorkSeconds / 60))
	m.inputs[fieldRest].SetValue(strconv.Itoa(cfg.RestSeconds / 60))
	m.inputs[fieldRepetitions].SetValue(strconv.Itoa(cfg.Repetitions))
	m.formErr = ""
	m.activeTab = tabSettings
	m.focus = 0
	return m.moveFocus(0)
}

func (m *Model) closeSettings() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.formErr = ""
	m.activeTab = tabTimer
}

// applySettings reconfigures the engine from the form. Invalid input
// leaves the engine untouched and keeps the form open.
func (m *Model) applySettings() {
	cfg, err := config.ParseInput(
		m.inputs[fieldWork].Value(),
		m.inputs[fieldRest].Value(),
		m.inputs[fieldRepetitions].Value(),
	)
	if err != nil {
		m.formErr = err.Error()
		return
	}
	m.engine.Reconfigure(cfg)
	m.closeSettings()
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var body, footer string
	if m.activeTab == tabSettings {
		body = m.renderSettings()
		footer = m.help.View(m.settingsKeys)
	} else {
		body = m.renderTimer()
		footer = m.help.View(m.timerKeys)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, m.renderTabs(), "", body)
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	page := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return page + "\n" + footerLine
}

func (m *Model) renderTabs() string {
	labels := []string{"Timer", "Settings"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if i == m.activeTab {
			rendered[i] = activeTabStyle.Render(label)
		} else {
			rendered[i] = inactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderTimer() string {
	snap := m.engine.Snapshot()
	cfg := m.engine.Config()

	m.bar.FullColor = stageColor(snap.Stage)
	lines := []string{
		stageStyle(snap.Stage).Render(snap.Stage.String()),
		clockStyle.Render(snap.Clock()),
		m.bar.ViewAs(stageFraction(snap, cfg)),
		m.renderRepetitions(snap.RepetitionsLeft),
		mutedStyle.Render(statusLabel(snap)),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderRepetitions(left int) string {
	line := "Repetitions: " + strings.TrimSpace(strings.Repeat(repMarker+" ", left))
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width-2, "…")
	}
	return line
}

func (m *Model) renderSettings() string {
	lines := make([]string, 0, len(m.inputs)+2)
	for _, in := range m.inputs {
		lines = append(lines, in.View())
	}
	if m.formErr != "" {
		lines = append(lines, "", errorStyle.Render(m.formErr))
	} else {
		lines = append(lines, "", footerStyle.Render("Applying stops the timer and resets the session."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func stageStyle(stage model.Stage) lipgloss.Style {
	if stage == model.StageRest {
		return restStyle
	}
	return workStyle
}

func stageColor(stage model.Stage) string {
	if stage == model.StageRest {
		return restColor
	}
	return workColor
}

// stageFraction is the share of the current stage still remaining.
func stageFraction(snap model.Snapshot, cfg model.TimerConfig) float64 {
	total := cfg.Duration(snap.Stage)
	if total <= 0 {
		return 0
	}
	return float64(snap.RemainingSeconds) / float64(total)
}

func statusLabel(snap model.Snapshot) string {
	switch {
	case snap.Finished():
		return "Done"
	case snap.Running:
		return "Running"
	default:
		return fmt.Sprintf("Paused · %d left", snap.RepetitionsLeft)
	}
}

func barWidth(termWidth int) int {
	w := termWidth - 4
	if w > maxBarWidth {
		w = maxBarWidth
	}
	if w < 1 {
		w = 1
	}
	return w
}
