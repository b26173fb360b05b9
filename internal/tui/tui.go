// Package tui provides a Bubble Tea terminal user interface for vinylfinder.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benthev/vinylfinder/internal/config"
	"github.com/benthev/vinylfinder/internal/discogs"
	"github.com/benthev/vinylfinder/internal/finder"
	internalhttp "github.com/benthev/vinylfinder/internal/http"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateComplete
	StateError
)

// logEntry is one line of the rolling scan log.
type logEntry struct {
	text      string
	vinylOnly bool
	verdict   bool
	warning   bool
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state      State
	urlInput   textinput.Model
	genreInput textinput.Model
	spinner    spinner.Model
	settings   *config.Settings

	logs    []logEntry
	summary finder.Summary
	err     error

	// Scan context
	ctx    context.Context
	cancel context.CancelFunc

	scanner *finder.Scanner
	events  chan tea.Msg

	// Live counters
	fetched   int
	checked   int
	vinylOnly int

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://www.discogs.com/seller/name/profile"
	urlInput.Focus()
	urlInput.CharLimit = 500
	urlInput.Width = 60

	genreInput := textinput.New()
	genreInput.Placeholder = "genre filter (empty for none)"
	genreInput.SetValue(settings.Scan.Genre)
	genreInput.CharLimit = 100
	genreInput.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:      StateInput,
		urlInput:   urlInput,
		genreInput: genreInput,
		spinner:    sp,
		settings:   settings,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// progressMsg carries a scan diagnostic.
	progressMsg struct {
		Event finder.ProgressEvent
	}

	// resultMsg carries one classified listing.
	resultMsg struct {
		Result finder.Result
	}

	// scanDoneMsg is sent when the scan finishes or fails.
	scanDoneMsg struct {
		Summary finder.Summary
		Err     error
	}

	// tickMsg drives periodic counter refreshes.
	tickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateScanning {
				m.cancel()
			}

		case "tab":
			if m.state == StateInput {
				if m.urlInput.Focused() {
					m.urlInput.Blur()
					m.genreInput.Focus()
				} else {
					m.genreInput.Blur()
					m.urlInput.Focus()
				}
			}

		case "enter":
			if m.state == StateInput && m.urlInput.Value() != "" {
				m.state = StateScanning
				return m, tea.Batch(m.startScan(), m.spinner.Tick, m.tickCounters())
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new scan
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.summary = finder.Summary{}
				m.fetched, m.checked, m.vinylOnly = 0, 0, 0
				m.scanner = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.urlInput.Focus()
				m.genreInput.Blur()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case progressMsg:
		m.appendLog(logEntry{
			text:    msg.Event.Message,
			warning: msg.Event.Level == finder.LevelWarning || msg.Event.Level == finder.LevelError,
		})
		cmds = append(cmds, m.waitForEvent())

	case resultMsg:
		m.appendLog(logEntry{
			text:      msg.Result.Line(),
			verdict:   true,
			vinylOnly: msg.Result.VinylOnly,
		})
		cmds = append(cmds, m.waitForEvent())

	case scanDoneMsg:
		m.summary = msg.Summary
		m.fetched = msg.Summary.Fetched
		m.checked = msg.Summary.Checked
		m.vinylOnly = msg.Summary.VinylOnly
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case tickMsg:
		if m.scanner != nil && m.state == StateScanning {
			m.fetched, m.checked, m.vinylOnly = m.scanner.Progress()
			cmds = append(cmds, m.tickCounters())
		}
	}

	// Update text inputs
	if m.state == StateInput {
		var cmd tea.Cmd
		m.urlInput, cmd = m.urlInput.Update(msg)
		cmds = append(cmds, cmd)
		m.genreInput, cmd = m.genreInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// appendLog adds a line to the rolling log, keeping the last 12.
func (m *Model) appendLog(entry logEntry) {
	m.logs = append(m.logs, entry)
	if len(m.logs) > 12 {
		m.logs = m.logs[len(m.logs)-12:]
	}
}

// startScan wires a Scanner to the event channel and runs it in the
// background. Scan results and diagnostics arrive as Bubble Tea
// messages pumped off the channel one at a time.
func (m *Model) startScan() tea.Cmd {
	events := make(chan tea.Msg, 64)
	m.events = events

	fetcher := internalhttp.NewClient(m.settings.ToFetchConfig())
	clientCfg := m.settings.ToDiscogsConfig()
	clientCfg.Logf = func(format string, args ...any) {}
	client := discogs.NewClient(fetcher, clientCfg)

	scanner := finder.NewScanner(client, m.genreInput.Value(),
		func(e finder.ProgressEvent) {
			if e.Level == finder.LevelVerbose {
				return
			}
			events <- progressMsg{Event: e}
		},
		func(r finder.Result) {
			events <- resultMsg{Result: r}
		})
	m.scanner = scanner

	ctx := m.ctx
	sellerURL := m.urlInput.Value()
	go func() {
		summary, err := scanner.Scan(ctx, sellerURL)
		events <- scanDoneMsg{Summary: summary, Err: err}
	}()

	return m.waitForEvent()
}

// waitForEvent returns a command that delivers the next scan event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return <-events
	}
}

// tickCounters refreshes the live counters a few times a second.
func (m Model) tickCounters() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Vinyl-Only Finder"))
	b.WriteString("\n")

	switch m.state {
	case StateInput:
		b.WriteString(subtitleStyle.Render("Seller profile URL:"))
		b.WriteString("\n")
		b.WriteString(m.urlInput.View())
		b.WriteString("\n\n")
		b.WriteString(subtitleStyle.Render("Genre filter:"))
		b.WriteString("\n")
		b.WriteString(m.genreInput.View())
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("tab: switch field • enter: scan • esc: quit"))

	case StateScanning:
		b.WriteString(fmt.Sprintf("%s Scanning %s\n\n", m.spinner.View(), m.urlInput.Value()))
		b.WriteString(m.countersView())
		b.WriteString("\n\n")
		b.WriteString(m.logsView())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("esc: cancel • ctrl+c: quit"))

	case StateComplete:
		b.WriteString(successStyle.Render("Scan complete"))
		b.WriteString("\n\n")
		b.WriteString(m.logsView())
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.summary.String()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("r: new scan • q: quit"))

	case StateError:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Scan failed: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(m.logsView())
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.summary.String()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("r: retry • q: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

// countersView renders the live totals line.
func (m Model) countersView() string {
	return subtitleStyle.Render(fmt.Sprintf("fetched %d • checked %d • vinyl-only %d",
		m.fetched, m.checked, m.vinylOnly))
}

// logsView renders the rolling log with per-verdict coloring.
func (m Model) logsView() string {
	if len(m.logs) == 0 {
		return dimStyle.Render("waiting for listings...")
	}

	var b strings.Builder
	for _, entry := range m.logs {
		switch {
		case entry.verdict && entry.vinylOnly:
			b.WriteString(successStyle.Render(entry.text))
		case entry.verdict:
			b.WriteString(errorStyle.Render(entry.text))
		case entry.warning:
			b.WriteString(warningStyle.Render(entry.text))
		default:
			b.WriteString(dimStyle.Render(entry.text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the TUI.
func Run() error {
	settings, err := config.Load("")
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
