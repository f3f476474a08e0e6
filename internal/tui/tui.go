// Package tui is the local single-player terminal front end. It drives the
// same command use case the HTTP server exposes, against in-process
// repositories.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"phoenixcore/internal/app/command"
	"phoenixcore/internal/app/guide"
	"phoenixcore/internal/domain/game"
	"phoenixcore/internal/domain/world"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

// Deps are the use cases and fixed identifiers the terminal front end
// drives. SessionID is pinned for the lifetime of the program.
type Deps struct {
	CommandUC  *command.UseCase
	GuideUC    guide.UseCase
	World      world.Definition
	SessionID  string
	PlayerName string
}

type model struct {
	state     sessionState
	deps      Deps
	last      *command.Response
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int

	// commandSeq numbers each submitted command so retries of the same
	// submission stay idempotent while new commands always run.
	commandSeq int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		state:     statePlaying,
		deps:      deps,
		textInput: ti,
		gameLog:   deps.World.IntroMessage + "\n\n",
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type commandDoneMsg struct {
	resp   command.Response
	manual string
	err    error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			raw := m.textInput.Value()
			if strings.TrimSpace(raw) == "" {
				return m, nil
			}
			m.textInput.Reset()

			if raw == "/quit" || raw == "quit" || raw == "exit" {
				return m, tea.Quit
			}

			styledCommand := userStyle.Width(m.logWidth()).Render("> " + raw)
			m.gameLog += styledCommand + "\n\n"
			m.viewport.SetContent(m.gameLog)
			m.viewport.GotoBottom()
			m.commandSeq++
			return m, m.runCommand(raw, fmt.Sprintf("%s-cmd-%d", m.deps.SessionID, m.commandSeq))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()

	case commandDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		resp := msg.resp
		m.last = &resp
		text := resp.Message
		if msg.manual != "" {
			text += "\n\n" + msg.manual
		}
		m.gameLog += gameStyle.Width(m.logWidth()).Render(text) + "\n\n"
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateError:
		return fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.\n", m.err)
	default:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)
		help := helpStyle.Render("Type 'help' for commands, 'guide' for the manual, /quit to exit.")
		return "\n" + lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		) + "\n"
	}
}

func (m model) renderState() string {
	if m.last == nil {
		return ""
	}
	state := m.last.GameState

	location := titleStyle.Render("LOCATION") + "\n" + locationName(m.deps.World, state.Location) + "\n\n"

	statsTitle := titleStyle.Render("STATS") + "\n"
	stats := fmt.Sprintf("Level: %d\nXP: %d\nCredits: %d\nOxygen: %d%%\nPower: %d%%\nRooms: %d/%d\n",
		state.Level, state.XP, state.Credits,
		state.OxygenLevel, state.PowerLevel,
		state.VisitedRooms, len(m.deps.World.Rooms))
	if state.GameCompleted {
		stats += "Mission: COMPLETED\n"
	}
	stats += "\n"

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	if len(state.Inventory) == 0 {
		inventory = "(empty)"
	} else {
		for _, key := range state.Inventory {
			name := key
			if item, ok := m.deps.World.Item(key); ok {
				name = item.Name
			}
			inventory += "- " + name + "\n"
		}
	}

	content := location + statsTitle + stats + invTitle + inventory
	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) runCommand(raw, idempotencyKey string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.deps.CommandUC.Execute(context.Background(), command.Request{
			SessionID:      m.deps.SessionID,
			PlayerName:     m.deps.PlayerName,
			Command:        raw,
			IdempotencyKey: idempotencyKey,
		})
		if err != nil {
			return commandDoneMsg{err: err}
		}

		// The guide verb only announces the manual; fetch the text so the
		// terminal shows it inline.
		manual := ""
		for _, evt := range resp.Events {
			if evt.Type == game.EventGuideRequested {
				if b, err := m.deps.GuideUC.Manual(context.Background()); err == nil {
					manual = string(b)
				}
				break
			}
		}
		return commandDoneMsg{resp: resp, manual: manual}
	}
}

func locationName(def world.Definition, key string) string {
	if room, ok := def.Room(key); ok {
		return room.Name
	}
	return key
}

func Run(deps Deps) error {
	p := tea.NewProgram(NewModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
