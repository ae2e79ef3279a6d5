package console

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eddiman/mariposa/internal/mariposa"
	"github.com/eddiman/mariposa/internal/model"
	"github.com/eddiman/mariposa/internal/store"
	"github.com/eddiman/mariposa/internal/ui"
)

type responseMsg struct {
	output string
}

type consoleModel struct {
	ctx       context.Context
	client    *mariposa.Client
	store     *store.SQLiteStore
	session   string
	viewport  viewport.Model
	textInput textinput.Model
	spinner   spinner.Model
	messages  []string
	banner    []string
	isLoading bool
	ready     bool
	width     int
	height    int
}

func initialModel(ctx context.Context, client *mariposa.Client, st *store.SQLiteStore, opts Options) consoleModel {
	ti := textinput.New()
	ti.Placeholder = "notes, read note-X, search \"...\", help..."
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 80

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.ClrBrand)

	msgs := banner(opts)

	return consoleModel{
		ctx:       ctx,
		client:    client,
		store:     st,
		session:   opts.Session,
		textInput: ti,
		spinner:   s,
		messages:  msgs,
		banner:    append([]string(nil), msgs...),
	}
}

func (m consoleModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textInput, tiCmd = m.textInput.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.isLoading {
				return m, nil
			}

			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.textInput.SetValue("")

			switch strings.ToLower(input) {
			case "/quit", "quit", "exit":
				return m, tea.Quit
			case "/clear", "clear":
				m.messages = append([]string(nil), m.banner...)
				m.viewport.SetContent(strings.Join(m.messages, "\n\n"))
				m.viewport.GotoBottom()
				return m, nil
			}

			m.messages = append(m.messages, ui.Prompt("mariposa")+input)
			m.isLoading = true
			m.viewport.SetContent(strings.Join(m.messages, "\n\n"))
			m.viewport.GotoBottom()

			return m, tea.Batch(m.resolveCmd(input), m.spinner.Tick)
		}

	case tea.WindowSizeMsg:
		m.applyWindowSize(msg.Width, msg.Height)

	case responseMsg:
		m.isLoading = false
		if msg.output != "" {
			m.messages = append(m.messages, msg.output)
		}
		m.viewport.SetContent(strings.Join(m.messages, "\n\n"))
		m.viewport.GotoBottom()
		return m, nil
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m consoleModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.isLoading {
		b.WriteString(m.spinner.View() + " ")
	} else {
		b.WriteString(ui.Prompt("mariposa"))
	}
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	b.WriteString(ui.Dim("help · clear · esc quits"))
	return b.String()
}

func (m *consoleModel) applyWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	m.width = width
	m.height = height

	vpWidth := maxInt(width-2, 1)
	m.textInput.Width = maxInt(width-16, 1)
	vpHeight := maxInt(height-2, 1)

	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.viewport.SetContent(strings.Join(m.messages, "\n\n"))
		m.ready = true
		return
	}

	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight
}

func (m *consoleModel) resolveCmd(input string) tea.Cmd {
	return func() tea.Msg {
		output := resolve(m.ctx, m.client, input)
		m.record(input, output)
		return responseMsg{output: output}
	}
}

// record appends both sides of the turn to the transcript. Best effort; a
// broken store never blocks the conversation.
func (m *consoleModel) record(input, output string) {
	if m.store == nil {
		return
	}
	_ = m.store.Append(m.ctx, m.session, model.ChatMessage{Role: "user", Content: input})
	_ = m.store.Append(m.ctx, m.session, model.ChatMessage{Role: "assistant", Content: output})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
