// Package repl implements an interactive Bubble Tea front-end: a
// scrollable transcript of source, tokens and results above a multi-line
// input box. Modeled on mgomes-vibescript's Model/Update/View split (a
// bubbles/textarea for input, a bubbles/viewport for scrollback), adapted
// here to drive the lexer and interpreter live instead of a chat client.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amrul94/InterpreterForMython/config"
	"github.com/amrul94/InterpreterForMython/lexer"
	"github.com/amrul94/InterpreterForMython/parser"
	"github.com/amrul94/InterpreterForMython/token"
	"github.com/amrul94/InterpreterForMython/value"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	tokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	inputBox    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Model is the REPL's Bubble Tea state: an accumulating global Closure
// (so `x = 1` in one submission is visible to the next), a scrollback
// viewport, and a multi-line textarea for the next submission.
type Model struct {
	cfg      config.REPLConfig
	input    textarea.Model
	viewport viewport.Model
	closure  value.Closure
	history  []string
	ready    bool
}

// NewModel builds a REPL model from cfg, ready to be handed to
// tea.NewProgram.
func NewModel(cfg config.REPLConfig) Model {
	ta := textarea.New()
	ta.Placeholder = "class Point:\n  def __init__(self, x):\n    self.x = x"
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.Focus()

	vp := viewport.New(80, 20)

	m := Model{
		cfg:      cfg,
		input:    ta,
		viewport: vp,
		closure:  value.Closure{},
	}
	vp.SetContent(m.banner())
	return m
}

func (m Model) banner() string {
	return promptStyle.Render("Mython REPL") +
		"\n" + tokenStyle.Render("Enter statements, then press Ctrl+D to run them. Ctrl+C to quit.") + "\n"
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetWidth(msg.Width - 4)
		m.viewport.Width = msg.Width
		inputHeight := lipgloss.Height(inputBox.Render(m.input.View()))
		m.viewport.Height = msg.Height - inputHeight - 1
		if !m.ready {
			m.ready = true
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit lexes, parses and executes the current input buffer, appending
// the transcript (echoed source, the token stream, and either the printed
// output or an error) to the scrollback viewport.
func (m *Model) submit() {
	src := m.input.Value()
	if strings.TrimSpace(src) == "" {
		return
	}
	m.history = append(m.history, src)

	var transcript strings.Builder
	fmt.Fprintln(&transcript, promptStyle.Render(m.cfg.Prompt)+src)
	fmt.Fprintln(&transcript, tokenStyle.Render(tokenSummary(src)))

	if err := m.run(src, &transcript); err != nil {
		fmt.Fprintln(&transcript, errorStyle.Render(err.Error()))
	}

	m.viewport.SetContent(m.viewport.View() + "\n" + transcript.String())
	m.viewport.GotoBottom()
	m.input.Reset()
}

func (m *Model) run(src string, w *strings.Builder) error {
	lex, err := lexer.New([]byte(src + "\n"))
	if err != nil {
		return err
	}
	prog, err := parser.ParseProgram(lex)
	if err != nil {
		return err
	}
	ctx := bufferContext{out: w}
	_, err = prog.Execute(m.closure, ctx)
	return err
}

// tokenSummary renders the token stream for src, purely for display: it
// never affects evaluation, which reparses src independently in run.
func tokenSummary(src string) string {
	lex, err := lexer.New([]byte(src + "\n"))
	if err != nil {
		return fmt.Sprintf("(tokens unavailable: %v)", err)
	}
	var kinds []string
	for {
		tok := lex.CurrentToken()
		if tok.Kind == token.Eof {
			break
		}
		kinds = append(kinds, tok.Kind.String())
		if _, err := lex.NextToken(); err != nil {
			kinds = append(kinds, "!"+err.Error())
			break
		}
	}
	return "tokens: " + strings.Join(kinds, " ")
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + inputBox.Render(m.input.View())
}

// bufferContext satisfies value.Context by writing print output straight
// into the REPL's transcript for the current submission.
type bufferContext struct {
	out *strings.Builder
}

func (c bufferContext) GetOutputStream() io.Writer {
	return c.out
}
