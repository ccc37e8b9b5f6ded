package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/azure-guardian/internal/ai"
	"github.com/appengine-ltd/azure-guardian/internal/game"
	"github.com/appengine-ltd/azure-guardian/internal/play"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Play      play.Options
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	m, err := newModel(a.cfg)
	if err != nil {
		return err
	}
	defer m.ctl.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

const (
	tickRate = time.Second / 60
	// Terminals report key repeats but no releases, so a steering key
	// counts as held until its repeat stream goes quiet.
	holdWindow = 300 * time.Millisecond

	headerLines  = 2
	answerLines  = 2
	messageLines = 3
	footerLines  = answerLines + messageLines + 1
	inputMaxLen  = 120
)

type tickMsg time.Time

type model struct {
	cfg  AppConfig
	ctl  *play.Controller
	snap game.Snapshot

	width  int
	height int

	typing bool
	input  string

	leftUntil  time.Time
	rightUntil time.Time
	heldLeft   bool
	heldRight  bool

	now func() time.Time
}

func newModel(cfg AppConfig) (model, error) {
	ctl, err := play.New(cfg.Play)
	if err != nil {
		return model{}, err
	}
	return model{cfg: cfg, ctl: ctl, snap: ctl.Snapshot(), now: time.Now}, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		m.setHeld(now.Before(m.leftUntil), now.Before(m.rightUntil))
		m.ctl.Tick(now)
		m.snap = m.ctl.Snapshot()
		if m.ctl.Quit() {
			return m, tea.Quit
		}
		return m, tick()
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if aim, ok := m.cellToCanvas(msg.X, msg.Y); ok {
				m.click(aim)
			}
		}
		return m, nil
	case tea.KeyMsg:
		if m.typing {
			return m.updateTyping(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	playing := m.snap.State == game.StatePlaying
	switch msg.String() {
	case "ctrl+c", "q":
		m.ctl.RequestQuit()
		return m, tea.Quit
	case "left", "a":
		m.leftUntil = m.now().Add(holdWindow)
		m.rightUntil = time.Time{}
	case "right", "d":
		m.rightUntil = m.now().Add(holdWindow)
		m.leftUntil = time.Time{}
	case " ":
		if playing {
			m.ctl.Submit("cast")
		} else {
			m.ctl.Submit("start")
		}
	case "enter":
		if !playing {
			m.ctl.Submit("start")
		}
	case "f":
		m.ctl.Submit("fact")
	case "r":
		m.ctl.Submit("recipe")
	case "i":
		m.ctl.Submit("ai")
	case "n":
		m.ctl.Submit("model")
	case "?", "h":
		m.ctl.Submit("help")
	case "m":
		m.ctl.ToggleMute()
	case "esc":
		m.ctl.DismissAnswer()
	case "/", ":":
		m.typing = true
		m.input = ""
	}
	return m, nil
}

func (m model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.ctl.RequestQuit()
		return m, tea.Quit
	case tea.KeyEsc:
		m.typing = false
		m.input = ""
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input)
		m.input = ""
		if line == "" {
			m.typing = false
			return m, nil
		}
		m.ctl.Submit(line)
		m.typing = m.ctl.Pending() != nil
		if m.ctl.Quit() {
			return m, tea.Quit
		}
	case tea.KeyBackspace:
		if m.input != "" {
			_, size := utf8.DecodeLastRuneInString(m.input)
			m.input = m.input[:len(m.input)-size]
		}
	case tea.KeySpace:
		m.appendInput(" ")
	case tea.KeyRunes:
		m.appendInput(string(msg.Runes))
	}
	return m, nil
}

func (m *model) appendInput(s string) {
	if utf8.RuneCountInString(m.input)+utf8.RuneCountInString(s) > inputMaxLen {
		return
	}
	m.input += s
}

// setHeld forwards steering transitions only, like the window client.
func (m *model) setHeld(left, right bool) {
	q := m.ctl.Queue()
	if left != m.heldLeft {
		q.Enqueue(game.Action{Kind: game.ActionLeft, Down: left})
		m.heldLeft = left
	}
	if right != m.heldRight {
		q.Enqueue(game.Action{Kind: game.ActionRight, Down: right})
		m.heldRight = right
	}
}

func (m model) click(aim game.Vec) {
	if m.snap.State != game.StatePlaying {
		m.ctl.StartSession()
		return
	}
	m.ctl.CastAt(aim)
}

// sceneRect is the block of cells the sea occupies. cols and rows are zero
// when the terminal is too small to draw it.
func (m model) sceneRect() (top, cols, rows int) {
	cols = m.width
	rows = m.height - headerLines - footerLines
	if cols < minSceneCols || rows < minSceneRows {
		return headerLines, 0, 0
	}
	return headerLines, cols, rows
}

// cellToCanvas maps a terminal cell to the centre of the canvas area it
// shows. Cells outside the scene are no input.
func (m model) cellToCanvas(x, y int) (game.Vec, bool) {
	top, cols, rows := m.sceneRect()
	canvas := m.snap.Canvas
	if cols <= 0 || rows <= 0 || canvas.X <= 0 || canvas.Y <= 0 {
		return game.Vec{}, false
	}
	if x < 0 || x >= cols || y < top || y >= top+rows {
		return game.Vec{}, false
	}
	return game.Vec{
		X: (float64(x) + 0.5) * canvas.X / float64(cols),
		Y: (float64(y-top) + 0.5) * canvas.Y / float64(rows),
	}, true
}

func (m model) View() string {
	lines := []string{m.hudLine(), mutedStyle.Render(statusLine(m.ctl))}

	_, cols, rows := m.sceneRect()
	if scene := renderSceneANSI(m.snap, cols, rows); scene != "" {
		lines = append(lines, scene)
	} else {
		lines = append(lines, warnStyle.Render("Make the terminal larger to see the sea."))
	}

	lines = append(lines, m.answerView()...)
	lines = append(lines, m.messageView()...)
	lines = append(lines, m.promptLine())
	return strings.Join(lines, "\n")
}

func (m model) hudLine() string {
	parts := []string{titleStyle.Render("AZURE GUARDIAN")}
	if m.snap.State == game.StatePlaying {
		parts = append(parts,
			labelStyle.Render("SCORE ")+valueStyle.Render(fmt.Sprint(m.snap.Score)),
			labelStyle.Render("TIME ")+timerStyle(m.snap.TimeLeft).Render(fmt.Sprint(m.snap.TimeLeft)),
		)
	} else if m.cfg.Version != "" {
		parts = append(parts, mutedStyle.Render("v"+m.cfg.Version))
	}
	return strings.Join(parts, "  ")
}

func statusLine(ctl *play.Controller) string {
	cfg := ctl.AIConfig()
	parts := []string{"AI off"}
	if cfg.AIEnabled {
		name := cfg.ModelID
		if meta, ok := ai.ModelByID(name); ok {
			name = meta.Name
		}
		parts[0] = "AI: " + name
	}
	if n := len(ctl.Landed()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d landed", n))
	}
	return strings.Join(parts, "  ·  ")
}

func (m model) answerView() []string {
	out := make([]string, 0, answerLines)
	a := m.ctl.Answer()
	if a.Name != "" {
		title := "Fact: "
		if a.Topic == ai.TopicRecipe {
			title = "Recipe: "
		}
		text := a.Text
		if a.Busy {
			text = "Asking the sea..."
		}
		width := max(m.width-2, 20)
		wrapped := lipgloss.NewStyle().Width(width).Render(title + a.Name + " - " + text)
		for i, line := range strings.Split(wrapped, "\n") {
			if i >= answerLines {
				break
			}
			out = append(out, answerStyle.Render(line))
		}
	}
	for len(out) < answerLines {
		out = append(out, "")
	}
	return out
}

func (m model) messageView() []string {
	msgs := m.ctl.Messages()
	if len(msgs) > messageLines {
		msgs = msgs[len(msgs)-messageLines:]
	}
	out := make([]string, 0, messageLines)
	for _, msg := range msgs {
		out = append(out, messageStyle.Render(msg))
	}
	for len(out) < messageLines {
		out = append(out, "")
	}
	return out
}

func (m model) promptLine() string {
	if m.typing {
		return promptStyle.Render("> ") + m.input + "_"
	}
	switch m.snap.State {
	case game.StatePlaying:
		return mutedStyle.Render("←/→ steer  space cast  click aim  f fact  r recipe  / type  q quit")
	case game.StateGameOver:
		head := "Time's up!"
		if m.snap.Reason == game.ReasonTrash {
			head = "Ocean polluted!"
		}
		return dangerStyle.Render(head) + mutedStyle.Render(fmt.Sprintf(" Final score %d. Enter to play again.", m.snap.Score))
	default:
		secs := int(m.cfg.Play.Tuning.SessionSeconds)
		return mutedStyle.Render(fmt.Sprintf("Enter to start a %d second shift  / type  q quit", secs))
	}
}
