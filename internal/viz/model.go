package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fourier/internal/config"
	"github.com/san-kum/fourier/internal/geometry"
	"github.com/san-kum/fourier/internal/sequencer"
)

// Notices shown when the animation changes mode.
const (
	NoticeStatic = "Switching to static view."
	NoticeClosed = "Figure closed, ending program."
)

// TickMsg advances the animation by one frame. Ticks from a superseded
// chain (after pause and resume) carry a stale ID and are dropped.
type TickMsg struct {
	ID   int
	Time time.Time
}

// cameraMsg steps the camera zoom spring.
type cameraMsg struct{}

func settleCamera() tea.Cmd {
	return tea.Tick(time.Second/CameraFPS, func(time.Time) tea.Msg { return cameraMsg{} })
}

type Options struct {
	Interval     time.Duration
	WaitForInput bool
	Theme        string
}

// Model drives a sequencer from timer ticks and draws every frame.
type Model struct {
	seq      *sequencer.Sequencer
	views    *Views
	frame    geometry.Frame
	interval time.Duration
	tickID   int
	waiting  bool
	paused   bool
	closed   bool
	showHelp bool
	zooming  bool
	notice   string
	err      error
}

func NewModel(seq *sequencer.Sequencer, bounds geometry.Bounds, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Duration(config.DefaultIntervalMs) * time.Millisecond
	}
	return Model{
		seq:      seq,
		views:    NewViews(bounds, GetTheme(opts.Theme)),
		interval: interval,
		waiting:  opts.WaitForInput,
	}
}

// NewModelFromConfig builds the whole pipeline for cfg.
func NewModelFromConfig(cfg *config.Config) (Model, error) {
	seq, bounds, err := sequencer.Build(cfg)
	if err != nil {
		return Model{}, err
	}
	return NewModel(seq, bounds, Options{
		Interval:     time.Duration(cfg.FrameIntervalMs) * time.Millisecond,
		WaitForInput: cfg.WaitForInput,
		Theme:        cfg.Theme,
	}), nil
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg{ID: id, Time: t} })
}

func (m Model) Init() tea.Cmd {
	if m.waiting {
		return nil
	}
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.views.FitTerminal(msg.Width, msg.Height)
	case cameraMsg:
		if m.views.Camera.Settle() {
			m.zooming = false
			return m, nil
		}
		return m, settleCamera()
	case TickMsg:
		if msg.ID != m.tickID || m.waiting || m.paused || m.seq.Complete() {
			return m, nil
		}
		return m.advance()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.closed = true
		return m, tea.Quit
	}
	if m.waiting {
		m.waiting = false
		return m, m.tick()
	}

	switch msg.String() {
	case " ":
		if m.seq.Complete() {
			break
		}
		m.paused = !m.paused
		if !m.paused {
			m.tickID++
			return m, m.tick()
		}
	case "?":
		m.showHelp = !m.showHelp
	case "t":
		m.views.Theme = m.views.Theme.Next()
	case "x":
		m.views.Camera.RotateX(0.1)
	case "X":
		m.views.Camera.RotateX(-0.1)
	case "y":
		m.views.Camera.RotateY(0.1)
	case "Y":
		m.views.Camera.RotateY(-0.1)
	case "z":
		m.views.Camera.RotateZ(0.1)
	case "Z":
		m.views.Camera.RotateZ(-0.1)
	case "+", "=":
		m.views.Camera.ZoomIn()
		return m.startZoom()
	case "-", "_":
		m.views.Camera.ZoomOut()
		return m.startZoom()
	}
	return m, nil
}

// startZoom begins a camera tick chain unless one is already running.
func (m Model) startZoom() (tea.Model, tea.Cmd) {
	if m.zooming {
		return m, nil
	}
	m.zooming = true
	return m, settleCamera()
}

// advance steps one frame. A bounded run switches to the static replay as
// soon as its last frame is drawn and stops ticking.
func (m Model) advance() (tea.Model, tea.Cmd) {
	f, err := m.seq.Next()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.frame = f
	if !m.seq.Complete() {
		return m, m.tick()
	}

	f, err = m.seq.Replay()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.frame = f
	m.notice = NoticeStatic
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header() + "\n")
	if m.showHelp {
		b.WriteString(helpText + "\n")
	}
	b.WriteString(m.views.Grid(m.frame))
	return b.String()
}

func (m Model) header() string {
	title := titleStyle(m.views.Theme).Render("FOURIER EPICYCLES")

	var status string
	switch {
	case m.err != nil:
		status = StatusError.Render("ERROR " + m.err.Error())
	case m.waiting:
		status = StatusPaused.Render("WAITING · press any key")
	case m.paused:
		status = StatusPaused.Render("PAUSED")
	case m.seq.Complete():
		status = StatusDone.Render(strings.ToUpper(m.seq.Status().String()))
	default:
		status = StatusRunning.Render(AnimatedSpinner(m.seq.Frame()) + " RUNNING")
	}

	res := m.seq.Options().Resolution
	var progress string
	if m.seq.Options().Endless {
		progress = fmt.Sprintf("frame %d  cycle %d/%d  %s", m.seq.Frame(), m.seq.Cycle(), res,
			ProgressBar(float64(m.seq.Cycle())/float64(res), 20))
	} else {
		n := m.seq.Frames()
		progress = fmt.Sprintf("frame %d/%d  %s", m.seq.State().Len(), n,
			ProgressBar(float64(m.seq.State().Len())/float64(n), 20))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", status, "  ", progress)
	if m.notice != "" {
		line += "  " + mutedStyle(m.views.Theme).Render(m.notice)
	}
	return line + "\n" + KeyHint.Render("space pause · t theme · x/y/z rotate · +/- zoom · ? help · q close")
}

const helpText = `
  Space    pause or resume
  T        cycle color themes
  x/X y/Y  rotate the trajectory view
  z/Z      roll the trajectory view
  +/-      zoom the trajectory view
  ?        toggle this help
  Q/Esc    close the figure
`

// Err is the error that ended the animation, if any.
func (m Model) Err() error { return m.err }

// Closed reports whether the user closed the figure.
func (m Model) Closed() bool { return m.closed }

func (m Model) Notice() string { return m.notice }

func (m Model) Frame() geometry.Frame { return m.frame }

func (m Model) Sequencer() *sequencer.Sequencer { return m.seq }

// Run starts a full-screen program for m and returns the final model.
func Run(m Model) (Model, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
