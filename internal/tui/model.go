// Package tui runs a slider as an interactive Bubble Tea program and paints
// static terminal frames of it.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slider/internal/logger"
	"github.com/alexisbeaulieu97/slider/internal/slider"
	"github.com/alexisbeaulieu97/slider/internal/transition"
	"github.com/alexisbeaulieu97/slider/internal/ui/components"
	"github.com/alexisbeaulieu97/slider/internal/view"
)

const (
	// DefaultWidth and DefaultHeight size the slide area before the terminal
	// reports its size.
	DefaultWidth  = 60
	DefaultHeight = 10

	minWidth  = 12
	minHeight = 3

	// chromeRows are the rows around the slide area: header, two border rows,
	// navigation, deck progress and help.
	chromeRows = 6
	// chromeCols are the two border columns.
	chromeCols = 2

	frameInterval = time.Second / 30
)

// Options configures an interactive session.
type Options struct {
	Title  string
	Slides []view.Slide
	Slider slider.Options

	Width  int
	Height int

	Theme  components.Theme
	Logger *logger.Logger

	// Now defaults to time.Now.
	Now func() time.Time
	// Tick defaults to tea.Tick.
	Tick TickFunc
}

type frameMsg struct{}

// session holds the state shared by every copy of the Model.
type session struct {
	ctrl     *slider.Controller
	sched    *Scheduler
	painter  *Painter
	progress deckProgress
	slides   []view.Slide
	title    string
	theme    components.Theme
	log      *logger.Logger
	now      func() time.Time
	tick     TickFunc

	area           transition.Rect
	frameScheduled bool
	shown          int
}

// Model is the Bubble Tea model of an interactive slider.
type Model struct {
	s        *session
	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds the controller for opts and returns a model ready to run.
// The controller is mounted by Init.
func NewModel(opts Options) (Model, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Tick == nil {
		opts.Tick = tea.Tick
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Theme.Name == "" {
		opts.Theme = components.DefaultTheme()
	}

	s := &session{
		sched:    NewSchedulerWithTick(opts.Tick),
		painter:  NewPainter(opts.Theme),
		progress: newDeckProgress(len(opts.Slides), opts.Width),
		slides:   opts.Slides,
		title:    opts.Title,
		theme:    opts.Theme,
		log:      opts.Logger,
		now:      opts.Now,
		tick:     opts.Tick,
		shown:    -1,
	}
	s.resize(opts.Width, opts.Height)

	sliderOpts := opts.Slider
	onShow := sliderOpts.OnShow
	sliderOpts.OnShow = func(index int) {
		s.shown = index
		s.log.With("index", index).Info("slide shown")
		if onShow != nil {
			onShow(index)
		}
	}

	ctrl, err := slider.New(len(opts.Slides), sliderOpts, slider.Deps{
		Scheduler: s.sched,
		Measurer:  slider.MeasureFunc(func(slider.ViewRole) transition.Rect { return s.area }),
		Logger:    opts.Logger,
	})
	if err != nil {
		return Model{}, err
	}
	s.ctrl = ctrl

	h := help.New()
	h.Width = opts.Width + chromeCols
	return Model{s: s, keys: defaultKeyMap(), help: h}, nil
}

// Init mounts the controller and arms its first timers.
func (m Model) Init() tea.Cmd {
	m.s.ctrl.Mount()
	m.s.log.WithFields(map[string]any{
		"slides":   m.s.ctrl.ItemCount(),
		"autoplay": m.s.ctrl.Autoplaying(),
	}).Info("slider session started")
	return m.s.flush()
}

// Controller exposes the controller driven by the model.
func (m Model) Controller() *slider.Controller {
	return m.s.ctrl
}

// Shown returns the index last announced through OnShow, or -1 before mount.
func (m Model) Shown() int {
	return m.s.shown
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (s *session) resize(width, height int) {
	s.area = transition.Rect{
		Width:  float64(max(width, minWidth)),
		Height: float64(max(height, minHeight)),
	}
	s.progress.bar.Width = max(int(s.area.Width)-len(" 100%"), 1)
}

func (s *session) areaSize() (int, int) {
	return int(s.area.Width), int(s.area.Height)
}

// flush collects the commands armed by the controller and keeps frame ticks
// running while a view is animating.
func (s *session) flush() tea.Cmd {
	cmds := []tea.Cmd{s.sched.Drain()}

	now := s.now()
	s.painter.Sync(view.Build(s.ctrl, s.slides), now)
	if s.painter.Animating(now) && !s.frameScheduled {
		s.frameScheduled = true
		cmds = append(cmds, s.tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} }))
	}
	return tea.Batch(cmds...)
}
