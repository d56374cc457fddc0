package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ringdial/config"
	"ringdial/dial"
)

const (
	// grabMinutes is how close (in clock minutes) a press must land to
	// a handle to grab it; beyond that the press hits the arc body.
	grabMinutes = 45

	// hitBand is the radial tolerance around the arc radius, in ring
	// units, inside which presses count at all.
	hitBand = 0.35
)

// Model is the bubbletea model for the dial. It owns the controller
// and the screen layout; all pointer events funnel through Update in
// arrival order, which is the delivery guarantee the controller needs.
type Model struct {
	ctrl   *dial.Controller
	opts   dial.Options
	logger *zap.Logger

	initialStart dial.Minute
	initialEnd   dial.Minute

	width  int
	height int
	layout ringLayout
}

// NewModel builds the model from loaded configuration.
func NewModel(cfg config.Config, logger *zap.Logger) (Model, error) {
	start, end, err := cfg.Interval()
	if err != nil {
		return Model{}, err
	}
	opts := cfg.Options()
	return Model{
		ctrl:         dial.NewController(start, end, opts),
		opts:         opts,
		logger:       logger,
		initialStart: start,
		initialEnd:   end,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = newRingLayout(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.ctrl.SetInterval(m.initialStart, m.initialEnd)
		}

	case tea.MouseMsg:
		m.handleMouse(tea.MouseEvent(msg))

	case tea.BlurMsg:
		// Losing terminal focus mid-gesture means no release event
		// will arrive; treat it as pointer-cancel.
		if m.ctrl.State() != dial.Idle {
			m.logger.Debug("gesture cancelled on blur", zap.String("session", m.ctrl.Session()))
			m.ctrl.PointerCancel()
		}
	}

	return m, nil
}

// handleMouse maps terminal mouse events onto the controller's
// pointer protocol.
func (m Model) handleMouse(ev tea.MouseEvent) {
	if m.width == 0 {
		return
	}
	angle := m.layout.mapper().Angle(float64(ev.X), float64(ev.Y))

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return
		}
		target := m.hitTest(ev.X, ev.Y)
		if m.ctrl.PointerDown(target, angle) {
			m.logger.Debug("gesture began",
				zap.String("session", m.ctrl.Session()),
				zap.Int("target", int(target)),
				zap.Float64("angle", angle))
		}

	case tea.MouseActionMotion:
		// Motion streams regardless of gesture state (the all-motion
		// capture keeps events coming even off the original target);
		// the controller ignores moves while idle.
		m.ctrl.PointerMove(angle)

	case tea.MouseActionRelease:
		if m.ctrl.State() != dial.Idle {
			m.logger.Debug("gesture ended",
				zap.String("session", m.ctrl.Session()),
				zap.String("start", m.ctrl.Start().Clock()),
				zap.String("end", m.ctrl.End().Clock()))
		}
		m.ctrl.PointerUp()
	}
}

// hitTest resolves which draggable element sits under a cell, if any.
// Handles win over the arc body, and of the two handles the closer
// one wins.
func (m Model) hitTest(x, y int) dial.Target {
	mp := m.layout.mapper()
	r := mp.Radius(float64(x), float64(y))

	arcScale := 1.0
	if m.opts.RingRadius > 0 {
		arcScale = m.opts.ArcRadius / m.opts.RingRadius
	}
	if math.Abs(r-arcScale) > hitBand {
		return dial.TargetNone
	}

	pm := mp.Minute(float64(x), float64(y))
	ds := cyclicDistance(pm, m.ctrl.Start())
	de := cyclicDistance(pm, m.ctrl.End())
	if ds <= grabMinutes || de <= grabMinutes {
		if ds <= de {
			return dial.TargetStartHandle
		}
		return dial.TargetEndHandle
	}

	if dial.Span(m.ctrl.Start(), pm) <= m.ctrl.Duration() {
		return dial.TargetArcBody
	}
	return dial.TargetNone
}

// cyclicDistance is the shorter way around between two minutes.
func cyclicDistance(a, b dial.Minute) int {
	d := dial.Span(a, b)
	if d > dial.MinutesPerDay/2 {
		d = dial.MinutesPerDay - d
	}
	return d
}
