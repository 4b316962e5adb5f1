package capability

import (
	"sync"

	"github.com/nevware21/chromacon/logger"
)

// Detector supplies a color level in place of Detect. Returning an
// invalid level (AutoDetect included) falls back to Detect.
type Detector func() Level

// Listener is told the new level whenever the negotiated level is
// resolved or changes.
type Listener func(Level)

type Options struct {
	// Level is the initial level. AutoDetect (the zero value) resolves on
	// first use.
	Level Level
	// MaxLevel caps every resolved level. AutoDetect means no cap.
	MaxLevel Level
	Detector Detector
	// Environment defaults to OSEnvironment.
	Environment *Environment
	Logger      logger.Logger
}

// Negotiator owns the color level shared by a set of formatters.
type Negotiator struct {
	mu        sync.Mutex
	level     Level
	maxLevel  Level
	detector  Detector
	env       Environment
	listeners []*listener
	logger    logger.Logger
}

type listener struct {
	fn Listener
}

func NewNegotiator(opts Options) *Negotiator {
	env := OSEnvironment()
	if opts.Environment != nil {
		env = *opts.Environment
	}
	n := &Negotiator{
		level:    AutoDetect,
		maxLevel: opts.MaxLevel,
		detector: opts.Detector,
		env:      env,
		logger:   logger.OrDiscard(opts.Logger),
	}
	if opts.Level.Valid() {
		n.level = n.clamp(opts.Level)
	}
	return n
}

// Level returns the current level, detecting it first when it is not
// resolved yet. A detection notifies the listeners.
func (n *Negotiator) Level() Level {
	n.mu.Lock()
	if n.level.Valid() {
		level := n.level
		n.mu.Unlock()
		return level
	}
	level := n.clamp(n.detect())
	n.level = level
	listeners := n.snapshot()
	n.mu.Unlock()

	n.notify(listeners, level)
	return level
}

// SetLevel changes the level. Anything but a valid level triggers a fresh
// detection. Listeners are notified when the level changes.
func (n *Negotiator) SetLevel(level Level) {
	n.mu.Lock()
	if !level.Valid() {
		level = n.detect()
	}
	level = n.clamp(level)
	if level == n.level {
		n.mu.Unlock()
		return
	}
	n.level = level
	listeners := n.snapshot()
	n.mu.Unlock()

	n.notify(listeners, level)
}

// SetDetector replaces the custom detector; nil restores Detect. The
// current level is kept until the next SetLevel(AutoDetect).
func (n *Negotiator) SetDetector(fn Detector) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.detector = fn
}

// SetMaxLevel changes the cap applied to resolved levels. The current
// level is clamped right away.
func (n *Negotiator) SetMaxLevel(limit Level) {
	n.mu.Lock()
	n.maxLevel = limit
	if !n.level.Valid() || n.clamp(n.level) == n.level {
		n.mu.Unlock()
		return
	}
	n.level = n.clamp(n.level)
	level := n.level
	listeners := n.snapshot()
	n.mu.Unlock()

	n.notify(listeners, level)
}

// OnChange registers fn and returns the function removing it. Removing
// twice is a no-op.
func (n *Negotiator) OnChange(fn Listener) (unsubscribe func()) {
	l := &listener{fn: fn}
	n.mu.Lock()
	n.listeners = append(n.listeners, l)
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, item := range n.listeners {
			if item == l {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

func (n *Negotiator) IsColorSupported() bool {
	return n.Level() != None
}

func (n *Negotiator) IsAnsi256Supported() bool {
	return n.Level() >= Ansi256
}

func (n *Negotiator) IsTrueColorSupported() bool {
	return n.Level() == TrueColor
}

// detect runs the custom detector, then Detect. Must hold n.mu.
func (n *Negotiator) detect() Level {
	if n.detector != nil {
		if level := n.runDetector(); level.Valid() {
			n.logger.Debug("color level detected", "level", level, "source", "detector")
			return level
		}
	}
	level := orNone(Detect(n.env))
	n.logger.Debug("color level detected", "level", level, "source", "environment")
	return level
}

func (n *Negotiator) runDetector() (level Level) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Warn("color detector panicked", "panic", r)
			level = AutoDetect
		}
	}()
	return n.detector()
}

func (n *Negotiator) clamp(level Level) Level {
	if n.maxLevel.Valid() && level > n.maxLevel {
		return n.maxLevel
	}
	return level
}

func (n *Negotiator) snapshot() []*listener {
	result := make([]*listener, len(n.listeners))
	copy(result, n.listeners)
	return result
}

func (n *Negotiator) notify(listeners []*listener, level Level) {
	for _, l := range listeners {
		n.call(l, level)
	}
}

func (n *Negotiator) call(l *listener, level Level) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Warn("color level listener panicked", "panic", r, "level", level)
		}
	}()
	l.fn(level)
}
