package chromacon

import (
	"sync"

	"github.com/nevware21/chromacon/logger"
	"github.com/nevware21/chromacon/terminal/capability"
	"github.com/nevware21/chromacon/terminal/color"
	"github.com/nevware21/chromacon/terminal/sgr"
	"github.com/nevware21/chromacon/terminal/style"
)

type Chromacon struct {
	// Theme holds the named styles, all bound to this instance's level.
	Theme

	// The negotiated color level shared by every formatter of this
	// instance. Changing it invalidates the formatter caches.
	negotiator *capability.Negotiator

	// custom styles by descriptor key, so repeated RGB(...) calls share a
	// formatter and a single listener.
	mu     sync.Mutex
	styles map[uint64]*style.Formatter

	logger logger.Logger
}

type Options struct {
	// Level is the initial color level. AutoDetect resolves it from the
	// environment on first use.
	Level capability.Level
	// MaxLevel caps every level, detected or set. AutoDetect means no cap.
	MaxLevel capability.Level
	Detector capability.Detector
	// Environment defaults to the process environment.
	Environment *capability.Environment
	Logger      logger.Logger
}

func New(opts Options) *Chromacon {
	log := logger.OrDiscard(opts.Logger)
	negotiator := capability.NewNegotiator(capability.Options{
		Level:       opts.Level,
		MaxLevel:    opts.MaxLevel,
		Detector:    opts.Detector,
		Environment: opts.Environment,
		Logger:      log,
	})
	c := &Chromacon{
		negotiator: negotiator,
		styles:     make(map[uint64]*style.Formatter),
		logger:     log,
	}
	c.Theme = newTheme(c.NewStyle)
	return c
}

// Level returns the current color level, detecting it when unresolved.
func (c *Chromacon) Level() capability.Level {
	return c.negotiator.Level()
}

// SetLevel changes the color level. AutoDetect re-runs detection.
func (c *Chromacon) SetLevel(level capability.Level) {
	c.negotiator.SetLevel(level)
}

// SetMaxLevel caps the level; the current level is clamped right away.
func (c *Chromacon) SetMaxLevel(limit capability.Level) {
	c.negotiator.SetMaxLevel(limit)
}

// SetDetector installs a custom detector used by the next detection. nil
// restores the environment based one.
func (c *Chromacon) SetDetector(fn capability.Detector) {
	c.negotiator.SetDetector(fn)
}

// OnLevelChange registers fn for level changes and returns the function
// removing it.
func (c *Chromacon) OnLevelChange(fn capability.Listener) (unsubscribe func()) {
	return c.negotiator.OnChange(fn)
}

func (c *Chromacon) IsColorSupported() bool {
	return c.negotiator.IsColorSupported()
}

func (c *Chromacon) IsAnsi256Supported() bool {
	return c.negotiator.IsAnsi256Supported()
}

func (c *Chromacon) IsTrueColorSupported() bool {
	return c.negotiator.IsTrueColorSupported()
}

// NewStyle returns the formatter for an enable and disable pair. Equal
// pairs return the same formatter.
func (c *Chromacon) NewStyle(enable, disable sgr.Descriptor) *style.Formatter {
	f := style.New(enable, disable, c.negotiator)
	key := f.Key()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.styles[key]; ok {
		f.Close()
		return existing
	}
	c.styles[key] = f
	c.logger.Debug("style registered", "enable", enable.String(), "disable", disable.String())
	return f
}

// RGB is a 24-bit foreground color. It renders only at TrueColor.
func (c *Chromacon) RGB(r, g, b uint8) *style.Formatter {
	return c.NewStyle(sgr.Extended(sgr.FgColor, color.NewRGB(r, g, b)), sgr.Attr(sgr.FgDefault))
}

// Ansi256 is a foreground color of the 256 color palette. It renders at
// Ansi256 and above.
func (c *Chromacon) Ansi256(index uint8) *style.Formatter {
	return c.NewStyle(sgr.Extended(sgr.FgColor, color.NewIndexed(index)), sgr.Attr(sgr.FgDefault))
}

func (c *Chromacon) BgRGB(r, g, b uint8) *style.Formatter {
	return c.NewStyle(sgr.Extended(sgr.BgColor, color.NewRGB(r, g, b)), sgr.Attr(sgr.BgDefault))
}

func (c *Chromacon) BgAnsi256(index uint8) *style.Formatter {
	return c.NewStyle(sgr.Extended(sgr.BgColor, color.NewIndexed(index)), sgr.Attr(sgr.BgDefault))
}

func (c *Chromacon) UnderlineRGB(r, g, b uint8) *style.Formatter {
	return c.NewStyle(sgr.Extended(sgr.UlColor, color.NewRGB(r, g, b)), sgr.Attr(sgr.UlDefaultColor))
}

func (c *Chromacon) UnderlineAnsi256(index uint8) *style.Formatter {
	return c.NewStyle(sgr.Extended(sgr.UlColor, color.NewIndexed(index)), sgr.Attr(sgr.UlDefaultColor))
}

// Nearest returns the closest style to rgb that renders at the current
// level: the RGB color itself at TrueColor, its 256 palette approximation
// at Ansi256 and the base color approximation at Basic.
func (c *Chromacon) Nearest(r, g, b uint8) *style.Formatter {
	enable := sgr.Extended(sgr.FgColor, color.NewRGB(r, g, b)).Degrade(c.Level())
	return c.NewStyle(enable, sgr.Attr(sgr.FgDefault))
}
