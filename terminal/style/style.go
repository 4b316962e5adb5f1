package style

import (
	"fmt"
	"sync"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/nevware21/chromacon/terminal/capability"
	"github.com/nevware21/chromacon/terminal/sgr"
	"github.com/nevware21/chromacon/terminal/utils"
)

// Formatter applies one style, an enable and a disable descriptor, at the
// level of its negotiator.
//
// The sequences are resolved lazily for the current level and cached until
// the negotiator reports a change.
type Formatter struct {
	enable     sgr.Descriptor
	disable    sgr.Descriptor
	negotiator *capability.Negotiator

	mu       sync.RWMutex
	resolved *resolution

	unsubscribe func()
}

type resolution struct {
	level capability.Level
	codes Codes
}

func New(enable, disable sgr.Descriptor, negotiator *capability.Negotiator) *Formatter {
	f := &Formatter{
		enable:     enable,
		disable:    disable,
		negotiator: negotiator,
	}
	f.unsubscribe = negotiator.OnChange(func(capability.Level) {
		f.invalidate()
	})
	return f
}

// Apply styles text. Below Basic, or when the style has no effect at the
// current level, text is returned unchanged.
func (f *Formatter) Apply(text string) string {
	codes := f.resolve(f.negotiator.Level())
	if codes.Enable == "" {
		return text
	}
	return Compose(text, codes)
}

// Code returns the enable sequence at the current level, or "".
func (f *Formatter) Code() string {
	return f.resolve(f.negotiator.Level()).Enable
}

// Codes returns the full resolution at the current level.
func (f *Formatter) Codes() Codes {
	return f.resolve(f.negotiator.Level())
}

func (f *Formatter) String() string {
	return f.Code()
}

func (f *Formatter) Enable() sgr.Descriptor {
	return f.enable
}

func (f *Formatter) Disable() sgr.Descriptor {
	return f.disable
}

// Key identifies the style by its descriptors.
func (f *Formatter) Key() uint64 {
	hashed, err := hashstructure.Hash(
		[2]uint64{f.enable.Key(), f.disable.Key()},
		hashstructure.FormatV2,
		nil,
	)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash style: %v", err))
	return hashed
}

// Close detaches f from its negotiator. f keeps working with the
// resolution it has, re-resolving only when asked for another level.
func (f *Formatter) Close() {
	f.unsubscribe()
}

func (f *Formatter) resolve(level capability.Level) Codes {
	f.mu.RLock()
	if r := f.resolved; r != nil && r.level == level {
		f.mu.RUnlock()
		return r.codes
	}
	f.mu.RUnlock()

	codes := Resolve(f.enable, f.disable, level)
	f.mu.Lock()
	f.resolved = &resolution{level: level, codes: codes}
	f.mu.Unlock()
	return codes
}

func (f *Formatter) invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved = nil
}

// Resolve computes the sequences of a style at level.
func Resolve(enable, disable sgr.Descriptor, level capability.Level) Codes {
	disableParams := sgr.Emit(disable, level)
	return Codes{
		Enable:        sgr.Sequence(sgr.Emit(enable, level)),
		Disable:       sgr.Sequence(disableParams),
		DisableParams: disableParams,
		IsReset:       disable.IsReset(),
	}
}
