package style

import (
	"strings"

	"github.com/nevware21/chromacon/terminal/parser"
)

const csi7 = "\x1b["

// Codes is the resolved form of a style at one level: the complete enable
// and disable sequences plus the parameters of the disable sequence.
type Codes struct {
	Enable        string
	Disable       string
	DisableParams string
	// IsReset is set when the disable half is the full reset.
	IsReset bool
}

// Compose wraps text in c.Enable and c.Disable so that styling already
// present in text stays visible:
//
//   - an inner sequence disabling this style re-enables it instead, e.g.
//     red("a" + blue("b") + "c") keeps "c" red;
//   - an inner full reset is followed by c.Enable;
//   - codes the result already ends with are not repeated;
//   - codes left pending at the end of text are trimmed when the closing
//     c.Disable makes them pointless.
func Compose(text string, c Codes) string {
	if !strings.Contains(text, csi7) {
		return c.Enable + text + c.Disable
	}

	var result strings.Builder
	result.Grow(len(text) + len(c.Enable)*2 + len(c.Disable))
	result.WriteString(c.Enable)

	var pending []string
	flush := func() {
		for _, code := range pending {
			if !strings.HasSuffix(result.String(), code) {
				result.WriteString(code)
			}
		}
		pending = pending[:0]
	}

	trailingText := false
	for _, seg := range parser.Scan(text) {
		if !seg.IsSGR() {
			flush()
			result.WriteString(seg.Value)
			trailingText = true
			continue
		}
		trailingText = false

		params := seg.Params()
		switch {
		case !c.IsReset && params == c.DisableParams:
			pending = append(pending, c.Enable)
		case params == "" || params == "0":
			pending = append(pending[:0], seg.Value, c.Enable)
		default:
			pending = append(pending, seg.Value)
		}
	}

	if !trailingText && len(pending) > 0 {
		if c.IsReset {
			pending = pending[:0]
		}
		for len(pending) > 0 && pending[len(pending)-1] == c.Enable {
			pending = pending[:len(pending)-1]
		}
		flush()
	}

	if !strings.HasSuffix(result.String(), c.Disable) {
		result.WriteString(c.Disable)
	}
	return result.String()
}
