package csi

import (
	"fmt"
	"math"

	"github.com/nevware21/chromacon/terminal/parser"
	"github.com/nevware21/chromacon/terminal/utils"
)

const MaxParams = 24

type Command struct {
	// Private markers ('<', '=', '>', '?') found in the parameter bytes.
	Intermediates []uint8
	Params        []uint16
	// ParamsSet marks params that are followed by a colon rather than a
	// semicolon, e.g. the sub parameters of 38:2:r:g:b.
	ParamsSet *utils.StaticBitSet
	Final     uint8
}

func (c Command) String() string {
	return fmt.Sprintf("CSI %v %v %v", c.Intermediates, c.Params, c.Final)
}

// IsSGR reports whether the command selects graphic rendition.
func (c Command) IsSGR() bool {
	return c.Final == 'm' && len(c.Intermediates) == 0
}

// Parse decodes the parameters of a CSI segment. It returns false when seg
// is not a CSI sequence or carries more than MaxParams parameters.
//
// An empty parameter list stays empty, a trailing empty parameter is
// dropped and any other empty parameter is 0.
func Parse(seg parser.Segment) (*Command, bool) {
	if seg.Family != parser.FamilyCSI {
		return nil, false
	}

	cmd := &Command{
		ParamsSet: utils.NewStaticBitSet(MaxParams),
		Final:     seg.Final(),
	}

	acc, digits := 0, 0
	for _, c := range []byte(seg.Params()) {
		switch {
		case c >= '0' && c <= '9':
			next, overflow := utils.AddWithOverflow(acc*10, int(c-'0'))
			if overflow {
				next = math.MaxUint16
			}
			acc = next
			digits++
		case c == ';' || c == ':':
			if len(cmd.Params) >= MaxParams {
				return nil, false
			}
			if c == ':' {
				cmd.ParamsSet.Set(len(cmd.Params))
			}
			cmd.Params = append(cmd.Params, uint16(acc))
			acc, digits = 0, 0
		default:
			cmd.Intermediates = append(cmd.Intermediates, c)
		}
	}

	if digits > 0 {
		if len(cmd.Params) >= MaxParams {
			return nil, false
		}
		cmd.Params = append(cmd.Params, uint16(acc))
	}
	return cmd, true
}
