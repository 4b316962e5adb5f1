package sequences

import (
	dw "github.com/mattn/go-runewidth"
)

// VisibleWidth returns the number of terminal cells text occupies once its
// control sequences are removed. Wide runes count as two cells.
func VisibleWidth(text string) int {
	return dw.StringWidth(Strip(text))
}
