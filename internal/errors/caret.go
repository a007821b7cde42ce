package errors

import "strings"

// CaretPadding returns what to print before a marker that sits under column
// (1-based, one column per character) of line. Tabs in the covered prefix are
// kept as tabs and every other character becomes a space, so the marker lines
// up with the printed line however the terminal expands tabs. Columns past
// the end of the line are padded with spaces.
func CaretPadding(line string, column int) string {
	var b strings.Builder
	col := 1
	for _, r := range line {
		if col >= column {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		col++
	}
	for ; col < column; col++ {
		b.WriteByte(' ')
	}
	return b.String()
}
