package slidedoc

import "strings"

// HeadingShift maps an original ATX heading level to its rewritten level.
// Levels missing from the table are left unchanged.
type HeadingShift map[int]int

// DefaultHeadingShift demotes top-level headings below the front matter
// title and folds levels 3 and 4 together so the site outline stays within
// h2..h4.
var DefaultHeadingShift = HeadingShift{1: 2, 2: 3, 3: 3, 4: 3, 5: 4}

// Level returns the rewritten level for an original level.
func (t HeadingShift) Level(level int) int {
	if n, ok := t[level]; ok {
		return n
	}
	return level
}

// HeadingLevel returns the ATX heading level of line, or 0 if line is not
// a heading. A heading is 1-6 '#' characters followed by whitespace or the
// end of the line.
func HeadingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return 0
	}
	if n < len(line) && line[n] != ' ' && line[n] != '\t' {
		return 0
	}
	return n
}

// ShiftHeadings rewrites every heading marker through table in a single
// pass. Each line's level is measured once on the input, so the result for
// a line depends only on its original level. Lines inside fenced code are
// left alone.
func ShiftHeadings(markdown string, table HeadingShift) string {
	lines := strings.Split(markdown, "\n")
	fence := FenceClosed
	for i, line := range lines {
		next, _ := NextFenceState(fence, line, "")
		if fence.Open() || next.Open() {
			fence = next
			continue
		}
		level := HeadingLevel(line)
		if level == 0 {
			continue
		}
		lines[i] = strings.Repeat("#", table.Level(level)) + line[level:]
	}
	return strings.Join(lines, "\n")
}
