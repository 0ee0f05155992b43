package slidedoc

import "strings"

// FenceMarker is the shortest delimiter that opens or closes a fenced code
// block.
const FenceMarker = "```"

// FenceState tracks whether a line scan is inside a fenced code block. A
// closed scan is FenceClosed; an open one holds the width of the backtick
// run that opened the block, since only a run at least that wide closes it.
type FenceState int

const (
	FenceClosed FenceState = 0

	// FenceOpen is the state after a plain three-backtick opener.
	FenceOpen FenceState = FenceState(len(FenceMarker))
)

// Open reports whether the scan is inside a fenced code block.
func (s FenceState) Open() bool {
	return s > FenceClosed
}

// fenceLine splits a candidate fence line into the width of its leading
// backtick run and its info string. Width is 0 for lines that are not fence
// lines.
func fenceLine(line string) (width int, info string) {
	trimmed := strings.TrimLeft(line, " \t")
	for width < len(trimmed) && trimmed[width] == '`' {
		width++
	}
	if width < len(FenceMarker) {
		return 0, ""
	}
	return width, strings.TrimSpace(trimmed[width:])
}

// NextFenceState advances the fence state machine by one line and returns
// the line as it should be emitted. While closed, a fence line opens a block
// and, if it has no info string, gets lang appended. While open, only a bare
// fence line at least as wide as the opener closes the block; narrower runs
// are code. Other lines pass through.
func NextFenceState(state FenceState, line, lang string) (FenceState, string) {
	width, info := fenceLine(line)
	if width == 0 {
		return state, line
	}
	if state.Open() {
		if width >= int(state) && info == "" {
			return FenceClosed, line
		}
		return state, line
	}
	if lang != "" && info == "" {
		line = strings.TrimRight(line, " \t") + lang
	}
	return FenceState(width), line
}

// TagFences appends lang to every untagged fence opener in markdown.
// The tagged document is always returned. If the document ends inside an
// open fence the error is EFENCE; everything after the unmatched marker has
// been treated as code.
func TagFences(markdown, lang string) (string, error) {
	lines := strings.Split(markdown, "\n")
	out := make([]string, len(lines))

	state := FenceClosed
	openedAt := 0
	for i, line := range lines {
		next, emitted := NextFenceState(state, line, lang)
		if next.Open() && !state.Open() {
			openedAt = i + 1
		}
		state, out[i] = next, emitted
	}

	result := strings.Join(out, "\n")
	if state.Open() {
		return result, Errorf(EFENCE, "code fence opened on line %d is never closed", openedAt)
	}
	return result, nil
}
