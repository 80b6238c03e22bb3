// Package editor implements the line-oriented text buffer behind the
// notes view and the task form fields.
package editor

import "strings"

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	LineStart
	LineEnd
)

// Buffer holds ordered text lines and a cursor. The cursor always points
// at an existing line, with the column in [0, line length]. An empty
// buffer is exactly one empty line with the cursor at (0,0).
type Buffer struct {
	lines []string
	line  int
	col   int
}

func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// Load replaces the buffer content and places the cursor at the end of
// the last line.
func (b *Buffer) Load(text string) {
	b.lines = strings.Split(text, "\n")
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.line = len(b.lines) - 1
	b.col = lineLen(b.lines[b.line])
}

func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Cursor returns the current (line, column) position, counted in runes.
func (b *Buffer) Cursor() (line, col int) {
	return b.line, b.col
}

func (b *Buffer) InsertRune(r rune) {
	runes := []rune(b.lines[b.line])
	runes = append(runes[:b.col], append([]rune{r}, runes[b.col:]...)...)
	b.lines[b.line] = string(runes)
	b.col++
}

func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		if r == '\n' {
			b.InsertNewline()
			continue
		}
		b.InsertRune(r)
	}
}

// InsertNewline splits the current line at the cursor; the cursor moves
// to column 0 of the new line.
func (b *Buffer) InsertNewline() {
	runes := []rune(b.lines[b.line])
	head, tail := string(runes[:b.col]), string(runes[b.col:])
	b.lines[b.line] = head
	rest := append([]string{tail}, b.lines[b.line+1:]...)
	b.lines = append(b.lines[:b.line+1], rest...)
	b.line++
	b.col = 0
}

// Backspace deletes the rune before the cursor. At column 0 of a
// non-first line it merges the line into the previous one, leaving the
// cursor at the join point. At (0,0) it is a no-op.
func (b *Buffer) Backspace() {
	if b.col > 0 {
		runes := []rune(b.lines[b.line])
		b.lines[b.line] = string(append(runes[:b.col-1], runes[b.col:]...))
		b.col--
		return
	}
	if b.line == 0 {
		return
	}
	prev := b.lines[b.line-1]
	join := lineLen(prev)
	b.lines[b.line-1] = prev + b.lines[b.line]
	b.lines = append(b.lines[:b.line], b.lines[b.line+1:]...)
	b.line--
	b.col = join
}

// DeleteForward deletes the rune under the cursor, merging the next line
// up when the cursor sits at end of line.
func (b *Buffer) DeleteForward() {
	runes := []rune(b.lines[b.line])
	if b.col < len(runes) {
		b.lines[b.line] = string(append(runes[:b.col], runes[b.col+1:]...))
		return
	}
	if b.line == len(b.lines)-1 {
		return
	}
	b.lines[b.line] += b.lines[b.line+1]
	b.lines = append(b.lines[:b.line+1], b.lines[b.line+2:]...)
}

// Move repositions the cursor. Vertical moves clamp the column to the
// target line's length; no horizontal intent is remembered across lines.
func (b *Buffer) Move(dir Direction) {
	switch dir {
	case Left:
		if b.col > 0 {
			b.col--
		} else if b.line > 0 {
			b.line--
			b.col = lineLen(b.lines[b.line])
		}
	case Right:
		if b.col < lineLen(b.lines[b.line]) {
			b.col++
		} else if b.line < len(b.lines)-1 {
			b.line++
			b.col = 0
		}
	case Up:
		if b.line > 0 {
			b.line--
			b.clampCol()
		}
	case Down:
		if b.line < len(b.lines)-1 {
			b.line++
			b.clampCol()
		}
	case LineStart:
		b.col = 0
	case LineEnd:
		b.col = lineLen(b.lines[b.line])
	}
}

func (b *Buffer) clampCol() {
	if max := lineLen(b.lines[b.line]); b.col > max {
		b.col = max
	}
}

func lineLen(s string) int {
	return len([]rune(s))
}
