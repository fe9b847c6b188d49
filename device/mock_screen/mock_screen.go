package mock_screen

import (
	"curtain/device"
	"strings"
	"sync"
)

// Screen keeps the staged and the committed grid apart so tests can observe
// what a component staged versus what the terminal would show.
type Screen struct {
	mu            sync.Mutex
	size          device.Size
	staged        []device.Cell
	committed     []device.Cell
	cursor        device.Position
	cursorVisible bool
	stages        int
	commits       int
}

func New(height, width int) *Screen {
	size := device.Size{Height: height, Width: width}
	return &Screen{
		size:      size,
		staged:    make([]device.Cell, size.Area()),
		committed: make([]device.Cell, size.Area()),
	}
}

func (s *Screen) Size() device.Size {
	return s.size
}

func (s *Screen) Stage(pos device.Position, cell device.Cell) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.size.Contains(pos) {
		return
	}
	s.staged[pos.Row*s.size.Width+pos.Col] = cell
	s.stages++
}

func (s *Screen) Staged(pos device.Position) device.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.size.Contains(pos) {
		return device.Cell{}
	}
	return s.staged[pos.Row*s.size.Width+pos.Col]
}

func (s *Screen) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.committed, s.staged)
	s.commits++
}

func (s *Screen) ShowCursor(pos device.Position) {
	s.mu.Lock()
	s.cursor = pos
	s.cursorVisible = true
	s.mu.Unlock()
}

func (s *Screen) HideCursor() {
	s.mu.Lock()
	s.cursorVisible = false
	s.mu.Unlock()
}

// Committed returns the cell the terminal would currently display.
func (s *Screen) Committed(pos device.Position) device.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.size.Contains(pos) {
		return device.Cell{}
	}
	return s.committed[pos.Row*s.size.Width+pos.Col]
}

// StagedLine renders width cells of the pending buffer starting at pos.
// Unwritten cells read as spaces.
func (s *Screen) StagedLine(pos device.Position, width int) string {
	return s.line(s.Staged, pos, width)
}

func (s *Screen) CommittedLine(pos device.Position, width int) string {
	return s.line(s.Committed, pos, width)
}

func (s *Screen) line(read func(device.Position) device.Cell, pos device.Position, width int) string {
	buf := &strings.Builder{}
	for col := pos.Col; col < pos.Col+width; col++ {
		cell := read(device.Position{Row: pos.Row, Col: col})
		if cell.Rune == 0 {
			buf.WriteRune(' ')
		} else {
			buf.WriteRune(cell.Rune)
		}
	}
	return buf.String()
}

// Stages counts every in-bounds Stage call since creation or the last ResetCounters.
func (s *Screen) Stages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stages
}

func (s *Screen) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Screen) ResetCounters() {
	s.mu.Lock()
	s.stages = 0
	s.commits = 0
	s.mu.Unlock()
}

func (s *Screen) Cursor() (device.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor, s.cursorVisible
}
