package term

import (
	"strings"

	a "github.com/Azure/go-ansiterm"
)

// Screen is a minimal virtual terminal. Writing an ANSI stream to it replays the
// cursor movement and erasures the stream contains, leaving plain text rows.
// Graphic renditions (colors) are dropped.
type Screen struct {
	parser *a.AnsiParser
	rows   [][]byte
	cursor cursorInfo
}

type cursorInfo struct {
	line   int
	column int
}

func NewScreen() *Screen {
	s := &Screen{}
	s.parser = a.CreateParser("Ground", s)
	return s
}

func (s *Screen) Write(p []byte) (int, error) {
	if _, err := s.parser.Parse(p); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Lines returns every row up to and including the cursor's, trailing spaces removed.
func (s *Screen) Lines() []string {
	s.allocRow(s.cursor.line)

	lines := make([]string, len(s.rows))
	for i, row := range s.rows {
		lines[i] = strings.TrimRight(string(row), " ")
	}

	return lines
}

// Cursor returns the zero based line and column of the cursor.
func (s *Screen) Cursor() (int, int) {
	return s.cursor.line, s.cursor.column
}

func (s *Screen) allocRow(line int) {
	for len(s.rows) <= line {
		s.rows = append(s.rows, nil)
	}
}

func (s *Screen) currentRow() []byte {
	s.allocRow(s.cursor.line)
	return s.rows[s.cursor.line]
}

func (s *Screen) Print(b byte) error {
	row := s.currentRow()

	for len(row) < s.cursor.column {
		row = append(row, ' ')
	}

	if s.cursor.column < len(row) {
		row[s.cursor.column] = b
	} else {
		row = append(row, b)
	}

	s.rows[s.cursor.line] = row
	s.cursor.column++

	return nil
}

// Execute C0 commands. LF is treated as CR+LF, as a tty with onlcr would.
func (s *Screen) Execute(b byte) error {
	switch b {
	case '\n':
		s.cursor.line++
		s.cursor.column = 0
		s.allocRow(s.cursor.line)
	case '\r':
		s.cursor.column = 0
	case '\b':
		s.CUB(1)
	}

	return nil
}

func (s *Screen) CUU(count int) error {
	s.cursor.line -= count
	if s.cursor.line < 0 {
		s.cursor.line = 0
	}

	return nil
}

func (s *Screen) CUD(count int) error {
	s.cursor.line += count
	s.allocRow(s.cursor.line)
	return nil
}

func (s *Screen) CUF(count int) error {
	s.cursor.column += count
	return nil
}

func (s *Screen) CUB(count int) error {
	s.cursor.column -= count
	if s.cursor.column < 0 {
		s.cursor.column = 0
	}

	return nil
}

func (s *Screen) CNL(count int) error {
	s.cursor.column = 0
	return s.CUD(count)
}

func (s *Screen) CPL(count int) error {
	s.cursor.column = 0
	return s.CUU(count)
}

// Cursor Horizontal position Absolute, one based.
func (s *Screen) CHA(pos int) error {
	s.cursor.column = pos - 1
	if s.cursor.column < 0 {
		s.cursor.column = 0
	}

	return nil
}

// Vertical line Position Absolute, one based.
func (s *Screen) VPA(pos int) error {
	s.cursor.line = pos - 1
	if s.cursor.line < 0 {
		s.cursor.line = 0
	}

	return nil
}

func (s *Screen) CUP(row int, col int) error {
	if err := s.VPA(row); err != nil {
		return err
	}

	return s.CHA(col)
}

func (s *Screen) HVP(row int, col int) error {
	return s.CUP(row, col)
}

func (s *Screen) DECTCEM(bool) error { return nil }
func (s *Screen) DECOM(bool) error   { return nil }
func (s *Screen) DECCOLM(bool) error { return nil }

// Erase in Display. Only "cursor to end" (0) and "everything" (2) are supported.
func (s *Screen) ED(mode int) error {
	switch mode {
	case 0:
		if err := s.EL(0); err != nil {
			return err
		}

		if s.cursor.line+1 < len(s.rows) {
			s.rows = s.rows[:s.cursor.line+1]
		}
	case 2:
		s.rows = nil
	}

	return nil
}

// Erase in Line.
func (s *Screen) EL(mode int) error {
	row := s.currentRow()

	switch mode {
	case 0:
		if s.cursor.column < len(row) {
			row = row[:s.cursor.column]
		}
	case 1:
		for i := 0; i <= s.cursor.column && i < len(row); i++ {
			row[i] = ' '
		}
	case 2:
		row = nil
	}

	s.rows[s.cursor.line] = row

	return nil
}

func (s *Screen) IL(int) error           { return nil }
func (s *Screen) DL(int) error           { return nil }
func (s *Screen) ICH(int) error          { return nil }
func (s *Screen) DCH(int) error          { return nil }
func (s *Screen) SGR([]int) error        { return nil }
func (s *Screen) SU(int) error           { return nil }
func (s *Screen) SD(int) error           { return nil }
func (s *Screen) DA([]string) error      { return nil }
func (s *Screen) DECSTBM(int, int) error { return nil }
func (s *Screen) IND() error             { return s.CUD(1) }
func (s *Screen) RI() error              { return s.CUU(1) }
func (s *Screen) OSC([]byte) error       { return nil }
func (s *Screen) Flush() error           { return nil }
