package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenPlainText(t *testing.T) {
	s := NewScreen()
	s.Write([]byte("Hi there\nsecond"))

	assert.Equal(t, []string{"Hi there", "second"}, s.Lines())
}

func TestScreenCarriageReturnOverwrites(t *testing.T) {
	s := NewScreen()
	s.Write([]byte("1%\r50%\r100%\n"))

	assert.Equal(t, []string{"100%", ""}, s.Lines())
}

func TestScreenEraseLine(t *testing.T) {
	s := NewScreen()
	s.Write([]byte("long line here\r\x1b[2Kshort"))

	assert.Equal(t, []string{"short"}, s.Lines())
}

func TestScreenEraseToEnd(t *testing.T) {
	s := NewScreen()
	s.Write([]byte("abcdef\x1b[3G\x1b[K"))

	assert.Equal(t, []string{"ab"}, s.Lines())
}

func TestScreenDropsColors(t *testing.T) {
	s := NewScreen()
	s.Write([]byte("\x1b[36m-\x1b[0m label"))

	assert.Equal(t, []string{"- label"}, s.Lines())
}

func TestScreenCursorUpAndDown(t *testing.T) {
	s := NewScreen()
	s.Write([]byte("\n\n\x1b[2A\x1b[1GA\x1b[2B"))

	assert.Equal(t, []string{"A", "", ""}, s.Lines())

	line, col := s.Cursor()
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)
}
