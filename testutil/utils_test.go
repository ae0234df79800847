package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFrames(t *testing.T) {
	output := "\n- A (0ms)\n\\ A (12ms)\nDone\n"

	assert.Equal(t, "\nDone\n", StripFrames(output))
	assert.Equal(t, 2, CountFrames(output))
}

func TestAssertLines(t *testing.T) {
	AssertLines(t, "one\n\ntwo", "one\n  \ntwo")
}
