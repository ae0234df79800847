package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveColors(t *testing.T) {
	assert.Equal(t, "- hi", RemoveColors("\x1b[36m-\x1b[0m hi"))
	assert.Equal(t, "done", RemoveColors("\x1b[2A\x1b[1G\x1b[2Kdone\x1b[2B"))
}

func TestIntMin(t *testing.T) {
	assert.Equal(t, 3, IntMin(3, 120))
	assert.Equal(t, 120, IntMin(200, 120))
}
