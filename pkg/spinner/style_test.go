package spinner

import (
	"errors"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyleNoNames(t *testing.T) {
	style, err := ParseStyle(aurora.NewAurora(true))

	require.NoError(t, err)
	assert.Nil(t, style)
}

func TestParseStyleUnknownName(t *testing.T) {
	_, err := ParseStyle(aurora.NewAurora(true), "bold", "glittery")

	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "glittery")
}

func TestParseStyleSingle(t *testing.T) {
	style, err := ParseStyle(aurora.NewAurora(true), "green")
	require.NoError(t, err)

	assert.Equal(t, aurora.Green("*").String(), style("*"))
}

func TestParseStyleCombined(t *testing.T) {
	style, err := ParseStyle(aurora.NewAurora(true), "cyan", "underline")
	require.NoError(t, err)

	assert.Equal(t, aurora.Underline(aurora.Cyan("*")).String(), style("*"))
}

func TestParseStyleWithoutColors(t *testing.T) {
	style, err := ParseStyle(aurora.NewAurora(false), "cyan", "bold")
	require.NoError(t, err)

	assert.Equal(t, "*", style("*"))
}

func TestStyleNamesAreAllParseable(t *testing.T) {
	names := StyleNames()
	assert.Contains(t, names, "cyan")
	assert.Contains(t, names, "bgRedBright")

	for _, name := range names {
		_, err := ParseStyle(aurora.NewAurora(true), name)
		assert.NoError(t, err, name)
	}
}
