package spinner

import (
	"bytes"
	"testing"

	"github.com/elseano/nspin/pkg/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOffsets(t *testing.T) {
	r := NewRegistry()
	out := term.NewTerminal(&bytes.Buffer{})
	a, b, c := &Spinner{}, &Spinner{}, &Spinner{}

	require.NoError(t, r.reserve(a, out))
	require.NoError(t, r.reserve(b, out))
	require.NoError(t, r.reserve(c, out))

	for want, s := range []*Spinner{c, b, a} {
		offset, ok := r.Offset(s)
		assert.True(t, ok)
		assert.Equal(t, want, offset)
	}

	r.remove(b)

	offset, _ := r.Offset(a)
	assert.Equal(t, 1, offset)
	offset, _ = r.Offset(c)
	assert.Equal(t, 0, offset)

	_, ok := r.Offset(b)
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryMembershipIsByIdentity(t *testing.T) {
	r := NewRegistry()
	buf := bytes.Buffer{}
	out := term.NewTerminal(&buf)
	a, b := &Spinner{}, &Spinner{}

	require.NoError(t, r.reserve(a, out))
	require.NoError(t, r.reserve(a, out))
	require.NoError(t, r.reserve(b, out))

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "\n\n", buf.String())
}

func TestRegistryRemoveUnknown(t *testing.T) {
	r := NewRegistry()

	assert.NotPanics(t, func() { r.remove(&Spinner{}) })
	assert.Equal(t, 0, r.Len())
}

func TestDefaultRegistryIsShared(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}
