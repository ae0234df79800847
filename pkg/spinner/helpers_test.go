package spinner

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/elseano/nspin/pkg/lifecycle"
	"github.com/elseano/nspin/pkg/term"
	"github.com/stretchr/testify/require"
)

// Long enough that the scheduler never fires during a test; frames are driven with tick().
const manual = time.Hour

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	registry *Registry
	guard    *lifecycle.Guard
	out      term.Output
}

func newHarness(out term.Output) *harness {
	return &harness{registry: NewRegistry(), guard: lifecycle.NewGuard(), out: out}
}

func (h *harness) spinner(t *testing.T, opts ...Option) *Spinner {
	t.Helper()

	opts = append([]Option{WithOutput(h.out), WithRegistry(h.registry), WithGuard(h.guard)}, opts...)
	s, err := New(opts...)
	require.NoError(t, err)

	return s
}
