package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLookupCI(t *testing.T) {
	assert.Equal(t, NoCI, lookupCI(envOf(nil)))
	assert.Equal(t, GitLabCI, lookupCI(envOf(map[string]string{"GITLAB_CI": "true", "CI": "true"})))
	assert.Equal(t, GitHubCI, lookupCI(envOf(map[string]string{"GITHUB_ACTIONS": "true", "CI": "true"})))
	assert.Equal(t, BuildkiteCI, lookupCI(envOf(map[string]string{"BUILDKITE": "true"})))
	assert.Equal(t, UnknownCI, lookupCI(envOf(map[string]string{"CI": "1"})))

	assert.False(t, NoCI.IsCI())
	assert.True(t, UnknownCI.IsCI())
}

func TestDetectInCIIsAppendOnly(t *testing.T) {
	t.Setenv("CI", "true")

	out := Detect(&fakeFile{})
	assert.False(t, out.Interactive())

	_, canMove := out.(CursorMover)
	assert.False(t, canMove)
}
