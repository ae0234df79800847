package testutil

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertLines(t *testing.T, expected string, actual string) {
	t.Helper()

	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	for i := 0; i < len(expectedLines); i = i + 1 {
		if i > len(actualLines)-1 {
			t.Fatalf("Expected %s, but got no line", expectedLines[i])
		} else if strings.TrimSpace(expectedLines[i]) == "" && strings.TrimSpace(actualLines[i]) == "" {
			continue
		} else if !assert.Equal(t, expectedLines[i], actualLines[i], "Mismatch on line "+strconv.Itoa(i)) {
			break
		}
	}

	if len(expectedLines) != len(actualLines) {
		t.Fatalf("Expected %d lines, but got %d lines", len(expectedLines), len(actualLines))
	}
}

var frameLine = regexp.MustCompile(`(?m)^.* \(\d+ms\)\n`)

// StripFrames drops append-only animation frames, leaving everything else a
// run printed. Frame count depends on timing, the rest doesn't.
func StripFrames(output string) string {
	return frameLine.ReplaceAllString(output, "")
}

// CountFrames reports how many animation frames output contains.
func CountFrames(output string) int {
	return len(frameLine.FindAllString(output, -1))
}
