package term

import (
	"os"
)

// CI names the continuous integration runner the process appears to run under.
type CI string

const (
	GitHubCI    CI = "github"
	GitLabCI    CI = "gitlab"
	BuildkiteCI CI = "buildkite"
	UnknownCI   CI = "unknown"
	NoCI        CI = "none"
)

// Checked in order; CI itself is last as most runners set it alongside their own marker.
var ciMarkers = []struct {
	env string
	ci  CI
}{
	{"GITLAB_CI", GitLabCI},
	{"GITHUB_ACTIONS", GitHubCI},
	{"BUILDKITE", BuildkiteCI},
	{"CI", UnknownCI},
}

func (c CI) IsCI() bool {
	return c != NoCI
}

func GetCI() CI {
	return lookupCI(os.LookupEnv)
}

func lookupCI(lookup func(string) (string, bool)) CI {
	for _, marker := range ciMarkers {
		if _, ok := lookup(marker.env); ok {
			return marker.ci
		}
	}

	return NoCI
}
