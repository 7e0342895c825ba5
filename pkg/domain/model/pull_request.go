package model

import (
	"strings"
)

const (
	PullRequestTitle = "repo-stream update"

	markerHeader = "<!-- repo-stream"
	markerFooter = "-->"
)

type PullRequestSummary struct {
	Number  int
	HeadRef string
	Body    string
}

type CreatePullRequestInput struct {
	Repo  GitHubRepo
	Title string
	Body  string
	Head  string
	Base  string
}

type CreatedPullRequest struct {
	URL    string
	Author string
}

// PullRequestMarker is embedded in a pull request body as an HTML comment so that the
// originating config and updater can be recovered later.
type PullRequestMarker struct {
	Config  string
	Updater string
}

func (x PullRequestMarker) Render() string {
	return strings.Join([]string{
		markerHeader,
		"config=" + x.Config,
		"updater=" + x.Updater,
		markerFooter,
	}, "\n")
}

// ParsePullRequestMarker scans body line by line. The text following "config=" and "updater="
// on a line becomes the respective value; later lines override earlier ones.
func ParsePullRequestMarker(body string) PullRequestMarker {
	var marker PullRequestMarker
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if _, v, ok := strings.Cut(line, "config="); ok {
			marker.Config = v
		}
		if _, v, ok := strings.Cut(line, "updater="); ok {
			marker.Updater = v
		}
	}
	return marker
}

func (x PullRequestMarker) Matches(hook *HookRecord) bool {
	return x.Config == hook.Config.FullName() && x.Updater == hook.Updater
}

// PullRequestBody returns the commit and pull request body for hook.
func PullRequestBody(hook *HookRecord) string {
	marker := PullRequestMarker{Config: hook.Config.FullName(), Updater: hook.Updater}
	return marker.Render() + "\n\n> Triggered by " + hook.Trigger()
}

func BranchName(prefix, suffix string) string {
	return prefix + suffix
}
