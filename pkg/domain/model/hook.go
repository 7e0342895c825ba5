package model

import "strings"

const (
	// HookRepoURL is the repository that publishes the repo-stream pre-commit hook.
	HookRepoURL = "https://github.com/mondeja/repo-stream"
	HookID      = "repo-stream"

	PreCommitConfigFile = ".pre-commit-config.yaml"
)

// HookRecord is a repository that declares the repo-stream hook, together with the updater it
// points to.
type HookRecord struct {
	Repo          GitHubRepo
	DefaultBranch string
	Config        GitHubRepo
	Updater       string

	// UpdaterContent is nil until the updater file has been downloaded.
	UpdaterContent *string
}

func (x *HookRecord) UpdaterPath() string {
	return x.Updater + ".yaml"
}

func (x *HookRecord) Trigger() string {
	return x.Config.FullName() + "/" + x.UpdaterPath()
}

// HookArgs is the result of ParseHookArgs. Config is already converted to owner/name form.
type HookArgs struct {
	Config  string
	Updater string
}

type hookArgState int

const (
	hookArgScanning hookArgState = iota
	hookArgExpectingValue
)

// ParseHookArgs reads "--config" and "--updater" from the argument list of the hook. Both the
// "--name value" and "--name=value" forms are accepted. Unknown options are ignored.
func ParseHookArgs(args []string) HookArgs {
	var (
		result  HookArgs
		state   = hookArgScanning
		pending string
	)

	assign := func(name, value string) {
		switch name {
		case "config":
			result.Config = RepoURLToFullName(value)
		case "updater":
			result.Updater = value
		}
	}

	for _, arg := range args {
		switch state {
		case hookArgScanning:
			if !strings.HasPrefix(arg, "--") {
				continue
			}
			name := strings.TrimPrefix(arg, "--")
			if k, v, found := strings.Cut(name, "="); found {
				assign(k, v)
				continue
			}
			if name == "config" || name == "updater" {
				pending = name
				state = hookArgExpectingValue
			}

		case hookArgExpectingValue:
			assign(pending, arg)
			pending = ""
			state = hookArgScanning
		}
	}

	return result
}
