package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repostream/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

type PreCommitConfig struct {
	Repos []PreCommitRepo `yaml:"repos"`
}

type PreCommitRepo struct {
	Repo  string          `yaml:"repo"`
	Hooks []PreCommitHook `yaml:"hooks"`
}

type PreCommitHook struct {
	ID   string   `yaml:"id"`
	Args []string `yaml:"args"`
}

// ParsePreCommitConfig decodes a .pre-commit-config.yaml document. A document without a "repos"
// key is rejected.
func ParsePreCommitConfig(data []byte) (*PreCommitConfig, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(types.ErrParseFailure, "failed to parse pre-commit config", goerr.V("error", err.Error()))
	}
	node, ok := raw["repos"]
	if !ok {
		return nil, goerr.Wrap(types.ErrParseFailure, "pre-commit config has no repos key")
	}

	var cfg PreCommitConfig
	if err := node.Decode(&cfg.Repos); err != nil {
		return nil, goerr.Wrap(types.ErrParseFailure, "failed to decode repos of pre-commit config", goerr.V("error", err.Error()))
	}
	return &cfg, nil
}

// FindHook returns the first hook with hookID declared under the repository repoURL.
func (x *PreCommitConfig) FindHook(repoURL, hookID string) *PreCommitHook {
	for _, repo := range x.Repos {
		if repo.Repo != repoURL {
			continue
		}
		for i := range repo.Hooks {
			if repo.Hooks[i].ID == hookID {
				return &repo.Hooks[i]
			}
		}
	}
	return nil
}
