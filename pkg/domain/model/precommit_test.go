package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
)

const samplePreCommitConfig = `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.4.0
    hooks:
      - id: trailing-whitespace
  - repo: https://github.com/mondeja/repo-stream
    rev: v1.3.1
    hooks:
      - id: repo-stream
        args:
          - --config=https://github.com/bob/cfg
          - --updater
          - lint
`

func TestParsePreCommitConfig(t *testing.T) {
	t.Run("find repo-stream hook", func(t *testing.T) {
		cfg := gt.R1(model.ParsePreCommitConfig([]byte(samplePreCommitConfig))).NoError(t)
		gt.V(t, len(cfg.Repos)).Equal(2)

		hook := cfg.FindHook(model.HookRepoURL, model.HookID)
		gt.V(t, hook).NotEqual(nil)
		gt.V(t, model.ParseHookArgs(hook.Args)).Equal(model.HookArgs{Config: "bob/cfg", Updater: "lint"})
	})

	t.Run("hook absent", func(t *testing.T) {
		cfg := gt.R1(model.ParsePreCommitConfig([]byte("repos: []\n"))).NoError(t)
		gt.True(t, cfg.FindHook(model.HookRepoURL, model.HookID) == nil)
	})

	t.Run("hook id in another repo is not matched", func(t *testing.T) {
		data := `repos:
  - repo: https://github.com/someone/fork
    hooks:
      - id: repo-stream
`
		cfg := gt.R1(model.ParsePreCommitConfig([]byte(data))).NoError(t)
		gt.True(t, cfg.FindHook(model.HookRepoURL, model.HookID) == nil)
	})

	t.Run("missing repos key", func(t *testing.T) {
		_, err := model.ParsePreCommitConfig([]byte("default_stages: [commit]\n"))
		gt.True(t, errors.Is(err, types.ErrParseFailure))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := model.ParsePreCommitConfig([]byte("repos: [\n  - {"))
		gt.True(t, errors.Is(err, types.ErrParseFailure))
	})

	t.Run("repos is not a list", func(t *testing.T) {
		_, err := model.ParsePreCommitConfig([]byte("repos: hello\n"))
		gt.True(t, errors.Is(err, types.ErrParseFailure))
	})
}
