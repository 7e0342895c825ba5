package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repostream/pkg/domain/model"
	"github.com/m-mizutani/repostream/pkg/domain/types"
)

func TestRepoURLToFullName(t *testing.T) {
	testCases := map[string]struct {
		url    string
		expect string
	}{
		"plain":             {"https://github.com/bob/cfg", "bob/cfg"},
		"git suffix kept":   {"https://github.com/bob/cfg.git", "bob/cfg.git"},
		"other host":        {"https://gitlab.example.com/team/tool", "team/tool"},
		"nested path":       {"https://github.com/bob/cfg/tree/main", "bob/cfg/tree/main"},
		"too short":         {"bob/cfg", ""},
		"host without path": {"https://github.com", ""},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, model.RepoURLToFullName(tc.url)).Equal(tc.expect)
		})
	}
}

func TestParseGitHubRepo(t *testing.T) {
	t.Run("valid full name", func(t *testing.T) {
		repo := gt.R1(model.ParseGitHubRepo("alice/proj")).NoError(t)
		gt.V(t, repo.Owner).Equal("alice")
		gt.V(t, repo.Name).Equal("proj")
		gt.V(t, repo.FullName()).Equal("alice/proj")
	})

	for _, input := range []string{"", "alice", "alice/", "/proj", "a/b/c"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := model.ParseGitHubRepo(input)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidOption))
		})
	}
}

func TestGitHubRepoValidate(t *testing.T) {
	gt.NoError(t, (&model.GitHubRepo{Owner: "alice", Name: "proj"}).Validate())
	gt.Error(t, (&model.GitHubRepo{Name: "proj"}).Validate())
	gt.Error(t, (&model.GitHubRepo{Owner: "alice"}).Validate())
}
