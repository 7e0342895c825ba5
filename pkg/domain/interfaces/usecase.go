package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/repostream/pkg/domain/model"
)

type UseCase interface {
	UpdateOwners(ctx context.Context, input *model.UpdateOwnersInput) (*model.RunResult, error)
	UpdateRepository(ctx context.Context, input *model.UpdateRepoInput) (*model.RepoResult, error)
	DiscoverOwners(ctx context.Context, input *model.UpdateOwnersInput) ([]*model.HookRecord, error)
}
