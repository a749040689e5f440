package interfaces

import (
	"context"

	"github.com/olsync/olpull/pkg/domain/model"
)

// PullUseCase defines the pull orchestration entry point
type PullUseCase interface {
	// Pull downloads the project archive and extracts it into the output directory
	Pull(ctx context.Context, req *model.PullRequest) (*model.PullResult, error)
}
