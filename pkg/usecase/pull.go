package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olsync/olpull/pkg/domain/interfaces"
	"github.com/olsync/olpull/pkg/domain/model"
	"github.com/olsync/olpull/pkg/utils/archive"
)

type pullUseCase struct {
	client      interfaces.OverleafClient
	flattenRoot bool
}

// PullOption is a functional option for pull behavior
type PullOption func(*pullUseCase)

// WithFlattenRoot controls whether a single top-level directory in the
// archive is flattened into the output directory. Enabled by default.
func WithFlattenRoot(enabled bool) PullOption {
	return func(uc *pullUseCase) {
		uc.flattenRoot = enabled
	}
}

// NewPull creates a new instance of PullUseCase
func NewPull(client interfaces.OverleafClient, opts ...PullOption) interfaces.PullUseCase {
	uc := &pullUseCase{
		client:      client,
		flattenRoot: true,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Pull downloads the project archive and extracts it into the output
// directory. Inputs are validated before the client is touched, so a
// misconfigured invocation never reaches the network.
func (uc *pullUseCase) Pull(ctx context.Context, req *model.PullRequest) (*model.PullResult, error) {
	logger := ctxlog.From(ctx)

	if req.ProjectID == "" {
		return nil, goerr.New("project ID must not be empty", goerr.T(model.ErrTagConfig))
	}
	if req.OutputDir == "" {
		return nil, goerr.New("output directory must not be empty", goerr.T(model.ErrTagConfig))
	}

	logger.Info("Downloading project archive",
		"project_id", req.ProjectID,
	)

	data, err := uc.client.DownloadZip(ctx, req.ProjectID)
	if err != nil {
		return nil, goerr.Wrap(err, "download stage failed",
			goerr.V("project_id", req.ProjectID),
		)
	}

	logger.Info("Downloaded project archive",
		"project_id", req.ProjectID,
		"size_bytes", len(data),
	)

	var opts []archive.Option
	if uc.flattenRoot {
		opts = append(opts, archive.WithFlattenRoot())
	}

	result, err := archive.Extract(ctx, data, req.OutputDir, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "extract stage failed",
			goerr.V("project_id", req.ProjectID),
			goerr.V("output_dir", req.OutputDir),
		)
	}

	logger.Info("Extracted project archive",
		"project_id", req.ProjectID,
		"output_dir", req.OutputDir,
		"file_count", result.FileCount,
		"total_size_bytes", result.Size,
	)

	return &model.PullResult{
		OutputDir: req.OutputDir,
		FileCount: result.FileCount,
		Size:      result.Size,
	}, nil
}
