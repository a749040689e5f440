package cli

import (
	"context"
	"log/slog"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/olsync/olpull/pkg/cli/config"
	"github.com/olsync/olpull/pkg/domain/model"
	"github.com/olsync/olpull/pkg/infra/overleaf"
	"github.com/olsync/olpull/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPull() *cli.Command {
	var (
		overleafCfg config.Overleaf
		outputCfg   config.Output
	)

	flags := append(overleafCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:      "pull",
		Aliases:   []string{"p"},
		Usage:     "Download a project's zip export and extract it locally",
		ArgsUsage: "<project-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			// All required inputs are checked here, before any client is
			// constructed and before any network activity.
			projectID := c.Args().First()
			if projectID == "" {
				return goerr.New("project ID must not be empty", goerr.T(model.ErrTagConfig))
			}
			if err := overleafCfg.Validate(); err != nil {
				return err
			}

			client := overleaf.NewClient(
				overleafCfg.BaseURL,
				overleafCfg.Cookie,
				overleaf.WithTimeout(overleafCfg.Timeout),
				overleaf.WithUserAgent(overleafCfg.UserAgent),
			)

			uc := usecase.NewPull(client,
				usecase.WithFlattenRoot(!outputCfg.NoFlatten),
			)

			logger.Info("Pulling project",
				slog.String("project_id", projectID),
				slog.String("base_url", overleafCfg.BaseURL),
				slog.String("output_dir", outputCfg.Dir),
			)

			result, err := uc.Pull(ctx, &model.PullRequest{
				ProjectID: projectID,
				OutputDir: outputCfg.Dir,
			})
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Extracted %d files (%d bytes) to %s\n",
				result.FileCount, result.Size, result.OutputDir)

			return nil
		},
	}
}
