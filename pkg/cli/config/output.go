package config

import "github.com/urfave/cli/v3"

// Output holds local extraction settings
type Output struct {
	Dir       string
	NoFlatten bool
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Directory the project is extracted into",
			Value:       "overleaf-project",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("OLPULL_OUTPUT_DIR"),
		},
		&cli.BoolFlag{
			Name:        "no-flatten",
			Usage:       "Keep a single top-level directory from the archive instead of flattening it",
			Value:       false,
			Destination: &c.NoFlatten,
			Sources:     cli.EnvVars("OLPULL_NO_FLATTEN"),
		},
	}
}
