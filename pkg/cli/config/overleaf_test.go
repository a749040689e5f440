package config_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/olsync/olpull/pkg/cli/config"
	"github.com/olsync/olpull/pkg/domain/model"
)

func TestOverleaf_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Overleaf
		wantErr bool
	}{
		{
			name: "valid configuration",
			cfg: config.Overleaf{
				BaseURL: "https://www.overleaf.com",
				Cookie:  "s%3Aabc",
				Timeout: 60 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "missing base URL",
			cfg: config.Overleaf{
				Cookie: "s%3Aabc",
			},
			wantErr: true,
		},
		{
			name: "missing cookie",
			cfg: config.Overleaf{
				BaseURL: "https://www.overleaf.com",
			},
			wantErr: true,
		},
		{
			name:    "everything missing",
			cfg:     config.Overleaf{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				gt.Error(t, err)
				gt.Value(t, goerr.HasTag(err, model.ErrTagConfig)).Equal(true)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestOverleaf_Flags(t *testing.T) {
	cfg := &config.Overleaf{}
	flags := cfg.Flags()
	gt.Number(t, len(flags)).Equal(4)
}

func TestOutput_Flags(t *testing.T) {
	cfg := &config.Output{}
	flags := cfg.Flags()
	gt.Number(t, len(flags)).Equal(2)
}
