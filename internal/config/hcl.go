package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"dimensional/core/numeric"
	"dimensional/internal/errors"
	"dimensional/internal/logging"
)

// hclFile mirrors Config with optional blocks, since gohcl requires
// non-pointer blocks to be present
type hclFile struct {
	Version    *string            `hcl:"version,optional"`
	Arithmetic *numeric.Precision `hcl:"arithmetic,block"`
	Output     *hclOutput         `hcl:"output,block"`
	Logging    *hclLogging        `hcl:"logging,block"`
}

type hclOutput struct {
	Format    *string `hcl:"format,optional"`
	ShowNotes *bool   `hcl:"show_notes,optional"`
}

type hclLogging struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

// loadHCL decodes an HCL config file over the defaults
func loadHCL(path string) (*Config, error) {
	var file hclFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("failed to parse config", err).WithContext("path", path)
	}

	cfg := Default()
	if file.Version != nil {
		cfg.Version = *file.Version
	}
	if a := file.Arithmetic; a != nil {
		if a.DivisionPlaces != 0 {
			cfg.Arithmetic.DivisionPlaces = a.DivisionPlaces
		}
		if a.RootDigits != 0 {
			cfg.Arithmetic.RootDigits = a.RootDigits
		}
	}
	if o := file.Output; o != nil {
		setString(&cfg.Output.Format, o.Format)
		setBool(&cfg.Output.ShowNotes, o.ShowNotes)
	}
	if l := file.Logging; l != nil {
		mergeLogging(&cfg.Logging, l)
	}
	return cfg, nil
}

func mergeLogging(dst *logging.Config, src *hclLogging) {
	setString(&dst.Level, src.Level)
	setString(&dst.Format, src.Format)
	setString(&dst.Output, src.Output)
	setBool(&dst.Development, src.Development)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
