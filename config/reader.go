package config

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/a8m/envsubst"
	"github.com/pkg/errors"

	"go.viam.com/inertia/inertia"
	"go.viam.com/inertia/logging"
)

// Read reads a config from the given file. Environment variables in the file are expanded first.
func Read(
	ctx context.Context,
	filePath string,
	logger logging.Logger,
) (*Config, error) {
	buf, err := envsubst.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return FromReader(ctx, filePath, bytes.NewReader(buf), logger)
}

// FromReader reads a config from the given reader and specifies
// where, if applicable, the file the reader originated from. Relative
// mesh paths are resolved against that file's directory.
func FromReader(
	ctx context.Context,
	originalPath string,
	r io.Reader,
	logger logging.Logger,
) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := &Config{ConfigFilePath: originalPath}
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "cannot parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if originalPath != "" {
		baseDir := filepath.Dir(originalPath)
		for _, link := range cfg.Links {
			if link.Geometry.Type == inertia.MeshType && link.Geometry.Mesh != "" && !filepath.IsAbs(link.Geometry.Mesh) {
				link.Geometry.Mesh = filepath.Join(baseDir, link.Geometry.Mesh)
			}
		}
	}

	logger.Debugw("read inertia config", "path", originalPath, "model", cfg.Name, "links", len(cfg.Links))
	return cfg, nil
}
