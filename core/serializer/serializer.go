package serializer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"asset-registry/core/asset"
	"asset-registry/core/manager"
)

// ErrUnsupportedFormat is returned for a classified file whose format no loader parses.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Loaders returns the manager options registering every built-in loader.
func Loaders(cfg Config) []manager.Option {
	return []manager.Option{
		manager.WithLoader(asset.TypeTexture, NewTexture(cfg.TextureMaxSize)),
		manager.WithLoader(asset.TypeModel, NewModel(cfg.ModelMeshes)),
	}
}

// readAll opens the file behind a through the manager's file system.
func readAll(ctx context.Context, m *manager.Manager, a *asset.Asset) ([]byte, error) {
	rc, err := m.FileSystem().Open(ctx, a.Metadata.Path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a.Metadata.Path, err)
	}
	return raw, nil
}
