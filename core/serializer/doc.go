// Package serializer provides the concrete loaders dispatched by the manager.
//
// # Loaders
//
//   - Texture: decodes PNG, JPEG, GIF, BMP, TIFF and WebP images and keeps the
//     decoded image, optionally downscaled to a maximum edge length.
//   - Model: parses Wavefront OBJ files. Every object or group that declares
//     faces becomes an embedded Mesh asset with its own stable ID, installed
//     next to the model. Meshes dropped from the file are removed on reload.
//     Other model formats fail with ErrUnsupportedFormat.
//
// # Usage
//
//	m, err := manager.New(ctx, root, fsys, serializer.Loaders(cfg)...)
package serializer
