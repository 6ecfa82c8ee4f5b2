package serializer

import (
	"bytes"
	"context"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"asset-registry/core/asset"
	"asset-registry/core/manager"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is the in-memory representation of a texture asset.
type Texture struct {
	Format string `json:"format"`
	// Width and Height are the dimensions of the source file.
	Width  int `json:"width"`
	Height int `json:"height"`
	// Image is the decoded image, downscaled when a maximum size is configured.
	Image image.Image `json:"-"`
}

// TextureLoader decodes image files.
type TextureLoader struct {
	maxSize int
}

// NewTexture creates a texture loader. maxSize caps the longest edge of the
// decoded image; zero disables downscaling.
func NewTexture(maxSize int) *TextureLoader {
	return &TextureLoader{maxSize: maxSize}
}

// Load implements manager.Loader.
func (l *TextureLoader) Load(ctx context.Context, m *manager.Manager, a *asset.Asset) (bool, error) {
	raw, err := readAll(ctx, m, a)
	if err != nil {
		return false, err
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return false, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	tex := &Texture{
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
		Image:  img,
	}

	if w, h := fit(tex.Width, tex.Height, l.maxSize); w != tex.Width || h != tex.Height {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		tex.Image = dst
	}

	m.Logger().Debug("Texture decoded",
		zap.String("path", a.Metadata.Path),
		zap.String("format", format),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height),
	)

	a.Data = tex
	return true, nil
}

// fit scales w x h down so that neither edge exceeds limit, keeping the aspect ratio.
func fit(w, h, limit int) (int, int) {
	if limit <= 0 || (w <= limit && h <= limit) {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}
