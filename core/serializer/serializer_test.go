package serializer_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"asset-registry/core/asset"
	"asset-registry/core/listing"
	"asset-registry/core/manager"
	"asset-registry/core/serializer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const shipOBJ = `# ship
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
vn 0 0 1
vt 0 0
f 1 2 3
o hull
f 1/1/1 2/1/1 4/1/1
f -1 -2 -3
g wing left
f 2//1 3//1 4//1
o hull
f 1 3 4
`

func encode(t *testing.T, enc func(*bytes.Buffer, image.Image) error, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.String()
}

func setup(t *testing.T, cfg serializer.Config) (*manager.Manager, *listing.Memory) {
	t.Helper()
	fsys := listing.NewMemory(map[string]string{
		"project/textures/a.png":    encode(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) }, 64, 32),
		"project/textures/b.bmp":    encode(t, func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) }, 8, 8),
		"project/textures/c.tif":    encode(t, func(b *bytes.Buffer, i image.Image) error { return tiff.Encode(b, i, nil) }, 4, 12),
		"project/textures/d.jpg":    "not an image",
		"project/models/ship.obj":   shipOBJ,
		"project/models/bad.obj":    "v 0 0 0\nf 1 2 3\n",
		"project/models/scene.gltf": `{"asset":{"version":"2.0"}}`,
		"project/models/crate.FBX":  "Kaydara FBX Binary",
	})
	m, err := manager.New(context.Background(), "project", fsys, serializer.Loaders(cfg)...)
	require.NoError(t, err)
	return m, fsys
}

func load(t *testing.T, m *manager.Manager, path string) *asset.Asset {
	t.Helper()
	loaded, err := m.LoadPath(context.Background(), path)
	require.NoError(t, err)
	require.True(t, loaded)

	md, _ := m.Lookup(path)
	a, ok := m.Get(md.ID)
	require.True(t, ok)
	assert.True(t, a.Runtime.Loaded)
	return a
}

func TestTextureLoader(t *testing.T) {
	m, _ := setup(t, serializer.Config{})

	tests := []struct {
		path   string
		format string
		width  int
		height int
	}{
		{"project/textures/a.png", "png", 64, 32},
		{"project/textures/b.bmp", "bmp", 8, 8},
		{"project/textures/c.tif", "tiff", 4, 12},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			a := load(t, m, tt.path)
			tex, ok := a.Data.(*serializer.Texture)
			require.True(t, ok)
			assert.Equal(t, tt.format, tex.Format)
			assert.Equal(t, tt.width, tex.Width)
			assert.Equal(t, tt.height, tex.Height)
			assert.Equal(t, image.Rect(0, 0, tt.width, tt.height), tex.Image.Bounds())
		})
	}

	t.Run("UnknownFormat", func(t *testing.T) {
		loaded, err := m.LoadPath(context.Background(), "project/textures/d.jpg")
		assert.False(t, loaded)
		assert.ErrorIs(t, err, image.ErrFormat)
		assert.Equal(t, int64(1), m.Stats().LoadFailures)
	})
}

func TestTextureLoader_MaxSize(t *testing.T) {
	m, _ := setup(t, serializer.Config{TextureMaxSize: 16})

	tex := load(t, m, "project/textures/a.png").Data.(*serializer.Texture)
	assert.Equal(t, 64, tex.Width)
	assert.Equal(t, 32, tex.Height)
	assert.Equal(t, image.Rect(0, 0, 16, 8), tex.Image.Bounds())

	tex = load(t, m, "project/textures/c.tif").Data.(*serializer.Texture)
	assert.Equal(t, image.Rect(0, 0, 4, 12), tex.Image.Bounds())
}

func TestModelLoader(t *testing.T) {
	m, _ := setup(t, serializer.Config{ModelMeshes: true})
	host, _ := m.Lookup("project/models/ship.obj")

	model, ok := load(t, m, host.Path).Data.(*serializer.Model)
	require.True(t, ok)
	assert.Len(t, model.Positions, 4)
	assert.Equal(t, 1, model.Normals)
	assert.Equal(t, 1, model.TexCoords)
	assert.Equal(t, 5, model.Faces)
	require.Len(t, model.Meshes, 3)

	want := []struct {
		name  string
		faces int
	}{
		{"default", 1},
		{"hull", 3},
		{"wing left", 1},
	}
	for i, w := range want {
		md, ok := m.Lookup(asset.EmbeddedPath(host.Path, w.name))
		require.True(t, ok, w.name)
		assert.Equal(t, model.Meshes[i], md.ID)
		assert.Equal(t, asset.TypeMesh, md.Type)

		mesh, ok := m.Get(md.ID)
		require.True(t, ok)
		assert.Equal(t, host.ID, mesh.Runtime.Parent)
		assert.True(t, mesh.Runtime.Loaded)
		assert.Len(t, mesh.Data.(*serializer.Mesh).Faces, w.faces)
	}

	t.Run("StableMeshIdentities", func(t *testing.T) {
		again := load(t, m, host.Path).Data.(*serializer.Model)
		assert.Equal(t, model.Meshes, again.Meshes)
	})

	t.Run("MeshesSurviveReconcile", func(t *testing.T) {
		m.Reconcile()
		for _, id := range model.Meshes {
			_, ok := m.Get(id)
			assert.True(t, ok)
		}
	})

	t.Run("OutOfRangeFace", func(t *testing.T) {
		loaded, err := m.LoadPath(context.Background(), "project/models/bad.obj")
		assert.False(t, loaded)
		assert.ErrorContains(t, err, "out of range")
	})
}

func TestModelLoader_UnsupportedFormat(t *testing.T) {
	m, _ := setup(t, serializer.Config{ModelMeshes: true})
	before := len(m.Registry())

	for _, path := range []string{"project/models/scene.gltf", "project/models/crate.FBX"} {
		t.Run(asset.Filename(path), func(t *testing.T) {
			md, ok := m.Lookup(path)
			require.True(t, ok)
			assert.Equal(t, asset.TypeModel, md.Type)

			loaded, err := m.LoadPath(context.Background(), path)
			assert.False(t, loaded)
			assert.ErrorIs(t, err, serializer.ErrUnsupportedFormat)

			a, _ := m.Get(md.ID)
			assert.False(t, a.Runtime.Loaded)
			assert.Nil(t, a.Data)
		})
	}
	assert.Equal(t, before, len(m.Registry()))
	assert.Equal(t, int64(2), m.Stats().LoadFailures)
}

func TestModelLoader_DropsRemovedMeshes(t *testing.T) {
	m, fsys := setup(t, serializer.Config{ModelMeshes: true})
	const path = "project/models/ship.obj"

	first := load(t, m, path).Data.(*serializer.Model)
	require.Len(t, first.Meshes, 3)
	live := m.Len()

	fsys.Write(path, "v 0 0 0\nv 1 0 0\nv 0 1 0\no hull\nf 1 2 3\n")
	second := load(t, m, path).Data.(*serializer.Model)
	require.Len(t, second.Meshes, 1)
	assert.Equal(t, first.Meshes[1], second.Meshes[0])
	assert.Equal(t, live-2, m.Len())

	m.Reconcile()
	for _, name := range []string{"default", "wing left"} {
		_, ok := m.Lookup(asset.EmbeddedPath(path, name))
		assert.False(t, ok, name)
	}
	_, ok := m.Get(first.Meshes[0])
	assert.False(t, ok)
	hull, ok := m.Get(second.Meshes[0])
	require.True(t, ok)
	assert.Len(t, hull.Data.(*serializer.Mesh).Faces, 1)

	t.Run("MeshesDisabled", func(t *testing.T) {
		m.RegisterLoader(asset.TypeModel, serializer.NewModel(false))
		model := load(t, m, path).Data.(*serializer.Model)
		assert.Empty(t, model.Meshes)

		m.Reconcile()
		_, ok := m.Lookup(asset.EmbeddedPath(path, "hull"))
		assert.False(t, ok)
	})
}

func TestModelLoader_WithoutMeshes(t *testing.T) {
	m, _ := setup(t, serializer.Config{})
	before := len(m.Registry())

	model := load(t, m, "project/models/ship.obj").Data.(*serializer.Model)
	assert.Empty(t, model.Meshes)
	assert.Equal(t, before, len(m.Registry()))
}

func TestParseOBJ(t *testing.T) {
	model, meshes, err := serializer.ParseOBJ([]byte(shipOBJ))
	require.NoError(t, err)
	assert.Equal(t, [3]float32{1, 1, 0}, model.Positions[3])
	require.Len(t, meshes, 3)
	assert.Equal(t, []int{3, 2, 1}, meshes[1].Faces[1])

	_, _, err = serializer.ParseOBJ([]byte("v 0 0\n"))
	assert.Error(t, err)

	_, _, err = serializer.ParseOBJ([]byte("v 0 0 0\nv 0 0 0\nv 0 0 0\nf 1 x 3\n"))
	assert.ErrorContains(t, err, "invalid vertex reference")
}
