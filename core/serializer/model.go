package serializer

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"asset-registry/core/asset"
	"asset-registry/core/identity"
	"asset-registry/core/manager"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// defaultMesh names faces declared before any object or group statement.
const defaultMesh = "default"

// Model is the in-memory representation of a model asset.
type Model struct {
	Positions [][3]float32 `json:"-"`
	Normals   int          `json:"normals"`
	TexCoords int          `json:"tex_coords"`
	Faces     int          `json:"faces"`
	// Meshes lists the embedded mesh assets in declaration order.
	Meshes []identity.ID `json:"meshes"`
}

// Mesh is the in-memory representation of an embedded mesh asset.
type Mesh struct {
	Name string `json:"name"`
	// Faces holds zero-based position indices, one slice per polygon.
	Faces [][]int `json:"-"`
}

// ModelLoader parses Wavefront OBJ files.
type ModelLoader struct {
	meshes bool
}

// NewModel creates a model loader. With meshes set, every object or group with
// faces is registered as an embedded mesh asset of the model.
func NewModel(meshes bool) *ModelLoader {
	return &ModelLoader{meshes: meshes}
}

// Load implements manager.Loader.
func (l *ModelLoader) Load(ctx context.Context, m *manager.Manager, a *asset.Asset) (bool, error) {
	if ext := strings.ToLower(a.Runtime.Extension); ext != "obj" {
		return false, fmt.Errorf("%w: model %s", ErrUnsupportedFormat, a.Metadata.Path)
	}

	raw, err := readAll(ctx, m, a)
	if err != nil {
		return false, err
	}

	model, meshes, err := ParseOBJ(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", a.Metadata.Path, err)
	}

	if l.meshes {
		var errs error
		for _, mesh := range meshes {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			id, err := embedMesh(m, a.Metadata.Path, mesh)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			model.Meshes = append(model.Meshes, id)
		}
		if errs != nil {
			return false, errs
		}
	}
	m.DropEmbedded(a.Metadata.ID, model.Meshes)

	m.Logger().Debug("Model parsed",
		zap.String("path", a.Metadata.Path),
		zap.Int("vertices", len(model.Positions)),
		zap.Int("faces", model.Faces),
		zap.Int("meshes", len(model.Meshes)),
	)

	a.Data = model
	return true, nil
}

func embedMesh(m *manager.Manager, hostPath string, mesh *Mesh) (identity.ID, error) {
	sub := asset.New(asset.TypeMesh)
	sub.Data = mesh
	sub.Runtime.Loaded = true

	id, err := m.CreateEmbeddedAsset(hostPath, asset.TypeMesh, mesh.Name, sub)
	if err != nil {
		return identity.None(), err
	}
	if err := m.Insert(sub); err != nil {
		return identity.None(), err
	}
	return id, nil
}

// ParseOBJ reads positions, normals, texture coordinates and faces. Faces are
// grouped by the last "o" or "g" statement; re-entering a name appends to it.
func ParseOBJ(raw []byte) (*Model, []*Mesh, error) {
	model := &Model{}
	var meshes []*Mesh
	byName := make(map[string]*Mesh)
	current := defaultMesh

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var p [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: %w", line, err)
				}
				p[i] = float32(f)
			}
			model.Positions = append(model.Positions, p)
		case "vn":
			model.Normals++
		case "vt":
			model.TexCoords++
		case "o", "g":
			current = defaultMesh
			if len(fields) > 1 {
				current = strings.Join(fields[1:], " ")
			}
		case "f":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("line %d: face needs at least 3 vertices", line)
			}
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				idx, err := positionIndex(ref, len(model.Positions))
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: %w", line, err)
				}
				face = append(face, idx)
			}

			mesh, ok := byName[current]
			if !ok {
				mesh = &Mesh{Name: current}
				byName[current] = mesh
				meshes = append(meshes, mesh)
			}
			mesh.Faces = append(mesh.Faces, face)
			model.Faces++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return model, meshes, nil
}

// positionIndex resolves the position part of a face vertex reference
// ("7", "7/2", "7//3", "-1") to a zero-based index.
func positionIndex(ref string, count int) (int, error) {
	head, _, _ := strings.Cut(ref, "/")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("invalid vertex reference %q", ref)
	}

	idx := n - 1
	if n < 0 {
		idx = count + n
	}
	if n == 0 || idx < 0 || idx >= count {
		return 0, fmt.Errorf("vertex reference %q out of range", ref)
	}
	return idx, nil
}
