package asset

import (
	"path"
	"strings"
)

var extensionTypes = map[string]Type{
	".obj":  TypeModel,
	".fbx":  TypeModel,
	".gltf": TypeModel,
	".glb":  TypeModel,
	".dae":  TypeModel,
	".3ds":  TypeModel,
	".png":  TypeTexture,
	".jpg":  TypeTexture,
	".jpeg": TypeTexture,
	".gif":  TypeTexture,
	".bmp":  TypeTexture,
	".tif":  TypeTexture,
	".tiff": TypeTexture,
	".webp": TypeTexture,
}

// TypeFromPath classifies a file by extension. Unknown extensions map to TypeNone.
func TypeFromPath(p string) Type {
	ext := strings.ToLower(path.Ext(p))
	if t, ok := extensionTypes[ext]; ok {
		return t
	}
	return TypeNone
}
