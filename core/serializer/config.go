package serializer

// Config holds configuration for the built-in loaders.
type Config struct {
	// TextureMaxSize caps the longest edge of decoded textures. Zero keeps the original size.
	TextureMaxSize int `mapstructure:"texture_max_size" default:"0"`
	// ModelMeshes enables registration of embedded mesh assets for models.
	ModelMeshes bool `mapstructure:"model_meshes" default:"true"`
}
