package checks

import (
	"context"
	"strings"
	"testing"

	"asset-registry/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "assets", []string{"project"})
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, assert.AnError)

		_, err := CheckStructure(context.Background(), mockClient, "assets", nil)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Some Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(func(opts minio.ListObjectsOptions) []minio.ObjectInfo {
				if strings.HasPrefix(opts.Prefix, "project/gone") {
					return nil
				}
				return []minio.ObjectInfo{{Key: opts.Prefix + "file.png"}}
			})

		missing, err := CheckStructure(context.Background(), mockClient, "assets",
			[]string{".", "project", "project/models", "project/gone"})
		require.NoError(t, err)
		assert.Equal(t, []string{"project/gone"}, missing)
		mockClient.AssertNumberOfCalls(t, "ListObjects", 3)
	})

	t.Run("Listing Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(func(opts minio.ListObjectsOptions) []minio.ObjectInfo {
				return []minio.ObjectInfo{{Err: assert.AnError}}
			})

		missing, err := CheckStructure(context.Background(), mockClient, "assets", []string{"project"})
		require.NoError(t, err)
		assert.Equal(t, []string{"project"}, missing)
	})
}
