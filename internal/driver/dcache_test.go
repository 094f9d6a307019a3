package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"implfan/internal/project"
)

func TestDiskCacheRoundtrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	key := CacheKey(project.HashBytes([]byte("input")), "transform")
	payload := &DiskPayload{
		Schema:    diskCacheSchemaVersion,
		Marker:    "transform",
		InputHash: project.HashBytes([]byte("input")),
		Output:    []byte("impl A {}\n\nimpl B {}"),
		Count:     1,
	}
	require.NoError(t, cache.Put(key, payload))

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, payload.Marker, got.Marker)
	assert.Equal(t, payload.InputHash, got.InputHash)
	assert.Equal(t, payload.Output, got.Output)
	assert.Equal(t, payload.Count, got.Count)
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	var got DiskPayload
	hit, err := cache.Get(CacheKey(project.HashBytes([]byte("absent")), "transform"), &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDiskCacheSchemaMismatch(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	key := CacheKey(project.HashBytes([]byte("x")), "transform")
	require.NoError(t, cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion + 1}))

	var got DiskPayload
	hit, err := cache.Get(key, &got)
	require.NoError(t, err)
	assert.False(t, hit, "foreign schema must read as a miss")
}

func TestCacheKeyDependsOnMarker(t *testing.T) {
	h := project.HashBytes([]byte("same input"))
	assert.NotEqual(t, CacheKey(h, "transform"), CacheKey(h, "fanout"))
}

func TestDiskCacheNilSafe(t *testing.T) {
	var cache *DiskCache
	require.NoError(t, cache.Put(project.Digest{}, &DiskPayload{}))
	hit, err := cache.Get(project.Digest{}, &DiskPayload{})
	require.NoError(t, err)
	assert.False(t, hit)
}
