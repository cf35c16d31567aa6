package boltdb

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ajustaestoque/internal/client/storage"
	"github.com/iudanet/ajustaestoque/internal/models"
)

func testAsset(url, body string) *models.CachedResponse {
	return &models.CachedResponse{
		URL:        url,
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       []byte(body),
		FetchedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func TestStorage_PutBucket_GetAsset(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	entries := []*models.CachedResponse{
		testAsset("http://app.local/ajustaEstoqueApp.html", "<html></html>"),
		testAsset("https://cdn.tailwindcss.com", "/* tailwind */"),
	}
	require.NoError(t, store.PutBucket(ctx, "v1", entries))

	for _, want := range entries {
		got, err := store.GetAsset(ctx, "v1", want.URL)
		require.NoError(t, err)
		assert.Equal(t, want.URL, got.URL)
		assert.Equal(t, want.Body, got.Body)
		assert.Equal(t, want.StatusCode, got.StatusCode)
		assert.Equal(t, "text/html", got.Header.Get("Content-Type"))
	}
}

func TestStorage_GetAsset_Misses(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetAsset(ctx, "v1", "http://app.local/")
	assert.ErrorIs(t, err, storage.ErrBucketNotFound)

	require.NoError(t, store.PutBucket(ctx, "v1", []*models.CachedResponse{testAsset("http://app.local/a", "a")}))

	_, err = store.GetAsset(ctx, "v1", "http://app.local/b")
	assert.ErrorIs(t, err, storage.ErrAssetNotFound)
}

func TestStorage_PutBucket_ReplacesEntries(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.PutBucket(ctx, "v1", []*models.CachedResponse{
		testAsset("http://app.local/a", "old-a"),
		testAsset("http://app.local/b", "old-b"),
	}))
	require.NoError(t, store.PutBucket(ctx, "v1", []*models.CachedResponse{
		testAsset("http://app.local/a", "new-a"),
	}))

	got, err := store.GetAsset(ctx, "v1", "http://app.local/a")
	require.NoError(t, err)
	assert.Equal(t, []byte("new-a"), got.Body)

	_, err = store.GetAsset(ctx, "v1", "http://app.local/b")
	assert.ErrorIs(t, err, storage.ErrAssetNotFound)
}

func TestStorage_PutBucket_EmptyVersion(t *testing.T) {
	store := createTestStorage(t)

	err := store.PutBucket(context.Background(), "", nil)
	assert.Error(t, err)
}

func TestStorage_ListAndDeleteBuckets(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for _, v := range []string{"v1", "v2"} {
		require.NoError(t, store.PutBucket(ctx, v, []*models.CachedResponse{testAsset("http://app.local/"+v, v)}))
	}

	names, err := store.ListBuckets(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1", "v2"}, names)

	require.NoError(t, store.DeleteBucket(ctx, "v1"))
	// Удаление отсутствующего bucket не ошибка
	require.NoError(t, store.DeleteBucket(ctx, "v1"))

	names, err = store.ListBuckets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"v2"}, names)
}
