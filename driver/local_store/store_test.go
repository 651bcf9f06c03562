package local_store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pocket/domain"
)

func newTestStore(t *testing.T) (*LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	return store, dir
}

func strPtr(s string) *string { return &s }

func TestLocalStore_CreateAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateArticle(ctx, domain.InsertArticle{
		URL:         "https://example.com/a",
		Title:       "First",
		Description: strPtr("desc"),
		Tags:        []string{"go"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := store.GetArticle(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "First", got.Title)
	require.Equal(t, []string{"go"}, got.Tags)

	missing, err := store.GetArticle(ctx, 42)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestLocalStore_CreateValidatesInput(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateArticle(ctx, domain.InsertArticle{URL: "  ", Title: "t"})
	require.Error(t, err)

	_, err = store.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com", Title: ""})
	require.Error(t, err)
}

func TestLocalStore_ListOrdering(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	// Seed the record file directly so createdAt values are controlled,
	// including an exact tie that must fall back to id ordering.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []domain.Article{
		{ID: 1, URL: "https://example.com/1", Title: "oldest", Tags: []string{}, CreatedAt: base.Add(-time.Hour)},
		{ID: 2, URL: "https://example.com/2", Title: "tie-low", Tags: []string{}, CreatedAt: base},
		{ID: 3, URL: "https://example.com/3", Title: "tie-high", Tags: []string{}, CreatedAt: base},
	}
	raw, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, articlesFileName), raw, 0o644))

	articles, err := store.ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	require.Equal(t, int64(3), articles[0].ID)
	require.Equal(t, int64(2), articles[1].ID)
	require.Equal(t, int64(1), articles[2].ID)
}

func TestLocalStore_UpdateMergesFields(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateArticle(ctx, domain.InsertArticle{
		URL:         "https://example.com/a",
		Title:       "Original",
		Description: strPtr("keep me"),
	})
	require.NoError(t, err)

	read := true
	updated, err := store.UpdateArticle(ctx, created.ID, domain.ArticleUpdate{
		Title:  strPtr("Renamed"),
		IsRead: &read,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)
	require.True(t, updated.IsRead)
	require.Equal(t, "https://example.com/a", updated.URL)
	require.NotNil(t, updated.Description)
	require.Equal(t, "keep me", *updated.Description)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = store.UpdateArticle(ctx, 999, domain.ArticleUpdate{Title: strPtr("nope")})
	require.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestLocalStore_DeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com/a", Title: "t"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteArticle(ctx, created.ID))
	require.NoError(t, store.DeleteArticle(ctx, created.ID))
	require.NoError(t, store.DeleteArticle(ctx, 12345))

	got, err := store.GetArticle(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestLocalStore_BulkCreateAllocatesSequentialIDs(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.BulkCreateArticles(ctx, []domain.InsertArticle{
		{URL: "https://example.com/1", Title: "one"},
		{URL: "https://example.com/2", Title: "two"},
		{URL: "https://example.com/3", Title: "three"},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	require.Equal(t, int64(1), created[0].ID)
	require.Equal(t, int64(2), created[1].ID)
	require.Equal(t, int64(3), created[2].ID)

	empty, err := store.BulkCreateArticles(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestLocalStore_CounterSurvivesRecordFileLoss(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com/1", Title: "one"})
	require.NoError(t, err)
	second, err := store.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com/2", Title: "two"})
	require.NoError(t, err)
	require.Equal(t, first.ID+1, second.ID)

	// Wiping the record file must not recycle already-issued ids: the
	// counter is persisted separately.
	require.NoError(t, os.Remove(filepath.Join(dir, articlesFileName)))

	reopened, err := NewLocalStore(dir)
	require.NoError(t, err)
	third, err := reopened.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com/3", Title: "three"})
	require.NoError(t, err)
	require.Equal(t, second.ID+1, third.ID)
}

func TestLocalStore_CorruptCounterReseedsFromRecords(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	for _, url := range []string{"https://example.com/1", "https://example.com/2", "https://example.com/3"} {
		_, err := store.CreateArticle(ctx, domain.InsertArticle{URL: url, Title: "t"})
		require.NoError(t, err)
	}

	// Mangling the counter file must not restart allocation at 1 while the
	// record file still holds issued ids.
	require.NoError(t, os.WriteFile(filepath.Join(dir, counterFileName), []byte("{not a number"), 0o644))

	fourth, err := store.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com/4", Title: "t"})
	require.NoError(t, err)
	require.Equal(t, int64(4), fourth.ID)
}

func TestLocalStore_StaleCounterNeverReissuesIDs(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	for _, url := range []string{"https://example.com/1", "https://example.com/2"} {
		_, err := store.CreateArticle(ctx, domain.InsertArticle{URL: url, Title: "t"})
		require.NoError(t, err)
	}

	// A counter rolled back behind the records must be overridden by the
	// highest id already on record.
	require.NoError(t, os.WriteFile(filepath.Join(dir, counterFileName), []byte("1"), 0o644))

	third, err := store.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com/3", Title: "t"})
	require.NoError(t, err)
	require.Equal(t, int64(3), third.ID)
}

func TestLocalStore_CorruptRecordFileStartsEmpty(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, articlesFileName), []byte("{not json"), 0o644))

	articles, err := store.ListArticles(ctx)
	require.NoError(t, err)
	require.Empty(t, articles)
}
