package article_local_gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket/domain"
	"pocket/driver/local_store"
	"pocket/port/article_store_port"
)

var _ article_store_port.ArticleStorePort = (*ArticleLocalGateway)(nil)

func newGateway(t *testing.T) *ArticleLocalGateway {
	t.Helper()
	store, err := local_store.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return NewArticleLocalGateway(store)
}

func TestGateway_RoundTrip(t *testing.T) {
	gateway := newGateway(t)
	ctx := context.Background()

	created, err := gateway.CreateArticle(ctx, domain.InsertArticle{URL: "https://example.com/a", Title: "A"})
	require.NoError(t, err)

	got, err := gateway.GetArticle(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Title)

	articles, err := gateway.ListArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestGateway_DeleteAbsentIsNoOp(t *testing.T) {
	gateway := newGateway(t)
	assert.NoError(t, gateway.DeleteArticle(context.Background(), 12345))
}

func TestGateway_NilStoreGuard(t *testing.T) {
	gateway := NewArticleLocalGateway(nil)

	_, err := gateway.ListArticles(context.Background())
	assert.Error(t, err)

	_, err = gateway.CreateArticle(context.Background(), domain.InsertArticle{URL: "https://example.com", Title: "t"})
	assert.Error(t, err)
}
