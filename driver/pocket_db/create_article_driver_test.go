package pocket_db

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket/domain"
)

func TestCreateArticle_ReturnsStoredRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO articles").
		WithArgs("https://example.com/post", "Post", (*string)(nil), (*string)(nil), false, false, []string{}).
		WillReturnRows(articleRows().
			AddRow(int64(10), "https://example.com/post", "Post", nil, nil, false, false, []string{}, createdAt))

	article, err := repo.CreateArticle(context.Background(), domain.InsertArticle{
		URL:   "https://example.com/post",
		Title: "Post",
	})

	assert.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, int64(10), article.ID)
	assert.Equal(t, createdAt, article.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle_TrimsInput(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	mock.ExpectQuery("INSERT INTO articles").
		WithArgs("https://example.com/post", "Post", (*string)(nil), (*string)(nil), false, false, []string{"go"}).
		WillReturnRows(articleRows().
			AddRow(int64(11), "https://example.com/post", "Post", nil, nil, false, false, []string{"go"}, time.Now().UTC()))

	article, err := repo.CreateArticle(context.Background(), domain.InsertArticle{
		URL:   "  https://example.com/post  ",
		Title: "  Post  ",
		Tags:  []string{"go"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Post", article.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArticle_RejectsBlankFields(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRepository(mock)

	_, err = repo.CreateArticle(context.Background(), domain.InsertArticle{URL: "  ", Title: "t"})
	assert.Error(t, err)

	_, err = repo.CreateArticle(context.Background(), domain.InsertArticle{URL: "https://example.com", Title: " "})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
