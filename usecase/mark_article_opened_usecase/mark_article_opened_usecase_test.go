package mark_article_opened_usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pocket/domain"
	"pocket/mocks"
	apperrors "pocket/utils/errors"
)

func TestExecute_MarksUnreadArticleAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockArticleStorePort(ctrl)
	usecase := NewMarkArticleOpenedUsecase(store)

	store.EXPECT().
		GetArticle(gomock.Any(), int64(1)).
		Return(&domain.Article{ID: 1, URL: "https://example.com/1", Title: "t", IsRead: false}, nil)

	store.EXPECT().
		UpdateArticle(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
			require.NotNil(t, update.IsRead)
			require.True(t, *update.IsRead)
			require.Nil(t, update.Title)
			require.Nil(t, update.Archived)
			return &domain.Article{ID: id, IsRead: true}, nil
		})

	article, err := usecase.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, article.IsRead)
}

func TestExecute_AlreadyReadArticleIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockArticleStorePort(ctrl)
	usecase := NewMarkArticleOpenedUsecase(store)

	// No UpdateArticle expectation: a second open must not write.
	store.EXPECT().
		GetArticle(gomock.Any(), int64(1)).
		Return(&domain.Article{ID: 1, IsRead: true}, nil)

	article, err := usecase.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, article.IsRead)
}

func TestExecute_MissingArticleIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockArticleStorePort(ctrl)
	usecase := NewMarkArticleOpenedUsecase(store)

	store.EXPECT().GetArticle(gomock.Any(), int64(404)).Return(nil, nil)

	_, err := usecase.Execute(context.Background(), 404)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}
