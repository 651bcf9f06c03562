package extract_content_usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pocket/domain"
	"pocket/mocks"
	apperrors "pocket/utils/errors"
)

func TestExecute_ExtractsContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractContentPort(ctrl)
	usecase := NewExtractContentUsecase(extractor)

	extractor.EXPECT().
		Extract(gomock.Any(), "https://example.com/post").
		Return(&domain.ExtractedContent{Title: "T", Content: "<p>body</p>"}, nil)

	content, err := usecase.Execute(context.Background(), "  https://example.com/post  ")
	require.NoError(t, err)
	require.NotNil(t, content)
	require.Equal(t, "T", content.Title)
}

func TestExecute_RejectsInvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractContentPort(ctrl)
	usecase := NewExtractContentUsecase(extractor)

	for _, raw := range []string{"", "   ", "not a url", "ftp://example.com"} {
		_, err := usecase.Execute(context.Background(), raw)
		require.Error(t, err, "url %q", raw)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	}
}

func TestExecute_DisabledExtractorIsRejected(t *testing.T) {
	usecase := NewExtractContentUsecase(nil)

	_, err := usecase.Execute(context.Background(), "https://example.com/post")
	require.Error(t, err)
}
