// Package di wires the storage backend, the extractor, and every usecase
// into one application container. Backend selection happens exactly once
// here; nothing below the container ever branches on the storage mode.
package di

import (
	"context"
	"fmt"

	"pocket/config"
	"pocket/driver/local_store"
	"pocket/driver/pocket_db"
	"pocket/gateway/article_db_gateway"
	"pocket/gateway/article_local_gateway"
	"pocket/gateway/extract_content_gateway"
	"pocket/port/article_store_port"
	"pocket/port/extract_content_port"
	"pocket/usecase/delete_article_usecase"
	"pocket/usecase/extract_content_usecase"
	"pocket/usecase/fetch_articles_usecase"
	"pocket/usecase/import_articles_usecase"
	"pocket/usecase/mark_article_opened_usecase"
	"pocket/usecase/save_article_usecase"
	"pocket/usecase/update_article_usecase"
	"pocket/utils/logger"
)

type ApplicationComponents struct {
	SaveArticleUsecase       *save_article_usecase.SaveArticleUsecase
	FetchArticlesUsecase     *fetch_articles_usecase.FetchArticlesUsecase
	UpdateArticleUsecase     *update_article_usecase.UpdateArticleUsecase
	DeleteArticleUsecase     *delete_article_usecase.DeleteArticleUsecase
	MarkArticleOpenedUsecase *mark_article_opened_usecase.MarkArticleOpenedUsecase
	ImportArticlesUsecase    *import_articles_usecase.ImportArticlesUsecase
	ExtractContentUsecase    *extract_content_usecase.ExtractContentUsecase
}

// NewApplicationComponents builds every usecase on top of the given store
// backend and extractor. extractor may be nil when extraction is disabled.
func NewApplicationComponents(store article_store_port.ArticleStorePort, extractor extract_content_port.ExtractContentPort, cfg *config.Config) *ApplicationComponents {
	return &ApplicationComponents{
		SaveArticleUsecase:       save_article_usecase.NewSaveArticleUsecase(store, extractor, cfg.Extraction.MinContentLength),
		FetchArticlesUsecase:     fetch_articles_usecase.NewFetchArticlesUsecase(store),
		UpdateArticleUsecase:     update_article_usecase.NewUpdateArticleUsecase(store),
		DeleteArticleUsecase:     delete_article_usecase.NewDeleteArticleUsecase(store),
		MarkArticleOpenedUsecase: mark_article_opened_usecase.NewMarkArticleOpenedUsecase(store),
		ImportArticlesUsecase:    import_articles_usecase.NewImportArticlesUsecase(store),
		ExtractContentUsecase:    extract_content_usecase.NewExtractContentUsecase(extractor),
	}
}

// NewStoreBackend selects and initializes the configured article store.
// The returned cleanup releases whatever the backend holds open.
func NewStoreBackend(ctx context.Context, cfg *config.Config) (article_store_port.ArticleStorePort, func(), error) {
	switch cfg.Storage.Mode {
	case config.StorageModeLocal:
		store, err := local_store.NewLocalStore(cfg.Storage.LocalDataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize local store: %w", err)
		}
		logger.SafeInfo("using local article store", "dir", cfg.Storage.LocalDataDir)
		return article_local_gateway.NewArticleLocalGateway(store), func() {}, nil

	case config.StorageModeDB:
		pool, err := pocket_db.InitDBConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize database connection: %w", err)
		}
		logger.SafeInfo("using database article store", "host", cfg.Database.Host, "database", cfg.Database.Name)
		repository := pocket_db.NewRepository(pool)
		return article_db_gateway.NewArticleDBGateway(repository), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage mode %q", cfg.Storage.Mode)
	}
}

// NewContentExtractor returns nil when extraction is disabled; callers
// treat a nil extractor as "save articles exactly as submitted".
func NewContentExtractor(cfg *config.Config) extract_content_port.ExtractContentPort {
	if !cfg.Extraction.Enabled {
		logger.SafeInfo("content extraction disabled")
		return nil
	}
	return extract_content_gateway.NewExtractContentGateway(
		cfg.Extraction.Timeout,
		cfg.Extraction.UserAgent,
		cfg.Extraction.HostInterval,
	)
}
