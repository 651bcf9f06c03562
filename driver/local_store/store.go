// Package local_store implements the offline article store: a single-device
// JSON file for records plus a separately persisted monotonic id counter.
// The counter is incremented and saved atomically with each allocation so
// ids stay unique even if the record file is independently corrupted or
// reset.
package local_store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"pocket/domain"
	"pocket/utils/logger"
)

const (
	articlesFileName = "articles.json"
	counterFileName  = "next_id"
)

// LocalStore serializes every operation under one mutex; there is no
// partial-write visibility between operations.
type LocalStore struct {
	mu           sync.Mutex
	articlesPath string
	counterPath  string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local store directory: %w", err)
	}
	return &LocalStore{
		articlesPath: filepath.Join(dir, articlesFileName),
		counterPath:  filepath.Join(dir, counterFileName),
	}, nil
}

// ListArticles returns every stored article ordered by createdAt
// descending, ties broken by id descending.
func (s *LocalStore) ListArticles(ctx context.Context) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadArticles()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if !articles[i].CreatedAt.Equal(articles[j].CreatedAt) {
			return articles[i].CreatedAt.After(articles[j].CreatedAt)
		}
		return articles[i].ID > articles[j].ID
	})

	return articles, nil
}

// GetArticle returns nil without error when the id does not exist.
func (s *LocalStore) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadArticles()
	if err != nil {
		return nil, err
	}

	for i := range articles {
		if articles[i].ID == id {
			return &articles[i], nil
		}
	}
	return nil, nil
}

// CreateArticle assigns the next persisted id and the current time, then
// appends the record.
func (s *LocalStore) CreateArticle(ctx context.Context, input domain.InsertArticle) (*domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadArticles()
	if err != nil {
		return nil, err
	}

	article, err := s.buildArticle(articles, input)
	if err != nil {
		return nil, err
	}

	articles = append(articles, *article)
	if err := s.saveArticles(articles); err != nil {
		return nil, err
	}

	logger.SafeInfoContext(ctx, "article created in local store", "id", article.ID, "url", article.URL)
	return article, nil
}

// UpdateArticle merges only non-nil fields; id and createdAt never change.
// Returns domain.ErrArticleNotFound for an absent id.
func (s *LocalStore) UpdateArticle(ctx context.Context, id int64, update domain.ArticleUpdate) (*domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadArticles()
	if err != nil {
		return nil, err
	}

	for i := range articles {
		if articles[i].ID != id {
			continue
		}

		merged := articles[i]
		if update.URL != nil {
			merged.URL = strings.TrimSpace(*update.URL)
		}
		if update.Title != nil {
			merged.Title = strings.TrimSpace(*update.Title)
		}
		if update.Description != nil {
			merged.Description = update.Description
		}
		if update.Content != nil {
			merged.Content = update.Content
		}
		if update.IsRead != nil {
			merged.IsRead = *update.IsRead
		}
		if update.Archived != nil {
			merged.Archived = *update.Archived
		}
		if update.Tags != nil {
			tags := *update.Tags
			if tags == nil {
				tags = []string{}
			}
			merged.Tags = tags
		}

		articles[i] = merged
		if err := s.saveArticles(articles); err != nil {
			return nil, err
		}
		return &merged, nil
	}

	return nil, domain.ErrArticleNotFound
}

// DeleteArticle removes the record when present. Deleting an absent id is
// a no-op on this backend: the device-local store has nobody to race with,
// so "already gone" and "deleted" are indistinguishable outcomes.
func (s *LocalStore) DeleteArticle(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadArticles()
	if err != nil {
		return err
	}

	kept := articles[:0]
	for _, article := range articles {
		if article.ID != id {
			kept = append(kept, article)
		}
	}
	if len(kept) == len(articles) {
		return nil
	}

	return s.saveArticles(kept)
}

// BulkCreateArticles behaves like sequential creates in input order. Ids
// are allocated (and the counter persisted) one by one; the record file is
// written once at the end, so a crash mid-batch can burn ids but never
// duplicates them.
func (s *LocalStore) BulkCreateArticles(ctx context.Context, inputs []domain.InsertArticle) ([]domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.loadArticles()
	if err != nil {
		return nil, err
	}

	created := make([]domain.Article, 0, len(inputs))
	for _, input := range inputs {
		article, err := s.buildArticle(articles, input)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *article)
		created = append(created, *article)
	}

	if len(created) > 0 {
		if err := s.saveArticles(articles); err != nil {
			return nil, err
		}
	}

	logger.SafeInfoContext(ctx, "articles bulk created in local store", "count", len(created))
	return created, nil
}

func (s *LocalStore) buildArticle(existing []domain.Article, input domain.InsertArticle) (*domain.Article, error) {
	cleanURL := strings.TrimSpace(input.URL)
	if cleanURL == "" {
		return nil, errors.New("article url cannot be empty")
	}
	cleanTitle := strings.TrimSpace(input.Title)
	if cleanTitle == "" {
		return nil, errors.New("article title cannot be empty")
	}

	id, err := s.nextID(existing)
	if err != nil {
		return nil, err
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	return &domain.Article{
		ID:          id,
		URL:         cleanURL,
		Title:       cleanTitle,
		Description: input.Description,
		Content:     input.Content,
		IsRead:      input.IsRead,
		Archived:    input.Archived,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// loadArticles treats a missing or corrupt record file as an empty list;
// the id counter lives in its own file and is never reset by this path.
func (s *LocalStore) loadArticles() ([]domain.Article, error) {
	raw, err := os.ReadFile(s.articlesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Article{}, nil
		}
		return nil, fmt.Errorf("read local articles: %w", err)
	}

	var articles []domain.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		logger.SafeWarn("local article file is corrupt, starting from empty list", "path", s.articlesPath, "error", err)
		return []domain.Article{}, nil
	}
	return articles, nil
}

func (s *LocalStore) saveArticles(articles []domain.Article) error {
	raw, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encode local articles: %w", err)
	}
	return writeFileAtomic(s.articlesPath, raw)
}

// nextID reads, increments, and persists the counter before handing the id
// out, so an allocated id is never reissued after a crash. The counter
// never moves below one past the highest id already on record, which
// re-seeds a missing or corrupt counter file without reissuing ids.
func (s *LocalStore) nextID(existing []domain.Article) (int64, error) {
	next := int64(1)
	for _, article := range existing {
		if article.ID >= next {
			next = article.ID + 1
		}
	}

	if raw, err := os.ReadFile(s.counterPath); err == nil {
		parsed, parseErr := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		switch {
		case parseErr != nil || parsed <= 0:
			logger.SafeWarn("id counter file is corrupt, re-seeding from existing records", "path", s.counterPath)
		case parsed > next:
			next = parsed
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("read id counter: %w", err)
	}

	if err := writeFileAtomic(s.counterPath, []byte(strconv.FormatInt(next+1, 10))); err != nil {
		return 0, fmt.Errorf("persist id counter: %w", err)
	}
	return next, nil
}

// writeFileAtomic writes via a temp file and rename so readers never see a
// torn file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
