package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/learner/internal/db"
	"github.com/alexanderramin/learner/internal/domain"
	"github.com/alexanderramin/learner/internal/importer"
	"github.com/alexanderramin/learner/internal/repository"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

type contentService struct {
	content  repository.ContentRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewContentService(content repository.ContentRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ContentService {
	return &contentService{content: content, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *contentService) Search(ctx context.Context, query string, limit int) ([]*domain.ContentItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	switch {
	case limit <= 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}
	return s.content.Search(ctx, query, limit)
}

func (s *contentService) Import(ctx context.Context, path string) (_ *ImportResult, err error) {
	defer observe(ctx, s.observer, "content.import", time.Now(), &err, map[string]any{"path": path})

	schema, err := importer.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *contentService) importSchema(ctx context.Context, schema *importer.CatalogSchema) (*ImportResult, error) {
	if errs := importer.ValidateCatalog(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	catalog := importer.Convert(schema)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txContent := repository.NewSQLiteContentRepo(tx)
		txQuiz := repository.NewSQLiteQuizRepo(tx)

		for _, item := range catalog.Content {
			if err := txContent.Create(ctx, item); err != nil {
				return fmt.Errorf("creating content %q: %w", item.Title, err)
			}
		}
		for _, q := range catalog.Questions {
			if err := txQuiz.CreateQuestion(ctx, q); err != nil {
				return fmt.Errorf("creating question %q: %w", q.Prompt, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{ContentCount: len(catalog.Content), QuestionCount: len(catalog.Questions)}, nil
}

// formatValidationErrors folds catalog problems into one ErrInvalidInput.
func formatValidationErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = "  - " + e.Error()
	}
	return fmt.Errorf("%w: catalog has %d problem(s):\n%s", ErrInvalidInput, len(errs), strings.Join(msgs, "\n"))
}
