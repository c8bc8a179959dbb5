package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/learner/internal/domain"
)

// Catalog holds domain objects ready for persistence.
type Catalog struct {
	Content   []*domain.ContentItem
	Questions []*domain.QuizQuestion
}

// Convert transforms a validated CatalogSchema into domain objects.
// Call ValidateCatalog first; Convert assumes the schema is valid.
func Convert(schema *CatalogSchema) *Catalog {
	now := time.Now().UTC()
	out := &Catalog{
		Content:   make([]*domain.ContentItem, 0, len(schema.Content)),
		Questions: make([]*domain.QuizQuestion, 0, len(schema.Questions)),
	}

	for _, c := range schema.Content {
		out.Content = append(out.Content, &domain.ContentItem{
			ID:        uuid.New().String(),
			Title:     strings.TrimSpace(c.Title),
			URL:       c.URL,
			Source:    domain.CoalesceStr(c.Source, schema.Source, "catalog"),
			Summary:   strings.TrimSpace(c.Summary),
			Topics:    normalizeTopics(c.Topics),
			CreatedAt: now,
		})
	}

	for _, q := range schema.Questions {
		out.Questions = append(out.Questions, &domain.QuizQuestion{
			ID:          uuid.New().String(),
			Topic:       strings.TrimSpace(q.Topic),
			Prompt:      strings.TrimSpace(q.Prompt),
			Choices:     q.Choices,
			AnswerIndex: *q.Answer,
			Explanation: q.Explanation,
			CreatedAt:   now,
		})
	}

	return out
}

// normalizeTopics trims and de-duplicates topics case-insensitively,
// keeping the first spelling seen.
func normalizeTopics(topics []string) []string {
	seen := make(map[string]bool, len(topics))
	var out []string
	for _, t := range topics {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
