package importer

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	minChoices = 2
	maxChoices = 6
)

// ValidateCatalog checks the catalog for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCatalog(schema *CatalogSchema) []error {
	var errs []error

	if len(schema.Content) == 0 && len(schema.Questions) == 0 {
		errs = append(errs, fmt.Errorf("catalog is empty"))
	}

	errs = append(errs, validateContent(schema.Content)...)
	errs = append(errs, validateQuestions(schema.Questions)...)

	return errs
}

func validateContent(items []ContentImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, c := range items {
		prefix := fmt.Sprintf("content[%d]", i)

		if strings.TrimSpace(c.Title) == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if c.URL == "" {
			errs = append(errs, fmt.Errorf("%s.url is required", prefix))
		} else if u, err := url.Parse(c.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s.url: invalid URL %q", prefix, c.URL))
		}

		key := strings.ToLower(c.Title) + "\x00" + c.URL
		if c.Title != "" && seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate item %q", prefix, c.Title))
		}
		seen[key] = true

		for j, topic := range c.Topics {
			if strings.TrimSpace(topic) == "" {
				errs = append(errs, fmt.Errorf("%s.topics[%d] is empty", prefix, j))
			}
		}
	}

	return errs
}

func validateQuestions(questions []QuestionImport) []error {
	var errs []error

	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		if strings.TrimSpace(q.Topic) == "" {
			errs = append(errs, fmt.Errorf("%s.topic is required", prefix))
		}
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Errorf("%s.prompt is required", prefix))
		}
		if n := len(q.Choices); n < minChoices || n > maxChoices {
			errs = append(errs, fmt.Errorf("%s.choices: need %d-%d choices, got %d", prefix, minChoices, maxChoices, n))
		}
		if q.Answer == nil {
			errs = append(errs, fmt.Errorf("%s.answer is required", prefix))
		} else if *q.Answer < 0 || *q.Answer >= len(q.Choices) {
			errs = append(errs, fmt.Errorf("%s.answer: index %d out of range", prefix, *q.Answer))
		}
	}

	return errs
}
