package domain

import (
	"strings"
	"time"
)

// ContentItem is a piece of learning material from an external source.
type ContentItem struct {
	ID        string
	Title     string
	URL       string
	Source    string
	Summary   string
	Topics    []string
	CreatedAt time.Time
}

// HasTopic reports whether the item is tagged with topic (case-insensitive).
func (c *ContentItem) HasTopic(topic string) bool {
	for _, t := range c.Topics {
		if strings.EqualFold(t, topic) {
			return true
		}
	}
	return false
}
