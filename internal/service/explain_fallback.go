package service

import (
	"fmt"
	"strings"
)

var (
	exampleMarkers = []string{"for example", "for instance", "e.g.", "such as", "imagine", "like a", "like when"}
	causalMarkers  = []string{"because", "so that", "therefore", "which means", "that's why", "this causes"}
)

// rubricFeedback scores an explanation without the LLM. It checks length,
// a concrete example, naming the topic, causal reasoning and plain wording.
func rubricFeedback(topic, text string) explainFeedback {
	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	var fb explainFeedback
	var followUps []string

	switch {
	case len(words) > 40:
		fb.Score += 30
	case len(words) >= 15:
		fb.Score += 20
	default:
		fb.Gaps = append(fb.Gaps, "Too short to show understanding; use a few full sentences.")
		followUps = append(followUps, fmt.Sprintf("What are the key parts of %s?", topic))
	}

	if containsAny(lower, exampleMarkers) {
		fb.Score += 25
	} else {
		fb.Gaps = append(fb.Gaps, "No concrete example or analogy.")
		followUps = append(followUps, fmt.Sprintf("Can you give a real-world example of %s?", topic))
	}

	if mentionsTopic(lower, topic) {
		fb.Score += 15
	} else {
		fb.Gaps = append(fb.Gaps, "The explanation never names the topic.")
	}

	if containsAny(lower, causalMarkers) {
		fb.Score += 20
	} else {
		fb.Gaps = append(fb.Gaps, "Says what it is but not why or how it works.")
		followUps = append(followUps, fmt.Sprintf("Why does %s work the way it does?", topic))
	}

	if len(words) > 0 && averageWordLength(words) <= 6 {
		fb.Score += 10
	} else {
		fb.Gaps = append(fb.Gaps, "Wording is dense; a beginner may not follow it.")
	}

	if len(followUps) > 0 {
		fb.FollowUp = followUps[0]
	} else {
		fb.FollowUp = fmt.Sprintf("How would you explain %s to a ten-year-old in two sentences?", topic)
	}
	return fb
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// mentionsTopic is true when any topic word longer than two letters appears.
func mentionsTopic(lowerText, topic string) bool {
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		if len(w) > 2 && strings.Contains(lowerText, w) {
			return true
		}
	}
	return false
}

func averageWordLength(words []string) float64 {
	total := 0
	for _, w := range words {
		total += len([]rune(strings.Trim(w, ".,;:!?\"'()")))
	}
	return float64(total) / float64(len(words))
}
