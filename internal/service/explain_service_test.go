package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/llm"
	"github.com/alexanderramin/learner/internal/repository"
	"github.com/alexanderramin/learner/internal/testutil"
)

const goodExplanation = `Recursion is when a function solves a problem by calling itself on a
smaller piece of the same problem. For example, to count the people in a line you
ask the person behind you how many are behind them and add one. It stops because
the last person has nobody behind them, which means the calls can finish.`

func TestExplainService_UsesLLMFeedback(t *testing.T) {
	database := testutil.NewTestDB(t)
	u := createTestUser(t, database)
	fake := testutil.NewFakeLLM("```json\n{\"score\": 82.6, \"gaps\": [\"base case\", \" \"], \"follow_up\": \"What stops it?\"}\n```")
	svc := NewExplainService(repository.NewSQLiteExplanationRepo(database), fake)

	e, err := svc.Evaluate(context.Background(), u.ID, "recursion", goodExplanation)
	require.NoError(t, err)
	assert.Equal(t, 83, e.Score)
	assert.Equal(t, []string{"base case"}, e.Gaps)
	assert.Equal(t, "What stops it?", e.FollowUp)

	req := fake.LastRequest()
	assert.Equal(t, llm.TaskExplain, req.Task)
	assert.True(t, req.JSON)
	assert.Contains(t, req.UserPrompt, "Topic: recursion")

	stored, err := repository.NewSQLiteExplanationRepo(database).ListByUser(context.Background(), u.ID, 5)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestExplainService_FallsBackToRubric(t *testing.T) {
	tests := []struct {
		name   string
		client llm.LLMClient
	}{
		{"no client", nil},
		{"llm down", &testutil.FakeLLM{Err: llm.ErrOllamaUnavailable}},
		{"garbage output", testutil.NewFakeLLM("I think it's pretty good!")},
		{"score out of range", testutil.NewFakeLLM(`{"score": 140, "gaps": [], "follow_up": "x"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database := testutil.NewTestDB(t)
			u := createTestUser(t, database)
			svc := NewExplainService(repository.NewSQLiteExplanationRepo(database), tt.client)

			e, err := svc.Evaluate(context.Background(), u.ID, "recursion", goodExplanation)
			require.NoError(t, err)
			assert.Equal(t, rubricFeedback("recursion", goodExplanation).Score, e.Score)
			assert.NotEmpty(t, e.FollowUp)
		})
	}
}

func TestExplainService_RequiresText(t *testing.T) {
	svc := NewExplainService(repository.NewSQLiteExplanationRepo(testutil.NewTestDB(t)), nil)

	_, err := svc.Evaluate(context.Background(), "u", "recursion", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Evaluate(context.Background(), "u", "", "text")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRubricFeedback(t *testing.T) {
	full := rubricFeedback("recursion", goodExplanation)
	assert.Equal(t, 100, full.Score)
	assert.Empty(t, full.Gaps)
	assert.Contains(t, full.FollowUp, "ten-year-old")

	thin := rubricFeedback("recursion", "It is a thing.")
	assert.Equal(t, 10, thin.Score)
	assert.Len(t, thin.Gaps, 4)
	assert.Equal(t, "What are the key parts of recursion?", thin.FollowUp)
}
