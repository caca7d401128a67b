package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSearcher scripts backend responses and records what the panel sent.
type fakeSearcher struct {
	responses []*models.SearchResponse
	err       error
	calls     int
	queries   []string
	sessions  []string
}

func (f *fakeSearcher) SubmitQuery(_ context.Context, query, sessionID string) (*models.SearchResponse, error) {
	f.calls++
	f.queries = append(f.queries, query)
	f.sessions = append(f.sessions, sessionID)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return nil, nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func newTestPanel(searcher Searcher) *Panel {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewPanel(searcher, logger)
}

func TestPanel_EmptyQueryIsNoOp(t *testing.T) {
	backend := &fakeSearcher{}
	panel := newTestPanel(backend)

	assert.False(t, panel.Submit(context.Background(), ""))
	assert.False(t, panel.Submit(context.Background(), "   \t\n"))

	assert.Zero(t, backend.calls)
	assert.Empty(t, panel.Messages())
	assert.False(t, panel.Active())
}

func TestPanel_SuccessfulSubmit(t *testing.T) {
	backend := &fakeSearcher{responses: []*models.SearchResponse{{
		SessionID: "s1",
		Answer:    "Try Hydra Gel.",
	}}}
	panel := newTestPanel(backend)

	require.True(t, panel.Submit(context.Background(), "  best moisturizer  "))

	require.Len(t, panel.Messages(), 2)
	assert.Equal(t, models.SenderUser, panel.Messages()[0].Sender)
	assert.Equal(t, "best moisturizer", panel.Messages()[0].Text)
	assert.Equal(t, models.SenderAI, panel.Messages()[1].Sender)
	require.NotNil(t, panel.Messages()[1].Response)
	assert.Equal(t, "Try Hydra Gel.", panel.Messages()[1].Response.Answer)

	assert.True(t, panel.Active())
	assert.Empty(t, panel.Error())
	assert.Equal(t, "s1", panel.SessionID())
	assert.Equal(t, []string{""}, backend.sessions)
}

func TestPanel_TransportFailure(t *testing.T) {
	backend := &fakeSearcher{err: errors.New("connection refused")}
	panel := newTestPanel(backend)

	require.True(t, panel.Submit(context.Background(), "anything"))

	// The optimistic user message stays; no AI message is appended.
	require.Len(t, panel.Messages(), 1)
	assert.Equal(t, models.SenderUser, panel.Messages()[0].Sender)
	assert.Equal(t, ErrSubmitFailed, panel.Error())
	assert.True(t, panel.Active())
}

func TestPanel_NilResponse(t *testing.T) {
	backend := &fakeSearcher{}
	panel := newTestPanel(backend)

	require.True(t, panel.Submit(context.Background(), "anything"))

	require.Len(t, panel.Messages(), 1)
	assert.Equal(t, ErrNoResponse, panel.Error())
}

func TestPanel_ErrorClearsOnNextSubmit(t *testing.T) {
	backend := &fakeSearcher{err: errors.New("down")}
	panel := newTestPanel(backend)

	panel.Submit(context.Background(), "first")
	require.Equal(t, ErrSubmitFailed, panel.Error())

	backend.err = nil
	backend.responses = []*models.SearchResponse{{Answer: "ok"}}
	panel.Submit(context.Background(), "second")
	assert.Empty(t, panel.Error())
}

func TestPanel_SessionIDAdoptionAndRetention(t *testing.T) {
	backend := &fakeSearcher{responses: []*models.SearchResponse{
		{SessionID: "s1", Answer: "a"},
		{Answer: "b"}, // no session id: prior one is retained
		{SessionID: "s2", Answer: "c"},
	}}
	panel := newTestPanel(backend)

	panel.Submit(context.Background(), "one")
	assert.Equal(t, "s1", panel.SessionID())

	panel.Submit(context.Background(), "two")
	assert.Equal(t, "s1", panel.SessionID())

	panel.Submit(context.Background(), "three")
	assert.Equal(t, "s2", panel.SessionID())

	// Each request carried the session id adopted from the previous turn.
	assert.Equal(t, []string{"", "s1", "s1"}, backend.sessions)
}

func TestPanel_LogGrowsTwoPerTurnButOnlyLastPairVisible(t *testing.T) {
	const turns = 4

	responses := make([]*models.SearchResponse, 0, turns)
	for i := 0; i < turns; i++ {
		responses = append(responses, &models.SearchResponse{Answer: fmt.Sprintf("answer %d", i+1)})
	}
	backend := &fakeSearcher{responses: responses}
	panel := newTestPanel(backend)

	for i := 0; i < turns; i++ {
		require.True(t, panel.Submit(context.Background(), fmt.Sprintf("query %d", i+1)))
	}

	require.Len(t, panel.Messages(), 2*turns)

	user, ai := panel.LatestExchange()
	require.NotNil(t, user)
	require.NotNil(t, ai)
	assert.Equal(t, "query 4", user.Text)
	assert.Equal(t, "answer 4", ai.Response.Answer)
}

func TestPanel_LatestExchangeAfterFailure(t *testing.T) {
	backend := &fakeSearcher{responses: []*models.SearchResponse{{Answer: "first answer"}}}
	panel := newTestPanel(backend)

	panel.Submit(context.Background(), "first")
	backend.err = errors.New("down")
	panel.Submit(context.Background(), "second")

	user, ai := panel.LatestExchange()
	require.NotNil(t, user)
	require.NotNil(t, ai)
	assert.Equal(t, "second", user.Text)
	// Latest AI message is still the one from the successful turn.
	assert.Equal(t, "first answer", ai.Response.Answer)
}

func TestPanel_Reset(t *testing.T) {
	backend := &fakeSearcher{responses: []*models.SearchResponse{{SessionID: "s1", Answer: "a"}}}
	panel := newTestPanel(backend)

	panel.Submit(context.Background(), "hello")
	require.True(t, panel.Active())

	panel.Reset()

	assert.False(t, panel.Active())
	assert.Empty(t, panel.Messages())
	assert.Empty(t, panel.SessionID())
	assert.Empty(t, panel.Error())

	// The next session starts from scratch, without the old session id.
	backend.responses = []*models.SearchResponse{{Answer: "b"}}
	panel.Submit(context.Background(), "again")
	assert.Equal(t, "", backend.sessions[len(backend.sessions)-1])
}

func TestSearchResponse_EmptyFallback(t *testing.T) {
	assert.True(t, (&models.SearchResponse{SessionID: "s1", ContextualJustification: "only rationale"}).Empty())
	assert.False(t, (&models.SearchResponse{Answer: "a"}).Empty())
	assert.False(t, (&models.SearchResponse{FollowUpQuestions: []string{"q"}}).Empty())
	assert.False(t, (&models.SearchResponse{Results: []models.ProductResult{{}}}).Empty())
	assert.False(t, (&models.SearchResponse{RagContexts: []models.RagContext{{}}}).Empty())
}
