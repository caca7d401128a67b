package ui

import (
	"context"
	"strings"

	"github.com/Sonkaryasshu/stealth-e-com/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// ErrSubmitFailed is shown when the backend call itself blew up.
	ErrSubmitFailed = "An unexpected error occurred."
	// ErrNoResponse is shown when the call succeeded but produced no response.
	ErrNoResponse = "Failed to get search results."
	// NoResultsMessage is the transcript fallback for an empty AI response.
	NoResultsMessage = "No results found. Try rephrasing your question."
)

// Searcher is the slice of the backend client the panel needs.
type Searcher interface {
	SubmitQuery(ctx context.Context, query, sessionID string) (*models.SearchResponse, error)
}

// Panel owns one conversational session: the accumulated message log, the
// backend session id, and the loading/error flags. All state is confined to
// one instance; the session store serializes access.
type Panel struct {
	searcher Searcher
	logger   *logrus.Logger

	messages  []models.ChatMessage
	sessionID string
	loading   bool
	errMsg    string
}

func NewPanel(searcher Searcher, logger *logrus.Logger) *Panel {
	return &Panel{
		searcher: searcher,
		logger:   logger,
	}
}

// Active reports whether a search session is underway, which makes the host
// page hide the catalog view.
func (p *Panel) Active() bool {
	return len(p.messages) > 0
}

func (p *Panel) Loading() bool {
	return p.loading
}

func (p *Panel) Error() string {
	return p.errMsg
}

func (p *Panel) SessionID() string {
	return p.sessionID
}

// Messages returns the full accumulated log. Only the latest exchange is
// rendered, but the log keeps every turn for the life of the session.
func (p *Panel) Messages() []models.ChatMessage {
	return p.messages
}

// LatestExchange returns the most recent user message and the most recent AI
// message; either may be nil.
func (p *Panel) LatestExchange() (user, ai *models.ChatMessage) {
	for i := len(p.messages) - 1; i >= 0; i-- {
		m := &p.messages[i]
		switch m.Sender {
		case models.SenderUser:
			if user == nil {
				user = m
			}
		case models.SenderAI:
			if ai == nil {
				ai = m
			}
		}
		if user != nil && ai != nil {
			break
		}
	}
	return user, ai
}

// Submit runs one search turn. Empty or whitespace-only queries are a no-op:
// nothing is appended and the backend is never called. The user message is
// appended optimistically before the call and never edited afterwards; on
// failure only the error message is set and no AI message is appended.
func (p *Panel) Submit(ctx context.Context, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}
	if p.loading {
		// A submit is already in flight for this session (e.g. a second
		// tab); reject rather than queue so turns stay serialized.
		return false
	}

	p.loading = true
	p.errMsg = ""
	p.messages = append(p.messages, models.NewUserMessage(query))

	defer func() { p.loading = false }()

	resp, err := p.searcher.SubmitQuery(ctx, query, p.sessionID)
	if err != nil {
		p.logger.WithError(err).WithField("query", query).Error("Search submit failed")
		p.errMsg = ErrSubmitFailed
		return true
	}
	if resp == nil {
		p.errMsg = ErrNoResponse
		return true
	}

	if resp.SessionID != "" && resp.SessionID != p.sessionID {
		p.logger.WithFields(logrus.Fields{
			"old_session": p.sessionID,
			"new_session": resp.SessionID,
		}).Debug("Adopting backend session id")
		p.sessionID = resp.SessionID
	}

	p.messages = append(p.messages, models.NewAIMessage(resp))
	return true
}

// Reset is the "New Search" action: drops the transcript, the session id and
// any error, returning the panel to the idle state.
func (p *Panel) Reset() {
	p.messages = nil
	p.sessionID = ""
	p.errMsg = ""
	p.loading = false
}
