package ai

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"growsphere/pkg/logger"
)

type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

type Message struct {
	Role    Role      `json:"role"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Assistant keeps one chat transcript in front of a Client.
type Assistant struct {
	client   Client
	fallback string
	limit    int
	log      *slog.Logger

	mu         sync.Mutex
	transcript []Message
}

// NewAssistant keeps at most limit messages (0 = unbounded). fallback is
// the reply recorded when the client fails.
func NewAssistant(c Client, fallback string, limit int) *Assistant {
	return &Assistant{client: c, fallback: fallback, limit: limit, log: logger.L().With("component", "assistant")}
}

func (a *Assistant) append(m Message) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transcript = append(a.transcript, m)
	if a.limit > 0 && len(a.transcript) > a.limit {
		a.transcript = a.transcript[len(a.transcript)-a.limit:]
	}
}

// Send records the question and the reply. A client failure is logged and
// answered with the fallback message; only an empty question or a
// cancelled ctx return an error.
func (a *Assistant) Send(ctx context.Context, question string) (Message, error) {
	if strings.TrimSpace(question) == "" {
		return Message{}, ErrEmptyQuestion
	}
	a.append(Message{Role: RoleUser, Message: question, At: time.Now().UTC()})

	answer, err := a.client.Ask(ctx, question)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) || ctx.Err() != nil {
			return Message{}, err
		}
		a.log.Warn("assistant failed", "error", err)
		answer = a.fallback
	}
	reply := Message{Role: RoleAI, Message: answer, At: time.Now().UTC()}
	a.append(reply)
	return reply, nil
}

func (a *Assistant) Transcript() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Message{}, a.transcript...)
}

func (a *Assistant) Reset() {
	a.mu.Lock()
	a.transcript = nil
	a.mu.Unlock()
}
