package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"finance-assistant-go-be/models"
	"finance-assistant-go-be/summary"
)

// ErrEmptyMessage is returned when the user message is blank after trimming.
var ErrEmptyMessage = errors.New("empty message")

// Pipeline turns free-text user messages into confirmable proposals.
type Pipeline struct {
	model ModelClient
	log   zerolog.Logger
	now   func() time.Time
}

// New builds a pipeline around the given model client.
func New(model ModelClient, log zerolog.Logger) *Pipeline {
	return &Pipeline{model: model, log: log, now: time.Now}
}

// HandleMessage sends the trimmed user message plus a month-to-date summary
// of txs to the model and parses the response. A transport failure is
// returned as an error; malformed model output is not an error, it degrades
// to a fallback conversa reply.
func (p *Pipeline) HandleMessage(ctx context.Context, msg string, txs []models.Transaction) (Reply, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return Reply{}, ErrEmptyMessage
	}

	now := p.now()
	receitas, despesas := summary.MonthTotals(txs, now.Format("2006-01"))
	prompt := buildPrompt(msg, now, receitas, despesas)

	raw, err := p.model.Generate(ctx, prompt)
	if err != nil {
		return Reply{}, err
	}

	reply := Parse(raw)
	if reply.Action == ActionConversa && reply.Resposta == FallbackResposta {
		p.log.Debug().Str("raw", raw).Msg("model output not usable, falling back")
	}
	return reply, nil
}
