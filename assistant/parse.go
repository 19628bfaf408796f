package assistant

import (
	"encoding/json"
	"strings"
	"time"

	"finance-assistant-go-be/models"
)

// Recognized actions of a model response.
const (
	ActionLancamento = "lancamento"
	ActionMultiplos  = "multiplos"
	ActionConversa   = "conversa"
)

// TodayToken is the literal the model uses for "today's date".
const TodayToken = "HOJE"

// FallbackResposta is returned whenever the model output cannot be used.
const FallbackResposta = "Não entendi 😊"

// Draft is one unconfirmed transaction proposed by the assistant.
type Draft struct {
	Tipo  string  `json:"tipo"`
	Desc  string  `json:"desc"`
	Cat   string  `json:"cat"`
	Forma string  `json:"forma"`
	Valor float64 `json:"valor"`
	Data  string  `json:"data"`
}

// Reply is the tagged result of parsing a model response. Exactly one of the
// three shapes is populated, keyed by Action: lancamento fills Lancamento and
// Confirmacao, multiplos fills Itens and Confirmacao, conversa fills
// Resposta.
type Reply struct {
	Action      string  `json:"action"`
	Lancamento  *Draft  `json:"lancamento,omitempty"`
	Itens       []Draft `json:"itens,omitempty"`
	Confirmacao string  `json:"confirmacao,omitempty"`
	Resposta    string  `json:"resposta,omitempty"`
}

// modelResponse mirrors the raw JSON the model emits: lancamento fields are
// flat on the top-level object.
type modelResponse struct {
	Action      string  `json:"action"`
	Tipo        string  `json:"tipo"`
	Desc        string  `json:"desc"`
	Cat         string  `json:"cat"`
	Forma       string  `json:"forma"`
	Valor       float64 `json:"valor"`
	Data        string  `json:"data"`
	Confirmacao string  `json:"confirmacao"`
	Itens       []Draft `json:"itens"`
	Resposta    string  `json:"resposta"`
}

// Parse interprets raw model output. Any parse failure, unknown action, or
// missing required field degrades to a fallback conversa reply; Parse never
// fails.
func Parse(raw string) Reply {
	cleaned := stripFences(raw)

	var resp modelResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return fallback()
	}

	switch resp.Action {
	case ActionLancamento:
		draft := Draft{
			Tipo:  resp.Tipo,
			Desc:  resp.Desc,
			Cat:   resp.Cat,
			Forma: resp.Forma,
			Valor: resp.Valor,
			Data:  resp.Data,
		}
		if !validDraft(draft) {
			return fallback()
		}
		return Reply{
			Action:      ActionLancamento,
			Lancamento:  &draft,
			Confirmacao: resp.Confirmacao,
		}

	case ActionMultiplos:
		if len(resp.Itens) == 0 {
			return fallback()
		}
		for _, item := range resp.Itens {
			if !validDraft(item) {
				return fallback()
			}
		}
		return Reply{
			Action:      ActionMultiplos,
			Itens:       resp.Itens,
			Confirmacao: resp.Confirmacao,
		}

	case ActionConversa:
		resposta := strings.TrimSpace(resp.Resposta)
		if resposta == "" {
			resposta = FallbackResposta
		}
		return Reply{Action: ActionConversa, Resposta: resposta}
	}

	return fallback()
}

// Materialize turns a confirmed draft into a transaction: the HOJE token (or
// an absent date) becomes today, an absent payment method becomes PIX.
func (d Draft) Materialize(now time.Time) models.Transaction {
	data := d.Data
	if data == "" || data == TodayToken {
		data = now.Format("2006-01-02")
	}
	forma := d.Forma
	if forma == "" {
		forma = models.DefaultForma
	}
	return models.Transaction{
		Tipo:  d.Tipo,
		Desc:  d.Desc,
		Cat:   d.Cat,
		Forma: forma,
		Valor: d.Valor,
		Data:  data,
	}
}

func validDraft(d Draft) bool {
	return models.ValidTipo(d.Tipo) && d.Valor > 0
}

func fallback() Reply {
	return Reply{Action: ActionConversa, Resposta: FallbackResposta}
}

// stripFences removes markdown code-fence tokens anywhere in the text; the
// model likes wrapping JSON in ```json ... ``` despite instructions.
func stripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}
