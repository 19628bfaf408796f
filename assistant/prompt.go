package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finance-assistant-go-be/models"
)

// buildPrompt assembles the full text sent to the model: the fixed system
// instruction (closed vocabularies plus the three output shapes), a context
// line with today's date and the month-to-date totals, and the user message.
func buildPrompt(msg string, now time.Time, receitas, despesas decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("Você é assistente financeiro. Responda APENAS JSON válido.\n")
	b.WriteString("Cats RECEITA: " + strings.Join(models.IncomeCategories, ",") + ".\n")
	b.WriteString("Cats DESPESA: " + strings.Join(models.ExpenseCategories, ",") + ".\n")
	b.WriteString("Formas: Cartão Crédito,Cartão Débito,PIX,Dinheiro,Débito Auto,Boleto,App,Transferência,TED.\n")
	b.WriteString(`1 item: {"action":"lancamento","tipo":"Despesa","desc":"X","cat":"Y","forma":"PIX","valor":0,"data":"HOJE","confirmacao":"msg emoji"}` + "\n")
	b.WriteString(`Múltiplos: {"action":"multiplos","itens":[{tipo,desc,cat,forma,valor,data}],"confirmacao":"msg"}` + "\n")
	b.WriteString(`Outro: {"action":"conversa","resposta":"msg"}` + "\n")
	b.WriteString(fmt.Sprintf("Hoje:%s Rec:R$%s,Dep:R$%s\n",
		now.Format("2006-01-02"), receitas.StringFixed(0), despesas.StringFixed(0)))
	b.WriteString("\nUsuário: " + msg)
	return b.String()
}
