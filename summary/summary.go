// Package summary computes month-to-date aggregates over the transaction
// log. Sums are carried as decimals so totals round-trip two decimal places
// regardless of how many entries are added.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finance-assistant-go-be/models"
)

// CategoryTotal is the total spent in one expense category.
type CategoryTotal struct {
	Cat   string `json:"cat"`
	Total string `json:"total"`
}

// WeekTotal is the expense total for one 7-day bucket of the month.
type WeekTotal struct {
	Semana int    `json:"semana"`
	DiaIni int    `json:"diaIni"`
	DiaFim int    `json:"diaFim"`
	Gasto  string `json:"gasto"`
}

// MonthSummary is the aggregate view of one calendar month.
type MonthSummary struct {
	Mes          string          `json:"mes"`
	Receitas     string          `json:"receitas"`
	Despesas     string          `json:"despesas"`
	Saldo        string          `json:"saldo"`
	PorCategoria []CategoryTotal `json:"porCategoria"`
	Semanas      []WeekTotal     `json:"semanas"`
}

// MonthTotals returns income and expense totals for the month given as
// "YYYY-MM". Transactions with dates outside the month are ignored.
func MonthTotals(txs []models.Transaction, mes string) (receitas, despesas decimal.Decimal) {
	for _, tx := range txs {
		if !strings.HasPrefix(tx.Data, mes) {
			continue
		}
		v := decimal.NewFromFloat(tx.Valor)
		switch tx.Tipo {
		case models.TipoReceita:
			receitas = receitas.Add(v)
		case models.TipoDespesa:
			despesas = despesas.Add(v)
		}
	}
	return receitas, despesas
}

// ForMonth builds the full summary for one "YYYY-MM" month.
func ForMonth(txs []models.Transaction, mes string) MonthSummary {
	receitas, despesas := MonthTotals(txs, mes)

	byCat := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Tipo != models.TipoDespesa || !strings.HasPrefix(tx.Data, mes) {
			continue
		}
		byCat[tx.Cat] = byCat[tx.Cat].Add(decimal.NewFromFloat(tx.Valor))
	}
	cats := make([]CategoryTotal, 0, len(byCat))
	for _, cat := range models.ExpenseCategories {
		if total, ok := byCat[cat]; ok {
			cats = append(cats, CategoryTotal{Cat: cat, Total: total.StringFixed(2)})
		}
	}

	return MonthSummary{
		Mes:          mes,
		Receitas:     receitas.StringFixed(2),
		Despesas:     despesas.StringFixed(2),
		Saldo:        receitas.Sub(despesas).StringFixed(2),
		PorCategoria: cats,
		Semanas:      weeklyExpenses(txs, mes),
	}
}

// weeklyExpenses buckets the month's expenses into 7-day windows (days 1-7,
// 8-14, ..., 29-end).
func weeklyExpenses(txs []models.Transaction, mes string) []WeekTotal {
	dim := daysIn(mes)
	var weeks []WeekTotal
	for i := 0; ; i++ {
		ini := i*7 + 1
		if ini > dim {
			break
		}
		fim := min((i+1)*7, dim)
		total := decimal.Zero
		for _, tx := range txs {
			if tx.Tipo != models.TipoDespesa || !strings.HasPrefix(tx.Data, mes) || len(tx.Data) < 10 {
				continue
			}
			var d int
			if _, err := fmt.Sscanf(tx.Data[8:10], "%d", &d); err != nil {
				continue
			}
			if d >= ini && d <= fim {
				total = total.Add(decimal.NewFromFloat(tx.Valor))
			}
		}
		weeks = append(weeks, WeekTotal{Semana: i + 1, DiaIni: ini, DiaFim: fim, Gasto: total.StringFixed(2)})
	}
	return weeks
}

func daysIn(mes string) int {
	t, err := time.Parse("2006-01", mes)
	if err != nil {
		return 31
	}
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
