package summary

import (
	"testing"

	"finance-assistant-go-be/models"
)

func tx(tipo, cat string, valor float64, data string) models.Transaction {
	return models.Transaction{Tipo: tipo, Cat: cat, Valor: valor, Data: data}
}

func TestMonthTotals(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TipoReceita, "Salário", 5000, "2024-03-01"),
		tx(models.TipoDespesa, "Moradia", 1200, "2024-03-05"),
		tx(models.TipoDespesa, "Alimentação", 350.75, "2024-03-10"),
		tx(models.TipoDespesa, "Lazer", 99, "2024-02-20"),
		tx(models.TipoReceita, "Freelance", 800, "2024-04-01"),
	}

	receitas, despesas := MonthTotals(txs, "2024-03")
	if got := receitas.StringFixed(2); got != "5000.00" {
		t.Errorf("receitas = %s, want 5000.00", got)
	}
	if got := despesas.StringFixed(2); got != "1550.75" {
		t.Errorf("despesas = %s, want 1550.75", got)
	}
}

func TestMonthTotalsAvoidsFloatDrift(t *testing.T) {
	// 0.1 added a hundred times must sum to exactly 10.00.
	var txs []models.Transaction
	for i := 0; i < 100; i++ {
		txs = append(txs, tx(models.TipoDespesa, "Outros", 0.1, "2024-03-01"))
	}
	_, despesas := MonthTotals(txs, "2024-03")
	if got := despesas.StringFixed(2); got != "10.00" {
		t.Errorf("despesas = %s, want 10.00", got)
	}
}

func TestForMonth(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TipoReceita, "Salário", 5000, "2024-03-01"),
		tx(models.TipoDespesa, "Moradia", 1200, "2024-03-05"),
		tx(models.TipoDespesa, "Alimentação", 300, "2024-03-08"),
		tx(models.TipoDespesa, "Alimentação", 200, "2024-03-20"),
	}

	s := ForMonth(txs, "2024-03")
	if s.Mes != "2024-03" {
		t.Errorf("mes = %q", s.Mes)
	}
	if s.Saldo != "3300.00" {
		t.Errorf("saldo = %s, want 3300.00", s.Saldo)
	}

	if len(s.PorCategoria) != 2 {
		t.Fatalf("porCategoria = %d entries, want 2", len(s.PorCategoria))
	}
	// Output follows the fixed category order: Moradia before Alimentação.
	if s.PorCategoria[0].Cat != "Moradia" || s.PorCategoria[0].Total != "1200.00" {
		t.Errorf("first category = %+v", s.PorCategoria[0])
	}
	if s.PorCategoria[1].Cat != "Alimentação" || s.PorCategoria[1].Total != "500.00" {
		t.Errorf("second category = %+v", s.PorCategoria[1])
	}
}

func TestForMonthWeeklyBuckets(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TipoDespesa, "Lazer", 70, "2024-02-03"),
		tx(models.TipoDespesa, "Lazer", 30, "2024-02-07"),
		tx(models.TipoDespesa, "Lazer", 50, "2024-02-29"),
		tx(models.TipoReceita, "Salário", 5000, "2024-02-05"), // income never bucketed
	}

	s := ForMonth(txs, "2024-02")
	if len(s.Semanas) != 5 {
		t.Fatalf("semanas = %d, want 5 for a 29-day month", len(s.Semanas))
	}
	if s.Semanas[0].Gasto != "100.00" {
		t.Errorf("week 1 gasto = %s, want 100.00", s.Semanas[0].Gasto)
	}
	last := s.Semanas[4]
	if last.DiaIni != 29 || last.DiaFim != 29 {
		t.Errorf("last week range = %d-%d, want 29-29", last.DiaIni, last.DiaFim)
	}
	if last.Gasto != "50.00" {
		t.Errorf("last week gasto = %s, want 50.00", last.Gasto)
	}
}

func TestForMonthEmpty(t *testing.T) {
	s := ForMonth(nil, "2024-03")
	if s.Receitas != "0.00" || s.Despesas != "0.00" || s.Saldo != "0.00" {
		t.Errorf("empty summary = %+v", s)
	}
	if len(s.PorCategoria) != 0 {
		t.Errorf("porCategoria should be empty, got %v", s.PorCategoria)
	}
}
