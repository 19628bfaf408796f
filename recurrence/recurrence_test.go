package recurrence

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"finance-assistant-go-be/models"
)

func template(freq string, dia int, ativo bool) models.RecurringTemplate {
	return models.RecurringTemplate{
		ID:    uuid.New(),
		Tipo:  models.TipoDespesa,
		Desc:  "Aluguel",
		Cat:   "Moradia",
		Forma: "PIX",
		Valor: 1200,
		Freq:  freq,
		Dia:   dia,
		Ativo: ativo,
	}
}

func refDate(value string, t *testing.T) time.Time {
	t.Helper()
	ref, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatal(err)
	}
	return ref
}

func TestDeriveMissingMonthly(t *testing.T) {
	tpl := template(models.FreqMensal, 5, true)
	ref := refDate("2024-03-10", t)

	drafts := DeriveMissing([]models.RecurringTemplate{tpl}, nil, ref)
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Data != "2024-03-05" {
		t.Errorf("data = %q, want 2024-03-05", d.Data)
	}
	if d.RecID == nil || *d.RecID != tpl.ID {
		t.Errorf("recId not set to template id")
	}
	if !d.Auto {
		t.Errorf("auto flag not set")
	}
	if d.Valor != tpl.Valor || d.Cat != tpl.Cat || d.Tipo != tpl.Tipo {
		t.Errorf("draft fields not copied from template: %+v", d)
	}
}

func TestDeriveMissingSkipsInactive(t *testing.T) {
	tpl := template(models.FreqMensal, 5, false)
	drafts := DeriveMissing([]models.RecurringTemplate{tpl}, nil, refDate("2024-03-10", t))
	if len(drafts) != 0 {
		t.Fatalf("inactive template generated %d drafts", len(drafts))
	}
}

func TestDeriveMissingSkipsUnmaterializedFrequencies(t *testing.T) {
	templates := []models.RecurringTemplate{
		template(models.FreqSemanal, 1, true),
		template(models.FreqAnual, 1, true),
	}
	drafts := DeriveMissing(templates, nil, refDate("2024-03-10", t))
	if len(drafts) != 0 {
		t.Fatalf("semanal/anual generated %d drafts", len(drafts))
	}
}

func TestDeriveMissingClampsDayToMonthEnd(t *testing.T) {
	tpl := template(models.FreqMensal, 31, true)
	drafts := DeriveMissing([]models.RecurringTemplate{tpl}, nil, refDate("2024-04-10", t))
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Data != "2024-04-30" {
		t.Errorf("data = %q, want 2024-04-30", drafts[0].Data)
	}
}

func TestDeriveMissingBiweekly(t *testing.T) {
	tpl := template(models.FreqQuinzenal, 5, true)
	drafts := DeriveMissing([]models.RecurringTemplate{tpl}, nil, refDate("2024-03-01", t))
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
	if drafts[0].Data != "2024-03-05" || drafts[1].Data != "2024-03-20" {
		t.Errorf("dates = %q, %q; want 2024-03-05, 2024-03-20", drafts[0].Data, drafts[1].Data)
	}
}

func TestDeriveMissingBiweeklyClampCollapsesToOne(t *testing.T) {
	// dia 30 in February: both candidates clamp to the 29th (leap year) and
	// must not produce a duplicate pair.
	tpl := template(models.FreqQuinzenal, 30, true)
	drafts := DeriveMissing([]models.RecurringTemplate{tpl}, nil, refDate("2024-02-10", t))
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Data != "2024-02-29" {
		t.Errorf("data = %q, want 2024-02-29", drafts[0].Data)
	}
}

func TestDeriveMissingSuppressesExisting(t *testing.T) {
	tpl := template(models.FreqQuinzenal, 5, true)
	recID := tpl.ID
	existing := []models.Transaction{
		{RecID: &recID, Data: "2024-03-05"},
	}
	drafts := DeriveMissing([]models.RecurringTemplate{tpl}, existing, refDate("2024-03-01", t))
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Data != "2024-03-20" {
		t.Errorf("data = %q, want 2024-03-20", drafts[0].Data)
	}
}

func TestDeriveMissingIsIdempotent(t *testing.T) {
	templates := []models.RecurringTemplate{
		template(models.FreqMensal, 1, true),
		template(models.FreqQuinzenal, 10, true),
	}
	ref := refDate("2024-03-15", t)

	first := DeriveMissing(templates, nil, ref)
	if len(first) == 0 {
		t.Fatal("first derivation produced nothing")
	}
	second := DeriveMissing(templates, first, ref)
	if len(second) != 0 {
		t.Fatalf("second derivation produced %d drafts, want 0", len(second))
	}
}

func TestDeriveMissingZeroDayDefaultsToFirst(t *testing.T) {
	tpl := template(models.FreqMensal, 0, true)
	drafts := DeriveMissing([]models.RecurringTemplate{tpl}, nil, refDate("2024-03-15", t))
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Data != "2024-03-01" {
		t.Errorf("data = %q, want 2024-03-01", drafts[0].Data)
	}
}

func TestDeriveMissingDistinctTemplatesSameDay(t *testing.T) {
	a := template(models.FreqMensal, 10, true)
	b := template(models.FreqMensal, 10, true)
	drafts := DeriveMissing([]models.RecurringTemplate{a, b}, nil, refDate("2024-03-01", t))
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
}
