// Package recurrence derives the transactions that recurring templates owe
// for the current month. Derivation is a pure function; persistence is a
// separate, best-effort step that reports a result per write.
package recurrence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"finance-assistant-go-be/models"
)

// DeriveMissing returns draft transactions for every template occurrence due
// in ref's month that has no matching (recId, data) transaction yet. Inactive
// templates are skipped, as are semanal/anual frequencies: the product has
// not defined their materialization rule. A day anchor past the end of the
// month is clamped to the month's last day.
//
// The function is idempotent: deriving, persisting the result, and deriving
// again yields nothing.
func DeriveMissing(templates []models.RecurringTemplate, existing []models.Transaction, ref time.Time) []models.Transaction {
	month := ref.Format("2006-01")
	dim := daysInMonth(ref)

	seen := make(map[string]bool, len(existing))
	for _, tx := range existing {
		if tx.RecID != nil {
			seen[tx.RecID.String()+"|"+tx.Data] = true
		}
	}

	var drafts []models.Transaction
	for _, t := range templates {
		if !t.Ativo {
			continue
		}
		if t.Freq != models.FreqMensal && t.Freq != models.FreqQuinzenal {
			continue
		}

		dia := t.Dia
		if dia <= 0 {
			dia = 1
		}

		days := []int{min(dia, dim)}
		if t.Freq == models.FreqQuinzenal {
			days = append(days, min(dia+15, dim))
		}

		for _, d := range days {
			data := fmt.Sprintf("%s-%02d", month, d)
			key := t.ID.String() + "|" + data
			if seen[key] {
				continue
			}
			seen[key] = true

			recID := t.ID
			drafts = append(drafts, models.Transaction{
				Tipo:  t.Tipo,
				Desc:  t.Desc,
				Cat:   t.Cat,
				Forma: t.Forma,
				Valor: t.Valor,
				Data:  data,
				RecID: &recID,
				Auto:  true,
			})
		}
	}
	return drafts
}

// WriteResult reports the outcome of persisting one derived draft.
type WriteResult struct {
	Draft models.Transaction `json:"draft"`
	Err   error              `json:"-"`
}

// Materialize persists each draft independently for the given user. A failed
// write does not stop the rest; the caller decides whether to log or surface
// the per-draft results. Failed occurrences are retried naturally on the next
// run because DeriveMissing will still see them as missing.
func Materialize(db *gorm.DB, userID uuid.UUID, drafts []models.Transaction) []WriteResult {
	results := make([]WriteResult, 0, len(drafts))
	for _, draft := range drafts {
		draft.UserID = userID
		err := db.Create(&draft).Error
		results = append(results, WriteResult{Draft: draft, Err: err})
	}
	return results
}

func daysInMonth(ref time.Time) int {
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
