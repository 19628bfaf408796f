package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Nome         string    `json:"nome"`
	CreatedAt    time.Time `json:"created_at"`
}

// Transaction is a single recorded income or expense event. Transactions are
// never edited: they are created, then either kept or deleted.
type Transaction struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Tipo   string     `gorm:"not null" json:"tipo"`
	Desc   string     `gorm:"column:descricao" json:"desc"`
	Cat    string     `gorm:"not null" json:"cat"`
	Forma  string     `json:"forma"`
	Valor  float64    `gorm:"not null" json:"valor"`
	Data   string     `gorm:"type:varchar(10);not null;index" json:"data"`
	RecID  *uuid.UUID `gorm:"type:uuid;index" json:"recId,omitempty"`
	Auto   bool       `gorm:"default:false" json:"auto"`

	CreatedAt time.Time `json:"created_at"`
}

// RecurringTemplate is a rule from which periodic transactions are generated.
type RecurringTemplate struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Tipo   string    `gorm:"not null" json:"tipo"`
	Desc   string    `gorm:"column:descricao" json:"desc"`
	Cat    string    `gorm:"not null" json:"cat"`
	Forma  string    `json:"forma"`
	Valor  float64   `gorm:"not null" json:"valor"`
	Freq   string    `gorm:"not null;default:mensal" json:"freq"`
	Dia    int       `gorm:"default:1" json:"dia"`
	Ativo  bool      `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
}

// Budget is a monthly spending limit for one expense category.
type Budget struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_cat" json:"-"`
	Cat    string    `gorm:"not null;uniqueIndex:idx_budget_user_cat" json:"cat"`
	Limite float64   `gorm:"not null" json:"limite"`
	Cor    string    `json:"cor"`
}

// Alert is a user-visible reminder or warning.
type Alert struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Msg    string    `gorm:"not null" json:"msg"`
	Tipo   string    `gorm:"default:lembrete" json:"tipo"`
	Lido   bool      `gorm:"default:false" json:"lido"`
	Data   string    `gorm:"type:varchar(10)" json:"data"`
}

// Education is one entry of a profile's education history, stored inline.
type Education struct {
	Curso string `json:"curso"`
	Inst  string `json:"inst"`
	Ano   string `json:"ano"`
	Tipo  string `json:"tipo"`
}

// CareerProfile is the single career document of a user.
type CareerProfile struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Nome         string      `json:"nome"`
	Cargo        string      `json:"cargo"`
	Empresa      string      `json:"empresa"`
	Area         string      `json:"area"`
	Nivel        string      `json:"nivel"`
	SalarioAtual float64     `json:"salarioAtual"`
	Desde        string      `json:"desde"`
	Bio          string      `json:"bio"`
	FotoURL      string      `json:"fotoUrl"`
	Linkedin     string      `json:"linkedin"`
	Instagram    string      `json:"instagram"`
	Site         string      `json:"site"`
	Skills       []string    `gorm:"serializer:json" json:"skills"`
	Idiomas      []string    `gorm:"serializer:json" json:"idiomas"`
	Formacao     []Education `gorm:"serializer:json" json:"formacao"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// SalaryEntry is one point of a user's salary history.
type SalaryEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Cargo   string    `json:"cargo"`
	Empresa string    `json:"empresa"`
	Salario float64   `json:"salario"`
	Data    string    `gorm:"type:varchar(7)" json:"data"`
	Obs     string    `json:"obs"`
}

// IncomeGoal is a career/income target with tracked progress.
type IncomeGoal struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Titulo     string    `gorm:"not null" json:"titulo"`
	Tipo       string    `gorm:"default:Renda Mensal" json:"tipo"`
	ValorAlvo  float64   `json:"valorAlvo"`
	ValorAtual float64   `json:"valorAtual"`
	Prazo      string    `json:"prazo"`
	CreatedAt  time.Time `json:"created_at"`
}

// CareerExpense is a career-related investment (course, equipment, ...).
type CareerExpense struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Desc    string    `gorm:"column:descricao" json:"desc"`
	Cat     string    `json:"cat"`
	Valor   float64   `json:"valor"`
	Data    string    `gorm:"type:varchar(10)" json:"data"`
	Retorno string    `json:"retorno"`
}
