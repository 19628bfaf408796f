package models

// Transaction kinds.
const (
	TipoReceita = "Receita"
	TipoDespesa = "Despesa"
)

// Recurrence frequencies. Only mensal and quinzenal are materialized by the
// recurrence engine; semanal and anual can be stored but generate nothing.
const (
	FreqMensal    = "mensal"
	FreqQuinzenal = "quinzenal"
	FreqSemanal   = "semanal"
	FreqAnual     = "anual"
)

// DefaultForma is used when an assistant draft omits the payment method.
const DefaultForma = "PIX"

var IncomeCategories = []string{
	"Salário", "Freelance", "Investimentos", "Aluguel Recebido", "Bônus",
	"Reembolso", "Pensão Recebida", "Venda de Produtos", "Comissão",
	"Renda Extra", "Dividendos", "Aposentadoria", "Outros",
}

var ExpenseCategories = []string{
	"Moradia", "Alimentação", "Transporte", "Saúde", "Educação", "Lazer",
	"Vestuário", "Assinaturas", "Pets", "Beleza e Cuidados", "Eletrônicos",
	"Presentes", "Impostos", "Dívidas", "Seguros", "Academia", "Farmácia",
	"Outros",
}

var IncomePaymentMethods = []string{
	"PIX", "Transferência", "Depósito", "TED", "Dinheiro", "Automático",
}

var ExpensePaymentMethods = []string{
	"Cartão Crédito", "Cartão Débito", "PIX", "Dinheiro", "Débito Auto",
	"Boleto", "App",
}

var CareerExpenseCategories = []string{
	"Curso / Certificação", "Livro / Material", "Ferramenta / Software",
	"Equipamento", "Uniforme / Vestuário", "Evento / Congresso",
	"Transporte Trabalho", "Outros",
}

var Frequencies = []string{FreqMensal, FreqQuinzenal, FreqSemanal, FreqAnual}

// ValidTipo reports whether tipo is one of the two transaction kinds.
func ValidTipo(tipo string) bool {
	return tipo == TipoReceita || tipo == TipoDespesa
}

// ValidCategory reports whether cat belongs to the category set of tipo.
func ValidCategory(tipo, cat string) bool {
	if tipo == TipoReceita {
		return contains(IncomeCategories, cat)
	}
	return contains(ExpenseCategories, cat)
}

// ValidPaymentMethod reports whether forma belongs to the payment-method set
// of tipo.
func ValidPaymentMethod(tipo, forma string) bool {
	if tipo == TipoReceita {
		return contains(IncomePaymentMethods, forma)
	}
	return contains(ExpensePaymentMethods, forma)
}

// ValidFrequency reports whether freq is a known recurrence frequency.
func ValidFrequency(freq string) bool {
	return contains(Frequencies, freq)
}

// ValidCareerCategory reports whether cat is a career expense category.
func ValidCareerCategory(cat string) bool {
	return contains(CareerExpenseCategories, cat)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
