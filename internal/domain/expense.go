package domain

import "time"

// ExpenseRecord é uma saída operacional vinculada a um dia de vendas
type ExpenseRecord struct {
	Description   string        `json:"description"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Value         int64         `json:"value"`
}

// GeneralExpenseRecord é uma despesa geral lançada manualmente, agrupada por
// mês em um documento próprio e independente dos dias de venda
type GeneralExpenseRecord struct {
	Date          string        `json:"date"`
	Description   string        `json:"description"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Value         int64         `json:"value"`
}

// ValidDate verifica se a data da despesa geral está no formato ISO estrito
// e corresponde a um dia de calendário real ("2025-13-40" é descartada)
func (g *GeneralExpenseRecord) ValidDate() bool {
	t, err := time.Parse(time.DateOnly, g.Date)
	if err != nil {
		return false
	}
	return t.Format(time.DateOnly) == g.Date
}

// GeneralExpensesTotals acumula as despesas gerais de um intervalo por forma
// de pagamento
type GeneralExpensesTotals struct {
	Cash     int64 `json:"cash"`
	Transfer int64 `json:"transfer"`
	Total    int64 `json:"total"`
}

// GeneralExpensesResult é a resposta do overlay de despesas gerais
type GeneralExpensesResult struct {
	Items  []*GeneralExpenseRecord `json:"items"`
	Totals GeneralExpensesTotals   `json:"totals"`
}
