package reporting

import (
	"github.com/vfg2006/cake-manager-api/internal/domain"
)

// ReduceDaily executa a primeira redução do pipeline: uma linha de totais
// por dia de entrada, com vendas e despesas particionadas entre dinheiro e
// transferência. A ordem dos dias de entrada é preservada.
func ReduceDaily(raw []*domain.RawDayRecord) []*domain.DailyTotals {
	totals := make([]*domain.DailyTotals, 0, len(raw))

	for _, day := range raw {
		t := &domain.DailyTotals{Date: day.Date}

		for _, sale := range day.Sales {
			// Vendas sem valor resolvido não entram em nenhuma agregação
			if !sale.IsValid() {
				continue
			}
			if sale.PaymentMethod.IsCash() {
				t.SalesCash += sale.Amount
			} else {
				t.SalesTransfer += sale.Amount
			}
		}

		for _, expense := range day.Expenses {
			if expense == nil {
				continue
			}
			if expense.PaymentMethod.IsCash() {
				t.ExpensesCash += expense.Value
			} else {
				t.ExpensesTransfer += expense.Value
			}
		}

		t.AvailableCash = t.SalesCash - t.ExpensesCash
		t.AvailableTransfer = t.SalesTransfer - t.ExpensesTransfer
		t.Net = (t.SalesCash + t.SalesTransfer) - (t.ExpensesCash + t.ExpensesTransfer)

		totals = append(totals, t)
	}

	return totals
}
