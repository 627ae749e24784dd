package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cake-manager-api/internal/domain"
)

func TestAggregateReportTotals(t *testing.T) {
	raw := []*domain.RawDayRecord{
		{
			Date: "2025-06-02",
			Sales: []*domain.SaleRecord{
				{Amount: 60000, PaymentMethod: domain.PaymentMethodCash, CategoryName: "Tortas"},
				{Amount: 35000, PaymentMethod: domain.PaymentMethodTransfer, CategoryName: "Tortas"},
				{Amount: 0, PaymentMethod: domain.PaymentMethodCash, CategoryName: "Postres"},
			},
			Expenses: []*domain.ExpenseRecord{
				{Value: 45000, PaymentMethod: domain.PaymentMethodCash},
			},
		},
		{
			Date: "2025-06-03",
			Sales: []*domain.SaleRecord{
				{Amount: 12000, PaymentMethod: domain.PaymentMethodCash, CategoryName: "Postres"},
			},
			Expenses: []*domain.ExpenseRecord{
				{Value: 8000, PaymentMethod: domain.PaymentMethodTransfer},
			},
		},
	}

	report := AggregateReport(raw, 20000)

	totals := report.Totals
	assert.Equal(t, int64(107000), totals.TotalIncome)
	assert.Equal(t, int64(73000), totals.TotalExpenses) // 45000 + 8000 diárias + 20000 gerais
	assert.Equal(t, int64(34000), totals.NetTotal)
	assert.Equal(t, int64(72000), totals.CashRevenue)
	assert.Equal(t, int64(35000), totals.TransferRevenue)
	assert.Equal(t, int64(45000), totals.DailyExpensesCash)
	assert.Equal(t, int64(8000), totals.DailyExpensesTransfer)
	assert.Equal(t, int64(20000), totals.GeneralExpenses)

	// A venda zerada não conta como venda
	assert.Equal(t, 3, totals.SaleCount)
	assert.InDelta(t, 35666.67, totals.AvgTicket, 0.01)
	assert.Equal(t, 2, totals.TotalDaysWithSales)
}

func TestAggregateReportExcludesInvalidSales(t *testing.T) {
	raw := []*domain.RawDayRecord{
		{
			Date: "2025-06-02",
			Sales: []*domain.SaleRecord{
				{Amount: 0, PaymentMethod: domain.PaymentMethodCash, CategoryName: "Postres"},
				{Amount: -300, PaymentMethod: domain.PaymentMethodTransfer, CategoryName: "Postres"},
			},
		},
	}

	report := AggregateReport(raw, 0)

	assert.Equal(t, int64(0), report.Totals.TotalIncome)
	assert.Equal(t, 0, report.Totals.SaleCount)
	assert.Equal(t, 0.0, report.Totals.AvgTicket)
	assert.Equal(t, 0, report.Totals.TotalDaysWithSales)

	// A categoria da venda inválida não aparece no detalhamento
	assert.Empty(t, report.CategoryTotals)
	assert.Empty(t, report.CategoryAttributeCards)
}

func TestAggregateReportCategoryTotals(t *testing.T) {
	raw := []*domain.RawDayRecord{
		{
			Date: "2025-06-02",
			Sales: []*domain.SaleRecord{
				{Amount: 30000, PaymentMethod: domain.PaymentMethodCash, CategoryName: "Postres"},
				{Amount: 60000, PaymentMethod: domain.PaymentMethodCash, CategoryName: "Tortas"},
				{Amount: 25000, PaymentMethod: domain.PaymentMethodTransfer, CategoryName: "Postres"},
				{Amount: 5000, PaymentMethod: domain.PaymentMethodCash},
			},
		},
	}

	report := AggregateReport(raw, 0)

	assert.Equal(t, []domain.CategoryTotal{
		{Category: "Tortas", Revenue: 60000},
		{Category: "Postres", Revenue: 55000},
		{Category: domain.FallbackCategory, Revenue: 5000},
	}, report.CategoryTotals)
}

func TestAggregateReportCategoryAttributeCards(t *testing.T) {
	raw := []*domain.RawDayRecord{
		{
			Date: "2025-06-02",
			Sales: []*domain.SaleRecord{
				{
					Amount:        60000,
					Quantity:      3,
					PaymentMethod: domain.PaymentMethodCash,
					CategoryName:  "Tortas",
					Selections:    map[string]string{"tamano": "libra"},
				},
				{
					Amount:        35000,
					Quantity:      1,
					PaymentMethod: domain.PaymentMethodTransfer,
					CategoryName:  "Tortas",
					Selections:    map[string]string{"tamano": "media libra"},
				},
				{
					Amount:        12000,
					Quantity:      6,
					PaymentMethod: domain.PaymentMethodCash,
					CategoryName:  "Postres",
					Selections:    map[string]string{"sabor": "milo"},
				},
			},
		},
	}

	report := AggregateReport(raw, 0)

	assert.Len(t, report.CategoryAttributeCards, 2)

	// Tortas lidera por receita
	tortas := report.CategoryAttributeCards[0]
	assert.Equal(t, "Tortas", tortas.Category)
	assert.Equal(t, int64(95000), tortas.Revenue)
	assert.Len(t, tortas.Attributes, 1)

	tamano := tortas.Attributes[0]
	assert.Equal(t, "tamano", tamano.Attribute)
	assert.Equal(t, int64(95000), tamano.Revenue)
	assert.Equal(t, []domain.OptionStat{
		{Option: "libra", Revenue: 60000, Qty: 3},
		{Option: "media libra", Revenue: 35000, Qty: 1},
	}, tamano.Options)

	postres := report.CategoryAttributeCards[1]
	assert.Equal(t, "Postres", postres.Category)
	assert.Equal(t, int64(12000), postres.Revenue)
	assert.Equal(t, []domain.OptionStat{
		{Option: "milo", Revenue: 12000, Qty: 6},
	}, postres.Attributes[0].Options)
}

func TestAggregateReportOptionsTruncatedToTop(t *testing.T) {
	sales := make([]*domain.SaleRecord, 0, 20)
	for i := 0; i < 20; i++ {
		sales = append(sales, &domain.SaleRecord{
			Amount:        int64(1000 * (i + 1)),
			Quantity:      1,
			PaymentMethod: domain.PaymentMethodCash,
			CategoryName:  "Tortas",
			Selections:    map[string]string{"relleno": fmt.Sprintf("sabor-%02d", i)},
		})
	}

	raw := []*domain.RawDayRecord{{Date: "2025-06-02", Sales: sales}}
	report := AggregateReport(raw, 0)

	options := report.CategoryAttributeCards[0].Attributes[0].Options
	assert.Len(t, options, maxOptionsPerAttribute)

	// As opções sobreviventes são as de maior receita, em ordem decrescente
	assert.Equal(t, "sabor-19", options[0].Option)
	assert.Equal(t, int64(20000), options[0].Revenue)
	assert.Equal(t, "sabor-08", options[len(options)-1].Option)

	// A receita do atributo considera todas as opções, inclusive as truncadas
	assert.Equal(t, int64(210000), report.CategoryAttributeCards[0].Attributes[0].Revenue)
}

func TestAggregateReportDailyStatsAndPie(t *testing.T) {
	raw := []*domain.RawDayRecord{
		{
			Date: "2025-06-03",
			Sales: []*domain.SaleRecord{
				{Amount: 12000, PaymentMethod: domain.PaymentMethodCash},
			},
			Expenses: []*domain.ExpenseRecord{
				{Value: 5000, PaymentMethod: domain.PaymentMethodCash},
			},
		},
		{
			Date: "2025-06-02",
			Sales: []*domain.SaleRecord{
				{Amount: 60000, PaymentMethod: domain.PaymentMethodCash},
				{Amount: 35000, PaymentMethod: domain.PaymentMethodTransfer},
			},
		},
	}

	report := AggregateReport(raw, 0)

	// Série diária em ordem crescente de data, com rótulo dd/mm
	assert.Equal(t, []domain.DailyStat{
		{Date: "2025-06-02", Label: "02/06", Revenue: 95000, Expenses: 0, Profit: 95000},
		{Date: "2025-06-03", Label: "03/06", Revenue: 12000, Expenses: 5000, Profit: 7000},
	}, report.DailyStats)

	// A distribuição por forma de pagamento sempre traz as duas fatias
	assert.Equal(t, []domain.PaymentPieSlice{
		{Name: domain.PaymentLabelCash, Value: 72000},
		{Name: domain.PaymentLabelTransfer, Value: 35000},
	}, report.PaymentPie)
}

func TestAggregateReportEmptyRange(t *testing.T) {
	report := AggregateReport([]*domain.RawDayRecord{}, 0)

	assert.Equal(t, int64(0), report.Totals.TotalIncome)
	assert.Equal(t, 0, report.Totals.SaleCount)
	assert.Equal(t, 0.0, report.Totals.AvgTicket)
	assert.Empty(t, report.DailyStats)
	assert.Empty(t, report.CategoryTotals)
	assert.Empty(t, report.CategoryAttributeCards)

	// Mesmo vazio, o pie mantém as duas fatias zeradas
	assert.Equal(t, []domain.PaymentPieSlice{
		{Name: domain.PaymentLabelCash, Value: 0},
		{Name: domain.PaymentLabelTransfer, Value: 0},
	}, report.PaymentPie)
}
