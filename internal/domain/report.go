package domain

import "time"

// Rótulos exibidos no gráfico de pizza de formas de pagamento
const (
	PaymentLabelCash     = "Efectivo"
	PaymentLabelTransfer = "Transferencia"
)

// ReportFilters delimita o intervalo fechado [start, end] de um relatório
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DailyTotals é o resultado da primeira redução: os totais de um dia
// particionados por forma de pagamento
type DailyTotals struct {
	Date              string `json:"date"`
	SalesCash         int64  `json:"salesCash"`
	SalesTransfer     int64  `json:"salesTransfer"`
	ExpensesCash      int64  `json:"expensesCash"`
	ExpensesTransfer  int64  `json:"expensesTransfer"`
	AvailableCash     int64  `json:"availableCash"`
	AvailableTransfer int64  `json:"availableTransfer"`
	Net               int64  `json:"net"`
}

// ReportTotals são os KPIs finais do intervalo
type ReportTotals struct {
	TotalIncome           int64   `json:"totalIncome"`
	TotalExpenses         int64   `json:"totalExpenses"`
	NetTotal              int64   `json:"netTotal"`
	CashRevenue           int64   `json:"cashRevenue"`
	TransferRevenue       int64   `json:"transferRevenue"`
	DailyExpensesCash     int64   `json:"dailyExpensesCash"`
	DailyExpensesTransfer int64   `json:"dailyExpensesTransfer"`
	GeneralExpenses       int64   `json:"generalExpenses"`
	SaleCount             int     `json:"saleCount"`
	AvgTicket             float64 `json:"avgTicket"`
	TotalDaysWithSales    int     `json:"totalDaysWithSales"`
}

// DailyStat é um ponto da série temporal de receita/despesa/lucro
type DailyStat struct {
	Date     string `json:"date"`
	Label    string `json:"label"`
	Revenue  int64  `json:"revenue"`
	Expenses int64  `json:"expenses"`
	Profit   int64  `json:"profit"`
}

// PaymentPieSlice é uma fatia da distribuição por forma de pagamento
type PaymentPieSlice struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// CategoryTotal é a receita agregada de uma categoria
type CategoryTotal struct {
	Category string `json:"category"`
	Revenue  int64  `json:"revenue"`
}

// OptionStat acumula receita e quantidade de uma opção de atributo
// (ex.: tamaño → libra)
type OptionStat struct {
	Option  string  `json:"option"`
	Revenue int64   `json:"revenue"`
	Qty     float64 `json:"qty"`
}

// AttributeCard é o detalhamento de um atributo dentro de uma categoria,
// com as opções ordenadas por receita decrescente (top 12)
type AttributeCard struct {
	Attribute string       `json:"attribute"`
	Revenue   int64        `json:"revenue"`
	Options   []OptionStat `json:"options"`
}

// CategoryAttributeCard é o detalhamento categoria → atributo → opção
type CategoryAttributeCard struct {
	Category   string          `json:"category"`
	Revenue    int64           `json:"revenue"`
	Attributes []AttributeCard `json:"attributes"`
}

// ReportResult é o contrato de saída consumido pela camada de apresentação:
// dados puros, sem comportamento
type ReportResult struct {
	Totals                 ReportTotals            `json:"totals"`
	DailyStats             []DailyStat             `json:"dailyStats"`
	PaymentPie             []PaymentPieSlice       `json:"paymentPie"`
	CategoryTotals         []CategoryTotal         `json:"categoryTotals"`
	CategoryAttributeCards []CategoryAttributeCard `json:"categoryAttributeCards"`
}
