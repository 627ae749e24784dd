package reporting

import (
	"sort"

	"github.com/vfg2006/cake-manager-api/internal/domain"
	"github.com/vfg2006/cake-manager-api/pkg/utils"
)

// maxOptionsPerAttribute limita o detalhamento de opções de cada atributo
// ao top 12 por receita
const maxOptionsPerAttribute = 12

// Acumuladores com ordem de inserção preservada: os sorts decrescentes são
// estáveis sobre essa ordem, então empates mantêm a ordem de chegada.
type categoryAccumulator struct {
	order  []string
	totals map[string]int64
}

func newCategoryAccumulator() *categoryAccumulator {
	return &categoryAccumulator{totals: make(map[string]int64)}
}

func (a *categoryAccumulator) add(category string, amount int64) {
	if _, ok := a.totals[category]; !ok {
		a.order = append(a.order, category)
	}
	a.totals[category] += amount
}

type optionAccumulator struct {
	order []string
	stats map[string]*domain.OptionStat
}

type attributeAccumulator struct {
	order   []string
	options map[string]*optionAccumulator
}

type cardAccumulator struct {
	order      []string
	attributes map[string]*attributeAccumulator
}

func (c *cardAccumulator) add(category, attribute, option string, amount int64, qty float64) {
	attrs, ok := c.attributes[category]
	if !ok {
		attrs = &attributeAccumulator{options: make(map[string]*optionAccumulator)}
		c.attributes[category] = attrs
		c.order = append(c.order, category)
	}

	opts, ok := attrs.options[attribute]
	if !ok {
		opts = &optionAccumulator{stats: make(map[string]*domain.OptionStat)}
		attrs.options[attribute] = opts
		attrs.order = append(attrs.order, attribute)
	}

	stat, ok := opts.stats[option]
	if !ok {
		stat = &domain.OptionStat{Option: option}
		opts.stats[option] = stat
		opts.order = append(opts.order, option)
	}

	stat.Revenue += amount
	stat.Qty += qty
}

type dailyAccumulator struct {
	order  []string
	points map[string]*domain.DailyStat
}

func newDailyAccumulator() *dailyAccumulator {
	return &dailyAccumulator{points: make(map[string]*domain.DailyStat)}
}

func (a *dailyAccumulator) point(date string) *domain.DailyStat {
	p, ok := a.points[date]
	if !ok {
		p = &domain.DailyStat{Date: date, Label: utils.FormatDayLabel(date)}
		a.points[date] = p
		a.order = append(a.order, date)
	}
	return p
}

// AggregateReport executa a segunda redução do pipeline: a partir dos dias
// brutos do intervalo, produz os detalhamentos por categoria e atributo, a
// série diária de receita/despesa/lucro, a distribuição por forma de
// pagamento e os KPIs finais. generalExpensesTotal é somado às despesas nos
// totais; os detalhamentos diários consideram apenas despesas diárias.
func AggregateReport(raw []*domain.RawDayRecord, generalExpensesTotal int64) *domain.ReportResult {
	var (
		cashRevenue           int64
		transferRevenue       int64
		dailyExpensesCash     int64
		dailyExpensesTransfer int64
		saleCount             int
	)

	categories := newCategoryAccumulator()
	cards := &cardAccumulator{attributes: make(map[string]*attributeAccumulator)}
	daily := newDailyAccumulator()

	for _, day := range raw {
		for _, sale := range day.Sales {
			// Vendas sem valor resolvido não entram em nenhuma agregação
			if !sale.IsValid() {
				continue
			}

			saleCount++
			if sale.PaymentMethod.IsCash() {
				cashRevenue += sale.Amount
			} else {
				transferRevenue += sale.Amount
			}

			category := sale.Category()
			categories.add(category, sale.Amount)

			for attribute, option := range sale.Selections {
				cards.add(category, attribute, option, sale.Amount, sale.Quantity)
			}

			daily.point(day.Date).Revenue += sale.Amount
		}

		for _, expense := range day.Expenses {
			if expense.PaymentMethod.IsCash() {
				dailyExpensesCash += expense.Value
			} else {
				dailyExpensesTransfer += expense.Value
			}

			daily.point(day.Date).Expenses += expense.Value
		}
	}

	totalIncome := cashRevenue + transferRevenue
	totalExpenses := dailyExpensesCash + dailyExpensesTransfer + generalExpensesTotal

	avgTicket := 0.0
	if saleCount > 0 {
		avgTicket = utils.RoundWithTwoDecimalPlace(float64(totalIncome) / float64(saleCount))
	}

	dailyStats, daysWithSales := buildDailyStats(daily)

	return &domain.ReportResult{
		Totals: domain.ReportTotals{
			TotalIncome:           totalIncome,
			TotalExpenses:         totalExpenses,
			NetTotal:              totalIncome - totalExpenses,
			CashRevenue:           cashRevenue,
			TransferRevenue:       transferRevenue,
			DailyExpensesCash:     dailyExpensesCash,
			DailyExpensesTransfer: dailyExpensesTransfer,
			GeneralExpenses:       generalExpensesTotal,
			SaleCount:             saleCount,
			AvgTicket:             avgTicket,
			TotalDaysWithSales:    daysWithSales,
		},
		DailyStats:             dailyStats,
		PaymentPie:             buildPaymentPie(cashRevenue, transferRevenue),
		CategoryTotals:         buildCategoryTotals(categories),
		CategoryAttributeCards: buildCategoryAttributeCards(cards),
	}
}

func buildDailyStats(daily *dailyAccumulator) ([]domain.DailyStat, int) {
	stats := make([]domain.DailyStat, 0, len(daily.order))
	daysWithSales := 0

	for _, date := range daily.order {
		p := daily.points[date]
		p.Profit = p.Revenue - p.Expenses
		if p.Revenue > 0 {
			daysWithSales++
		}
		stats = append(stats, *p)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})

	return stats, daysWithSales
}

func buildPaymentPie(cashRevenue, transferRevenue int64) []domain.PaymentPieSlice {
	return []domain.PaymentPieSlice{
		{Name: domain.PaymentLabelCash, Value: cashRevenue},
		{Name: domain.PaymentLabelTransfer, Value: transferRevenue},
	}
}

func buildCategoryTotals(categories *categoryAccumulator) []domain.CategoryTotal {
	totals := make([]domain.CategoryTotal, 0, len(categories.order))
	for _, category := range categories.order {
		totals = append(totals, domain.CategoryTotal{
			Category: category,
			Revenue:  categories.totals[category],
		})
	}

	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Revenue > totals[j].Revenue
	})

	return totals
}

func buildCategoryAttributeCards(cards *cardAccumulator) []domain.CategoryAttributeCard {
	result := make([]domain.CategoryAttributeCard, 0, len(cards.order))

	for _, category := range cards.order {
		attrs := cards.attributes[category]
		attributeCards := make([]domain.AttributeCard, 0, len(attrs.order))

		var categoryRevenue int64
		for _, attribute := range attrs.order {
			opts := attrs.options[attribute]

			options := make([]domain.OptionStat, 0, len(opts.order))
			var attributeRevenue int64
			for _, option := range opts.order {
				stat := opts.stats[option]
				options = append(options, *stat)
				attributeRevenue += stat.Revenue
			}

			sort.SliceStable(options, func(i, j int) bool {
				return options[i].Revenue > options[j].Revenue
			})
			if len(options) > maxOptionsPerAttribute {
				options = options[:maxOptionsPerAttribute]
			}

			attributeCards = append(attributeCards, domain.AttributeCard{
				Attribute: attribute,
				Revenue:   attributeRevenue,
				Options:   options,
			})
			categoryRevenue += attributeRevenue
		}

		sort.SliceStable(attributeCards, func(i, j int) bool {
			return attributeCards[i].Revenue > attributeCards[j].Revenue
		})

		result = append(result, domain.CategoryAttributeCard{
			Category:   category,
			Revenue:    categoryRevenue,
			Attributes: attributeCards,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue > result[j].Revenue
	})

	return result
}
