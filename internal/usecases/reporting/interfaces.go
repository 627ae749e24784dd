package reporting

import (
	"context"

	"github.com/vfg2006/cake-manager-api/internal/domain"
)

// MonthCache define o cache mensal consumido pelo range fetcher. As
// operações nunca falham: problemas no nível durável são rebaixados a miss.
type MonthCache interface {
	// Get devolve a entrada do mês ou nil em caso de miss
	Get(ctx context.Context, ym string) *domain.MonthCacheEntry

	// Set grava a entrada nos dois níveis do cache
	Set(ctx context.Context, ym string, entry *domain.MonthCacheEntry)

	// Clear remove a entrada do mês
	Clear(ctx context.Context, ym string)
}

// Reporter é a interface completa do pipeline de agregação de relatórios
type Reporter interface {
	// FetchRange monta o conjunto bruto de dias com atividade no intervalo,
	// ordenado por data decrescente, servindo meses fechados do cache
	// quando a versão confere
	FetchRange(ctx context.Context, filters *domain.ReportFilters) ([]*domain.RawDayRecord, error)

	// DailyTotals reduz o intervalo a totais por dia particionados por
	// forma de pagamento
	DailyTotals(ctx context.Context, filters *domain.ReportFilters) ([]*domain.DailyTotals, error)

	// RangeReport produz as estatísticas completas do intervalo, com as
	// despesas gerais incorporadas aos totais
	RangeReport(ctx context.Context, filters *domain.ReportFilters) (*domain.ReportResult, error)

	// GeneralExpenses carrega as despesas gerais do intervalo com os
	// totais por forma de pagamento
	GeneralExpenses(ctx context.Context, filters *domain.ReportFilters) (*domain.GeneralExpensesResult, error)

	// WarmMonth reaquece o cache de um mês fechado
	WarmMonth(ctx context.Context, ym string) error

	// InvalidateMonth incrementa a versão do mês no registro e descarta a
	// entrada correspondente do cache
	InvalidateMonth(ctx context.Context, ym string) (*domain.MonthMeta, error)
}
