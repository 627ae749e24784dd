package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/cake-manager-api/infrastructure/cache"
	"github.com/vfg2006/cake-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cake-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	entryRepo          *mocks.MockEntryRepository
	dayExpenseRepo     *mocks.MockDayExpenseRepository
	generalExpenseRepo *mocks.MockGeneralExpenseRepository
	metaRepo           *mocks.MockAnalyticsMetaRepository
	monthCache         *cache.MonthCache
}

// newTestService monta o serviço com repositórios mockados, cache somente em
// memória e relógio congelado em referenceDate
func newTestService(ctrl *gomock.Controller, referenceDate time.Time) (*Service, *serviceMocks) {
	m := &serviceMocks{
		entryRepo:          mocks.NewMockEntryRepository(ctrl),
		dayExpenseRepo:     mocks.NewMockDayExpenseRepository(ctrl),
		generalExpenseRepo: mocks.NewMockGeneralExpenseRepository(ctrl),
		metaRepo:           mocks.NewMockAnalyticsMetaRepository(ctrl),
		monthCache:         cache.NewMonthCache(nil),
	}

	service := &Service{
		entryRepo:           m.entryRepo,
		dayExpenseRepo:      m.dayExpenseRepo,
		generalExpenseRepo:  m.generalExpenseRepo,
		metaRepo:            m.metaRepo,
		monthCache:          m.monthCache,
		maxConcurrentMonths: 2,
		now:                 func() time.Time { return referenceDate },
	}

	return service, m
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	assert.NoError(t, err)
	return parsed
}

func rangeFilters(t *testing.T, start, end string) *domain.ReportFilters {
	startDate := day(t, start)
	endDate := day(t, end)
	return &domain.ReportFilters{StartDate: &startDate, EndDate: &endDate}
}

func TestServiceFetchRangeClosedMonthUncached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Relógio em agosto: junho é um mês fechado
	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	sales := []*domain.DatedSale{
		{Day: "2025-06-02", Sale: &domain.SaleRecord{Amount: 50000, PaymentMethod: domain.PaymentMethodCash}},
		{Day: "2025-06-03", Sale: &domain.SaleRecord{Amount: 30000, PaymentMethod: domain.PaymentMethodTransfer}},
	}
	expenses := []*domain.DatedExpense{
		{Day: "2025-06-02", Expense: &domain.ExpenseRecord{Value: 10000, PaymentMethod: domain.PaymentMethodCash}},
	}

	// Versão lida antes da busca e relida antes de gravar no cache
	m.metaRepo.EXPECT().
		GetMeta("2025-06").
		Return(&domain.MonthMeta{YM: "2025-06", Version: 3}, nil).
		Times(2)

	m.entryRepo.EXPECT().
		GetByDayRange(day(t, "2025-06-01"), day(t, "2025-06-30")).
		Return(sales, nil).
		Times(1)

	m.dayExpenseRepo.EXPECT().
		GetByDayRange(day(t, "2025-06-01"), day(t, "2025-06-30")).
		Return(expenses, nil).
		Times(1)

	raw, err := service.FetchRange(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Len(t, raw, 2)

	// Ordenado por data decrescente
	assert.Equal(t, "2025-06-03", raw[0].Date)
	assert.Equal(t, "2025-06-02", raw[1].Date)
	assert.Len(t, raw[1].Sales, 1)
	assert.Len(t, raw[1].Expenses, 1)

	// A entrada ficou cacheada com a versão relida
	entry := m.monthCache.Get(context.Background(), "2025-06")
	assert.NotNil(t, entry)
	assert.Equal(t, int64(3), entry.Version)
	assert.Len(t, entry.Payload.Raw, 2)
}

func TestServiceFetchRangeServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	cachedRaw := []*domain.RawDayRecord{
		{
			Date:  "2025-06-02",
			Sales: []*domain.SaleRecord{{Amount: 50000, PaymentMethod: domain.PaymentMethodCash}},
		},
	}
	m.monthCache.Set(context.Background(), "2025-06", cache.NewEntry(3, cachedRaw))

	// Só a leitura de versão toca o repositório; nenhuma query de dados
	m.metaRepo.EXPECT().
		GetMeta("2025-06").
		Return(&domain.MonthMeta{YM: "2025-06", Version: 3}, nil).
		Times(1)

	raw, err := service.FetchRange(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Len(t, raw, 1)
	assert.Equal(t, "2025-06-02", raw[0].Date)
}

func TestServiceFetchRangeStaleCacheIsRefetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	staleRaw := []*domain.RawDayRecord{{Date: "2025-06-02"}}
	m.monthCache.Set(context.Background(), "2025-06", cache.NewEntry(2, staleRaw))

	// O mês foi invalidado: versão corrente 3, entrada cacheada carimbada com 2
	m.metaRepo.EXPECT().
		GetMeta("2025-06").
		Return(&domain.MonthMeta{YM: "2025-06", Version: 3}, nil).
		Times(2)

	freshSales := []*domain.DatedSale{
		{Day: "2025-06-05", Sale: &domain.SaleRecord{Amount: 70000, PaymentMethod: domain.PaymentMethodCash}},
	}
	m.entryRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(freshSales, nil)
	m.dayExpenseRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(nil, nil)

	raw, err := service.FetchRange(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Len(t, raw, 1)
	assert.Equal(t, "2025-06-05", raw[0].Date)

	// O cache foi substituído pela versão nova
	entry := m.monthCache.Get(context.Background(), "2025-06")
	assert.Equal(t, int64(3), entry.Version)
	assert.Equal(t, "2025-06-05", entry.Payload.Raw[0].Date)
}

func TestServiceFetchRangeCurrentMonthNeverCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Relógio dentro do próprio mês consultado
	service, m := newTestService(ctrl, day(t, "2025-06-20"))

	sales := []*domain.DatedSale{
		{Day: "2025-06-02", Sale: &domain.SaleRecord{Amount: 50000, PaymentMethod: domain.PaymentMethodCash}},
	}

	// Nenhuma leitura de versão: o mês corrente vai direto ao armazenamento
	m.entryRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(sales, nil)
	m.dayExpenseRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(nil, nil)

	raw, err := service.FetchRange(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Len(t, raw, 1)

	// E nada foi gravado no cache
	assert.Nil(t, m.monthCache.Get(context.Background(), "2025-06"))
}

func TestServiceFetchRangeTransientExpenseFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.metaRepo.EXPECT().GetMeta("2025-06").Return(nil, nil).Times(2)

	sales := []*domain.DatedSale{
		{Day: "2025-06-02", Sale: &domain.SaleRecord{Amount: 50000, PaymentMethod: domain.PaymentMethodCash}},
	}
	m.entryRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(sales, nil)

	// Tabela de despesas ainda não provisionada: falha transitória
	m.dayExpenseRepo.EXPECT().
		GetByDayRange(gomock.Any(), gomock.Any()).
		Return(nil, &pq.Error{Code: "42P01"})

	raw, err := service.FetchRange(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Len(t, raw, 1)
	assert.Len(t, raw[0].Sales, 1)
	assert.Empty(t, raw[0].Expenses)
}

func TestServiceFetchRangeFatalEntryFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.metaRepo.EXPECT().GetMeta("2025-06").Return(nil, nil)
	m.entryRepo.EXPECT().
		GetByDayRange(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	raw, err := service.FetchRange(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.Error(t, err)
	assert.Nil(t, raw)
	assert.Contains(t, err.Error(), "2025-06")
}

func TestServiceFetchRangeMultipleMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	// Três meses fechados, nenhum versionado ainda e nenhum cacheado
	m.metaRepo.EXPECT().GetMeta(gomock.Any()).Return(nil, nil).AnyTimes()

	salesByMonth := map[string][]*domain.DatedSale{
		"2025-04": {{Day: "2025-04-20", Sale: &domain.SaleRecord{Amount: 1000, PaymentMethod: domain.PaymentMethodCash}}},
		"2025-05": {{Day: "2025-05-10", Sale: &domain.SaleRecord{Amount: 2000, PaymentMethod: domain.PaymentMethodCash}}},
		"2025-06": {{Day: "2025-06-05", Sale: &domain.SaleRecord{Amount: 3000, PaymentMethod: domain.PaymentMethodCash}}},
	}

	m.entryRepo.EXPECT().
		GetByDayRange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(start, end time.Time) ([]*domain.DatedSale, error) {
			return salesByMonth[start.Format("2006-01")], nil
		}).
		Times(3)

	m.dayExpenseRepo.EXPECT().
		GetByDayRange(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(3)

	raw, err := service.FetchRange(context.Background(), rangeFilters(t, "2025-04-15", "2025-06-10"))

	assert.NoError(t, err)
	assert.Len(t, raw, 3)

	// Concatenação determinística, mais recente primeiro
	assert.Equal(t, "2025-06-05", raw[0].Date)
	assert.Equal(t, "2025-05-10", raw[1].Date)
	assert.Equal(t, "2025-04-20", raw[2].Date)
}

func TestServiceFetchRangeInvalidFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl, day(t, "2025-08-15"))

	_, err := service.FetchRange(context.Background(), nil)
	assert.Error(t, err)

	_, err = service.FetchRange(context.Background(), &domain.ReportFilters{})
	assert.Error(t, err)

	_, err = service.FetchRange(context.Background(), rangeFilters(t, "2025-06-30", "2025-06-01"))
	assert.Error(t, err)
}

func TestServiceGeneralExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.generalExpenseRepo.EXPECT().
		GetByMonth("2025-06").
		Return([]*domain.GeneralExpenseRecord{
			{Date: "2025-06-20", Description: "Insumos", PaymentMethod: domain.PaymentMethodCash, Value: 80000},
			{Date: "2025-06-05", Description: "Arriendo", PaymentMethod: domain.PaymentMethodTransfer, Value: 1200000},
			{Date: "2025-13-40", Description: "Data impossível", PaymentMethod: domain.PaymentMethodCash, Value: 99999},
			{Date: "2025-06-29", Description: "Fora do intervalo", PaymentMethod: domain.PaymentMethodCash, Value: 5000},
		}, nil)

	result, err := service.GeneralExpenses(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-25"))

	assert.NoError(t, err)

	// A data inválida e a fora do intervalo foram descartadas; o restante em
	// ordem crescente de data
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "2025-06-05", result.Items[0].Date)
	assert.Equal(t, "2025-06-20", result.Items[1].Date)

	assert.Equal(t, int64(80000), result.Totals.Cash)
	assert.Equal(t, int64(1200000), result.Totals.Transfer)
	assert.Equal(t, int64(1280000), result.Totals.Total)
}

func TestServiceGeneralExpensesTransientFailureTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	// Maio falha de forma transitória, junho responde normalmente
	m.generalExpenseRepo.EXPECT().
		GetByMonth("2025-05").
		Return(nil, &pq.Error{Code: "42704"})
	m.generalExpenseRepo.EXPECT().
		GetByMonth("2025-06").
		Return([]*domain.GeneralExpenseRecord{
			{Date: "2025-06-05", PaymentMethod: domain.PaymentMethodCash, Value: 10000},
		}, nil)

	result, err := service.GeneralExpenses(context.Background(), rangeFilters(t, "2025-05-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, int64(10000), result.Totals.Total)
}

func TestServiceGeneralExpensesFatalFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.generalExpenseRepo.EXPECT().
		GetByMonth("2025-06").
		Return(nil, errors.New("conexão recusada"))

	result, err := service.GeneralExpenses(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestServiceRangeReportIncludesGeneralExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.metaRepo.EXPECT().GetMeta("2025-06").Return(nil, nil).Times(2)

	sales := []*domain.DatedSale{
		{Day: "2025-06-02", Sale: &domain.SaleRecord{Amount: 100000, PaymentMethod: domain.PaymentMethodCash}},
	}
	m.entryRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(sales, nil)
	m.dayExpenseRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(nil, nil)

	m.generalExpenseRepo.EXPECT().
		GetByMonth("2025-06").
		Return([]*domain.GeneralExpenseRecord{
			{Date: "2025-06-10", PaymentMethod: domain.PaymentMethodTransfer, Value: 30000},
		}, nil)

	report, err := service.RangeReport(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Equal(t, int64(100000), report.Totals.TotalIncome)
	assert.Equal(t, int64(30000), report.Totals.GeneralExpenses)
	assert.Equal(t, int64(30000), report.Totals.TotalExpenses)
	assert.Equal(t, int64(70000), report.Totals.NetTotal)
}

func TestServiceDailyTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.metaRepo.EXPECT().GetMeta("2025-06").Return(nil, nil).Times(2)

	sales := []*domain.DatedSale{
		{Day: "2025-06-02", Sale: &domain.SaleRecord{Amount: 50000, PaymentMethod: domain.PaymentMethodCash}},
	}
	expenses := []*domain.DatedExpense{
		{Day: "2025-06-02", Expense: &domain.ExpenseRecord{Value: 10000, PaymentMethod: domain.PaymentMethodCash}},
	}
	m.entryRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(sales, nil)
	m.dayExpenseRepo.EXPECT().GetByDayRange(gomock.Any(), gomock.Any()).Return(expenses, nil)

	totals, err := service.DailyTotals(context.Background(), rangeFilters(t, "2025-06-01", "2025-06-30"))

	assert.NoError(t, err)
	assert.Len(t, totals, 1)
	assert.Equal(t, int64(40000), totals[0].AvailableCash)
	assert.Equal(t, int64(40000), totals[0].Net)
}

func TestServiceInvalidateMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.monthCache.Set(context.Background(), "2025-06", cache.NewEntry(3, []*domain.RawDayRecord{{Date: "2025-06-02"}}))

	m.metaRepo.EXPECT().
		BumpVersion("2025-06").
		Return(&domain.MonthMeta{YM: "2025-06", Version: 4}, nil)

	meta, err := service.InvalidateMonth(context.Background(), "2025-06")

	assert.NoError(t, err)
	assert.Equal(t, int64(4), meta.Version)

	// A entrada cacheada foi descartada
	assert.Nil(t, m.monthCache.Get(context.Background(), "2025-06"))
}

func TestServiceInvalidateMonthRejectsBadKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl, day(t, "2025-08-15"))

	_, err := service.InvalidateMonth(context.Background(), "junho")
	assert.Error(t, err)
}

func TestServiceWarmMonthSkipsCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl, day(t, "2025-06-20"))

	// Nenhuma expectativa nos mocks: o mês corrente não dispara busca
	err := service.WarmMonth(context.Background(), "2025-06")
	assert.NoError(t, err)
}

func TestServiceWarmMonthFetchesClosedMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, day(t, "2025-08-15"))

	m.metaRepo.EXPECT().GetMeta("2025-06").Return(&domain.MonthMeta{YM: "2025-06", Version: 1}, nil).Times(2)
	m.entryRepo.EXPECT().
		GetByDayRange(day(t, "2025-06-01"), day(t, "2025-06-30")).
		Return(nil, nil)
	m.dayExpenseRepo.EXPECT().
		GetByDayRange(day(t, "2025-06-01"), day(t, "2025-06-30")).
		Return(nil, nil)

	err := service.WarmMonth(context.Background(), "2025-06")

	assert.NoError(t, err)

	// O mês ficou cacheado mesmo sem atividade
	entry := m.monthCache.Get(context.Background(), "2025-06")
	assert.NotNil(t, entry)
	assert.Equal(t, int64(1), entry.Version)
	assert.Empty(t, entry.Payload.Raw)
}
