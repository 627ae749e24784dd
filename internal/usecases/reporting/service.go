package reporting

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cake-manager-api/infrastructure/cache"
	"github.com/vfg2006/cake-manager-api/infrastructure/repository"
	"github.com/vfg2006/cake-manager-api/internal/config"
	"github.com/vfg2006/cake-manager-api/internal/domain"
	"github.com/vfg2006/cake-manager-api/pkg/utils"
)

// Service implementa o Reporter: o range fetcher com cache mensal
// versionado, as duas reduções e o overlay de despesas gerais
type Service struct {
	cfg                 *config.Config
	entryRepo           repository.EntryRepository
	dayExpenseRepo      repository.DayExpenseRepository
	generalExpenseRepo  repository.GeneralExpenseRepository
	metaRepo            repository.AnalyticsMetaRepository
	monthCache          MonthCache
	maxConcurrentMonths int

	// now é injetável para os testes controlarem o mês corrente
	now func() time.Time
}

// NewService cria o serviço de relatórios
func NewService(
	cfg *config.Config,
	entryRepo repository.EntryRepository,
	dayExpenseRepo repository.DayExpenseRepository,
	generalExpenseRepo repository.GeneralExpenseRepository,
	metaRepo repository.AnalyticsMetaRepository,
	monthCache MonthCache,
) Reporter {
	maxConcurrent := cfg.Reporting.MaxConcurrentMonths
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Service{
		cfg:                 cfg,
		entryRepo:           entryRepo,
		dayExpenseRepo:      dayExpenseRepo,
		generalExpenseRepo:  generalExpenseRepo,
		metaRepo:            metaRepo,
		monthCache:          monthCache,
		maxConcurrentMonths: maxConcurrent,
		now:                 time.Now,
	}
}

// FetchRange monta o conjunto bruto do intervalo. Os meses são buscados em
// paralelo limitado e os resultados juntados na ordem dos meses, então a
// saída é determinística apesar do fan-out.
func (s *Service) FetchRange(ctx context.Context, filters *domain.ReportFilters) ([]*domain.RawDayRecord, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	fetchID, _ := utils.GenerateID()
	start, end := *filters.StartDate, *filters.EndDate

	months := utils.MonthKeysBetween(start, end)
	if len(months) == 0 {
		return []*domain.RawDayRecord{}, nil
	}

	logrus.WithFields(logrus.Fields{
		"fetch_id":   fetchID,
		"start_date": start.Format(time.DateOnly),
		"end_date":   end.Format(time.DateOnly),
		"months":     len(months),
	}).Info("Iniciando busca de intervalo")

	// Fan-out limitado sobre os meses; cada posição do slice pertence a uma
	// única goroutine
	results := make([][]*domain.RawDayRecord, len(months))
	errs := make([]error, len(months))

	semaphore := make(chan struct{}, s.maxConcurrentMonths)
	var wg sync.WaitGroup

	for i, ym := range months {
		wg.Add(1)

		go func(i int, ym string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i], errs[i] = s.fetchMonth(ctx, ym, start, end, fetchID)
		}(i, ym)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar o mês %s: %w", months[i], err)
		}
	}

	raw := make([]*domain.RawDayRecord, 0)
	for _, monthRaw := range results {
		raw = append(raw, monthRaw...)
	}

	// Mais recente primeiro; datas ISO zero-padded ordenam lexicograficamente
	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].Date > raw[j].Date
	})

	logrus.WithFields(logrus.Fields{
		"fetch_id": fetchID,
		"days":     len(raw),
	}).Info("Busca de intervalo concluída")

	return raw, nil
}

// fetchMonth resolve um único mês: cache versionado para meses fechados,
// busca direta para o mês corrente (que é mutável dentro do dia e por isso
// nunca é cacheado nem lido do cache)
func (s *Service) fetchMonth(ctx context.Context, ym string, start, end time.Time, fetchID string) ([]*domain.RawDayRecord, error) {
	currentMonth := ym == utils.MonthKey(s.now())

	if !currentMonth {
		meta, err := s.metaRepo.GetMeta(ym)
		if err != nil {
			return nil, err
		}

		version := int64(0)
		if meta != nil {
			version = meta.Version
		}

		if entry := s.monthCache.Get(ctx, ym); entry != nil && entry.Version == version {
			logrus.WithFields(logrus.Fields{
				"fetch_id": fetchID,
				"ym":       ym,
				"version":  version,
			}).Debug("Mês servido do cache")
			return entry.Payload.Raw, nil
		}
	}

	queryStart, queryEnd, err := utils.ClampToMonth(ym, start, end)
	if err != nil {
		return nil, err
	}

	sales, err := s.entryRepo.GetByDayRange(queryStart, queryEnd)
	if err != nil {
		return nil, err
	}

	expenses, err := s.dayExpenseRepo.GetByDayRange(queryStart, queryEnd)
	if err != nil {
		if !IsTransient(err) {
			return nil, err
		}
		// Falha transitória: o mês segue sem despesas em vez de abortar o
		// intervalo inteiro
		logrus.WithError(err).WithFields(logrus.Fields{
			"fetch_id": fetchID,
			"ym":       ym,
		}).Warn("Consulta de despesas indisponível, prosseguindo sem despesas para o mês")
		expenses = nil
	}

	raw := groupByDay(sales, expenses)

	if !currentMonth {
		// A versão é relida depois da busca: se o mês mudou durante a
		// consulta, a entrada gravada carrega a versão nova e será
		// invalidada na próxima comparação. Janela de staleness aceita.
		meta, err := s.metaRepo.GetMeta(ym)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"fetch_id": fetchID,
				"ym":       ym,
			}).Warn("Erro ao reler versão do mês, entrada não será cacheada")
			return raw, nil
		}

		version := int64(0)
		if meta != nil {
			version = meta.Version
		}

		s.monthCache.Set(ctx, ym, cache.NewEntry(version, raw))
	}

	return raw, nil
}

// groupByDay agrupa as linhas individuais em registros por dia de calendário
func groupByDay(sales []*domain.DatedSale, expenses []*domain.DatedExpense) []*domain.RawDayRecord {
	byDay := make(map[string]*domain.RawDayRecord)
	order := make([]string, 0)

	dayRecord := func(day string) *domain.RawDayRecord {
		record, ok := byDay[day]
		if !ok {
			record = &domain.RawDayRecord{
				Date:     day,
				Sales:    make([]*domain.SaleRecord, 0),
				Expenses: make([]*domain.ExpenseRecord, 0),
			}
			byDay[day] = record
			order = append(order, day)
		}
		return record
	}

	for _, sale := range sales {
		record := dayRecord(sale.Day)
		record.Sales = append(record.Sales, sale.Sale)
	}

	for _, expense := range expenses {
		record := dayRecord(expense.Day)
		record.Expenses = append(record.Expenses, expense.Expense)
	}

	raw := make([]*domain.RawDayRecord, 0, len(order))
	for _, day := range order {
		raw = append(raw, byDay[day])
	}

	return raw
}

// DailyTotals aplica a primeira redução sobre o intervalo
func (s *Service) DailyTotals(ctx context.Context, filters *domain.ReportFilters) ([]*domain.DailyTotals, error) {
	raw, err := s.FetchRange(ctx, filters)
	if err != nil {
		return nil, err
	}

	return ReduceDaily(raw), nil
}

// RangeReport produz o relatório completo do intervalo. Os dados brutos e
// as despesas gerais são carregados em paralelo; o total das despesas
// gerais é incorporado aos KPIs finais.
func (s *Service) RangeReport(ctx context.Context, filters *domain.ReportFilters) (*domain.ReportResult, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	var (
		raw        []*domain.RawDayRecord
		general    *domain.GeneralExpensesResult
		rawErr     error
		generalErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		raw, rawErr = s.FetchRange(ctx, filters)
	}()

	go func() {
		defer wg.Done()
		general, generalErr = s.GeneralExpenses(ctx, filters)
	}()

	wg.Wait()

	if rawErr != nil {
		return nil, rawErr
	}
	if generalErr != nil {
		return nil, generalErr
	}

	return AggregateReport(raw, general.Totals.Total), nil
}

// GeneralExpenses carrega o overlay de despesas gerais do intervalo.
// Aplica a mesma política de falha parcial do range fetcher: mês com falha
// transitória degrada para vazio, qualquer outra falha aborta o intervalo.
func (s *Service) GeneralExpenses(ctx context.Context, filters *domain.ReportFilters) (*domain.GeneralExpensesResult, error) {
	if err := validateFilters(filters); err != nil {
		return nil, err
	}

	start := filters.StartDate.Format(time.DateOnly)
	end := filters.EndDate.Format(time.DateOnly)

	items := make([]*domain.GeneralExpenseRecord, 0)
	totals := domain.GeneralExpensesTotals{}

	for _, ym := range utils.MonthKeysBetween(*filters.StartDate, *filters.EndDate) {
		records, err := s.generalExpenseRepo.GetByMonth(ym)
		if err != nil {
			if !IsTransient(err) {
				return nil, fmt.Errorf("erro ao buscar despesas gerais do mês %s: %w", ym, err)
			}
			logrus.WithError(err).WithField("ym", ym).
				Warn("Despesas gerais indisponíveis para o mês, prosseguindo sem elas")
			continue
		}

		for _, record := range records {
			if !record.ValidDate() {
				logrus.WithFields(logrus.Fields{
					"ym":   ym,
					"date": record.Date,
				}).Warn("Despesa geral com data inválida descartada")
				continue
			}

			// Datas ISO zero-padded: a comparação lexicográfica equivale à
			// comparação de calendário
			if record.Date < start || record.Date > end {
				continue
			}

			items = append(items, record)
			if record.PaymentMethod.IsCash() {
				totals.Cash += record.Value
			} else {
				totals.Transfer += record.Value
			}
		}
	}

	totals.Total = totals.Cash + totals.Transfer

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date < items[j].Date
	})

	return &domain.GeneralExpensesResult{
		Items:  items,
		Totals: totals,
	}, nil
}

// WarmMonth reaquece o cache de um mês fechado buscando o mês inteiro.
// Para o mês corrente é um no-op: ele nunca é cacheado.
func (s *Service) WarmMonth(ctx context.Context, ym string) error {
	if ym == utils.MonthKey(s.now()) {
		logrus.WithField("ym", ym).Info("Mês corrente não é cacheado, ignorando reaquecimento")
		return nil
	}

	start, end, err := utils.MonthBounds(ym)
	if err != nil {
		return err
	}

	_, err = s.FetchRange(ctx, &domain.ReportFilters{StartDate: &start, EndDate: &end})
	return err
}

// InvalidateMonth incrementa a versão do mês e descarta a entrada do cache.
// É o gancho chamado depois de qualquer escrita nos dados do mês.
func (s *Service) InvalidateMonth(ctx context.Context, ym string) (*domain.MonthMeta, error) {
	if _, _, err := utils.MonthBounds(ym); err != nil {
		return nil, err
	}

	meta, err := s.metaRepo.BumpVersion(ym)
	if err != nil {
		return nil, err
	}

	s.monthCache.Clear(ctx, ym)

	logrus.WithFields(logrus.Fields{
		"ym":      ym,
		"version": meta.Version,
	}).Info("Versão do mês incrementada e cache invalidado")

	return meta, nil
}

func validateFilters(filters *domain.ReportFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}
