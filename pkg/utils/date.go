package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// MonthKey retorna a chave YYYY-MM do mês de uma data
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthKeysBetween calcula a lista ordenada de chaves YYYY-MM cobrindo o
// intervalo [start, end], inclusive nas duas pontas. A aritmética é feita
// sobre os inteiros ano/mês, com a virada dezembro→janeiro.
func MonthKeysBetween(start, end time.Time) []string {
	if end.Before(start) {
		return []string{}
	}

	year, month := start.Year(), int(start.Month())
	endYear, endMonth := end.Year(), int(end.Month())

	keys := make([]string, 0, (endYear-year)*12+endMonth-month+1)
	for year < endYear || (year == endYear && month <= endMonth) {
		keys = append(keys, fmt.Sprintf("%04d-%02d", year, month))

		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return keys
}

// MonthBounds retorna o primeiro e o último dia de calendário do mês
// identificado pela chave YYYY-MM
func MonthBounds(ym string) (time.Time, time.Time, error) {
	first, err := time.Parse("2006-01", ym)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("chave de mês inválida %q: %w", ym, err)
	}

	last := first.AddDate(0, 1, -1)
	return first, last, nil
}

// ClampToMonth restringe o intervalo [start, end] aos limites do mês ym
func ClampToMonth(ym string, start, end time.Time) (time.Time, time.Time, error) {
	monthStart, monthEnd, err := MonthBounds(ym)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if start.Before(monthStart) {
		start = monthStart
	}
	if end.After(monthEnd) {
		end = monthEnd
	}

	return start, end, nil
}

// FormatDayLabel formata uma data ISO para exibição na série diária (dd/mm)
func FormatDayLabel(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("02/01")
}
