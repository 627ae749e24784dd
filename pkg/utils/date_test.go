package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKeysBetween(t *testing.T) {
	day := func(value string) time.Time {
		parsed, err := time.Parse(time.DateOnly, value)
		assert.NoError(t, err)
		return parsed
	}

	tests := []struct {
		name     string
		start    string
		end      string
		expected []string
	}{
		{
			name:     "Intervalo dentro de um único mês",
			start:    "2025-06-10",
			end:      "2025-06-20",
			expected: []string{"2025-06"},
		},
		{
			name:     "Intervalo cobrindo três meses",
			start:    "2025-01-15",
			end:      "2025-03-02",
			expected: []string{"2025-01", "2025-02", "2025-03"},
		},
		{
			name:     "Virada de ano dezembro para janeiro",
			start:    "2024-11-30",
			end:      "2025-02-01",
			expected: []string{"2024-11", "2024-12", "2025-01", "2025-02"},
		},
		{
			name:     "Fim antes do início devolve lista vazia",
			start:    "2025-03-01",
			end:      "2025-01-31",
			expected: []string{},
		},
		{
			name:     "Mesmo dia",
			start:    "2025-06-15",
			end:      "2025-06-15",
			expected: []string{"2025-06"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthKeysBetween(day(tt.start), day(tt.end))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name          string
		ym            string
		expectedFirst string
		expectedLast  string
		hasError      bool
	}{
		{
			name:          "Mês de 30 dias",
			ym:            "2025-06",
			expectedFirst: "2025-06-01",
			expectedLast:  "2025-06-30",
		},
		{
			name:          "Fevereiro em ano bissexto",
			ym:            "2024-02",
			expectedFirst: "2024-02-01",
			expectedLast:  "2024-02-29",
		},
		{
			name:          "Dezembro",
			ym:            "2025-12",
			expectedFirst: "2025-12-01",
			expectedLast:  "2025-12-31",
		},
		{
			name:     "Chave inválida",
			ym:       "junho/2025",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := MonthBounds(tt.ym)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFirst, first.Format(time.DateOnly))
			assert.Equal(t, tt.expectedLast, last.Format(time.DateOnly))
		})
	}
}

func TestClampToMonth(t *testing.T) {
	day := func(value string) time.Time {
		parsed, _ := time.Parse(time.DateOnly, value)
		return parsed
	}

	start, end, err := ClampToMonth("2025-06", day("2025-05-20"), day("2025-07-10"))
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-01", start.Format(time.DateOnly))
	assert.Equal(t, "2025-06-30", end.Format(time.DateOnly))

	// Intervalo já contido no mês não é alterado
	start, end, err = ClampToMonth("2025-06", day("2025-06-05"), day("2025-06-10"))
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-05", start.Format(time.DateOnly))
	assert.Equal(t, "2025-06-10", end.Format(time.DateOnly))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2025-06", MonthKey(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01", MonthKey(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatDayLabel(t *testing.T) {
	assert.Equal(t, "02/06", FormatDayLabel("2025-06-02"))
	assert.Equal(t, "31/12", FormatDayLabel("2025-12-31"))

	// Data fora do formato ISO é devolvida como está
	assert.Equal(t, "02-06-2025", FormatDayLabel("02-06-2025"))
}
