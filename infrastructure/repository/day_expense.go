package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cake-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/cake-manager-api/internal/domain"
)

const (
	dayExpensesTable = "day_expenses de"
)

// DayExpenseRepository dá acesso às despesas diárias vinculadas aos dias de
// venda. Valores ausentes são coagidos a zero no scan; formas de pagamento
// desconhecidas caem no balde de transferência.
type DayExpenseRepository interface {
	// GetByDayRange busca as despesas com day em [start, end], ordenadas por
	// dia ascendente
	GetByDayRange(start, end time.Time) ([]*domain.DatedExpense, error)
}

type dayExpenseRepository struct {
	conn postgres.Queryer
}

func NewDayExpenseRepository(conn *postgres.Connection) DayExpenseRepository {
	return &dayExpenseRepository{
		conn: conn,
	}
}

func (r *dayExpenseRepository) GetByDayRange(start, end time.Time) ([]*domain.DatedExpense, error) {
	query, args, err := squirrel.
		Select("de.day, de.description, de.payment_method, de.value_cop").
		From(dayExpensesTable).
		Where(squirrel.GtOrEq{"de.day": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"de.day": end.Format(time.DateOnly)}).
		OrderBy("de.day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.DatedExpense, 0)
	for rows.Next() {
		var (
			day           string
			description   sql.NullString
			paymentMethod sql.NullString
			valueCOP      sql.NullInt64
		)

		if err := rows.Scan(&day, &description, &paymentMethod, &valueCOP); err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa diária: %w", err)
		}

		expenses = append(expenses, &domain.DatedExpense{
			Day: day,
			Expense: &domain.ExpenseRecord{
				Description:   description.String,
				PaymentMethod: domain.NormalizePaymentMethod(paymentMethod.String),
				Value:         valueCOP.Int64,
			},
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}
