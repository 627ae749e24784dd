package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cake-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/cake-manager-api/internal/domain"
)

const (
	generalExpensesTable = "general_expenses ge"
)

// GeneralExpenseRepository lê o documento mensal de despesas gerais
// (uma linha por mês, com o array de lançamentos em JSON). Registros com
// forma de pagamento desconhecida são descartados no scan; valores não
// numéricos viram zero.
type GeneralExpenseRepository interface {
	// GetByMonth devolve os lançamentos do mês ym (YYYY-MM); lista vazia
	// quando o documento não existe
	GetByMonth(ym string) ([]*domain.GeneralExpenseRecord, error)
}

type generalExpenseRepository struct {
	conn postgres.Queryer
}

func NewGeneralExpenseRepository(conn *postgres.Connection) GeneralExpenseRepository {
	return &generalExpenseRepository{
		conn: conn,
	}
}

func (r *generalExpenseRepository) GetByMonth(ym string) ([]*domain.GeneralExpenseRecord, error) {
	query, args, err := squirrel.
		Select("ge.expenses").
		From(generalExpensesTable).
		Where(squirrel.Eq{"ge.ym": ym}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var expensesJSON []byte
	err = r.conn.QueryRow(query, args...).Scan(&expensesJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.GeneralExpenseRecord{}, nil
		}
		return nil, fmt.Errorf("erro ao buscar despesas gerais do mês %s: %w", ym, err)
	}

	return parseGeneralExpenses(ym, expensesJSON), nil
}

// rawGeneralExpense é o formato livre gravado pelo app; os campos passam
// pela higienização antes de virar registros canônicos
type rawGeneralExpense struct {
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Value         json.RawMessage `json:"value"`
}

func parseGeneralExpenses(ym string, expensesJSON []byte) []*domain.GeneralExpenseRecord {
	records := make([]*domain.GeneralExpenseRecord, 0)
	if len(expensesJSON) == 0 {
		return records
	}

	var raws []rawGeneralExpense
	if err := json.Unmarshal(expensesJSON, &raws); err != nil {
		logrus.WithError(err).WithField("ym", ym).
			Warn("Documento de despesas gerais com JSON inválido, tratando como vazio")
		return records
	}

	for _, raw := range raws {
		method, ok := domain.ParsePaymentMethod(raw.PaymentMethod)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"ym":             ym,
				"payment_method": raw.PaymentMethod,
			}).Warn("Despesa geral com forma de pagamento desconhecida descartada")
			continue
		}

		records = append(records, &domain.GeneralExpenseRecord{
			Date:          raw.Date,
			Description:   raw.Description,
			PaymentMethod: method,
			Value:         parseValue(raw.Value),
		})
	}

	return records
}

// parseValue aceita o valor como número ou string numérica; qualquer outra
// coisa vira zero
func parseValue(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return int64(asNumber)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if parsed, err := strconv.ParseFloat(asString, 64); err == nil {
			return int64(parsed)
		}
	}

	return 0
}
