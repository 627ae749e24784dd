package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cake-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/cake-manager-api/internal/domain"
)

const (
	entriesTable = "entries e"
)

// EntryRepository dá acesso às linhas individuais de venda/abono do backing
// store. A normalização para o formato canônico acontece aqui, no scan:
// resolução do valor (explícito, senão quantidade × preço unitário, senão
// zero), quantidade padrão 1 e bucketing da forma de pagamento.
type EntryRepository interface {
	// GetByDayRange busca as entradas com day em [start, end], ordenadas por
	// dia ascendente
	GetByDayRange(start, end time.Time) ([]*domain.DatedSale, error)
}

type entryRepository struct {
	conn postgres.Queryer
}

func NewEntryRepository(conn *postgres.Connection) EntryRepository {
	return &entryRepository{
		conn: conn,
	}
}

func (r *entryRepository) GetByDayRange(start, end time.Time) ([]*domain.DatedSale, error) {
	query, args, err := squirrel.
		Select("e.id, e.kind, e.day, e.amount_cop, e.quantity, e.unit_price_cop, e.payment_method, e.category_id, e.category_name, e.selections, e.variant_key").
		From(entriesTable).
		Where(squirrel.GtOrEq{"e.day": start.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"e.day": end.Format(time.DateOnly)}).
		OrderBy("e.day ASC").
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

	sales := make([]*domain.DatedSale, 0)
	for rows.Next() {
		sale, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *entryRepository) scanEntry(rows *sql.Rows) (*domain.DatedSale, error) {
	var (
		id             string
		kind           sql.NullString
		day            string
		amountCOP      sql.NullInt64
		quantity       sql.NullFloat64
		unitPriceCOP   sql.NullInt64
		paymentMethod  sql.NullString
		categoryID     sql.NullString
		categoryName   sql.NullString
		selectionsJSON []byte
		variantKey     sql.NullString
	)

	err := rows.Scan(
		&id,
		&kind,
		&day,
		&amountCOP,
		&quantity,
		&unitPriceCOP,
		&paymentMethod,
		&categoryID,
		&categoryName,
		&selectionsJSON,
		&variantKey,
	)
	if err != nil {
		return nil, err
	}

	qty := domain.NormalizeQuantity(quantity.Float64)

	sale := &domain.SaleRecord{
		ID:            id,
		Kind:          normalizeKind(kind.String),
		PaymentMethod: domain.NormalizePaymentMethod(paymentMethod.String),
		Amount:        domain.ResolveAmount(amountCOP.Int64, qty, unitPriceCOP.Int64),
		Quantity:      qty,
		CategoryID:    categoryID.String,
		CategoryName:  categoryName.String,
		VariantKey:    variantKey.String,
	}

	if len(selectionsJSON) > 0 {
		selections := make(map[string]string)
		if err := json.Unmarshal(selectionsJSON, &selections); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de selections: %w", err)
		}
		if len(selections) > 0 {
			sale.Selections = selections
		}
	}

	return &domain.DatedSale{Day: day, Sale: sale}, nil
}

// normalizeKind trata valores livres da coluna kind: só "payment" marca um
// abono, qualquer outra coisa é venda direta
func normalizeKind(raw string) domain.EntryKind {
	if raw == string(domain.EntryKindPayment) {
		return domain.EntryKindPayment
	}
	return domain.EntryKindSale
}
