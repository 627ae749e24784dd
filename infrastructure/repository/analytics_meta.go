package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cake-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/cake-manager-api/internal/domain"
)

const (
	analyticsMetaTable = "analytics_meta am"
)

// AnalyticsMetaRepository é o registro de versões mensais: um contador
// monotônico por mês, incrementado a cada escrita nos dados daquele mês.
// É ele quem decide a validade das entradas do cache mensal.
type AnalyticsMetaRepository interface {
	// GetMeta devolve o carimbo de versão do mês; nil quando o mês nunca
	// foi escrito (equivale à versão zero)
	GetMeta(ym string) (*domain.MonthMeta, error)

	// BumpVersion incrementa a versão do mês (criando o registro na
	// primeira escrita) e devolve o carimbo atualizado
	BumpVersion(ym string) (*domain.MonthMeta, error)
}

type analyticsMetaRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsMetaRepository(conn *postgres.Connection) AnalyticsMetaRepository {
	return &analyticsMetaRepository{
		conn: conn,
	}
}

func (r *analyticsMetaRepository) GetMeta(ym string) (*domain.MonthMeta, error) {
	query, args, err := squirrel.
		Select("am.ym, am.version").
		From(analyticsMetaTable).
		Where(squirrel.Eq{"am.ym": ym}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	meta := &domain.MonthMeta{}
	err = r.conn.QueryRow(query, args...).Scan(&meta.YM, &meta.Version)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar meta do mês %s: %w", ym, err)
	}

	return meta, nil
}

func (r *analyticsMetaRepository) BumpVersion(ym string) (*domain.MonthMeta, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("analytics_meta").
		Columns("ym", "version").
		Values(ym, 1).
		Suffix(`
			ON CONFLICT (ym) DO UPDATE SET
				version = analytics_meta.version + 1,
				updated_at = NOW()
			RETURNING ym, version
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	meta := &domain.MonthMeta{}
	err = r.conn.QueryRow(query, args...).Scan(&meta.YM, &meta.Version)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao incrementar versão do mês %s: %w", ym, err)
	}

	return meta, nil
}
