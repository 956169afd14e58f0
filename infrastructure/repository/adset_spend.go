package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/alikitto/ad-dash/infrastructure/database/postgres"
	"github.com/alikitto/ad-dash/internal/domain"
	_ "github.com/lib/pq"
)

const adsetDailySpendsTable = "adset_daily_spends"

// AdsetSpendRepository é o cache local da série de gastos diários por
// conjunto. Alimentado em write-through quando a visão de detalhes busca os
// insights por período e renovado pelo job noturno de sincronização.
type AdsetSpendRepository interface {
	UpsertDailySpends(ctx context.Context, accountID, adsetID string, samples []domain.SpendSample) error
	GetDailySpends(ctx context.Context, adsetID string, since, until time.Time) ([]domain.SpendSample, error)
	ListTrackedAdsets(ctx context.Context, activeWithinDays int) (map[string]string, error)
}

type adsetSpendRepository struct {
	conn *postgres.Connection
}

func NewAdsetSpendRepository(conn *postgres.Connection) AdsetSpendRepository {
	return &adsetSpendRepository{
		conn: conn,
	}
}

func (r *adsetSpendRepository) UpsertDailySpends(ctx context.Context, accountID, adsetID string, samples []domain.SpendSample) error {
	if len(samples) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(adsetDailySpendsTable).
		Columns("account_id", "adset_id", "spend_date", "spend", "synced_at")

	now := time.Now().UTC()
	for _, sample := range samples {
		queryBuilder = queryBuilder.Values(accountID, adsetID, sample.Date, sample.Spend, now)
	}

	queryBuilder = queryBuilder.
		Suffix("ON CONFLICT (adset_id, spend_date) DO UPDATE SET spend = EXCLUDED.spend, synced_at = EXCLUDED.synced_at").
		PlaceholderFormat(squirrel.Dollar)

	spendSQL, spendArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, spendSQL, spendArgs...)
	if err != nil {
		return fmt.Errorf("erro ao gravar gastos diários: %w", err)
	}

	return nil
}

func (r *adsetSpendRepository) GetDailySpends(ctx context.Context, adsetID string, since, until time.Time) ([]domain.SpendSample, error) {
	queryBuilder := squirrel.
		Select("spend_date", "spend").
		From(adsetDailySpendsTable).
		Where(squirrel.Eq{"adset_id": adsetID}).
		Where(squirrel.GtOrEq{"spend_date": since.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"spend_date": until.Format(time.DateOnly)}).
		OrderBy("spend_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	spendSQL, spendArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, spendSQL, spendArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar gastos diários: %w", err)
	}
	defer rows.Close()

	var samples []domain.SpendSample
	for rows.Next() {
		var sample domain.SpendSample
		var spendDate time.Time
		if err := rows.Scan(&spendDate, &sample.Spend); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}

		sample.Date = spendDate.Format(time.DateOnly)
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return samples, nil
}

// ListTrackedAdsets retorna adset_id -> account_id dos conjuntos com amostras
// recentes no cache, que são os candidatos da sincronização noturna
func (r *adsetSpendRepository) ListTrackedAdsets(ctx context.Context, activeWithinDays int) (map[string]string, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -activeWithinDays)

	queryBuilder := squirrel.
		Select("DISTINCT adset_id", "account_id").
		From(adsetDailySpendsTable).
		Where(squirrel.GtOrEq{"synced_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar)

	spendSQL, spendArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, spendSQL, spendArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar conjuntos rastreados: %w", err)
	}
	defer rows.Close()

	tracked := make(map[string]string)
	for rows.Next() {
		var adsetID, accountID string
		if err := rows.Scan(&adsetID, &accountID); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		tracked[adsetID] = accountID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return tracked, nil
}
