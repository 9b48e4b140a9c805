package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/wb-promote-cli/infrastructure/database/postgres"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
)

const (
	campaignDayStatsTable = "campaign_day_stats cds"

	createCampaignDayStatsTable = `
		CREATE TABLE IF NOT EXISTS campaign_day_stats (
			id          BIGSERIAL PRIMARY KEY,
			campaign_id BIGINT NOT NULL,
			date        DATE NOT NULL,
			views       BIGINT NOT NULL DEFAULT 0,
			clicks      BIGINT NOT NULL DEFAULT 0,
			orders      BIGINT NOT NULL DEFAULT 0,
			spend_rub   DOUBLE PRECISION NOT NULL DEFAULT 0,
			revenue_rub DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (campaign_id, date)
		)
	`
)

type StatsCacheRepository interface {
	GetByDateRange(campaignIDs []int64, startDate, endDate time.Time) ([]*domain.StatsCacheEntry, error)
	SaveOrUpdate(entry *domain.StatsCacheEntry) error
	DeleteOlderThan(days int) (int64, error)
	EnsureSchema() error
}

type statsCacheRepository struct {
	conn *postgres.Connection
}

func NewStatsCacheRepository(conn *postgres.Connection) StatsCacheRepository {
	return &statsCacheRepository{
		conn: conn,
	}
}

// EnsureSchema cria a tabela do cache quando ainda não existe
func (r *statsCacheRepository) EnsureSchema() error {
	if _, err := r.conn.Exec(createCampaignDayStatsTable); err != nil {
		return fmt.Errorf("erro ao criar a tabela de cache: %w", err)
	}
	return nil
}

func (r *statsCacheRepository) GetByDateRange(campaignIDs []int64, startDate, endDate time.Time) ([]*domain.StatsCacheEntry, error) {
	query, args, err := squirrel.
		Select("cds.id, cds.campaign_id, cds.date, cds.views, cds.clicks, cds.orders, cds.spend_rub, cds.revenue_rub, cds.created_at, cds.updated_at").
		From(campaignDayStatsTable).
		Where(squirrel.Eq{"cds.campaign_id": campaignIDs}).
		Where(squirrel.GtOrEq{"cds.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"cds.date": endDate.Format("2006-01-02")}).
		OrderBy("cds.campaign_id ASC", "cds.date ASC").
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

	entries := make([]*domain.StatsCacheEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estatísticas do cache: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *statsCacheRepository) SaveOrUpdate(entry *domain.StatsCacheEntry) error {
	query := squirrel.StatementBuilder.
		Insert("campaign_day_stats").
		Columns("campaign_id", "date", "views", "clicks", "orders", "spend_rub", "revenue_rub").
		Values(
			entry.CampaignID,
			entry.Date.Format("2006-01-02"),
			entry.Stat.Views,
			entry.Stat.Clicks,
			entry.Stat.Orders,
			entry.Stat.SpendRub,
			entry.Stat.RevenueRub,
		).
		Suffix(`
			ON CONFLICT (campaign_id, date) DO UPDATE SET
				views = EXCLUDED.views,
				clicks = EXCLUDED.clicks,
				orders = EXCLUDED.orders,
				spend_rub = EXCLUDED.spend_rub,
				revenue_rub = EXCLUDED.revenue_rub,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *statsCacheRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("campaign_day_stats").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *statsCacheRepository) scanEntry(rows *sql.Rows) (*domain.StatsCacheEntry, error) {
	entry := &domain.StatsCacheEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.CampaignID,
		&entry.Date,
		&entry.Stat.Views,
		&entry.Stat.Clicks,
		&entry.Stat.Orders,
		&entry.Stat.SpendRub,
		&entry.Stat.RevenueRub,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Stat.CampaignID = entry.CampaignID

	return entry, nil
}
