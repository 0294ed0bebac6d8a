package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-sync-api/internal/domain"
)

const (
	factCreativeDailyTable = "fact_creative_daily"
)

type CreativePerformanceRepository interface {
	UpsertPerformanceBatch(records []domain.PerformanceRecord) error
}

type creativePerformanceRepository struct {
	conn postgres.Queryer
}

func NewCreativePerformanceRepository(conn postgres.Queryer) CreativePerformanceRepository {
	return &creativePerformanceRepository{
		conn: conn,
	}
}

// UpsertPerformanceBatch insere ou atualiza um lote de linhas da tabela fato
// usando (ad_id, date, user_id) como chave de idempotência, com o mesmo
// fallback sem chave explícita do upsert de criativos.
func (r *creativePerformanceRepository) UpsertPerformanceBatch(records []domain.PerformanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(factCreativeDailyTable).
		Columns(
			"creative_id", "user_id", "ad_id", "ad_name", "adset_id", "adset_name",
			"campaign_id", "campaign_name", "date", "spend", "impressions", "clicks",
			"link_clicks", "purchases", "revenue", "currency", "updated_at",
		)

	for _, record := range records {
		builder = builder.Values(
			record.CreativeID,
			record.UserID,
			record.AdID,
			nullIfEmpty(record.AdName),
			nullIfEmpty(record.AdsetID),
			nullIfEmpty(record.AdsetName),
			nullIfEmpty(record.CampaignID),
			nullIfEmpty(record.CampaignName),
			record.Date,
			record.Spend,
			record.Impressions,
			record.Clicks,
			record.LinkClicks,
			record.Purchases,
			record.Revenue,
			record.Currency,
			record.UpdatedAt,
		)
	}

	withConflictKey := builder.Suffix(`
		ON CONFLICT (ad_id, date, user_id) DO UPDATE SET
			creative_id = EXCLUDED.creative_id,
			ad_name = EXCLUDED.ad_name,
			adset_id = EXCLUDED.adset_id,
			adset_name = EXCLUDED.adset_name,
			campaign_id = EXCLUDED.campaign_id,
			campaign_name = EXCLUDED.campaign_name,
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			link_clicks = EXCLUDED.link_clicks,
			purchases = EXCLUDED.purchases,
			revenue = EXCLUDED.revenue,
			currency = EXCLUDED.currency,
			updated_at = EXCLUDED.updated_at
	`).PlaceholderFormat(squirrel.Dollar)

	if err := r.exec(withConflictKey); err != nil {
		logrus.WithError(err).Warn("Upsert de performance com chave de conflito explícita falhou, repetindo sem a chave")

		fallback := builder.Suffix("ON CONFLICT DO NOTHING").PlaceholderFormat(squirrel.Dollar)
		if err := r.exec(fallback); err != nil {
			return fmt.Errorf("erro ao fazer upsert de performance: %w", err)
		}
	}

	return nil
}

func (r *creativePerformanceRepository) exec(builder squirrel.InsertBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
