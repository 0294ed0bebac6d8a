package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/creative-sync-api/internal/domain"
)

const (
	dimCreativesTable = "dim_creatives"
)

type CreativeRepository interface {
	UpsertCreatives(creatives []domain.CreativeRecord) error
	GetSurrogateKeysByPlatformIDs(platformIDs []string) (map[string]string, error)
}

type creativeRepository struct {
	conn postgres.Queryer
}

func NewCreativeRepository(conn postgres.Queryer) CreativeRepository {
	return &creativeRepository{
		conn: conn,
	}
}

// UpsertCreatives insere ou atualiza a dimensão de criativos usando
// platform_id como chave de conflito. Se o upsert com a chave explícita
// falhar, repete uma única vez com ON CONFLICT DO NOTHING antes de tratar
// como fatal (linhas já existentes continuam idempotentes nesse caminho).
func (r *creativeRepository) UpsertCreatives(creatives []domain.CreativeRecord) error {
	if len(creatives) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(dimCreativesTable).
		Columns("platform_id", "platform", "name", "thumbnail_url", "body_copy", "headline", "updated_at")

	now := time.Now().UTC()
	for _, creative := range creatives {
		builder = builder.Values(
			creative.ID,
			creative.Platform,
			nullIfEmpty(creative.Name),
			nullIfEmpty(creative.ThumbnailURL),
			nullIfEmpty(creative.Body),
			nullIfEmpty(creative.Title),
			now,
		)
	}

	withConflictKey := builder.Suffix(`
		ON CONFLICT (platform_id) DO UPDATE SET
			platform = EXCLUDED.platform,
			name = EXCLUDED.name,
			thumbnail_url = EXCLUDED.thumbnail_url,
			body_copy = EXCLUDED.body_copy,
			headline = EXCLUDED.headline,
			updated_at = EXCLUDED.updated_at
	`).PlaceholderFormat(squirrel.Dollar)

	if err := r.exec(withConflictKey); err != nil {
		logrus.WithError(err).Warn("Upsert de criativos com chave de conflito explícita falhou, repetindo sem a chave")

		fallback := builder.Suffix("ON CONFLICT DO NOTHING").PlaceholderFormat(squirrel.Dollar)
		if err := r.exec(fallback); err != nil {
			return fmt.Errorf("erro ao fazer upsert de criativos: %w", err)
		}
	}

	return nil
}

// GetSurrogateKeysByPlatformIDs busca a chave substituta atribuída pelo banco
// para cada ID nativo da plataforma
func (r *creativeRepository) GetSurrogateKeysByPlatformIDs(platformIDs []string) (map[string]string, error) {
	if len(platformIDs) == 0 {
		return map[string]string{}, nil
	}

	query, args, err := squirrel.
		Select("dc.id, dc.platform_id").
		From(dimCreativesTable + " dc").
		Where(squirrel.Eq{"dc.platform_id": platformIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]string, len(platformIDs))
	for rows.Next() {
		var id, platformID string
		if err := rows.Scan(&id, &platformID); err != nil {
			return nil, fmt.Errorf("erro ao escanear chave de criativo: %w", err)
		}
		keys[platformID] = id
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keys, nil
}

func (r *creativeRepository) exec(builder squirrel.InsertBuilder) error {
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

// nullIfEmpty mapeia string vazia para NULL nas colunas opcionais da dimensão
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
