package syncing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync-api/infrastructure/repository"
	"github.com/vfg2006/creative-sync-api/internal/config"
	"github.com/vfg2006/creative-sync-api/internal/domain"
	"github.com/vfg2006/creative-sync-api/pkg/metrics"
	"github.com/vfg2006/creative-sync-api/pkg/utils"
)

type Service struct {
	cfg             *config.Config
	meta            MetaFetcher
	creativeRepo    repository.CreativeRepository
	performanceRepo repository.CreativePerformanceRepository
}

func NewService(
	cfg *config.Config,
	meta MetaFetcher,
	creativeRepo repository.CreativeRepository,
	performanceRepo repository.CreativePerformanceRepository,
) Syncer {
	return &Service{
		cfg:             cfg,
		meta:            meta,
		creativeRepo:    creativeRepo,
		performanceRepo: performanceRepo,
	}
}

// SyncCreativeData executa uma sincronização completa: busca na API, merge,
// upsert da dimensão, resolução das chaves substitutas e upsert da fato.
// O modelo é best-effort: lotes já confirmados permanecem gravados mesmo se
// uma fase posterior falhar; como os dois upserts são idempotentes por chave,
// repetir a execução é sempre seguro.
func (s *Service) SyncCreativeData(ctx context.Context, req domain.SyncRequest) (*domain.SyncSummary, error) {
	runID, _ := utils.GenerateID()
	logger := logrus.WithFields(logrus.Fields{
		"sync_run_id": runID,
		"user_id":     req.UserID,
		"account_id":  req.AdAccountID,
	})

	datePreset := req.DatePreset
	if datePreset == "" {
		datePreset = s.cfg.Sync.DefaultDatePreset
	}

	startTime := time.Now()
	logger.WithField("date_preset", datePreset).Info("sync: iniciando sincronização de criativos")

	summary, err := s.run(logger, req, datePreset)

	metrics.SyncDuration.Observe(time.Since(startTime).Seconds())
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues("error").Inc()
		logger.WithError(err).Error("sync: sincronização abortada")
		return nil, err
	}

	metrics.SyncRunsTotal.WithLabelValues("success").Inc()
	metrics.CreativesSynced.Add(float64(summary.Creatives))
	metrics.PerformanceRowsSynced.Add(float64(summary.PerformanceRows))
	metrics.PerformanceRowsSkipped.Add(float64(summary.Skipped))

	logger.WithFields(logrus.Fields{
		"creatives":        summary.Creatives,
		"performance_rows": summary.PerformanceRows,
		"skipped":          summary.Skipped,
		"duration":         time.Since(startTime).String(),
	}).Info("sync: sincronização concluída")

	return summary, nil
}

func (s *Service) run(logger *logrus.Entry, req domain.SyncRequest, datePreset string) (*domain.SyncSummary, error) {
	// Etapa 1: buscar insights, mapear anúncios e resolver criativos.
	// Qualquer erro não tratado aqui aborta a execução.
	insights, err := s.meta.FetchAdInsights(req.AccessToken, req.AdAccountID, datePreset)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar insights na API do Meta")
	}

	if len(insights) == 0 {
		logger.Info("sync: nenhuma linha de performance no período, nada a fazer")
		return &domain.SyncSummary{}, nil
	}

	adIDs := metadomain.UniqueAdIDs(insights)
	adToCreative, err := s.meta.MapAdsToCreatives(req.AccessToken, adIDs)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao mapear anúncios para criativos")
	}

	creativeIDs := uniqueCreativeIDs(adToCreative)
	creativeDetails, err := s.meta.ResolveCreatives(req.AccessToken, creativeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao resolver criativos")
	}

	creatives, performance := Merge(insights, adToCreative, creativeDetails)

	// Etapa 2: upsert da dimensão
	if err := s.creativeRepo.UpsertCreatives(creatives); err != nil {
		return nil, errors.Wrap(err, "falha no upsert da dimensão de criativos")
	}
	logger.WithField("creatives", len(creatives)).Info("sync: dimensão de criativos atualizada")

	// Etapa 3: resolver chaves substitutas em lotes.
	// Sem esse mapa o upsert da fato não tem como prosseguir.
	surrogateKeys, err := s.resolveSurrogateKeys(creatives)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao resolver chaves substitutas dos criativos")
	}

	// Etapa 4: upsert da fato em lotes, descartando linhas sem chave
	synced, skipped, err := s.upsertPerformance(req.UserID, performance, surrogateKeys)
	if err != nil {
		return nil, errors.Wrap(err, "falha no upsert da tabela fato de performance")
	}

	if skipped > 0 {
		logger.WithField("skipped", skipped).Warn("sync: linhas de performance ignoradas por falta de chave ou dados obrigatórios")
	}

	return &domain.SyncSummary{
		Creatives:       len(creatives),
		PerformanceRows: synced,
		Skipped:         skipped,
	}, nil
}

func (s *Service) resolveSurrogateKeys(creatives []domain.CreativeRecord) (map[string]string, error) {
	platformIDs := make([]string, 0, len(creatives))
	for _, creative := range creatives {
		if creative.ID != "" {
			platformIDs = append(platformIDs, creative.ID)
		}
	}

	keys := make(map[string]string, len(platformIDs))
	for _, batch := range utils.ChunkStrings(platformIDs, s.cfg.Sync.UpsertBatchSize) {
		batchKeys, err := s.creativeRepo.GetSurrogateKeysByPlatformIDs(batch)
		if err != nil {
			return nil, err
		}
		for platformID, key := range batchKeys {
			keys[platformID] = key
		}
	}

	return keys, nil
}

func (s *Service) upsertPerformance(
	userID int64,
	performance []domain.PerformanceRecord,
	surrogateKeys map[string]string,
) (int, int, error) {
	now := time.Now().UTC()

	rows := make([]domain.PerformanceRecord, 0, len(performance))
	skipped := 0

	for _, record := range performance {
		surrogateKey, ok := surrogateKeys[record.CreativeID]
		if !ok || record.Date == "" || record.AdID == "" {
			skipped++
			continue
		}

		record.CreativeID = surrogateKey
		record.UserID = userID
		record.Currency = s.cfg.Sync.DefaultCurrency
		record.UpdatedAt = now
		rows = append(rows, record)
	}

	synced := 0
	for i := 0; i < len(rows); i += s.cfg.Sync.UpsertBatchSize {
		end := i + s.cfg.Sync.UpsertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		if err := s.performanceRepo.UpsertPerformanceBatch(rows[i:end]); err != nil {
			return synced, skipped, err
		}
		synced += end - i
	}

	return synced, skipped, nil
}

func uniqueCreativeIDs(adToCreative map[string]string) []string {
	seen := make(map[string]struct{}, len(adToCreative))
	ids := make([]string, 0, len(adToCreative))

	for _, creativeID := range adToCreative {
		if creativeID == "" {
			continue
		}
		if _, ok := seen[creativeID]; ok {
			continue
		}
		seen[creativeID] = struct{}{}
		ids = append(ids, creativeID)
	}

	return ids
}
