package syncing

import (
	"context"

	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync-api/internal/domain"
)

// Syncer é o ponto de entrada invocado pelo disparador externo
type Syncer interface {
	SyncCreativeData(ctx context.Context, req domain.SyncRequest) (*domain.SyncSummary, error)
}

// MetaFetcher é a fatia do integrador Meta consumida pelo orquestrador
type MetaFetcher interface {
	FetchAdInsights(accessToken, accountID, datePreset string) ([]metadomain.AdInsight, error)
	MapAdsToCreatives(accessToken string, adIDs []string) (map[string]string, error)
	ResolveCreatives(accessToken string, creativeIDs []string) (map[string]domain.CreativeRecord, error)
}
