package syncing_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	repomocks "github.com/vfg2006/creative-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creative-sync-api/internal/config"
	"github.com/vfg2006/creative-sync-api/internal/domain"
	"github.com/vfg2006/creative-sync-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/creative-sync-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	meta            *syncmocks.MockMetaFetcher
	creativeRepo    *repomocks.MockCreativeRepository
	performanceRepo *repomocks.MockCreativePerformanceRepository
	service         syncing.Syncer
}

func newSyncFixture(t *testing.T) *syncFixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Sync: config.Sync{
			DefaultCurrency:   "USD",
			DefaultDatePreset: "last_3d",
			UpsertBatchSize:   100,
		},
	}

	meta := syncmocks.NewMockMetaFetcher(ctrl)
	creativeRepo := repomocks.NewMockCreativeRepository(ctrl)
	performanceRepo := repomocks.NewMockCreativePerformanceRepository(ctrl)

	return &syncFixture{
		meta:            meta,
		creativeRepo:    creativeRepo,
		performanceRepo: performanceRepo,
		service:         syncing.NewService(cfg, meta, creativeRepo, performanceRepo),
	}
}

func syncRequest() domain.SyncRequest {
	return domain.SyncRequest{
		UserID:      77,
		AdAccountID: "act_123",
		AccessToken: "token-abc",
		DatePreset:  "last_7d",
	}
}

func TestSyncCreativeData(t *testing.T) {
	t.Run("sincronização completa injeta chave substituta, usuário e moeda", func(t *testing.T) {
		f := newSyncFixture(t)
		req := syncRequest()

		insights := []metadomain.AdInsight{
			{AdID: "ad_1", Spend: "10.5", DateStart: "2024-01-01"},
			{AdID: "ad_1", Spend: "4.5", DateStart: "2024-01-02"},
		}

		f.meta.EXPECT().
			FetchAdInsights(req.AccessToken, req.AdAccountID, "last_7d").
			Return(insights, nil)
		f.meta.EXPECT().
			MapAdsToCreatives(req.AccessToken, []string{"ad_1"}).
			Return(map[string]string{"ad_1": "creative_1"}, nil)
		f.meta.EXPECT().
			ResolveCreatives(req.AccessToken, []string{"creative_1"}).
			Return(map[string]domain.CreativeRecord{
				"creative_1": {ID: "creative_1", Name: "Criativo 1", Platform: domain.PlatformMeta},
			}, nil)

		f.creativeRepo.EXPECT().
			UpsertCreatives(gomock.Len(1)).
			Return(nil)
		f.creativeRepo.EXPECT().
			GetSurrogateKeysByPlatformIDs([]string{"creative_1"}).
			Return(map[string]string{"creative_1": "uuid-1"}, nil)

		f.performanceRepo.EXPECT().
			UpsertPerformanceBatch(gomock.Any()).
			DoAndReturn(func(rows []domain.PerformanceRecord) error {
				require.Len(t, rows, 2)
				for _, row := range rows {
					assert.Equal(t, "uuid-1", row.CreativeID)
					assert.Equal(t, int64(77), row.UserID)
					assert.Equal(t, "USD", row.Currency)
					assert.False(t, row.UpdatedAt.IsZero())
				}
				return nil
			})

		summary, err := f.service.SyncCreativeData(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Creatives)
		assert.Equal(t, 2, summary.PerformanceRows)
		assert.Equal(t, 0, summary.Skipped)
	})

	t.Run("sem date_preset na requisição usa o padrão configurado", func(t *testing.T) {
		f := newSyncFixture(t)
		req := syncRequest()
		req.DatePreset = ""

		f.meta.EXPECT().
			FetchAdInsights(req.AccessToken, req.AdAccountID, "last_3d").
			Return(nil, nil)

		summary, err := f.service.SyncCreativeData(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Nenhum dado para sincronizar", summary.Message())
	})

	t.Run("sem insights encerra cedo sem tocar o banco", func(t *testing.T) {
		f := newSyncFixture(t)
		req := syncRequest()

		f.meta.EXPECT().
			FetchAdInsights(req.AccessToken, req.AdAccountID, "last_7d").
			Return([]metadomain.AdInsight{}, nil)

		summary, err := f.service.SyncCreativeData(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, &domain.SyncSummary{}, summary)
	})

	t.Run("falha na busca de insights aborta a sincronização", func(t *testing.T) {
		f := newSyncFixture(t)
		req := syncRequest()

		f.meta.EXPECT().
			FetchAdInsights(req.AccessToken, req.AdAccountID, "last_7d").
			Return(nil, assert.AnError)

		summary, err := f.service.SyncCreativeData(context.Background(), req)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, summary)
	})

	t.Run("linhas sem chave substituta ou sem data são ignoradas", func(t *testing.T) {
		f := newSyncFixture(t)
		req := syncRequest()

		insights := []metadomain.AdInsight{
			{AdID: "ad_ok", DateStart: "2024-01-01"},
			{AdID: "ad_sem_chave", DateStart: "2024-01-01"},
			{AdID: "ad_sem_data", DateStart: ""},
		}

		f.meta.EXPECT().
			FetchAdInsights(req.AccessToken, req.AdAccountID, "last_7d").
			Return(insights, nil)
		f.meta.EXPECT().
			MapAdsToCreatives(req.AccessToken, gomock.Any()).
			Return(map[string]string{
				"ad_ok":        "creative_ok",
				"ad_sem_chave": "creative_perdido",
				"ad_sem_data":  "creative_ok",
			}, nil)
		f.meta.EXPECT().
			ResolveCreatives(req.AccessToken, gomock.Any()).
			Return(map[string]domain.CreativeRecord{
				"creative_ok":      {ID: "creative_ok"},
				"creative_perdido": {ID: "creative_perdido"},
			}, nil)

		f.creativeRepo.EXPECT().UpsertCreatives(gomock.Any()).Return(nil)
		f.creativeRepo.EXPECT().
			GetSurrogateKeysByPlatformIDs(gomock.Any()).
			Return(map[string]string{"creative_ok": "uuid-ok"}, nil)

		f.performanceRepo.EXPECT().
			UpsertPerformanceBatch(gomock.Len(1)).
			Return(nil)

		summary, err := f.service.SyncCreativeData(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.PerformanceRows)
		assert.Equal(t, 2, summary.Skipped)
	})

	t.Run("250 linhas com lote de 100 geram 3 upserts na fato", func(t *testing.T) {
		f := newSyncFixture(t)
		req := syncRequest()

		insights := make([]metadomain.AdInsight, 250)
		for i := range insights {
			insights[i] = metadomain.AdInsight{
				AdID:      "ad_1",
				DateStart: fmt.Sprintf("2024-01-%03d", i),
			}
		}

		f.meta.EXPECT().
			FetchAdInsights(req.AccessToken, req.AdAccountID, "last_7d").
			Return(insights, nil)
		f.meta.EXPECT().
			MapAdsToCreatives(req.AccessToken, []string{"ad_1"}).
			Return(map[string]string{"ad_1": "creative_1"}, nil)
		f.meta.EXPECT().
			ResolveCreatives(req.AccessToken, []string{"creative_1"}).
			Return(map[string]domain.CreativeRecord{"creative_1": {ID: "creative_1"}}, nil)

		f.creativeRepo.EXPECT().UpsertCreatives(gomock.Any()).Return(nil)
		f.creativeRepo.EXPECT().
			GetSurrogateKeysByPlatformIDs(gomock.Any()).
			Return(map[string]string{"creative_1": "uuid-1"}, nil)

		batches := make([]int, 0, 3)
		f.performanceRepo.EXPECT().
			UpsertPerformanceBatch(gomock.Any()).
			DoAndReturn(func(rows []domain.PerformanceRecord) error {
				batches = append(batches, len(rows))
				return nil
			}).
			Times(3)

		summary, err := f.service.SyncCreativeData(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []int{100, 100, 50}, batches)
		assert.Equal(t, 250, summary.PerformanceRows)
	})

	t.Run("falha no upsert da dimensão aborta antes da fato", func(t *testing.T) {
		f := newSyncFixture(t)
		req := syncRequest()

		insights := []metadomain.AdInsight{{AdID: "ad_1", DateStart: "2024-01-01"}}

		f.meta.EXPECT().
			FetchAdInsights(req.AccessToken, req.AdAccountID, "last_7d").
			Return(insights, nil)
		f.meta.EXPECT().
			MapAdsToCreatives(req.AccessToken, gomock.Any()).
			Return(map[string]string{"ad_1": "creative_1"}, nil)
		f.meta.EXPECT().
			ResolveCreatives(req.AccessToken, gomock.Any()).
			Return(map[string]domain.CreativeRecord{"creative_1": {ID: "creative_1"}}, nil)

		f.creativeRepo.EXPECT().UpsertCreatives(gomock.Any()).Return(assert.AnError)

		summary, err := f.service.SyncCreativeData(context.Background(), req)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, summary)
	})
}
