package meta_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/creative-sync-api/internal/config"
	"go.uber.org/mock/gomock"
)

const testToken = "token-abc"

func newTestConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			EntityBatchSize:          50,
			RateLimitCooldownSeconds: 0,
		},
	}
}

func adIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("ad_%d", i)
	}
	return ids
}

func adsForChunk(chunk []string) map[string]metadomain.Ad {
	ads := make(map[string]metadomain.Ad, len(chunk))
	for _, id := range chunk {
		ads[id] = metadomain.Ad{
			ID:       id,
			Creative: &metadomain.CreativeRef{ID: "creative_" + id},
		}
	}
	return ads
}

func rateLimitError() error {
	return &metadomain.APIError{
		StatusCode: 400,
		Details:    metadomain.ErrorDetails{Code: 4, Message: "Application request limit reached"},
	}
}

func TestMapAdsToCreatives(t *testing.T) {
	t.Run("101 anúncios geram exatamente 3 chamadas em lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		ids := adIDs(101)
		client.EXPECT().
			GetAdsByIDs(testToken, gomock.Any()).
			DoAndReturn(func(_ string, chunk []string) (map[string]metadomain.Ad, error) {
				return adsForChunk(chunk), nil
			}).
			Times(3)

		mapping, err := integrator.MapAdsToCreatives(testToken, ids)

		require.NoError(t, err)
		assert.Len(t, mapping, 101)
		assert.Equal(t, "creative_ad_0", mapping["ad_0"])
		assert.Equal(t, "creative_ad_100", mapping["ad_100"])
	})

	t.Run("rate limit seguido de sucesso preserva o lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		ids := adIDs(2)
		gomock.InOrder(
			client.EXPECT().GetAdsByIDs(testToken, ids).Return(nil, rateLimitError()),
			client.EXPECT().GetAdsByIDs(testToken, ids).Return(adsForChunk(ids), nil),
		)

		mapping, err := integrator.MapAdsToCreatives(testToken, ids)

		require.NoError(t, err)
		assert.Len(t, mapping, 2)
	})

	t.Run("rate limit persistente descarta o lote sem abortar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		ids := adIDs(60)
		firstChunk, secondChunk := ids[:50], ids[50:]

		client.EXPECT().GetAdsByIDs(testToken, firstChunk).Return(nil, rateLimitError()).Times(2)
		client.EXPECT().GetAdsByIDs(testToken, secondChunk).Return(adsForChunk(secondChunk), nil)

		mapping, err := integrator.MapAdsToCreatives(testToken, ids)

		require.NoError(t, err)
		assert.Len(t, mapping, 10)
		assert.NotContains(t, mapping, "ad_0")
		assert.Equal(t, "creative_ad_50", mapping["ad_50"])
	})

	t.Run("erro que não é rate limit descarta o lote sem retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		ids := adIDs(2)
		client.EXPECT().GetAdsByIDs(testToken, ids).Return(nil, assert.AnError).Times(1)

		mapping, err := integrator.MapAdsToCreatives(testToken, ids)

		require.NoError(t, err)
		assert.Empty(t, mapping)
	})

	t.Run("anúncio sem criativo fica fora do mapa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		ids := []string{"ad_1", "ad_2"}
		client.EXPECT().GetAdsByIDs(testToken, ids).Return(map[string]metadomain.Ad{
			"ad_1": {ID: "ad_1", Creative: &metadomain.CreativeRef{ID: "creative_1"}},
			"ad_2": {ID: "ad_2"},
		}, nil)

		mapping, err := integrator.MapAdsToCreatives(testToken, ids)

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"ad_1": "creative_1"}, mapping)
	})
}

func TestResolveCreatives(t *testing.T) {
	t.Run("criativo sem nome recebe o nome padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		ids := []string{"creative_1", "creative_2"}
		client.EXPECT().GetCreativesByIDs(testToken, ids).Return(map[string]metadomain.AdCreative{
			"creative_1": {
				ID:           "creative_1",
				Name:         "Video Verão",
				ThumbnailURL: "https://cdn/thumb.jpg",
				Body:         "Aproveite",
				Title:        "Promoção",
			},
			"creative_2": {ID: "creative_2"},
		}, nil)

		records, err := integrator.ResolveCreatives(testToken, ids)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Video Verão", records["creative_1"].Name)
		assert.Equal(t, "https://cdn/thumb.jpg", records["creative_1"].ThumbnailURL)
		assert.Equal(t, "meta", records["creative_1"].Platform)
		assert.Equal(t, "Unknown", records["creative_2"].Name)
	})

	t.Run("lote com falha persistente é descartado sem abortar os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		ids := make([]string, 51)
		for i := range ids {
			ids[i] = fmt.Sprintf("creative_%d", i)
		}
		firstChunk, secondChunk := ids[:50], ids[50:]

		client.EXPECT().GetCreativesByIDs(testToken, firstChunk).Return(nil, rateLimitError()).Times(2)
		client.EXPECT().GetCreativesByIDs(testToken, secondChunk).Return(map[string]metadomain.AdCreative{
			"creative_50": {ID: "creative_50", Name: "Banner"},
		}, nil)

		records, err := integrator.ResolveCreatives(testToken, ids)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Banner", records["creative_50"].Name)
	})
}

func TestFetchAdInsights(t *testing.T) {
	t.Run("erro da API sobe intocado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		client.EXPECT().
			GetAdInsightsByAccountID(testToken, "act_123", "last_3d").
			Return(nil, assert.AnError)

		insights, err := integrator.FetchAdInsights(testToken, "act_123", "last_3d")

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, insights)
	})

	t.Run("insights retornam na ordem da API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		integrator := meta.New(newTestConfig(), client)

		expected := []metadomain.AdInsight{
			{AdID: "ad_1", DateStart: "2024-01-01"},
			{AdID: "ad_1", DateStart: "2024-01-02"},
		}
		client.EXPECT().
			GetAdInsightsByAccountID(testToken, "act_123", "last_7d").
			Return(expected, nil)

		insights, err := integrator.FetchAdInsights(testToken, "act_123", "last_7d")

		require.NoError(t, err)
		assert.Equal(t, expected, insights)
	})
}
