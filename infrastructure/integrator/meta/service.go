package meta

import (
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/creative-sync-api/internal/config"
	"github.com/vfg2006/creative-sync-api/internal/domain"
	"github.com/vfg2006/creative-sync-api/pkg/utils"
)

// Nome padrão quando o criativo vem sem nome da API
const unknownCreativeName = "Unknown"

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAdInsights busca as linhas de performance diárias no nível de anúncio.
// Erros da API sobem intocados para o chamador; a paginação não é a
// superfície sujeita a rate limit e não recebe retry aqui.
func (s *MetaIntegrator) FetchAdInsights(accessToken, accountID, datePreset string) ([]metadomain.AdInsight, error) {
	insights, err := s.Client.GetAdInsightsByAccountID(accessToken, accountID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: falha ao buscar insights de anúncios na API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  accountID,
		"date_preset": datePreset,
		"rows":        len(insights),
	}).Info("insights: linhas de performance encontradas")

	return insights, nil
}

// MapAdsToCreatives resolve qual criativo cada anúncio usa, em lotes de
// tamanho fixo. Lotes que falham são descartados sem interromper os demais;
// anúncios sem criativo resolvível simplesmente ficam fora do mapa.
func (s *MetaIntegrator) MapAdsToCreatives(accessToken string, adIDs []string) (map[string]string, error) {
	mapping := make(map[string]string, len(adIDs))
	chunks := utils.ChunkStrings(adIDs, s.cfg.Meta.EntityBatchSize)

	for i, chunk := range chunks {
		logrus.WithFields(logrus.Fields{
			"batch": i + 1,
			"ads":   len(chunk),
		}).Debug("mapper: processando lote de anúncios")

		var ads map[string]metadomain.Ad
		err := s.callWithRateLimitRetry(func() error {
			var callErr error
			ads, callErr = s.Client.GetAdsByIDs(accessToken, chunk)
			return callErr
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"batch": i + 1,
				"error": err.Error(),
			}).Warn("mapper: lote de anúncios descartado")
			continue
		}

		for adID, ad := range ads {
			if ad.Creative != nil && ad.Creative.ID != "" {
				mapping[adID] = ad.Creative.ID
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"ads":    len(adIDs),
		"mapped": len(mapping),
	}).Info("mapper: anúncios mapeados para criativos")

	return mapping, nil
}

// ResolveCreatives busca os metadados e thumbnails de um conjunto de
// criativos, em lotes com a mesma política de retry do mapper. O último valor
// prevalece quando o mesmo ID aparece em mais de um lote.
func (s *MetaIntegrator) ResolveCreatives(accessToken string, creativeIDs []string) (map[string]domain.CreativeRecord, error) {
	records := make(map[string]domain.CreativeRecord, len(creativeIDs))
	chunks := utils.ChunkStrings(creativeIDs, s.cfg.Meta.EntityBatchSize)

	for i, chunk := range chunks {
		logrus.WithFields(logrus.Fields{
			"batch":     i + 1,
			"creatives": len(chunk),
		}).Debug("resolver: processando lote de criativos")

		var creatives map[string]metadomain.AdCreative
		err := s.callWithRateLimitRetry(func() error {
			var callErr error
			creatives, callErr = s.Client.GetCreativesByIDs(accessToken, chunk)
			return callErr
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"batch": i + 1,
				"error": err.Error(),
			}).Warn("resolver: lote de criativos descartado")
			continue
		}

		for id, creative := range creatives {
			records[id] = buildCreativeRecord(id, creative)
		}
	}

	logrus.WithFields(logrus.Fields{
		"creatives": len(creativeIDs),
		"resolved":  len(records),
	}).Info("resolver: criativos resolvidos")

	return records, nil
}

// callWithRateLimitRetry aplica a política de retry limitado: uma única nova
// tentativa após o cooldown fixo quando o erro sinaliza rate limit. Qualquer
// outro erro sobe direto para o chamador decidir.
func (s *MetaIntegrator) callWithRateLimitRetry(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}

	if !metadomain.IsRateLimitError(err) {
		return err
	}

	cooldown := time.Duration(s.cfg.Meta.RateLimitCooldownSeconds) * time.Second
	logrus.WithField("cooldown", cooldown.String()).Warn("Rate limit atingido, aguardando antes de repetir o lote")
	time.Sleep(cooldown)

	return fn()
}

func buildCreativeRecord(id string, creative metadomain.AdCreative) domain.CreativeRecord {
	name := creative.Name
	if name == "" {
		name = unknownCreativeName
	}

	return domain.CreativeRecord{
		ID:               id,
		Name:             name,
		ThumbnailURL:     creative.ResolveThumbnail(),
		Body:             creative.Body,
		Title:            creative.Title,
		CallToActionType: creative.CallToActionType,
		Platform:         domain.PlatformMeta,
	}
}
