package syncing

import (
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync-api/internal/domain"
	"github.com/vfg2006/creative-sync-api/pkg/utils"
)

// Tipos de ação que contam como conversão (compra)
var conversionActionTypes = map[string]struct{}{
	"purchase":              {},
	"complete_registration": {},
	"lead":                  {},
}

const purchaseActionType = "purchase"

// Merge junta os insights com o mapa anúncio->criativo e com os detalhes dos
// criativos, produzindo as duas coleções planas do sync. Linhas cujo anúncio
// não tem criativo mapeado são descartadas em silêncio: é a consequência
// esperada de lotes perdidos nas etapas anteriores, não um erro. Os três
// insumos podem chegar parciais sem invalidar a execução.
func Merge(
	insights []metadomain.AdInsight,
	adToCreative map[string]string,
	creativeDetails map[string]domain.CreativeRecord,
) ([]domain.CreativeRecord, []domain.PerformanceRecord) {
	creatives := make([]domain.CreativeRecord, 0, len(creativeDetails))
	for _, creative := range creativeDetails {
		creatives = append(creatives, creative)
	}

	performance := make([]domain.PerformanceRecord, 0, len(insights))
	for i := range insights {
		row := &insights[i]
		if row.AdID == "" {
			continue
		}

		creativeID, ok := adToCreative[row.AdID]
		if !ok {
			continue
		}

		performance = append(performance, domain.PerformanceRecord{
			CreativeID:   creativeID,
			AdID:         row.AdID,
			AdName:       row.AdName,
			AdsetID:      row.AdsetID,
			AdsetName:    row.AdsetName,
			CampaignID:   row.CampaignID,
			CampaignName: row.CampaignName,
			Date:         row.DateStart,
			Spend:        utils.ToFloat(row.Spend, 0),
			Impressions:  utils.ToInt(row.Impressions, 0),
			Clicks:       utils.ToInt(row.Clicks, 0),
			LinkClicks:   utils.ToInt(row.OutboundClicks, 0),
			Purchases:    sumConversions(row.Actions),
			Revenue:      sumPurchaseValue(row.ActionValues),
		})
	}

	return creatives, performance
}

// sumConversions soma as ações de conversão; o value de cada ação é escalar
func sumConversions(actions []metadomain.Action) int {
	total := 0
	for _, action := range actions {
		if _, ok := conversionActionTypes[action.ActionType]; ok {
			total += utils.ToInt(action.Value, 0)
		}
	}
	return total
}

func sumPurchaseValue(actionValues []metadomain.Action) float64 {
	total := 0.0
	for _, action := range actionValues {
		if action.ActionType == purchaseActionType {
			total += utils.ToFloat(action.Value, 0)
		}
	}
	return total
}
