package metadomain

// Action representa uma entrada de ação da API do Meta ({action_type, value}).
// O value chega como string na maioria das contas, mas pode vir numérico.
type Action struct {
	ActionType string `json:"action_type"`
	Value      any    `json:"value"`
}

// AdInsight é uma linha de métricas diárias de um anúncio (level=ad, time_increment=1).
// Os campos numéricos ficam sem tipo porque a API alterna entre escalar,
// string e lista de ações para a mesma métrica; a normalização acontece
// apenas no merge, via utils.ToInt/ToFloat.
type AdInsight struct {
	AdID           string   `json:"ad_id"`
	AdName         string   `json:"ad_name"`
	AdsetID        string   `json:"adset_id"`
	AdsetName      string   `json:"adset_name"`
	CampaignID     string   `json:"campaign_id"`
	CampaignName   string   `json:"campaign_name"`
	Spend          any      `json:"spend"`
	Impressions    any      `json:"impressions"`
	Clicks         any      `json:"clicks"`
	OutboundClicks any      `json:"outbound_clicks"`
	Actions        []Action `json:"actions"`
	ActionValues   []Action `json:"action_values"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// UniqueAdIDs extrai os IDs de anúncio distintos de um conjunto de insights
func UniqueAdIDs(insights []AdInsight) []string {
	seen := make(map[string]struct{}, len(insights))
	ids := make([]string, 0, len(insights))

	for i := range insights {
		id := insights[i].AdID
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}
