package metaclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
)

// Não dá para pedir creative_id no nível de insight; o vínculo com o
// criativo é resolvido depois, via busca em lote dos anúncios.
const insightFields = "ad_id,ad_name,adset_id,adset_name,campaign_id,campaign_name," +
	"spend,impressions,clicks,outbound_clicks,actions,action_values,date_start,date_stop"

type ResponseAdInsights struct {
	Data   []metadomain.AdInsight `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdInsightsByAccountID busca as métricas diárias no nível de anúncio para
// o preset de datas informado. O cursor de paginação da Graph API não é
// estável durante janelas longas de processamento, então todas as páginas são
// materializadas em memória antes de retornar.
func (c *MetaClient) GetAdInsightsByAccountID(accessToken, accountID, datePreset string) ([]metadomain.AdInsight, error) {
	if !strings.HasPrefix(accountID, "act_") {
		accountID = "act_" + accountID
	}

	params := url.Values{}
	params.Add("level", "ad")
	params.Add("date_preset", datePreset)
	params.Add("time_increment", "1")
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.InsightPageLimit))
	params.Add("fields", insightFields)
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	insights := make([]metadomain.AdInsight, 0)
	page := 0

	for requestURL != "" {
		body, err := c.doRequest(requestURL)
		if err != nil {
			return nil, err
		}

		var response ResponseAdInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON de insights")
			return nil, err
		}

		insights = append(insights, response.Data...)
		requestURL = response.Paging.Next
		page++
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"pages":      page,
		"rows":       len(insights),
	}).Debug("insights: páginas de insights materializadas")

	return insights, nil
}
