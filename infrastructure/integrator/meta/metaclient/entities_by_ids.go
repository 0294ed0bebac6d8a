package metaclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync-api/pkg/utils"
)

const (
	adFields       = "creative"
	creativeFields = "name,thumbnail_url,image_url,object_story_spec,body,title,call_to_action_type"
)

// GetAdsByIDs busca um lote de anúncios com a referência de criativo de cada um.
// A resposta da Graph API é um objeto indexado por ID.
func (c *MetaClient) GetAdsByIDs(accessToken string, ids []string) (map[string]metadomain.Ad, error) {
	body, err := c.getByIDs(accessToken, ids, adFields)
	if err != nil {
		return nil, err
	}

	ads := make(map[string]metadomain.Ad, len(ids))
	if err := json.Unmarshal(body, &ads); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do lote de anúncios")
		return nil, err
	}

	return ads, nil
}

// GetCreativesByIDs busca um lote de criativos com os campos de asset
// (nome, thumbnails, story spec, textos e CTA)
func (c *MetaClient) GetCreativesByIDs(accessToken string, ids []string) (map[string]metadomain.AdCreative, error) {
	body, err := c.getByIDs(accessToken, ids, creativeFields)
	if err != nil {
		return nil, err
	}

	creatives := make(map[string]metadomain.AdCreative, len(ids))
	if err := json.Unmarshal(body, &creatives); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do lote de criativos")
		return nil, err
	}

	return creatives, nil
}

func (c *MetaClient) getByIDs(accessToken string, ids []string, fields string) ([]byte, error) {
	params := url.Values{}
	params.Add("ids", strings.Join(ids, ","))
	params.Add("fields", fields)
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/?%s", c.Cfg.Meta.URL, params.Encode())

	body, err := c.doRequest(requestURL)
	if err != nil {
		return nil, err
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("Resposta da busca em lote (%d IDs): %s", len(ids), utils.PrettyJson(body))
	}

	return body, nil
}
