package metaclient

import (
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/creative-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-sync-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdInsightsByAccountID(accessToken, accountID, datePreset string) ([]metadomain.AdInsight, error)
	GetAdsByIDs(accessToken string, ids []string) (map[string]metadomain.Ad, error)
	GetCreativesByIDs(accessToken string, ids []string) (map[string]metadomain.AdCreative, error)
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
	}
}

// doRequest executa uma requisição GET e devolve o corpo já validado
func (c *MetaClient) doRequest(requestURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e converte o envelope de erro da Graph API em
// um APIError tipado, para que o chamador consiga classificar rate limits
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return nil, fmt.Errorf("resposta inesperada da API do Meta (http %d): %s", resp.StatusCode, string(body))
	}

	return nil, &metadomain.APIError{
		StatusCode: resp.StatusCode,
		Details:    errResp.Error,
	}
}
