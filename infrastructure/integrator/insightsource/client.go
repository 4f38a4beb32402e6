package insightsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fala com a API da fonte de insights.
type Client interface {
	GetMarketingData(ctx context.Context) (*domain.MarketingData, []byte, error)
}

type HTTPClient struct {
	Cfg  *config.Config
	http *http.Client
}

// NewClient cria o cliente HTTP da fonte de insights com o timeout da
// configuração.
func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.InsightSource.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPClient{
		Cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// GetMarketingData busca o dataset completo de marketing. Retorna o snapshot
// decodificado e o payload bruto, usado para o hash de conteúdo. Não há
// retry: uma falha é propagada como um único erro legível.
func (c *HTTPClient) GetMarketingData(ctx context.Context) (*domain.MarketingData, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Cfg.InsightSource.URL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para a fonte de insights")
		return nil, nil, errors.Wrap(err, "criando requisição para a fonte de insights")
	}

	if c.Cfg.InsightSource.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.Cfg.InsightSource.AccessToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição para a fonte de insights")
		return nil, nil, errors.Wrap(err, "buscando dados de marketing")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fonte de insights retornou status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "lendo resposta da fonte de insights")
	}

	var data domain.MarketingData
	if err := json.Unmarshal(body, &data); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da fonte de insights")
		return nil, nil, errors.Wrap(err, "decodificando dados de marketing")
	}

	return &data, body, nil
}
