package promoteclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-promote-cli/internal/config"
)

// Client é a fronteira com a API do WB Promote. Retentativas, backoff e
// autenticação são responsabilidade deste cliente; quem chama vê apenas
// sucesso com valor ou falha da chamada inteira.
type Client interface {
	GetAdverts(ids []int64, statuses []int, paymentType string) (*wbdomain.AdvertsResponse, error)
	GetFullStats(ids []int64, beginDate, endDate string) ([]wbdomain.FullStatsItem, error)
	GetBudget(campaignID int64) (*wbdomain.BudgetResponse, error)
	GetKeywordStats(request *wbdomain.KeywordStatsRequest) (*wbdomain.KeywordStatsResponse, error)
	GetMinBids(request *wbdomain.MinBidsRequest) (*wbdomain.MinBidsResponse, error)
	PatchBids(request *wbdomain.BidsPatchRequest) (any, error)
	DepositBudget(campaignID int64, amountKopecks int64) (any, error)
}

type WBClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &WBClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.WB.TimeoutSeconds) * time.Second,
		},
	}
}

// doJSON executa uma chamada à API com retentativa limitada e backoff para
// respostas 429/5xx. out pode ser nil para endpoints sem corpo de resposta.
func (c *WBClient) doJSON(method, path string, query url.Values, body any, out any) error {
	endpoint := c.Cfg.WB.BaseURL + path
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		payload = encoded
	}

	maxAttempts := c.Cfg.WB.MaxRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	delay := time.Duration(c.Cfg.WB.RetryDelaySeconds) * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			logrus.WithFields(logrus.Fields{
				"endpoint": path,
				"attempt":  attempt,
			}).Warn("promote: retrying API call")
			time.Sleep(delay)
			delay *= 2
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequest(method, endpoint, reader)
		if err != nil {
			return errors.Wrap(err, "erro ao criar a requisição")
		}
		req.Header.Set("Authorization", c.Cfg.WB.Token)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = errors.Wrap(err, "erro ao fazer a requisição")
			continue
		}

		responseBody, retryable, err := c.handleResponse(resp)
		if err != nil {
			lastErr = err
			if retryable {
				continue
			}
			return err
		}

		if out == nil || len(responseBody) == 0 {
			return nil
		}
		if err := json.Unmarshal(responseBody, out); err != nil {
			return errors.Wrapf(err, "erro ao decodificar JSON de %s", path)
		}
		return nil
	}

	return lastErr
}

// handleResponse lê o corpo e classifica o status: 2xx com corpo, 429/5xx
// retryable, demais status fatais
func (c *WBClient) handleResponse(resp *http.Response) ([]byte, bool, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao ler o corpo da resposta")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, false, nil
	}

	err = fmt.Errorf("WB Promote API: status %d: %s", resp.StatusCode, truncateBody(body))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, true, err
	}
	return nil, false, err
}

func truncateBody(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
