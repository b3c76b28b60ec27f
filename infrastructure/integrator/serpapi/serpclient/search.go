package serpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	serpapidomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

type organicResponse struct {
	OrganicResults []serpapidomain.OrganicResult `json:"organic_results"`
}

type localResponse struct {
	LocalResults []serpapidomain.LocalResult `json:"local_results"`
	AdsResults   []serpapidomain.LocalResult `json:"ads_results"`
}

type aiResponse struct {
	SearchMetadata *struct {
		Status string `json:"status"`
	} `json:"search_metadata"`
	Error      string                    `json:"error"`
	TextBlocks []serpapidomain.TextBlock `json:"text_blocks"`
}

// GetOrganicPage busca uma página de resultados orgânicos
func (c *SerpClient) GetOrganicPage(ctx context.Context, params PageParams) (*serpapidomain.OrganicPage, error) {
	body, err := c.doSearch(ctx, params)
	if err != nil {
		return nil, err
	}

	var response organicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta orgânica do SerpAPI")
		return nil, err
	}

	return &serpapidomain.OrganicPage{Results: response.OrganicResults}, nil
}

// GetLocalPage busca uma página de resultados locais. Quando o provedor não
// retorna local_results, ads_results é usado como fallback.
func (c *SerpClient) GetLocalPage(ctx context.Context, params PageParams) (*serpapidomain.LocalPage, error) {
	body, err := c.doSearch(ctx, params)
	if err != nil {
		return nil, err
	}

	var response localResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta local do SerpAPI")
		return nil, err
	}

	results := response.LocalResults
	if len(results) == 0 {
		results = response.AdsResults
	}

	return &serpapidomain.LocalPage{Results: results}, nil
}

// GetAIPage busca a resposta do modo IA para uma consulta
func (c *SerpClient) GetAIPage(ctx context.Context, query string) (*serpapidomain.AIPage, error) {
	values := url.Values{}
	values.Set("api_key", c.cfg.SerpAPI.APIKey)
	values.Set("engine", "google_ai_mode")
	values.Set("q", query)

	body, err := c.get(ctx, values)
	if err != nil {
		return nil, err
	}

	var response aiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta de IA do SerpAPI")
		return nil, err
	}

	if response.Error != "" {
		return nil, &serpapidomain.ProviderError{StatusCode: http.StatusOK, Message: response.Error}
	}

	if response.SearchMetadata == nil || response.SearchMetadata.Status != "Success" {
		return nil, &serpapidomain.ProviderError{StatusCode: http.StatusOK, Message: "resposta de IA sem status de sucesso"}
	}

	return &serpapidomain.AIPage{TextBlocks: response.TextBlocks}, nil
}

func (c *SerpClient) doSearch(ctx context.Context, params PageParams) ([]byte, error) {
	values := url.Values{}
	values.Set("api_key", c.cfg.SerpAPI.APIKey)
	values.Set("q", params.Query)
	values.Set("engine", params.Engine)
	values.Set("google_domain", c.cfg.SerpAPI.GoogleDomain)
	values.Set("hl", c.cfg.SerpAPI.Language)
	values.Set("num", strconv.Itoa(params.Num))
	values.Set("start", strconv.Itoa(params.Start))
	values.Set("device", params.Device)

	if params.Location != "" {
		values.Set("location", params.Location)
	}

	return c.get(ctx, values)
}

func (c *SerpClient) get(ctx context.Context, values url.Values) ([]byte, error) {
	requestURL := c.cfg.SerpAPI.BaseURL + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição para o SerpAPI")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp serpapidomain.ErrorResponse
		message := resp.Status
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			message = errResp.Error
		}

		return nil, &serpapidomain.ProviderError{
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("Resposta do SerpAPI: %s", utils.PrettyJson(body))
	}

	return body, nil
}
