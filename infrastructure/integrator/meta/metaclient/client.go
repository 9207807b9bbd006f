package metaclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pageLimit = 500
	// Evita laço infinito caso a API devolva sempre o mesmo cursor
	maxPages = 200

	campaignFields = "id,name,objective,effective_status"
	adFields       = "id,name,effective_status,campaign_id,adset_id,adset{id,optimization_goal},creative{id,thumbnail_url}"
	insightFields  = "ad_id,ad_name,spend,impressions,clicks,ctr,cpc,cpm,reach,frequency,actions,action_values"
)

// Client fala com a Graph API; todas as chamadas recebem o token da conta
type Client interface {
	GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error)
	GetCampaigns(ctx context.Context, token, accountID string) ([]metadomain.Campaign, error)
	GetAds(ctx context.Context, token, accountID string) ([]metadomain.Ad, error)
	GetAdInsights(ctx context.Context, token, accountID string, adIDs []string, window domain.DateWindow) ([]metadomain.AdInsight, error)
	UpdateAdStatus(ctx context.Context, token, adID, status string) error
}

type MetaClient struct {
	httpClient *resty.Client
}

// NewClient recebe a URL já com a versão da API (ex.: https://graph.facebook.com/v22.0)
func NewClient(url string, timeout time.Duration) Client {
	return &MetaClient{
		httpClient: platform.NewRestClient(url, timeout),
	}
}

func (c *MetaClient) req(ctx context.Context, token string, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetAuthToken(token)

	if result != nil {
		request.SetResult(result)
	}

	return request
}

func actPath(accountID string) string {
	return "/act_" + strings.TrimPrefix(accountID, "act_")
}

func (c *MetaClient) GetAdAccount(ctx context.Context, token, accountID string) (*metadomain.AdAccount, error) {
	result := &metadomain.AdAccount{}

	_, err := handleError(c.req(ctx, token, result).
		SetQueryParam("fields", "id,account_id,name,account_status,currency").
		Get(actPath(accountID)))
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *MetaClient) GetCampaigns(ctx context.Context, token, accountID string) ([]metadomain.Campaign, error) {
	campaigns := make([]metadomain.Campaign, 0)

	next := actPath(accountID) + "/campaigns"
	params := map[string]string{
		"fields": campaignFields,
		"limit":  strconv.Itoa(pageLimit),
	}

	for page := 0; next != "" && page < maxPages; page++ {
		response := &metadomain.CampaignsResponse{}

		request := c.req(ctx, token, response)
		if page == 0 {
			request.SetQueryParams(params)
		}

		if _, err := handleError(request.Get(next)); err != nil {
			return nil, errors.Wrap(err, "failed to list campaigns")
		}

		campaigns = append(campaigns, response.Data...)
		next = response.Paging.Next
	}

	return campaigns, nil
}

func (c *MetaClient) GetAds(ctx context.Context, token, accountID string) ([]metadomain.Ad, error) {
	ads := make([]metadomain.Ad, 0)

	next := actPath(accountID) + "/ads"
	params := map[string]string{
		"fields": adFields,
		"limit":  strconv.Itoa(pageLimit),
	}

	for page := 0; next != "" && page < maxPages; page++ {
		response := &metadomain.AdsResponse{}

		request := c.req(ctx, token, response)
		if page == 0 {
			request.SetQueryParams(params)
		}

		if _, err := handleError(request.Get(next)); err != nil {
			return nil, errors.Wrap(err, "failed to list ads")
		}

		ads = append(ads, response.Data...)
		next = response.Paging.Next
	}

	return ads, nil
}

type insightFilter struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

type timeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

func (c *MetaClient) GetAdInsights(ctx context.Context, token, accountID string, adIDs []string, window domain.DateWindow) ([]metadomain.AdInsight, error) {
	filtering, err := json.Marshal([]insightFilter{{Field: "ad.id", Operator: "IN", Value: adIDs}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode filtering")
	}

	tr, err := json.Marshal(timeRange{Since: window.StartDate(), Until: window.EndDate()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode time_range")
	}

	insights := make([]metadomain.AdInsight, 0, len(adIDs))

	next := actPath(accountID) + "/insights"
	params := map[string]string{
		"level":      "ad",
		"fields":     insightFields,
		"filtering":  string(filtering),
		"time_range": string(tr),
		"limit":      strconv.Itoa(pageLimit),
	}

	for page := 0; next != "" && page < maxPages; page++ {
		response := &metadomain.InsightsResponse{}

		request := c.req(ctx, token, response)
		if page == 0 {
			request.SetQueryParams(params)
		}

		if _, err := handleError(request.Get(next)); err != nil {
			return nil, errors.Wrap(err, "failed to get ad insights")
		}

		insights = append(insights, response.Data...)
		next = response.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"requested":  len(adIDs),
		"returned":   len(insights),
	}).Debug("meta: insights fetched")

	return insights, nil
}

func (c *MetaClient) UpdateAdStatus(ctx context.Context, token, adID, status string) error {
	result := &metadomain.StatusUpdateResponse{}

	_, err := handleError(c.req(ctx, token, result).
		SetFormData(map[string]string{"status": status}).
		Post("/" + adID))
	if err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("meta did not confirm status change to %s for ad %s", status, adID)
	}

	return nil
}

func extractError(body []byte) string {
	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.String()
}

func handleError(res *resty.Response, err error) (*resty.Response, error) {
	return platform.HandleError(res, err, extractError)
}
