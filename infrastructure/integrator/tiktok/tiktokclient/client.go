package tiktokclient

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	tiktokdomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pageSize = 1000
	maxPages = 200
)

var reportMetrics = []string{
	"spend",
	"impressions",
	"clicks",
	"ctr",
	"cpc",
	"cpm",
	"reach",
	"conversion",
	"complete_payment",
	"value_per_complete_payment",
	"video_play_actions",
}

type Client interface {
	GetAdvertisers(ctx context.Context, token, advertiserID string) ([]tiktokdomain.Advertiser, error)
	GetCampaigns(ctx context.Context, token, advertiserID string) ([]tiktokdomain.Campaign, error)
	GetAdGroups(ctx context.Context, token, advertiserID string) ([]tiktokdomain.AdGroup, error)
	GetAds(ctx context.Context, token, advertiserID string) ([]tiktokdomain.Ad, error)
	GetAdReport(ctx context.Context, token, advertiserID string, adIDs []string, window domain.DateWindow) ([]tiktokdomain.ReportRow, error)
	UpdateAdStatus(ctx context.Context, token, advertiserID, adID, status string) error
}

type TikTokClient struct {
	httpClient *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &TikTokClient{
		httpClient: platform.NewRestClient(baseURL, timeout),
	}
}

func (c *TikTokClient) req(ctx context.Context, token string, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetHeader("Access-Token", token)

	if result != nil {
		request.SetResult(result)
	}

	return request
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func (c *TikTokClient) GetAdvertisers(ctx context.Context, token, advertiserID string) ([]tiktokdomain.Advertiser, error) {
	result := &tiktokdomain.Envelope[tiktokdomain.AdvertiserList]{}

	_, err := checkEnvelope(result)(c.req(ctx, token, result).
		SetQueryParam("advertiser_ids", mustJSON([]string{advertiserID})).
		Get("/advertiser/info/"))
	if err != nil {
		return nil, err
	}

	return result.Data.List, nil
}

// getPaged percorre page/total_page até a última página
func getPaged[T any](ctx context.Context, c *TikTokClient, token, path string, params map[string]string, collect func(*T) tiktokdomain.PageInfo) error {
	for page := 1; page <= maxPages; page++ {
		result := &tiktokdomain.Envelope[T]{}

		_, err := checkEnvelope(result)(c.req(ctx, token, result).
			SetQueryParams(params).
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("page_size", strconv.Itoa(pageSize)).
			Get(path))
		if err != nil {
			return err
		}

		if collect(&result.Data).TotalPage <= page {
			return nil
		}
	}

	return nil
}

func (c *TikTokClient) GetCampaigns(ctx context.Context, token, advertiserID string) ([]tiktokdomain.Campaign, error) {
	campaigns := make([]tiktokdomain.Campaign, 0)

	err := getPaged(ctx, c, token, "/campaign/get/", map[string]string{"advertiser_id": advertiserID},
		func(p *tiktokdomain.CampaignPage) tiktokdomain.PageInfo {
			campaigns = append(campaigns, p.List...)
			return p.PageInfo
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return campaigns, nil
}

func (c *TikTokClient) GetAdGroups(ctx context.Context, token, advertiserID string) ([]tiktokdomain.AdGroup, error) {
	groups := make([]tiktokdomain.AdGroup, 0)

	err := getPaged(ctx, c, token, "/adgroup/get/", map[string]string{"advertiser_id": advertiserID},
		func(p *tiktokdomain.AdGroupPage) tiktokdomain.PageInfo {
			groups = append(groups, p.List...)
			return p.PageInfo
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ad groups")
	}

	return groups, nil
}

func (c *TikTokClient) GetAds(ctx context.Context, token, advertiserID string) ([]tiktokdomain.Ad, error) {
	ads := make([]tiktokdomain.Ad, 0)

	err := getPaged(ctx, c, token, "/ad/get/", map[string]string{"advertiser_id": advertiserID},
		func(p *tiktokdomain.AdPage) tiktokdomain.PageInfo {
			ads = append(ads, p.List...)
			return p.PageInfo
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return ads, nil
}

func (c *TikTokClient) GetAdReport(ctx context.Context, token, advertiserID string, adIDs []string, window domain.DateWindow) ([]tiktokdomain.ReportRow, error) {
	rows := make([]tiktokdomain.ReportRow, 0, len(adIDs))

	params := map[string]string{
		"advertiser_id": advertiserID,
		"report_type":   "BASIC",
		"data_level":    "AUCTION_AD",
		"dimensions":    mustJSON([]string{"ad_id"}),
		"metrics":       mustJSON(reportMetrics),
		"start_date":    window.StartDate(),
		"end_date":      window.EndDate(),
		"filtering": mustJSON([]tiktokdomain.Filter{{
			FieldName:   "ad_ids",
			FilterType:  "IN",
			FilterValue: mustJSON(adIDs),
		}}),
	}

	err := getPaged(ctx, c, token, "/report/integrated/get/", params,
		func(p *tiktokdomain.ReportPage) tiktokdomain.PageInfo {
			rows = append(rows, p.List...)
			return p.PageInfo
		})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ad report")
	}

	return rows, nil
}

func (c *TikTokClient) UpdateAdStatus(ctx context.Context, token, advertiserID, adID, status string) error {
	result := &tiktokdomain.Envelope[tiktokdomain.StatusUpdateResult]{}

	_, err := checkEnvelope(result)(c.req(ctx, token, result).
		SetBody(tiktokdomain.StatusUpdateRequest{
			AdvertiserID:    advertiserID,
			AdIDs:           []string{adID},
			OperationStatus: status,
		}).
		Post("/ad/status/update/"))

	return err
}

func extractError(body []byte) string {
	var env tiktokdomain.Envelope[jsoniter.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}

// checkEnvelope trata falha HTTP e, depois, o code do envelope
func checkEnvelope[T any](env *tiktokdomain.Envelope[T]) func(*resty.Response, error) (*resty.Response, error) {
	return func(res *resty.Response, err error) (*resty.Response, error) {
		res, err = platform.HandleError(res, err, extractError)
		if err != nil {
			return res, err
		}

		if env.Code != 0 {
			return res, errors.Errorf("%s (code %d, request %s)", env.Message, env.Code, env.RequestID)
		}

		return res, nil
	}
}
