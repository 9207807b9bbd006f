package pinterestclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	pinterestdomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/pinterest/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
	"github.com/vfg2006/ad-ops-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pageSize = 250
	maxPages = 200

	analyticsColumns = "SPEND_IN_MICRO_DOLLAR,IMPRESSION_1,CLICKTHROUGH_1,CTR,CPC_IN_MICRO_DOLLAR,CPM_IN_MICRO_DOLLAR,TOTAL_CONVERSIONS,TOTAL_CHECKOUT_VALUE_IN_MICRO_DOLLAR,SAVE_1,ENGAGEMENT_1"
)

type Client interface {
	GetAdAccount(ctx context.Context, token, accountID string) (*pinterestdomain.AdAccount, error)
	GetCampaigns(ctx context.Context, token, accountID string) ([]pinterestdomain.Campaign, error)
	GetAdGroups(ctx context.Context, token, accountID string) ([]pinterestdomain.AdGroup, error)
	GetAdGroupAnalytics(ctx context.Context, token, accountID string, adGroupIDs []string, window domain.DateWindow) ([]pinterestdomain.AdGroupAnalytics, error)
	UpdateAdGroupStatus(ctx context.Context, token, accountID, adGroupID, status string) error
}

type PinterestClient struct {
	httpClient *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &PinterestClient{
		httpClient: platform.NewRestClient(baseURL, timeout),
	}
}

func (c *PinterestClient) req(ctx context.Context, token, accountID string, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetAuthToken(token).
		SetPathParam("accountID", accountID)

	if result != nil {
		request.SetResult(result)
	}

	return request
}

func (c *PinterestClient) GetAdAccount(ctx context.Context, token, accountID string) (*pinterestdomain.AdAccount, error) {
	result := &pinterestdomain.AdAccount{}

	if _, err := handleError(c.req(ctx, token, accountID, result).Get("/ad_accounts/{accountID}")); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *PinterestClient) GetCampaigns(ctx context.Context, token, accountID string) ([]pinterestdomain.Campaign, error) {
	campaigns := make([]pinterestdomain.Campaign, 0)
	bookmark := ""

	for page := 0; page < maxPages; page++ {
		result := &pinterestdomain.CampaignsPage{}

		request := c.req(ctx, token, accountID, result).
			SetQueryParam("page_size", strconv.Itoa(pageSize))
		if bookmark != "" {
			request.SetQueryParam("bookmark", bookmark)
		}

		if _, err := handleError(request.Get("/ad_accounts/{accountID}/campaigns")); err != nil {
			return nil, errors.Wrap(err, "failed to list campaigns")
		}

		campaigns = append(campaigns, result.Items...)

		if result.Bookmark == nil || *result.Bookmark == "" {
			break
		}
		bookmark = *result.Bookmark
	}

	return campaigns, nil
}

func (c *PinterestClient) GetAdGroups(ctx context.Context, token, accountID string) ([]pinterestdomain.AdGroup, error) {
	groups := make([]pinterestdomain.AdGroup, 0)
	bookmark := ""

	for page := 0; page < maxPages; page++ {
		result := &pinterestdomain.AdGroupsPage{}

		request := c.req(ctx, token, accountID, result).
			SetQueryParam("page_size", strconv.Itoa(pageSize))
		if bookmark != "" {
			request.SetQueryParam("bookmark", bookmark)
		}

		if _, err := handleError(request.Get("/ad_accounts/{accountID}/ad_groups")); err != nil {
			return nil, errors.Wrap(err, "failed to list ad groups")
		}

		groups = append(groups, result.Items...)

		if result.Bookmark == nil || *result.Bookmark == "" {
			break
		}
		bookmark = *result.Bookmark
	}

	return groups, nil
}

func (c *PinterestClient) GetAdGroupAnalytics(ctx context.Context, token, accountID string, adGroupIDs []string, window domain.DateWindow) ([]pinterestdomain.AdGroupAnalytics, error) {
	result := make([]pinterestdomain.AdGroupAnalytics, 0, len(adGroupIDs))

	_, err := handleError(c.req(ctx, token, accountID, &result).
		SetQueryParams(map[string]string{
			"start_date":   window.StartDate(),
			"end_date":     window.EndDate(),
			"ad_group_ids": strings.Join(adGroupIDs, ","),
			"columns":      analyticsColumns,
			"granularity":  "TOTAL",
		}).
		Get("/ad_accounts/{accountID}/ad_groups/analytics"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get ad group analytics")
	}

	return result, nil
}

func (c *PinterestClient) UpdateAdGroupStatus(ctx context.Context, token, accountID, adGroupID, status string) error {
	result := &pinterestdomain.UpdateResponse{}

	_, err := handleError(c.req(ctx, token, accountID, result).
		SetBody([]pinterestdomain.AdGroupStatusUpdate{{ID: adGroupID, Status: status}}).
		Patch("/ad_accounts/{accountID}/ad_groups"))
	if err != nil {
		return err
	}

	for _, item := range result.Items {
		if len(item.Exceptions) > 0 {
			ex := item.Exceptions[0]
			return fmt.Errorf("%s (code %d)", ex.Message, ex.Code)
		}
	}

	if len(result.Items) == 0 {
		return fmt.Errorf("pinterest did not confirm status change to %s for ad group %s", status, adGroupID)
	}

	return nil
}

func extractError(body []byte) string {
	var errResp pinterestdomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.String()
}

func handleError(res *resty.Response, err error) (*resty.Response, error) {
	return platform.HandleError(res, err, extractError)
}
