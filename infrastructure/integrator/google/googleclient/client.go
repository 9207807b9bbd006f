package googleclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	googledomain "github.com/vfg2006/ad-ops-api/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-ops-api/infrastructure/integrator/platform"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxPages = 200

type Client interface {
	ListAccessibleCustomers(ctx context.Context, token string) ([]string, error)
	Search(ctx context.Context, token, customerID, query string) ([]googledomain.SearchRow, error)
}

type ClientOpts struct {
	BaseURL string
	Version string
	// DeveloperToken é obrigatório em toda chamada da Google Ads API
	DeveloperToken string
	// LoginCustomerID é a conta gerenciadora (MCC) usada para acessar contas clientes
	LoginCustomerID string
	Timeout         time.Duration
}

type GoogleClient struct {
	httpClient *resty.Client
}

func NewClient(opts ClientOpts) Client {
	httpClient := platform.NewRestClient(fmt.Sprintf("%s/%s", strings.TrimSuffix(opts.BaseURL, "/"), opts.Version), opts.Timeout).
		SetHeader("developer-token", opts.DeveloperToken)

	if login := NormalizeCustomerID(opts.LoginCustomerID); login != "" {
		httpClient.SetHeader("login-customer-id", login)
	}

	return &GoogleClient{httpClient: httpClient}
}

// NormalizeCustomerID remove os traços do formato exibido na interface (123-456-7890)
func NormalizeCustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

func (c *GoogleClient) req(ctx context.Context, token string, result any) *resty.Request {
	request := c.httpClient.
		NewRequest().
		SetContext(ctx).
		SetAuthToken(token)

	if result != nil {
		request.SetResult(result)
	}

	return request
}

func (c *GoogleClient) ListAccessibleCustomers(ctx context.Context, token string) ([]string, error) {
	result := &googledomain.ListAccessibleCustomersResponse{}

	if _, err := handleError(c.req(ctx, token, result).Get("/customers:listAccessibleCustomers")); err != nil {
		return nil, err
	}

	return result.ResourceNames, nil
}

func (c *GoogleClient) Search(ctx context.Context, token, customerID, query string) ([]googledomain.SearchRow, error) {
	rows := make([]googledomain.SearchRow, 0)
	pageToken := ""

	for page := 0; page < maxPages; page++ {
		result := &googledomain.SearchResponse{}

		_, err := handleError(c.req(ctx, token, result).
			SetPathParam("customerID", NormalizeCustomerID(customerID)).
			SetBody(googledomain.SearchRequest{Query: query, PageToken: pageToken}).
			Post("/customers/{customerID}/googleAds:search"))
		if err != nil {
			return nil, errors.Wrap(err, "gaql search failed")
		}

		rows = append(rows, result.Results...)

		if result.NextPageToken == "" {
			break
		}
		pageToken = result.NextPageToken
	}

	return rows, nil
}

func extractError(body []byte) string {
	var errResp googledomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	return errResp.String()
}

func handleError(res *resty.Response, err error) (*resty.Response, error) {
	return platform.HandleError(res, err, extractError)
}
