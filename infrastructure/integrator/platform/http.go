package platform

import (
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewRestClient monta o cliente HTTP usado por todas as integrações
func NewRestClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetDebug(false).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client
}

// VendorMessage extrai a mensagem de erro do corpo da resposta do fornecedor
type VendorMessage func(body []byte) string

// HandleError converte respostas >399 em erro; sem isso a resposta com falha teria err nil.
// A mensagem do fornecedor é repassada como veio.
func HandleError(res *resty.Response, err error, extract VendorMessage) (*resty.Response, error) {
	if err != nil {
		return res, errors.Wrap(err, "request failed")
	}

	if res.IsError() {
		msg := ""
		if extract != nil {
			msg = extract(res.Body())
		}
		if msg == "" {
			msg = string(res.Body())
		}

		return res, errors.Errorf("%s %s (status: %d): %s", res.Request.Method, res.Request.URL, res.StatusCode(), msg)
	}

	return res, nil
}
