package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-ops-api/internal/domain"
	"github.com/vfg2006/ad-ops-api/internal/usecases/adsync"
	"github.com/vfg2006/ad-ops-api/pkg/apiErrors"
	"github.com/vfg2006/ad-ops-api/pkg/log"
	"github.com/vfg2006/ad-ops-api/pkg/middleware"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = newValidator()
)

// requestError carrega o código e os detalhes de um corpo ou parâmetro inválido
type requestError struct {
	code    string
	message string
	details any
}

func (e *requestError) Error() string {
	return e.message
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// decodeJSONBody decodifica e valida o corpo da requisição
func decodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return &requestError{
			code:    apiErrors.ErrInvalidRequest,
			message: "Corpo da requisição inválido",
			details: map[string]any{"error": err.Error()},
		}
	}

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return &requestError{code: apiErrors.ErrInvalidRequest, message: err.Error()}
	}

	details := map[string]string{}
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = validationMessage(fieldErr)
	}

	return &requestError{
		code:    apiErrors.ErrMissingRequiredData,
		message: "Falha na validação",
		details: details,
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match %s", fe.Param())
	}
	return "is invalid"
}

// parseQueryInt lê um inteiro opcional da query dentro do intervalo informado
func parseQueryInt(r *http.Request, key string, defaultVal, minVal, maxVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &requestError{
			code:    apiErrors.ErrInvalidFormat,
			message: "Parâmetro de query deve ser numérico",
			details: map[string]any{"field": key},
		}
	}

	if value < minVal || value > maxVal {
		return 0, &requestError{
			code:    apiErrors.ErrInvalidFormat,
			message: "Parâmetro de query fora do intervalo",
			details: map[string]any{"field": key, "min": minVal, "max": maxVal},
		}
	}

	return value, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("erro ao codificar resposta")
	}
}

// writeError traduz erros dos casos de uso e das requisições para o formato da API
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		apiErrors.WriteError(w, reqErr.code, reqErr.message, reqErr.details)
		return
	}

	code := adsync.CodeOf(err)

	var syncErr *adsync.SyncError
	if errors.As(err, &syncErr) {
		if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error("erro ao processar requisição")
		}
		apiErrors.WriteError(w, code, syncErr.Error(), syncErr.Details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("erro inesperado ao processar requisição")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

// AccountOwnerFinder resolve o cliente dono de uma conta de anúncios
type AccountOwnerFinder interface {
	AccountOwner(ctx context.Context, accountID string) (string, error)
}

// authorizeAccount confere se o usuário autenticado pode operar sobre a conta.
// Escreve a resposta de erro e devolve false quando o acesso é negado.
func authorizeAccount(w http.ResponseWriter, r *http.Request, finder AccountOwnerFinder, accountID string) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return false
	}

	if claims.Role == domain.UserRoleAgency {
		return true
	}

	clientID, err := finder.AccountOwner(r.Context(), accountID)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	if !claims.CanAccessClient(clientID) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":    claims.UserID,
			"account_id": accountID,
		}).Warn("acesso negado à conta de anúncios")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Sem acesso a esta conta de anúncios", nil)
		return false
	}

	return true
}
