package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado ou revogado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é token inválido; 460, 463 e 467 são subcódigos de sessão expirada
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsRateLimited cobre os limites de chamadas por app, por usuário e por conta de anúncio
func (e *ErrorResponse) IsRateLimited() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613, 80004:
		return true
	}
	return false
}

func (e *ErrorResponse) String() string {
	if e.Error.Message == "" {
		return ""
	}

	kind := ""
	switch {
	case e.IsTokenExpired():
		kind = " [token expired]"
	case e.IsRateLimited():
		kind = " [rate limited]"
	}

	return fmt.Sprintf("%s (code %d)%s", e.Error.Message, e.Error.Code, kind)
}
