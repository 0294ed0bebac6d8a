package metadomain

import (
	"errors"
	"fmt"
	"strings"
)

// Código 4 representa rate limit no nível de aplicação nas respostas da API do Meta
const rateLimitErrorCode = 4

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

// APIError é o erro tipado devolvido pelo metaclient quando a Graph API
// responde com o envelope de erro. Mantém o código para classificação.
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api error (code %d, http %d): %s", e.Details.Code, e.StatusCode, e.Details.Message)
}

// IsRateLimited verifica se o erro sinaliza rate limit da plataforma
func (e *APIError) IsRateLimited() bool {
	return e.Details.Code == rateLimitErrorCode ||
		strings.Contains(strings.ToLower(e.Details.Message), "rate limit")
}

// IsRateLimitError classifica um erro qualquer como sinal de rate limit.
// É o predicado usado pela política de retry dos lotes.
func IsRateLimitError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRateLimited()
	}
	return false
}
