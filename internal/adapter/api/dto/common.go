package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formatos aceitos para datas enviadas pelo cliente
const dateLayout = "2006-01-02"

// ErrInvalidDate indica data em formato não reconhecido
var ErrInvalidDate = errors.New("data inválida, use o formato AAAA-MM-DD")

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// ParseDate interpreta datas no formato AAAA-MM-DD (campo date de formulário) ou RFC3339
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
