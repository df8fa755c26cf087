package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/dto"
	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/pkg/logger"
)

var notFoundErrors = []error{
	account.ErrNotFound,
	product.ErrNotFound,
	customer.ErrNotFound,
	sale.ErrNotFound,
	employee.ErrNotFound,
	expense.ErrNotFound,
}

var conflictErrors = []error{
	product.ErrInsufficientStock,
	employee.ErrDuplicateEmail,
	account.ErrDuplicateEmail,
}

var validationErrors = []error{
	account.ErrMissingFields,
	account.ErrInvalidEmail,
	account.ErrShortPassword,
	account.ErrLongPassword,
	account.ErrPasswordMismatch,
	product.ErrEmptyName,
	product.ErrEmptyCategory,
	product.ErrNegativeQuantity,
	product.ErrNegativePrice,
	product.ErrInvalidQuantity,
	customer.ErrEmptyName,
	customer.ErrEmptyPhone,
	customer.ErrEmptyAddress,
	customer.ErrInvalidAmount,
	sale.ErrInvalidQuantity,
	employee.ErrEmptyName,
	employee.ErrInvalidEmail,
	employee.ErrEmptyPassword,
	employee.ErrLongPassword,
	expense.ErrEmptyTitle,
	expense.ErrEmptyDescription,
	expense.ErrInvalidCategory,
	expense.ErrInvalidAmount,
	expense.ErrEmptyDate,
	dto.ErrInvalidDate,
	plan.ErrUnknownPlan,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor traduz um erro de domínio para o status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, plan.ErrLimitReached):
		return http.StatusForbidden
	case errors.Is(err, account.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case matchesAny(err, notFoundErrors):
		return http.StatusNotFound
	case matchesAny(err, conflictErrors):
		return http.StatusConflict
	case matchesAny(err, validationErrors):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError escreve a resposta de erro. Limites de plano levam a mensagem de upgrade
// e o recurso limitado; erros inesperados são registrados e não expõem detalhes.
func respondError(ctx *gin.Context, log logger.Logger, message string, err error) {
	status := statusFor(err)

	var limitErr *plan.LimitError
	switch {
	case errors.As(err, &limitErr):
		ctx.JSON(status, dto.NewErrorResponse(status, limitErr.Error(), string(limitErr.Kind)))
	case status == http.StatusInternalServerError:
		log.Error(message, "error", err, "path", ctx.FullPath())
		ctx.JSON(status, dto.NewErrorResponse(status, message, ""))
	default:
		ctx.JSON(status, dto.NewErrorResponse(status, message, err.Error()))
	}
}

func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return false
	}
	return true
}
