package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	accountIDKey contextKey = "account_id"

	// Chaves usadas no contexto do Gin
	ginAccountIDKey = "account_id"
	ginEmailKey     = "user_email"
	ginNameKey      = "user_name"
	ginRoleKey      = "user_role"
)

// SetAccountIDContext define o ID da conta no contexto
func SetAccountIDContext(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountIDFromContext obtém o ID da conta do contexto
func AccountIDFromContext(ctx context.Context) string {
	if accountID, ok := ctx.Value(accountIDKey).(string); ok {
		return accountID
	}
	return ""
}

// GetAccountID obtém o ID da conta autenticada de um contexto do Gin
func GetAccountID(c *gin.Context) string {
	if accountID := c.GetString(ginAccountIDKey); accountID != "" {
		return accountID
	}
	return AccountIDFromContext(c.Request.Context())
}

// CurrentUser reúne os dados do lojista autenticado
type CurrentUser struct {
	AccountID string
	Email     string
	Name      string
	Role      string
}

// GetCurrentUser obtém as informações do usuário atual do contexto
func GetCurrentUser(c *gin.Context) CurrentUser {
	return CurrentUser{
		AccountID: c.GetString(ginAccountIDKey),
		Email:     c.GetString(ginEmailKey),
		Name:      c.GetString(ginNameKey),
		Role:      c.GetString(ginRoleKey),
	}
}
