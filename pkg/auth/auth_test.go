package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(config.JWTConfig{SecretKey: "segredo", Expiration: time.Hour, Issuer: "lojista-x"})
	require.NoError(t, err)
	return svc
}

func testAccount() *account.Account {
	return &account.Account{ID: "acc-1", Name: "Ana", Email: "ana@gmail.com", Role: account.RoleOwner}
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(config.JWTConfig{})
	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newService(t)
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	token, expiresAt, err := svc.GenerateToken(testAccount())
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "ana@gmail.com", claims.Email)
	assert.Equal(t, "owner", claims.Role)

	t.Run("token expirado", func(t *testing.T) {
		svc.now = func() time.Time { return now.Add(2 * time.Hour) }
		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinatura com outra chave", func(t *testing.T) {
		other, err := NewJWTService(config.JWTConfig{SecretKey: "outra"})
		require.NoError(t, err)
		other.now = func() time.Time { return now }
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newService(t)
	token, _, err := svc.GenerateToken(testAccount())
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", JWTAuthMiddleware(svc), func(c *gin.Context) {
		user := GetCurrentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"account_id": GetAccountID(c),
			"from_ctx":   AccountIDFromContext(c.Request.Context()),
			"email":      user.Email,
		})
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"sem cabeçalho", "", http.StatusUnauthorized},
		{"formato inválido", "Token " + token, http.StatusUnauthorized},
		{"token inválido", "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"token válido", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.JSONEq(t, `{"account_id":"acc-1","from_ctx":"acc-1","email":"ana@gmail.com"}`, w.Body.String())
			}
		})
	}
}
