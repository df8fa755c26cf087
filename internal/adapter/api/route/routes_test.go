package route

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/lojista-x/internal/adapter/api/controller"
	"github.com/hugohenrick/lojista-x/internal/adapter/repository/memory"
	"github.com/hugohenrick/lojista-x/internal/config"
	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/checkout"
	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/auth"
	"github.com/hugohenrick/lojista-x/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	last    checkout.Request
	err     error
	session *checkout.Session
}

func (p *fakeProvider) CreateSession(_ context.Context, req checkout.Request) (*checkout.Session, error) {
	p.last = req
	if p.err != nil {
		return nil, p.err
	}
	if p.session != nil {
		return p.session, nil
	}
	return &checkout.Session{ID: "cs_test_123", URL: "https://checkout.stripe.com/c/pay/cs_test_123"}, nil
}

type checkoutCounter struct {
	results []string
}

func (c *checkoutCounter) RecordCheckout(result string) {
	c.results = append(c.results, result)
}

type testServer struct {
	router   *gin.Engine
	provider *fakeProvider
	counter  *checkoutCounter
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService, err := auth.NewJWTService(config.JWTConfig{
		SecretKey:  "segredo-de-teste",
		Expiration: time.Hour,
		Issuer:     "lojista-x",
	})
	require.NoError(t, err)

	log := logger.NewNop()
	services := service.New(service.Deps{Store: memory.NewStore(), Logger: log}, jwtService)

	ts := &testServer{
		router:   gin.New(),
		provider: &fakeProvider{},
		counter:  &checkoutCounter{},
	}

	SetupRoutes(ts.router, Controllers{
		Auth:      controller.NewAuthController(services.Auth, services.Accounts, log),
		Account:   controller.NewAccountController(services.Accounts, config.StripeConfig{ProProductID: "prod_TRS7wtfsgEcyYI"}, log),
		Product:   controller.NewProductController(services.Products, log),
		Customer:  controller.NewCustomerController(services.Customers, log),
		Sale:      controller.NewSaleController(services.Sales, log),
		Employee:  controller.NewEmployeeController(services.Employees, log),
		Expense:   controller.NewExpenseController(services.Expenses, log),
		Dashboard: controller.NewDashboardController(services.Dashboard, log),
		Checkout:  controller.NewCheckoutController(ts.provider, "http://localhost:3000", ts.counter, log),
	}, auth.JWTAuthMiddleware(jwtService), func(c *gin.Context) { c.Next() })

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) signup(t *testing.T, email string) string {
	t.Helper()

	w := ts.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":             "Ana",
		"email":            email,
		"password":         "123456",
		"confirm_password": "123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/plans", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	plans := decode(t, w)["plans"].([]interface{})
	assert.Len(t, plans, 2)

	w = ts.do(t, http.MethodGet, "/api/v1/checkout/success", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/checkout/success?session_id=cs_1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/v1/products", "/api/v1/sales", "/api/v1/dashboard", "/api/v1/account", "/api/v1/auth/me"} {
		w := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := ts.do(t, http.MethodGet, "/api/v1/products", "token-invalido", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginWithWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.signup(t, "ana@gmail.com")

	w := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "ana@gmail.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "ana@gmail.com", "password": "123456"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductPlanLimit(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signup(t, "ana@gmail.com")

	for i := 1; i <= 10; i++ {
		w := ts.do(t, http.MethodPost, "/api/v1/products", token, gin.H{
			"name":           fmt.Sprintf("Produto %d", i),
			"category":       "Roupas",
			"quantity":       5,
			"purchase_price": 10,
			"sale_price":     25.5,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := ts.do(t, http.MethodPost, "/api/v1/products", token, gin.H{
		"name": "Produto 11", "category": "Roupas", "quantity": 1, "purchase_price": 1, "sale_price": 2,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Você atingiu o limite de 10 produtos no plano Free. Faça upgrade para o plano Pro!", body["message"])
	assert.Equal(t, "product", body["details"])

	w = ts.do(t, http.MethodGet, "/api/v1/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 10, decode(t, w)["total"])

	// Outra conta não enxerga os produtos
	other := ts.signup(t, "bia@gmail.com")
	w = ts.do(t, http.MethodGet, "/api/v1/products", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["total"])
}

func TestSaleFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signup(t, "ana@gmail.com")

	w := ts.do(t, http.MethodPost, "/api/v1/products", token, gin.H{
		"name": "Camiseta", "category": "Roupas", "quantity": 2, "purchase_price": 15, "sale_price": 35,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	productID := decode(t, w)["id"].(string)

	w = ts.do(t, http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": productID, "quantity": 5})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": productID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": "inexistente", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": productID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	sale := decode(t, w)
	assert.EqualValues(t, 35, sale["total_price"])
	assert.EqualValues(t, 20, sale["profit"])

	w = ts.do(t, http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": productID, "quantity": 1})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "sale", decode(t, w)["details"])

	w = ts.do(t, http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": productID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPut, "/api/v1/account/plan", token, gin.H{"plan": "pro"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do(t, http.MethodPost, "/api/v1/sales", token, gin.H{"product_id": productID, "quantity": 1})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/products/"+productID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["quantity"])
}

func TestCreateCheckoutSession(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session",
		bytes.NewBufferString(`{"priceId":"price_123","productId":"prod_TRS7wtfsgEcyYI"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://loja.example.com")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "cs_test_123", body["sessionId"])
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", body["url"])
	assert.Equal(t, "https://loja.example.com/sucesso?session_id={CHECKOUT_SESSION_ID}", ts.provider.last.SuccessURL)
	assert.Equal(t, "price_123", ts.provider.last.PriceID)
	assert.Equal(t, []string{"created"}, ts.counter.results)
}

func TestCreateCheckoutSessionFailures(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/create-checkout-session", "", gin.H{"productId": "prod_1"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, checkout.ErrMissingPriceID.Error(), decode(t, w)["error"])

	ts.provider.err = errors.New("No such price: 'price_x'")
	w = ts.do(t, http.MethodPost, "/api/create-checkout-session", "", gin.H{"priceId": "price_x"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "No such price: 'price_x'", decode(t, w)["error"])
	assert.Equal(t, "http://localhost:3000/planos", ts.provider.last.CancelURL)

	ts.provider.err = nil
	ts.provider.session = &checkout.Session{ID: "cs_sem_url"}
	w = ts.do(t, http.MethodPost, "/api/create-checkout-session", "", gin.H{"priceId": "price_123"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, checkout.ErrMissingSessionURL.Error(), decode(t, w)["error"])

	assert.Equal(t, []string{"failed", "failed", "failed"}, ts.counter.results)
}

func TestPasswordTooLongIsValidationError(t *testing.T) {
	ts := newTestServer(t)
	long := strings.Repeat("a", 80)

	w := ts.do(t, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name": "Ana", "email": "ana@gmail.com", "password": long, "confirm_password": long,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, account.ErrLongPassword.Error(), decode(t, w)["details"])

	token := ts.signup(t, "ana@gmail.com")
	w = ts.do(t, http.MethodPost, "/api/v1/employees", token, gin.H{
		"name": "Carlos", "email": "carlos@loja.com", "password": long,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, employee.ErrLongPassword.Error(), decode(t, w)["details"])
}
