package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hugohenrick/lojista-x/internal/adapter/repository/memory"
	"github.com/hugohenrick/lojista-x/internal/domain/account"
	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/employee"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/plan"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct{}

func (fakeTokens) GenerateToken(a *account.Account) (string, time.Time, error) {
	return "token-" + a.ID, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

type recorder struct {
	sales   int
	denials []string
}

func (r *recorder) RecordSale(float64)           { r.sales++ }
func (r *recorder) RecordPlanDenial(kind string) { r.denials = append(r.denials, kind) }

type fixture struct {
	svc       *Services
	store     *memory.Store
	rec       *recorder
	now       time.Time
	accountID string
}

func newFixture(t *testing.T, planType plan.Type) *fixture {
	t.Helper()
	f := &fixture{
		store: memory.NewStore(),
		rec:   &recorder{},
		now:   time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
	}
	f.svc = New(Deps{
		Store:    f.store,
		Now:      func() time.Time { return f.now },
		Recorder: f.rec,
	}, fakeTokens{})

	a, err := account.NewAccount("Ana", "ana@gmail.com", "123456", "123456", f.now)
	require.NoError(t, err)
	require.NoError(t, a.ChangePlan(planType, f.now))
	require.NoError(t, f.store.Accounts().Create(context.Background(), a))
	f.accountID = a.ID
	return f
}

func productInput(name string, qty int, purchase, salePrice int64) ProductInput {
	return ProductInput{
		Name:          name,
		Category:      "Vestuário",
		Quantity:      qty,
		PurchasePrice: decimal.NewFromInt(purchase),
		SalePrice:     decimal.NewFromInt(salePrice),
	}
}

func TestRegisterSaleScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypeFree)

	p, err := f.svc.Products.Create(ctx, f.accountID, productInput("Camiseta Básica", 10, 15, 35))
	require.NoError(t, err)
	c, err := f.svc.Customers.Create(ctx, f.accountID, CustomerInput{Name: "João Silva", Phone: "(11) 98765-4321", Address: "Rua das Flores, 123"})
	require.NoError(t, err)

	s, err := f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, CustomerID: c.ID, Quantity: 3})
	require.NoError(t, err)

	assert.True(t, s.TotalPrice.Equal(decimal.NewFromInt(105)))
	assert.True(t, s.Profit.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, f.accountID, s.SellerID)
	assert.Equal(t, sale.OwnerSellerName, s.SellerName)
	assert.Equal(t, f.now, s.Date)

	stored, err := f.svc.Products.Get(ctx, f.accountID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Quantity)

	buyer, err := f.svc.Customers.Get(ctx, f.accountID, c.ID)
	require.NoError(t, err)
	assert.True(t, buyer.TotalSpent.Equal(decimal.NewFromInt(105)))
	require.NotNil(t, buyer.LastPurchaseAt)

	history, err := f.svc.Customers.Purchases(ctx, f.accountID, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, s.ID, history[0].ID)
	assert.Equal(t, 1, f.rec.sales)
}

func TestRegisterSaleRejectsInsufficientStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypePro)

	p, err := f.svc.Products.Create(ctx, f.accountID, productInput("Tênis", 2, 80, 200))
	require.NoError(t, err)

	_, err = f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, Quantity: 3})
	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	stored, err := f.svc.Products.Get(ctx, f.accountID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)

	sales, err := f.svc.Sales.List(ctx, f.accountID, "")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestRegisterSaleFreePlanDailyLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypeFree)

	p, err := f.svc.Products.Create(ctx, f.accountID, productInput("Camiseta", 10, 15, 35))
	require.NoError(t, err)

	_, err = f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	t.Run("segunda venda no mesmo dia é bloqueada antes do estoque", func(t *testing.T) {
		_, err := f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, Quantity: 100})

		var limitErr *plan.LimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, plan.KindSale, limitErr.Kind)
		assert.Equal(t, []string{"sale"}, f.rec.denials)

		stored, err := f.svc.Products.Get(ctx, f.accountID, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 9, stored.Quantity)
	})

	t.Run("quantidade inválida é rejeitada antes do limite", func(t *testing.T) {
		before := len(f.rec.denials)
		_, err := f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, Quantity: 0})
		assert.ErrorIs(t, err, sale.ErrInvalidQuantity)
		assert.Len(t, f.rec.denials, before)
	})

	t.Run("no dia seguinte a venda é permitida", func(t *testing.T) {
		f.now = f.now.AddDate(0, 0, 1)
		_, err := f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, Quantity: 1})
		assert.NoError(t, err)
	})
}

func TestRegisterSaleWithSellerAndUnknownReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypePro)

	p, err := f.svc.Products.Create(ctx, f.accountID, productInput("Calça", 30, 45, 120))
	require.NoError(t, err)
	e, err := f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Carlos Vendedor", Email: "carlos@loja.com", Password: "123456"})
	require.NoError(t, err)

	s, err := f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, EmployeeID: e.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, e.ID, s.SellerID)
	assert.Equal(t, "Carlos Vendedor", s.SellerName)
	assert.False(t, s.HasCustomer())

	_, err = f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, product.ErrNotFound)

	_, err = f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, CustomerID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, customer.ErrNotFound)

	stored, err := f.svc.Products.Get(ctx, f.accountID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 28, stored.Quantity)
}

func TestProductFreePlanLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypeFree)

	for i := 0; i < 10; i++ {
		_, err := f.svc.Products.Create(ctx, f.accountID, productInput("Produto", 1, 1, 2))
		require.NoError(t, err)
	}

	_, err := f.svc.Products.Create(ctx, f.accountID, productInput("Décimo primeiro", 1, 1, 2))
	assert.ErrorIs(t, err, plan.ErrLimitReached)
	assert.Equal(t, "Você atingiu o limite de 10 produtos no plano Free. Faça upgrade para o plano Pro!", err.Error())

	list, err := f.svc.Products.List(ctx, f.accountID, "")
	require.NoError(t, err)
	assert.Len(t, list, 10)

	t.Run("edições não são bloqueadas", func(t *testing.T) {
		_, err := f.svc.Products.Update(ctx, f.accountID, list[0].ID, productInput("Editado", 5, 1, 3))
		assert.NoError(t, err)
	})

	t.Run("após o upgrade a criação é liberada", func(t *testing.T) {
		_, err := f.svc.Accounts.ChangePlan(ctx, f.accountID, plan.TypePro)
		require.NoError(t, err)
		_, err = f.svc.Products.Create(ctx, f.accountID, productInput("Décimo primeiro", 1, 1, 2))
		assert.NoError(t, err)
	})
}

func TestEmployeeFreePlanLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypeFree)

	first, err := f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Carlos", Email: "carlos@loja.com", Password: "123456"})
	require.NoError(t, err)

	_, err = f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Bia", Email: "bia@loja.com", Password: "123456"})
	assert.ErrorIs(t, err, plan.ErrLimitReached)

	list, err := f.svc.Employees.List(ctx, f.accountID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestEmployeeDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypePro)

	carlos, err := f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Carlos", Email: "carlos@loja.com", Password: "123456"})
	require.NoError(t, err)
	bia, err := f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Bia", Email: "bia@loja.com", Password: "123456"})
	require.NoError(t, err)

	_, err = f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Outro", Email: "Carlos@Loja.com", Password: "123456"})
	assert.ErrorIs(t, err, employee.ErrDuplicateEmail)

	_, err = f.svc.Employees.Update(ctx, f.accountID, bia.ID, EmployeeInput{Name: "Bia", Email: "carlos@loja.com"})
	assert.ErrorIs(t, err, employee.ErrDuplicateEmail)

	updated, err := f.svc.Employees.Update(ctx, f.accountID, carlos.ID, EmployeeInput{Name: "Carlos Souza", Email: "carlos@loja.com"})
	require.NoError(t, err)
	assert.Equal(t, "Carlos Souza", updated.Name)
	assert.True(t, updated.CheckPassword("123456"))

	updated, err = f.svc.Employees.Update(ctx, f.accountID, carlos.ID, EmployeeInput{Name: "Carlos Souza", Email: "carlos@loja.com", Password: "nova-senha"})
	require.NoError(t, err)
	assert.True(t, updated.CheckPassword("nova-senha"))

	stored, err := f.svc.Employees.Get(ctx, f.accountID, carlos.ID)
	require.NoError(t, err)
	assert.True(t, stored.CheckPassword("nova-senha"))
}

func TestEmployeePasswordTooLong(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypePro)
	long := strings.Repeat("a", 80)

	_, err := f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Carlos", Email: "carlos@loja.com", Password: long})
	assert.ErrorIs(t, err, employee.ErrLongPassword)

	carlos, err := f.svc.Employees.Create(ctx, f.accountID, EmployeeInput{Name: "Carlos", Email: "carlos@loja.com", Password: "123456"})
	require.NoError(t, err)

	_, err = f.svc.Employees.Update(ctx, f.accountID, carlos.ID, EmployeeInput{Name: "Carlos Souza", Email: "carlos@loja.com", Password: long})
	assert.ErrorIs(t, err, employee.ErrLongPassword)

	stored, err := f.svc.Employees.Get(ctx, f.accountID, carlos.ID)
	require.NoError(t, err)
	assert.Equal(t, "Carlos", stored.Name)
	assert.True(t, stored.CheckPassword("123456"))
}

func TestEditRoundTripKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypePro)

	created, err := f.svc.Expenses.Create(ctx, f.accountID, ExpenseInput{
		Title:       "Aluguel Janeiro",
		Category:    expense.CategoryRent,
		Amount:      decimal.NewFromInt(2500),
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Description: "Aluguel da loja",
	})
	require.NoError(t, err)

	f.now = f.now.Add(time.Hour)
	_, err = f.svc.Expenses.Update(ctx, f.accountID, created.ID, ExpenseInput{
		Title:       "Aluguel Fevereiro",
		Category:    expense.CategoryRent,
		Amount:      decimal.NewFromInt(2600),
		Date:        time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Description: "Aluguel reajustado",
	})
	require.NoError(t, err)

	stored, err := f.svc.Expenses.Get(ctx, f.accountID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, created.CreatedAt, stored.CreatedAt)
	assert.Equal(t, "Aluguel Fevereiro", stored.Title)
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(2600)))
	assert.Equal(t, f.now, stored.UpdatedAt)
}

func TestAuthSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypeFree)

	res, err := f.svc.Auth.Signup(ctx, SignupInput{Name: "Bia", Email: "bia@gmail.com", Password: "segredo", ConfirmPassword: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, plan.TypeFree, res.Account.Plan)
	assert.Equal(t, "token-"+res.Account.ID, res.AccessToken)
	require.NotNil(t, res.Account.LastLoginAt)

	_, err = f.svc.Auth.Signup(ctx, SignupInput{Name: "Bia 2", Email: "BIA@gmail.com", Password: "segredo", ConfirmPassword: "segredo"})
	assert.ErrorIs(t, err, account.ErrDuplicateEmail)

	_, err = f.svc.Auth.Signup(ctx, SignupInput{Name: "Caio", Email: "caio@gmail.com", Password: "123", ConfirmPassword: "123"})
	assert.ErrorIs(t, err, account.ErrShortPassword)

	long := strings.Repeat("a", 80)
	_, err = f.svc.Auth.Signup(ctx, SignupInput{Name: "Caio", Email: "caio@gmail.com", Password: long, ConfirmPassword: long})
	assert.ErrorIs(t, err, account.ErrLongPassword)

	login, err := f.svc.Auth.Login(ctx, "bia@gmail.com", "segredo")
	require.NoError(t, err)
	assert.Equal(t, res.Account.ID, login.Account.ID)

	_, err = f.svc.Auth.Login(ctx, "bia@gmail.com", "errada")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)

	_, err = f.svc.Auth.Login(ctx, "ninguem@gmail.com", "segredo")
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestDashboardOverview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, plan.TypeFree)

	p, err := f.svc.Products.Create(ctx, f.accountID, productInput("Camiseta", 10, 15, 35))
	require.NoError(t, err)
	_, err = f.svc.Sales.Register(ctx, f.accountID, SaleInput{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)

	d, err := f.svc.Dashboard.Overview(ctx, f.accountID)
	require.NoError(t, err)

	assert.Equal(t, plan.TypeFree, d.Plan.Type)
	assert.Equal(t, 1, d.Daily.Count)
	assert.True(t, d.Daily.Revenue.Equal(decimal.NewFromInt(105)))
	require.Len(t, d.TopProducts, 1)
	assert.Equal(t, 3, d.TopProducts[0].Quantity)
	assert.Equal(t, 7, d.Inventory.Units)
	require.Len(t, d.RecentSales, 1)

	require.Len(t, d.Usage, 3)
	assert.Equal(t, plan.KindSale, d.Usage[1].Kind)
	assert.True(t, d.Usage[1].Reached)
}
