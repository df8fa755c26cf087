package dto

import (
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/stats"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/format"
	"github.com/shopspring/decimal"
)

// ExpenseRequest representa a requisição de despesa
type ExpenseRequest struct {
	Title       string          `json:"title"`
	Category    string          `json:"category" example:"rent"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Date        string          `json:"date" example:"2024-01-05"`
	Description string          `json:"description"`
}

// ExpenseResponse representa a resposta de despesa
type ExpenseResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExpenseListResponse representa a lista de despesas
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoryTotalResponse representa o total de uma categoria de despesa
type CategoryTotalResponse struct {
	Category       string  `json:"category"`
	Label          string  `json:"label"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"total_formatted"`
}

// ExpenseSummaryResponse representa os totais de despesas
type ExpenseSummaryResponse struct {
	Count          int                     `json:"count"`
	Total          float64                 `json:"total"`
	TotalFormatted string                  `json:"total_formatted"`
	Month          float64                 `json:"month"`
	Year           float64                 `json:"year"`
	ByCategory     []CategoryTotalResponse `json:"by_category"`
}

// ToInput converte a requisição para a entrada do serviço
func (r ExpenseRequest) ToInput(loc *time.Location) (service.ExpenseInput, error) {
	date, err := ParseDate(r.Date, loc)
	if err != nil {
		return service.ExpenseInput{}, err
	}
	return service.ExpenseInput{
		Title:       r.Title,
		Category:    expense.Category(r.Category),
		Amount:      r.Amount,
		Date:        date,
		Description: r.Description,
	}, nil
}

// ToExpenseResponse converte uma despesa para a resposta
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Title:         e.Title,
		Category:      string(e.Category),
		CategoryLabel: e.Category.Label(),
		Amount:        money(e.Amount),
		Date:          e.Date,
		Description:   e.Description,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToExpenseListResponse converte uma lista de despesas
func ToExpenseListResponse(expenses []*expense.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ToExpenseResponse(e))
	}
	return ExpenseListResponse{Items: items, Total: len(items)}
}

// ToExpenseSummaryResponse converte o resumo de despesas
func ToExpenseSummaryResponse(s stats.ExpenseSummary) ExpenseSummaryResponse {
	byCategory := make([]CategoryTotalResponse, 0, len(s.ByCategory))
	for _, c := range s.ByCategory {
		byCategory = append(byCategory, CategoryTotalResponse{
			Category:       string(c.Category),
			Label:          c.Label,
			Total:          money(c.Total),
			TotalFormatted: format.Currency(c.Total),
		})
	}
	return ExpenseSummaryResponse{
		Count:          s.Count,
		Total:          money(s.Total),
		TotalFormatted: format.Currency(s.Total),
		Month:          money(s.Month),
		Year:           money(s.Year),
		ByCategory:     byCategory,
	}
}
