package dto

import (
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/internal/domain/stats"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/format"
)

// SaleRequest representa o registro de uma venda
type SaleRequest struct {
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	EmployeeID string `json:"employee_id"`
	Quantity   int    `json:"quantity"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	CustomerID   string    `json:"customer_id,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	TotalPrice   float64   `json:"total_price"`
	Profit       float64   `json:"profit"`
	SellerID     string    `json:"seller_id"`
	SellerName   string    `json:"seller_name"`
	Date         time.Time `json:"date"`
}

// SaleListResponse representa a lista de vendas
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// PeriodResponse resume as vendas de um período
type PeriodResponse struct {
	Count            int     `json:"count"`
	Revenue          float64 `json:"revenue"`
	RevenueFormatted string  `json:"revenue_formatted"`
	Profit           float64 `json:"profit"`
	ProfitFormatted  string  `json:"profit_formatted"`
}

// TotalsResponse soma todas as vendas com a margem de lucro
type TotalsResponse struct {
	PeriodResponse
	Margin          float64 `json:"margin"`
	MarginFormatted string  `json:"margin_formatted"`
}

// SalesSummaryResponse representa os totais da página de vendas
type SalesSummaryResponse struct {
	Totals  TotalsResponse `json:"totals"`
	Daily   PeriodResponse `json:"daily"`
	Weekly  PeriodResponse `json:"weekly"`
	Monthly PeriodResponse `json:"monthly"`
}

// ToInput converte a requisição para a entrada do serviço
func (r SaleRequest) ToInput() service.SaleInput {
	return service.SaleInput{
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		EmployeeID: r.EmployeeID,
		Quantity:   r.Quantity,
	}
}

// ToSaleResponse converte uma venda para a resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		Quantity:     s.Quantity,
		UnitPrice:    money(s.UnitPrice),
		TotalPrice:   money(s.TotalPrice),
		Profit:       money(s.Profit),
		SellerID:     s.SellerID,
		SellerName:   s.SellerName,
		Date:         s.Date,
	}
}

// ToSaleListResponse converte uma lista de vendas
func ToSaleListResponse(sales []*sale.Sale) SaleListResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, ToSaleResponse(s))
	}
	return SaleListResponse{Items: items, Total: len(items)}
}

// ToPeriodResponse converte o resumo de um período
func ToPeriodResponse(s stats.Summary) PeriodResponse {
	return PeriodResponse{
		Count:            s.Count,
		Revenue:          money(s.Revenue),
		RevenueFormatted: format.Currency(s.Revenue),
		Profit:           money(s.Profit),
		ProfitFormatted:  format.Currency(s.Profit),
	}
}

// ToTotalsResponse converte os totais gerais
func ToTotalsResponse(t stats.Totals) TotalsResponse {
	return TotalsResponse{
		PeriodResponse:  ToPeriodResponse(t.Summary),
		Margin:          money(t.Margin),
		MarginFormatted: format.Percent(t.Margin),
	}
}

// ToSalesSummaryResponse converte o resumo de vendas
func ToSalesSummaryResponse(s service.SalesSummary) SalesSummaryResponse {
	return SalesSummaryResponse{
		Totals:  ToTotalsResponse(s.Totals),
		Daily:   ToPeriodResponse(s.Daily),
		Weekly:  ToPeriodResponse(s.Weekly),
		Monthly: ToPeriodResponse(s.Monthly),
	}
}
