package dto

import (
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/stats"
	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/format"
	"github.com/shopspring/decimal"
)

// ProductRequest representa a requisição de criação ou edição de produto
type ProductRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price" swaggertype:"number"`
	SalePrice     decimal.Decimal `json:"sale_price" swaggertype:"number"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Quantity      int       `json:"quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	Profit        float64   `json:"profit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListResponse representa a lista de produtos
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// InventoryResponse resume o estoque
type InventoryResponse struct {
	Products                 int     `json:"products"`
	Units                    int     `json:"units"`
	StockValue               float64 `json:"stock_value"`
	StockValueFormatted      string  `json:"stock_value_formatted"`
	PotentialProfit          float64 `json:"potential_profit"`
	PotentialProfitFormatted string  `json:"potential_profit_formatted"`
}

// ToInput converte a requisição para a entrada do serviço
func (r ProductRequest) ToInput() service.ProductInput {
	return service.ProductInput{
		Name:          r.Name,
		Category:      r.Category,
		Quantity:      r.Quantity,
		PurchasePrice: r.PurchasePrice,
		SalePrice:     r.SalePrice,
	}
}

// ToProductResponse converte um produto para a resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Quantity:      p.Quantity,
		PurchasePrice: money(p.PurchasePrice),
		SalePrice:     money(p.SalePrice),
		Profit:        money(p.Profit),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos
func ToProductListResponse(products []*product.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}

// ToInventoryResponse converte o resumo do estoque
func ToInventoryResponse(inv stats.InventorySummary) InventoryResponse {
	return InventoryResponse{
		Products:                 inv.Products,
		Units:                    inv.Units,
		StockValue:               money(inv.StockValue),
		StockValueFormatted:      format.Currency(inv.StockValue),
		PotentialProfit:          money(inv.PotentialProfit),
		PotentialProfitFormatted: format.Currency(inv.PotentialProfit),
	}
}
