package dto

import (
	"time"

	"github.com/hugohenrick/lojista-x/internal/service"
	"github.com/hugohenrick/lojista-x/pkg/format"
)

// ProductRankResponse representa um produto do ranking de mais vendidos
type ProductRankResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// DashboardResponse representa os indicadores da página inicial
type DashboardResponse struct {
	GeneratedAt  time.Time              `json:"generated_at"`
	Date         string                 `json:"date"`
	Plan         PlanResponse           `json:"plan"`
	Usage        []UsageResponse        `json:"usage"`
	Daily        PeriodResponse         `json:"daily"`
	Weekly       PeriodResponse         `json:"weekly"`
	Monthly      PeriodResponse         `json:"monthly"`
	Totals       TotalsResponse         `json:"totals"`
	TopProducts  []ProductRankResponse  `json:"top_products"`
	TopCustomers []CustomerResponse     `json:"top_customers"`
	Inventory    InventoryResponse      `json:"inventory"`
	Expenses     ExpenseSummaryResponse `json:"expenses"`
	Customers    int                    `json:"customers"`
	RecentSales  []SaleResponse         `json:"recent_sales"`
}

// ToDashboardResponse converte o dashboard calculado pelo serviço
func ToDashboardResponse(d *service.Dashboard) DashboardResponse {
	top := make([]ProductRankResponse, 0, len(d.TopProducts))
	for _, p := range d.TopProducts {
		top = append(top, ProductRankResponse{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
		})
	}

	return DashboardResponse{
		GeneratedAt:  d.GeneratedAt,
		Date:         format.Date(d.GeneratedAt),
		Plan:         ToPlanResponse(d.Plan),
		Usage:        ToUsageResponse(d.Usage),
		Daily:        ToPeriodResponse(d.Daily),
		Weekly:       ToPeriodResponse(d.Weekly),
		Monthly:      ToPeriodResponse(d.Monthly),
		Totals:       ToTotalsResponse(d.Totals),
		TopProducts:  top,
		TopCustomers: ToCustomerListResponse(d.TopCustomers).Items,
		Inventory:    ToInventoryResponse(d.Inventory),
		Expenses:     ToExpenseSummaryResponse(d.Expenses),
		Customers:    d.Customers,
		RecentSales:  ToSaleListResponse(d.RecentSales).Items,
	}
}
