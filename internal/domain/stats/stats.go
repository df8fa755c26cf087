// Package stats agrega vendas, clientes, produtos e despesas para o dashboard.
// As funções são puras: não alteram as entradas e retornam zero para listas vazias.
package stats

import (
	"sort"
	"time"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/expense"
	"github.com/hugohenrick/lojista-x/internal/domain/product"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/shopspring/decimal"
)

const (
	week  = 7 * 24 * time.Hour
	month = 30 * 24 * time.Hour
)

// Summary resume um conjunto de vendas
type Summary struct {
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

func (s *Summary) add(v *sale.Sale) {
	s.Count++
	s.Revenue = s.Revenue.Add(v.TotalPrice)
	s.Profit = s.Profit.Add(v.Profit)
}

func summarize(sales []*sale.Sale, keep func(*sale.Sale) bool) Summary {
	sum := Summary{Revenue: decimal.Zero, Profit: decimal.Zero}
	for _, s := range sales {
		if keep(s) {
			sum.add(s)
		}
	}
	return sum
}

// Daily resume as vendas do mesmo dia de ref, no fuso de ref
func Daily(sales []*sale.Sale, ref time.Time) Summary {
	y, m, d := ref.Date()
	return summarize(sales, func(s *sale.Sale) bool {
		sy, sm, sd := s.Date.In(ref.Location()).Date()
		return sy == y && sm == m && sd == d
	})
}

// Weekly resume as vendas dos últimos 7 dias corridos a partir de ref
func Weekly(sales []*sale.Sale, ref time.Time) Summary {
	from := ref.Add(-week)
	return summarize(sales, func(s *sale.Sale) bool {
		return !s.Date.Before(from)
	})
}

// Monthly resume as vendas dos últimos 30 dias corridos a partir de ref
func Monthly(sales []*sale.Sale, ref time.Time) Summary {
	from := ref.Add(-month)
	return summarize(sales, func(s *sale.Sale) bool {
		return !s.Date.Before(from)
	})
}

// ProductRank é a quantidade vendida de um produto
type ProductRank struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// TopProducts agrupa as vendas por produto e retorna os limit mais vendidos.
// Empates mantêm a ordem em que o produto apareceu pela primeira vez.
func TopProducts(sales []*sale.Sale, limit int) []ProductRank {
	if limit <= 0 {
		return []ProductRank{}
	}

	index := make(map[string]int)
	ranks := make([]ProductRank, 0)
	for _, s := range sales {
		i, ok := index[s.ProductID]
		if !ok {
			i = len(ranks)
			index[s.ProductID] = i
			ranks = append(ranks, ProductRank{ProductID: s.ProductID, ProductName: s.ProductName})
		}
		ranks[i].Quantity += s.Quantity
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Quantity > ranks[j].Quantity
	})

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}

// TopCustomers retorna os limit clientes que mais gastaram, sem alterar a lista recebida
func TopCustomers(customers []*customer.Customer, limit int) []*customer.Customer {
	if limit <= 0 {
		return []*customer.Customer{}
	}

	sorted := make([]*customer.Customer, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalSpent.GreaterThan(sorted[j].TotalSpent)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Totals resume todas as vendas com a margem de lucro
type Totals struct {
	Summary
	Margin decimal.Decimal `json:"margin"` // Lucro sobre receita, em %
}

// SalesTotals soma todas as vendas e calcula a margem
func SalesTotals(sales []*sale.Sale) Totals {
	sum := summarize(sales, func(*sale.Sale) bool { return true })
	return Totals{Summary: sum, Margin: Margin(sum.Profit, sum.Revenue)}
}

// Margin retorna profit/revenue×100, ou zero quando não há receita
func Margin(profit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(decimal.NewFromInt(100))
}

// InventorySummary resume o estoque
type InventorySummary struct {
	Products        int             `json:"products"`
	Units           int             `json:"units"`
	StockValue      decimal.Decimal `json:"stock_value"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
}

// Inventory soma o valor do estoque e o lucro potencial
func Inventory(products []*product.Product) InventorySummary {
	inv := InventorySummary{StockValue: decimal.Zero, PotentialProfit: decimal.Zero}
	for _, p := range products {
		inv.Products++
		inv.Units += p.Quantity
		inv.StockValue = inv.StockValue.Add(p.StockValue())
		inv.PotentialProfit = inv.PotentialProfit.Add(p.PotentialProfit())
	}
	return inv
}

// CategoryTotal é o total gasto em uma categoria
type CategoryTotal struct {
	Category expense.Category `json:"category"`
	Label    string           `json:"label"`
	Total    decimal.Decimal  `json:"total"`
}

// ExpenseSummary resume as despesas
type ExpenseSummary struct {
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Month      decimal.Decimal `json:"month"` // Mês corrente de ref
	Year       decimal.Decimal `json:"year"`  // Ano corrente de ref
	ByCategory []CategoryTotal `json:"by_category"`
}

// Expenses soma as despesas, por categoria e no mês/ano de ref
func Expenses(expenses []*expense.Expense, ref time.Time) ExpenseSummary {
	sum := ExpenseSummary{
		Total:      decimal.Zero,
		Month:      decimal.Zero,
		Year:       decimal.Zero,
		ByCategory: make([]CategoryTotal, len(expense.Categories)),
	}

	position := make(map[expense.Category]int, len(expense.Categories))
	for i, c := range expense.Categories {
		position[c] = i
		sum.ByCategory[i] = CategoryTotal{Category: c, Label: c.Label(), Total: decimal.Zero}
	}

	year, month, _ := ref.Date()
	for _, e := range expenses {
		sum.Count++
		sum.Total = sum.Total.Add(e.Amount)

		if i, ok := position[e.Category]; ok {
			sum.ByCategory[i].Total = sum.ByCategory[i].Total.Add(e.Amount)
		}

		ey, em, _ := e.Date.In(ref.Location()).Date()
		if ey == year {
			sum.Year = sum.Year.Add(e.Amount)
			if em == month {
				sum.Month = sum.Month.Add(e.Amount)
			}
		}
	}
	return sum
}

// CustomersTotalSpent soma o total gasto por todos os clientes
func CustomersTotalSpent(customers []*customer.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.TotalSpent)
	}
	return total
}
