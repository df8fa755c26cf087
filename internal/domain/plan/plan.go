package plan

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPlan  = errors.New("plano desconhecido")
	ErrUnknownKind  = errors.New("tipo de recurso desconhecido")
	ErrLimitReached = errors.New("limite do plano atingido")
)

// Type representa o tipo de assinatura da loja
type Type string

const (
	TypeFree Type = "free"
	TypePro  Type = "pro"
)

// IsValid verifica se o tipo de plano existe
func (t Type) IsValid() bool {
	return t == TypeFree || t == TypePro
}

// Kind identifica o recurso cuja criação é limitada pelo plano
type Kind string

const (
	KindProduct  Kind = "product"  // Produtos cadastrados
	KindEmployee Kind = "employee" // Funcionários vendedores
	KindSale     Kind = "sale"     // Vendas no dia corrente
)

// Kinds lista os recursos limitados na ordem exibida no dashboard
var Kinds = []Kind{KindProduct, KindSale, KindEmployee}

// Plan descreve os limites e o preço de uma assinatura.
// Limites nil significam ilimitado.
type Plan struct {
	Type           Type            `json:"type"`
	Name           string          `json:"name"`
	MaxProducts    *int            `json:"max_products"`
	MaxSalesPerDay *int            `json:"max_sales_per_day"`
	MaxEmployees   *int            `json:"max_employees"`
	Price          decimal.Decimal `json:"price"`
	Features       []string        `json:"features"`
}

func limit(n int) *int {
	return &n
}

func free() Plan {
	return Plan{
		Type:           TypeFree,
		Name:           "Free",
		MaxProducts:    limit(10),
		MaxSalesPerDay: limit(1),
		MaxEmployees:   limit(1),
		Price:          decimal.Zero,
		Features: []string{
			"1 venda por dia",
			"Máximo 10 produtos",
			"1 funcionário vendedor",
			"Dashboard básico",
		},
	}
}

func pro() Plan {
	return Plan{
		Type:  TypePro,
		Name:  "Pro",
		Price: decimal.RequireFromString("49.90"),
		Features: []string{
			"Vendas ilimitadas",
			"Produtos ilimitados",
			"Funcionários ilimitados",
			"Dashboard completo",
			"Relatórios avançados",
			"Suporte prioritário",
		},
	}
}

// Get retorna a definição de um plano. Cada chamada devolve uma cópia independente.
func Get(t Type) (Plan, error) {
	switch t {
	case TypeFree:
		return free(), nil
	case TypePro:
		return pro(), nil
	default:
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, t)
	}
}

// All retorna todos os planos disponíveis
func All() []Plan {
	return []Plan{free(), pro()}
}

// Limit retorna o limite do plano para o recurso informado (nil = ilimitado)
func (p Plan) Limit(kind Kind) (*int, error) {
	switch kind {
	case KindProduct:
		return p.MaxProducts, nil
	case KindEmployee:
		return p.MaxEmployees, nil
	case KindSale:
		return p.MaxSalesPerDay, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
