package plan

import "fmt"

// LimitError indica que uma criação foi negada pelo limite do plano
type LimitError struct {
	Plan  Type
	Kind  Kind
	Limit int
	Count int
}

func (e *LimitError) Error() string {
	name := "Free"
	if e.Plan == TypePro {
		name = "Pro"
	}

	switch e.Kind {
	case KindProduct:
		return fmt.Sprintf("Você atingiu o limite de %d produtos no plano %s. Faça upgrade para o plano Pro!", e.Limit, name)
	case KindEmployee:
		return fmt.Sprintf("Você atingiu o limite de %d funcionário no plano %s. Faça upgrade para o plano Pro!", e.Limit, name)
	case KindSale:
		return fmt.Sprintf("Você atingiu o limite de %d venda por dia no plano %s. Faça upgrade para o plano Pro!", e.Limit, name)
	}
	return fmt.Sprintf("limite de %s atingido no plano %s", e.Kind, name)
}

func (e *LimitError) Unwrap() error {
	return ErrLimitReached
}

// CanCreate decide se um novo registro do tipo kind pode ser criado, dado o número
// atual de registros (para vendas, o número de vendas do dia). Retorna nil quando permitido.
func CanCreate(t Type, kind Kind, currentCount int) error {
	p, err := Get(t)
	if err != nil {
		return err
	}

	max, err := p.Limit(kind)
	if err != nil {
		return err
	}
	if max == nil {
		return nil
	}

	if currentCount >= *max {
		return &LimitError{Plan: t, Kind: kind, Limit: *max, Count: currentCount}
	}
	return nil
}

// Usage descreve o consumo de um recurso em relação ao limite do plano
type Usage struct {
	Kind    Kind `json:"kind"`
	Count   int  `json:"count"`
	Limit   *int `json:"limit"`
	Reached bool `json:"reached"`
}

// UsageFor calcula o consumo de cada recurso limitado
func UsageFor(t Type, counts map[Kind]int) ([]Usage, error) {
	p, err := Get(t)
	if err != nil {
		return nil, err
	}

	usage := make([]Usage, 0, len(Kinds))
	for _, kind := range Kinds {
		max, _ := p.Limit(kind)
		u := Usage{Kind: kind, Count: counts[kind], Limit: max}
		if max != nil && u.Count >= *max {
			u.Reached = true
		}
		usage = append(usage, u)
	}
	return usage, nil
}
