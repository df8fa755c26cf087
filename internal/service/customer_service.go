package service

import (
	"context"

	"github.com/hugohenrick/lojista-x/internal/domain/customer"
	"github.com/hugohenrick/lojista-x/internal/domain/sale"
	"github.com/hugohenrick/lojista-x/pkg/repository"
)

// CustomerInput contém os campos editáveis de um cliente
type CustomerInput struct {
	Name    string
	Phone   string
	Address string
	CPF     string
}

// CustomerService gerencia os clientes
type CustomerService struct {
	*base
}

// Create cadastra um cliente. Clientes não são limitados pelo plano.
func (s *CustomerService) Create(ctx context.Context, accountID string, in CustomerInput) (*customer.Customer, error) {
	c, err := customer.NewCustomer(accountID, in.Name, in.Phone, in.Address, in.CPF, s.Now())
	if err != nil {
		return nil, err
	}
	if err := s.Store.Customers().Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get busca um cliente da conta
func (s *CustomerService) Get(ctx context.Context, accountID, id string) (*customer.Customer, error) {
	return s.Store.Customers().FindByID(ctx, accountID, id)
}

// List lista os clientes filtrando por nome, telefone ou CPF
func (s *CustomerService) List(ctx context.Context, accountID, search string) ([]*customer.Customer, error) {
	return s.Store.Customers().List(ctx, accountID, customer.Filter{Search: search})
}

// Update substitui os dados cadastrais do cliente
func (s *CustomerService) Update(ctx context.Context, accountID, id string, in CustomerInput) (*customer.Customer, error) {
	var updated *customer.Customer
	err := s.Store.WithinTx(ctx, accountID, func(tx repository.Store) error {
		c, err := tx.Customers().FindByID(ctx, accountID, id)
		if err != nil {
			return err
		}
		if err := c.Update(in.Name, in.Phone, in.Address, in.CPF, s.Now()); err != nil {
			return err
		}
		updated = c
		return tx.Customers().Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete remove um cliente
func (s *CustomerService) Delete(ctx context.Context, accountID, id string) error {
	return s.Store.Customers().Delete(ctx, accountID, id)
}

// Purchases retorna o histórico de compras do cliente, mais recentes primeiro
func (s *CustomerService) Purchases(ctx context.Context, accountID, id string) ([]*sale.Sale, error) {
	if _, err := s.Store.Customers().FindByID(ctx, accountID, id); err != nil {
		return nil, err
	}
	return s.Store.Sales().List(ctx, accountID, sale.Filter{CustomerID: id})
}
