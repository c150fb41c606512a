package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/nova-inventario/internal/domain/entity"
	"github.com/jhoicas/nova-inventario/internal/domain/repository"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepoMock) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByLogin(ctx context.Context, login string) ([]*entity.User, error) {
	args := m.Called(ctx, login)
	list, _ := args.Get(0).([]*entity.User)
	return list, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepoMock) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.User)
	return list, args.Error(1)
}

func (m *UserRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type RoleRepoMock struct{ mock.Mock }

func (m *RoleRepoMock) Create(ctx context.Context, r *entity.Role) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RoleRepoMock) GetByID(ctx context.Context, id string) (*entity.Role, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*entity.Role)
	return r, args.Error(1)
}

func (m *RoleRepoMock) Update(ctx context.Context, r *entity.Role) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RoleRepoMock) List(ctx context.Context) ([]*entity.Role, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Role)
	return list, args.Error(1)
}

func (m *RoleRepoMock) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepoMock) SetQuantity(ctx context.Context, id string, q int) error {
	return m.Called(ctx, id, q).Error(0)
}

func (m *ProductRepoMock) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, e *entity.AuditLog) error {
	return m.Called(ctx, e).Error(0)
}

func (m *AuditRepoMock) ListAll(ctx context.Context) ([]*entity.AuditLog, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.AuditLog)
	return list, args.Error(1)
}
