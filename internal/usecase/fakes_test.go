package usecase

import (
	"context"

	"catalog-store/internal/data/entity"
	"catalog-store/internal/data/repository"
)

// In-memory fakes for the repository interfaces. IDs are assigned
// sequentially on insert, like the store's identity columns.

type fakeSchemaRepo struct {
	initCalls int
	initErr   error
}

func (f *fakeSchemaRepo) Init(ctx context.Context) error {
	f.initCalls++
	return f.initErr
}

type fakeUserRepo struct {
	users     []*entity.User
	nextID    int64
	createErr error

	deletedID     int64
	ordersDeleted int64
	usersDeleted  int64
	deleteErr     error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) DeleteCascade(ctx context.Context, id int64) (int64, int64, error) {
	if f.deleteErr != nil {
		return 0, 0, f.deleteErr
	}
	f.deletedID = id
	return f.ordersDeleted, f.usersDeleted, nil
}

type fakeProductRepo struct {
	products []*entity.Product
	nextID   int64

	updatedID    int64
	updatedPrice int64
	updateRows   int64
	updateCalls  int
	updateErr    error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.nextID++
	product.ID = f.nextID
	f.products = append(f.products, product)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) UpdatePrice(ctx context.Context, id int64, priceCents int64) (int64, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.updatedID = id
	f.updatedPrice = priceCents
	return f.updateRows, nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	nextID int64

	lines  []*entity.OrderLine
	counts []*entity.UserOrderCount

	createErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) FindAllLines(ctx context.Context) ([]*entity.OrderLine, error) {
	return f.lines, nil
}

func (f *fakeOrderRepo) CountPerUser(ctx context.Context) ([]*entity.UserOrderCount, error) {
	return f.counts, nil
}

func newFakeRepository() (*repository.Repository, *fakeSchemaRepo, *fakeUserRepo, *fakeProductRepo, *fakeOrderRepo) {
	schema := &fakeSchemaRepo{}
	users := &fakeUserRepo{}
	products := &fakeProductRepo{}
	orders := &fakeOrderRepo{}

	repo := &repository.Repository{
		Schema:  schema,
		User:    users,
		Product: products,
		Order:   orders,
	}

	return repo, schema, users, products, orders
}
