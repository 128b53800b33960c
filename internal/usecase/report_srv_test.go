package usecase

import (
	"bytes"
	"context"
	"testing"

	"catalog-store/internal/data/entity"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReportService_Render(t *testing.T) {
	repo, _, users, products, orders := newFakeRepository()

	users.users = []*entity.User{
		{ID: 1, Name: "Johnny Bravo", Email: "jbravo@email.com"},
		{ID: 2, Name: "James Bond", Email: "jamesb@email.com"},
	}
	products.products = []*entity.Product{
		{ID: 1, Name: "Orange Juice", Price: 188},
		{ID: 2, Name: "Apple Juice", Price: 177},
		{ID: 3, Name: "Grape Juice", Price: 200},
	}
	orders.lines = []*entity.OrderLine{
		{OrderID: 1, UserName: "Johnny Bravo", ProductName: "Orange Juice", Quantity: 2},
		{OrderID: 2, UserName: "Johnny Bravo", ProductName: "Apple Juice", Quantity: 5},
		{OrderID: 3, UserName: "James Bond", ProductName: "Grape Juice", Quantity: 1},
		{OrderID: 4, UserName: "James Bond", ProductName: "Orange Juice", Quantity: 3},
	}
	orders.counts = []*entity.UserOrderCount{
		{UserID: 1, UserName: "Johnny Bravo", Orders: 2},
		{UserID: 2, UserName: "James Bond", Orders: 2},
	}

	var buf bytes.Buffer
	service := NewReportService(repo, zap.NewNop())
	require.NoError(t, service.Render(context.Background(), &buf))

	want := "\nUSERS\n" + divider + "\n" +
		"ID: 1 | Name: Johnny Bravo | Email: jbravo@email.com\n" +
		"ID: 2 | Name: James Bond | Email: jamesb@email.com\n" +
		"\nPRODUCTS\n" + divider + "\n" +
		"ID: 1 | Name: Orange Juice | Price: 1.88\n" +
		"ID: 2 | Name: Apple Juice | Price: 1.77\n" +
		"ID: 3 | Name: Grape Juice | Price: 2.00\n" +
		"\nORDERS\n" + divider + "\n" +
		"OrderID: 1 | User: Johnny Bravo | Product: Orange Juice | Qty: 2\n" +
		"OrderID: 2 | User: Johnny Bravo | Product: Apple Juice | Qty: 5\n" +
		"OrderID: 3 | User: James Bond | Product: Grape Juice | Qty: 1\n" +
		"OrderID: 4 | User: James Bond | Product: Orange Juice | Qty: 3\n" +
		"\nTOTAL ORDERS PER USER\n" + divider + "\n" +
		"Johnny Bravo: 2 order(s)\n" +
		"James Bond: 2 order(s)\n"

	require.Equal(t, want, buf.String())
}

func TestReportService_Render_EmptyStore(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()

	var buf bytes.Buffer
	service := NewReportService(repo, zap.NewNop())
	require.NoError(t, service.Render(context.Background(), &buf))

	// Headers print even when there are no rows
	want := "\nUSERS\n" + divider + "\n" +
		"\nPRODUCTS\n" + divider + "\n" +
		"\nORDERS\n" + divider + "\n" +
		"\nTOTAL ORDERS PER USER\n" + divider + "\n"

	require.Equal(t, want, buf.String())
}
