package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"catalog-store/internal/data/repository"
	"catalog-store/pkg/utils"

	"go.uber.org/zap"
)

type ReportService interface {
	Render(ctx context.Context, w io.Writer) error
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log,
	}
}

var divider = strings.Repeat("-", 50)

// Render writes the four report sections in fixed order: users,
// products, orders, order totals per user. Rows are already sorted by
// ascending id at the query level.
func (rs *reportService) Render(ctx context.Context, w io.Writer) error {
	if err := rs.renderUsers(ctx, w); err != nil {
		return err
	}
	if err := rs.renderProducts(ctx, w); err != nil {
		return err
	}
	if err := rs.renderOrders(ctx, w); err != nil {
		return err
	}
	return rs.renderTotals(ctx, w)
}

func (rs *reportService) renderUsers(ctx context.Context, w io.Writer) error {
	users, err := rs.repo.User.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("render users: %w", err)
	}

	fmt.Fprintf(w, "\nUSERS\n%s\n", divider)
	for _, u := range users {
		fmt.Fprintf(w, "ID: %d | Name: %s | Email: %s\n", u.ID, u.Name, u.Email)
	}
	return nil
}

func (rs *reportService) renderProducts(ctx context.Context, w io.Writer) error {
	products, err := rs.repo.Product.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("render products: %w", err)
	}

	fmt.Fprintf(w, "\nPRODUCTS\n%s\n", divider)
	for _, p := range products {
		fmt.Fprintf(w, "ID: %d | Name: %s | Price: %s\n", p.ID, p.Name, utils.FormatCents(p.Price))
	}
	return nil
}

func (rs *reportService) renderOrders(ctx context.Context, w io.Writer) error {
	lines, err := rs.repo.Order.FindAllLines(ctx)
	if err != nil {
		return fmt.Errorf("render orders: %w", err)
	}

	fmt.Fprintf(w, "\nORDERS\n%s\n", divider)
	for _, l := range lines {
		fmt.Fprintf(w, "OrderID: %d | User: %s | Product: %s | Qty: %d\n",
			l.OrderID, l.UserName, l.ProductName, l.Quantity)
	}
	return nil
}

func (rs *reportService) renderTotals(ctx context.Context, w io.Writer) error {
	counts, err := rs.repo.Order.CountPerUser(ctx)
	if err != nil {
		return fmt.Errorf("render totals: %w", err)
	}

	fmt.Fprintf(w, "\nTOTAL ORDERS PER USER\n%s\n", divider)
	for _, c := range counts {
		fmt.Fprintf(w, "%s: %d order(s)\n", c.UserName, c.Orders)
	}
	return nil
}
