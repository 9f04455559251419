package admin

import (
	"context"
	"fmt"

	"github.com/JunoAX/cafe-fausse/internal/models"
	"golang.org/x/sync/errgroup"
)

// Source is the read-only slice of the backend the dashboard needs
type Source interface {
	ListAdminReservations(ctx context.Context) ([]models.Reservation, error)
	ListAdminCustomers(ctx context.Context) ([]models.Customer, error)
	GetAdminSummary(ctx context.Context) (*models.Summary, error)
}

// Dashboard is everything the admin page renders
type Dashboard struct {
	Days      []Day
	Customers []models.Customer
	Summary   models.Summary
}

// Load fetches reservations, customers and the summary concurrently and
// waits for all three. Any failure discards the whole dashboard.
func Load(ctx context.Context, src Source) (*Dashboard, error) {
	var (
		reservations []models.Reservation
		customers    []models.Customer
		summary      *models.Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reservations, err = src.ListAdminReservations(gctx)
		if err != nil {
			return fmt.Errorf("failed to list reservations: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		customers, err = src.ListAdminCustomers(gctx)
		if err != nil {
			return fmt.Errorf("failed to list customers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		summary, err = src.GetAdminSummary(gctx)
		if err != nil {
			return fmt.Errorf("failed to get summary: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Days:      Group(reservations),
		Customers: SortCustomers(customers),
	}
	if summary != nil {
		dashboard.Summary = *summary
	}
	return dashboard, nil
}
