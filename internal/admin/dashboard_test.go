package admin

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/JunoAX/cafe-fausse/internal/models"
)

// MockSource is a test double for the backend admin endpoints
type MockSource struct {
	reservations    []models.Reservation
	customers       []models.Customer
	summary         *models.Summary
	reservationsErr error
	customersErr    error
	summaryErr      error
	calls           atomic.Int32
}

func (m *MockSource) ListAdminReservations(ctx context.Context) ([]models.Reservation, error) {
	m.calls.Add(1)
	return m.reservations, m.reservationsErr
}

func (m *MockSource) ListAdminCustomers(ctx context.Context) ([]models.Customer, error) {
	m.calls.Add(1)
	return m.customers, m.customersErr
}

func (m *MockSource) GetAdminSummary(ctx context.Context) (*models.Summary, error) {
	m.calls.Add(1)
	return m.summary, m.summaryErr
}

func TestLoad(t *testing.T) {
	src := &MockSource{
		reservations: []models.Reservation{
			reservation("1", "2024-05-01 19:00"),
			reservation("2", "2024-05-02 18:30"),
		},
		customers: []models.Customer{customer("a", "2024-04-01T10:00:00"), customer("b", "2024-04-02T10:00:00")},
		summary:   &models.Summary{Customers: 2, Reservations: 2},
	}

	dashboard, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := src.calls.Load(); got != 3 {
		t.Errorf("backend calls = %d, want 3", got)
	}
	if len(dashboard.Days) != 2 || dashboard.Days[0].Key.String() != "2024-05-02" {
		t.Errorf("Days = %+v", dashboard.Days)
	}
	if dashboard.Customers[0].ID != "b" {
		t.Errorf("first customer = %s, want newest b", dashboard.Customers[0].ID)
	}
	if dashboard.Summary.Reservations != 2 {
		t.Errorf("Summary = %+v", dashboard.Summary)
	}
}

func TestLoadSingleFailureAbortsAll(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		src  *MockSource
	}{
		{name: "reservations", src: &MockSource{reservationsErr: boom, summary: &models.Summary{}}},
		{name: "customers", src: &MockSource{customersErr: boom, summary: &models.Summary{}}},
		{name: "summary", src: &MockSource{summaryErr: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard, err := Load(context.Background(), tt.src)
			if !errors.Is(err, boom) {
				t.Fatalf("Load() error = %v, want %v", err, boom)
			}
			if dashboard != nil {
				t.Errorf("Load() dashboard = %+v, want nil", dashboard)
			}
		})
	}
}
