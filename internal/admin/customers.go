package admin

import (
	"sort"
	"time"

	"github.com/JunoAX/cafe-fausse/internal/models"
)

// SortCustomers returns a copy of customers ordered newest signup first.
// Customers without a parseable created_at go last in their input order.
func SortCustomers(customers []models.Customer) []models.Customer {
	type entry struct {
		customer models.Customer
		created  time.Time
		dated    bool
	}

	entries := make([]entry, len(customers))
	for i, c := range customers {
		entries[i].customer = c
		if t, err := ParseTimeSlot(c.CreatedAtValue()); err == nil {
			entries[i].created = t
			entries[i].dated = true
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].dated != entries[j].dated {
			return entries[i].dated
		}
		return entries[i].created.After(entries[j].created)
	})

	sorted := make([]models.Customer, len(entries))
	for i, e := range entries {
		sorted[i] = e.customer
	}
	return sorted
}
