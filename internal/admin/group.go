package admin

import (
	"sort"
	"time"

	"github.com/JunoAX/cafe-fausse/internal/models"
)

// Slot is every reservation sharing one time of day
type Slot struct {
	Key   SlotKey
	Time  time.Time
	Rows  []models.Reservation
	Count int
}

// Day is one calendar day of reservations
type Day struct {
	Key   DayKey
	Date  time.Time
	Total int
	Slots []Slot
}

// Group arranges reservations by day, newest day first, and by slot within
// a day, earliest first. Rows keep their input order inside a slot. Rows
// whose time slot does not parse are left out.
func Group(rows []models.Reservation) []Day {
	type dayAcc struct {
		total int
		slots map[SlotKey][]models.Reservation
	}

	byDay := make(map[DayKey]*dayAcc)
	for _, r := range rows {
		t, err := ParseTimeSlot(r.TimeSlot)
		if err != nil {
			continue
		}
		dayKey, slotKey := Keys(t)

		acc, ok := byDay[dayKey]
		if !ok {
			acc = &dayAcc{slots: make(map[SlotKey][]models.Reservation)}
			byDay[dayKey] = acc
		}
		acc.total++
		acc.slots[slotKey] = append(acc.slots[slotKey], r)
	}

	days := make([]Day, 0, len(byDay))
	for dayKey, acc := range byDay {
		day := Day{
			Key:   dayKey,
			Date:  time.Date(dayKey.Year, dayKey.Month, dayKey.Day, 0, 0, 0, 0, time.UTC),
			Total: acc.total,
			Slots: make([]Slot, 0, len(acc.slots)),
		}
		for slotKey, slotRows := range acc.slots {
			day.Slots = append(day.Slots, Slot{
				Key:   slotKey,
				Time:  day.Date.Add(time.Duration(slotKey.Hour)*time.Hour + time.Duration(slotKey.Minute)*time.Minute),
				Rows:  slotRows,
				Count: len(slotRows),
			})
		}
		sort.Slice(day.Slots, func(i, j int) bool {
			return day.Slots[i].Key.Before(day.Slots[j].Key)
		})
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[j].Key.Before(days[i].Key)
	})

	return days
}
