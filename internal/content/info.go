package content

import "strings"

// Hours is one line of opening hours
type Hours struct {
	Days  string
	Times string
}

// Restaurant holds the contact details shown in the footer and info strip
type Restaurant struct {
	Name         string
	AddressLines []string
	Phone        string
	Hours        []Hours
}

// Address joins the address lines for single-line display
func (r Restaurant) Address() string {
	return strings.Join(r.AddressLines, " · ")
}

// Info returns the restaurant details
func Info() Restaurant {
	return Restaurant{
		Name:         "Café Fausse",
		AddressLines: []string{"1234 Culinary Ave", "Suite 100", "Washington, DC 20002"},
		Phone:        "(202) 555-4567",
		Hours: []Hours{
			{Days: "Monday–Saturday", Times: "5:00 PM – 11:00 PM"},
			{Days: "Sunday", Times: "5:00 PM – 9:00 PM"},
		},
	}
}

// TablesPerSlot is the capacity noted on the reservation form
const TablesPerSlot = 30
