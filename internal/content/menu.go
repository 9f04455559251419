package content

import "github.com/JunoAX/cafe-fausse/internal/models"

// MenuItem is one dish or drink
type MenuItem struct {
	Name        string
	Description string
	Price       string
	Image       string
}

// PriceText renders the price with a dollar sign, or the placeholder when
// the item has no fixed price
func (i MenuItem) PriceText() string {
	if i.Price == "" {
		return models.Placeholder
	}
	return "$" + i.Price
}

// MenuSection groups items under a heading
type MenuSection struct {
	Title string
	Items []MenuItem
}

// Menu returns the menu in display order
func Menu() []MenuSection {
	return []MenuSection{
		{
			Title: "Starters",
			Items: []MenuItem{
				{Name: "Bruschetta", Description: "Fresh tomatoes, basil, and olive oil on toasted baguette.", Price: "8.50", Image: "Dishes/bruschetta.jpg"},
				{Name: "Caesar Salad", Description: "Crisp romaine with house Caesar and shaved parmesan.", Price: "9.00", Image: "Dishes/salad.jpg"},
			},
		},
		{
			Title: "Main Courses",
			Items: []MenuItem{
				{Name: "Grilled Salmon", Description: "Lemon butter sauce with seasonal vegetables.", Price: "22.00", Image: "Dishes/salmon.jpg"},
				{Name: "Ribeye Steak", Description: "12 oz prime cut with garlic mashed potatoes.", Price: "28.00", Image: "Dishes/ribeye.jpg"},
				{Name: "Vegetable Risotto", Description: "Creamy Arborio rice with wild mushrooms.", Price: "18.00", Image: "Dishes/risotto.jpg"},
			},
		},
		{
			Title: "Desserts",
			Items: []MenuItem{
				{Name: "Tiramisu", Description: "Classic layered espresso-soaked ladyfingers with mascarpone.", Price: "7.50", Image: "Dishes/tiramisu.jpg"},
				{Name: "Cheesecake", Description: "Vanilla bean cheesecake with berry compote.", Price: "7.00", Image: "Dishes/cheesecake.jpg"},
			},
		},
		{
			Title: "Beverages",
			Items: []MenuItem{
				{Name: "Wine, Beer & Espresso", Description: "Curated red & white wines by the glass, craft beer, and espresso.", Image: "Dishes/beverages.jpg"},
			},
		},
	}
}
