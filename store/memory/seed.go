package memory

import (
	"github.com/google/uuid"

	"smart-order/models"
)

// seedMenu is the starter menu loaded on first run so the app is usable
// before anyone opens the menu editor.
func seedMenu() []models.MenuItem {
	items := []models.MenuItem{
		{
			Name:        "Bruschetta Italiana",
			Description: "Toasted italian bread, fresh tomato, basil and olive oil.",
			Price:       28.00,
			Category:    models.CategoryStarters,
		},
		{
			Name:        "Tapioca Cubes",
			Description: "Crispy tapioca cubes with coalho cheese and pepper jelly.",
			Price:       32.90,
			Category:    models.CategoryStarters,
		},
		{
			Name:        "Funghi Risotto",
			Description: "Arborio rice, fresh mushroom mix and parmesan.",
			Price:       58.00,
			Category:    models.CategoryMains,
		},
		{
			Name:        "Filet Mignon au Poivre",
			Description: "Filet medallion with green pepper sauce and rustic potatoes.",
			Price:       79.90,
			Category:    models.CategoryMains,
		},
		{
			Name:        "Grilled Salmon",
			Description: "Salmon fillet with butter-sauteed vegetables.",
			Price:       65.50,
			Category:    models.CategoryMains,
		},
		{
			Name:        "Italian Soda",
			Description: "Sparkling water with fruit syrup (green apple, strawberry or lime).",
			Price:       14.00,
			Category:    models.CategoryDrinks,
		},
		{
			Name:        "Craft IPA",
			Description: "500ml, citrus notes and balanced bitterness.",
			Price:       22.00,
			Category:    models.CategoryDrinks,
		},
		{
			Name:        "Petit Gateau",
			Description: "Chocolate cake with molten center and vanilla ice cream.",
			Price:       26.00,
			Category:    models.CategoryDesserts,
		},
	}

	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].Image = "https://picsum.photos/400/300?random=" + items[i].ID[:8]
	}
	return items
}
