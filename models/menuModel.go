package models

// Category is the fixed set of menu sections shown to customers.
type Category string

const (
	CategoryStarters Category = "Starters"
	CategoryMains    Category = "Mains"
	CategoryDrinks   Category = "Drinks"
	CategoryDesserts Category = "Desserts"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStarters, CategoryMains, CategoryDrinks, CategoryDesserts:
		return true
	}
	return false
}

type MenuItem struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Description string   `json:"description" bson:"description"`
	Price       float64  `json:"price" bson:"price" validate:"required,gt=0"`
	Category    Category `json:"category" bson:"category" validate:"required,eq=Starters|eq=Mains|eq=Drinks|eq=Desserts"`
	Image       string   `json:"image" bson:"image"`
}

// CartItem is a menu item as it appears inside an order: the quantity the
// customer picked plus free-text kitchen notes. TempID distinguishes two
// cart lines for the same menu item with different notes; it is assigned by
// the client and only echoed back.
type CartItem struct {
	MenuItem `bson:",inline"`
	Quantity int    `json:"quantity" bson:"quantity" validate:"required,min=1"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
	TempID   string `json:"tempId,omitempty" bson:"temp_id,omitempty"`
}
