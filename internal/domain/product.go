package domain

// Product is a sellable item that belongs to a category.
type Product struct {
	ID         int64
	Name       string
	Price      float64
	CategoryID int64
}

// ProductPatch carries the fields supplied for a partial update. A nil field is left unchanged.
type ProductPatch struct {
	Name       *string
	Price      *float64
	CategoryID *int64
}

