package domain

// Category classifies products. Names are unique.
type Category struct {
	ID   int64
	Name string
}
