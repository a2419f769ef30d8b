package entity

type Product struct {
	Base
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Image       string  `db:"image"`
	Category    string  `db:"category"`
}
