package entity

type Product struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	// Price in minor currency units (188 = 1.88)
	Price int64 `db:"price"`
}
