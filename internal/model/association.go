package model

import "github.com/uptrace/bun"

// ProductCategory is a row of the product_category association table.
// Rows carry no uniqueness constraint, so linking the same pair twice
// stores two rows.
type ProductCategory struct {
	bun.BaseModel `bun:"table:product_category,alias:pc"`

	ProductID  int64     `bun:"product_id,type:bigint"`
	Product    *Product  `bun:"rel:belongs-to,join:product_id=id"`
	CategoryID int64     `bun:"category_id"`
	Category   *Category `bun:"rel:belongs-to,join:category_id=id"`
}

// ProductStore is a row of the product_store association table.
type ProductStore struct {
	bun.BaseModel `bun:"table:product_store,alias:ps"`

	ProductID int64    `bun:"product_id,type:bigint"`
	Product   *Product `bun:"rel:belongs-to,join:product_id=id"`
	StoreID   int64    `bun:"store_id"`
	Store     *Store   `bun:"rel:belongs-to,join:store_id=id"`
}

// Register makes the association models known to bun. It must run before
// any query touches a many-to-many relation.
func Register(db *bun.DB) {
	db.RegisterModel((*ProductCategory)(nil), (*ProductStore)(nil))
}
