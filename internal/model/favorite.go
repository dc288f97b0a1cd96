package model

import "github.com/uptrace/bun"

// Favorite records a user's saved substitution: the product they started
// from and the product they prefer instead. Both sides are stored as free
// text and are not constrained to existing products.
type Favorite struct {
	bun.BaseModel `bun:"table:favorite,alias:f"`

	ID            int64  `json:"id" bun:"id,pk,autoincrement"`
	ProductOrigin string `json:"productOrigin" bun:"product_origin,type:varchar(400)"`
	ProductSub    string `json:"productSub" bun:"product_sub,type:varchar(400)"`
}

func (f *Favorite) String() string {
	return f.ProductSub
}
