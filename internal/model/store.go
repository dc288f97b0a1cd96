package model

import "github.com/uptrace/bun"

// Store represents a shop a product is sold in.
type Store struct {
	bun.BaseModel `bun:"table:store,alias:s"`

	ID        int64  `json:"id" bun:"id,pk,autoincrement"`
	StoreName string `json:"storeName" bun:"store_name,type:varchar(80),unique"`

	Products []Product `json:"products,omitempty" bun:"m2m:product_store,join:Store=Product"`
}

func (s *Store) String() string {
	return s.StoreName
}
