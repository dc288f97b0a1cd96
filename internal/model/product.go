package model

import "github.com/uptrace/bun"

// Product represents a food product imported from Open Food Facts.
// ID is the upstream barcode and is never generated by the database.
type Product struct {
	bun.BaseModel `bun:"table:product,alias:p"`

	ID              int64  `json:"id" bun:"id,pk,type:bigint"`
	ProductName     string `json:"productName" bun:"product_name,type:varchar(100)"`
	NutriscoreGrade string `json:"nutriscoreGrade" bun:"nutriscore_grade,type:varchar(20)"`
	URL             string `json:"url" bun:"url,type:varchar(255)"`

	Categories []Category `json:"categories,omitempty" bun:"m2m:product_category,join:Product=Category"`
	Stores     []Store    `json:"stores,omitempty" bun:"m2m:product_store,join:Product=Store"`
}

func (p *Product) String() string {
	return p.ProductName
}
