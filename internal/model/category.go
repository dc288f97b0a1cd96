package model

import "github.com/uptrace/bun"

// Category represents a product category.
type Category struct {
	bun.BaseModel `bun:"table:category,alias:c"`

	ID           int64  `json:"id" bun:"id,pk,autoincrement"`
	CategoryName string `json:"categoryName" bun:"category_name,type:varchar(400),unique"`

	Products []Product `json:"products,omitempty" bun:"m2m:product_category,join:Category=Product"`
}

func (c *Category) String() string {
	return c.CategoryName
}
