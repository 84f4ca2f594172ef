package domain

import "time"

// Product is a catalog item. Reseller customers buy at ResellerPrice with a
// minimum order quantity; retail customers see RetailPrice only.
type Product struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Name          string    `json:"name" bson:"name"`
	Category      string    `json:"category" bson:"category"`
	RetailPrice   float64   `json:"retail_price" bson:"retail_price"`
	ResellerPrice float64   `json:"reseller_price,omitempty" bson:"reseller_price"`
	Stock         int       `json:"stock" bson:"stock"`
	MinOrderQty   int       `json:"min_order_qty" bson:"min_order_qty"`
	ImageURL      string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Rating        float64   `json:"rating" bson:"rating"`
	ReviewCount   int       `json:"review_count" bson:"review_count"`
	IsNew         bool      `json:"is_new" bson:"is_new"`
	DiscountPct   int       `json:"discount_pct,omitempty" bson:"discount_pct,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
