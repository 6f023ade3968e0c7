package entity

import (
	"time"
)

// Product is a listing owned by its seller. ImgURL is the single cover
// image path; a listing has at most one stored image reference.
type Product struct {
	ID          int64     `db:"product_id"`
	SellerID    int64     `db:"seller_id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Contact     *string   `db:"contact"`
	Category    *string   `db:"category"`
	ImgURL      *string   `db:"img_url"`
	CreateTime  time.Time `db:"create_time"`
}

// ProductWithSeller carries the seller join used by the detail view.
type ProductWithSeller struct {
	Product
	SellerEmail     string  `db:"seller_email"`
	SellerFirstName *string `db:"first_name"`
	SellerLastName  *string `db:"last_name"`
}

// ProductPatch describes a partial update. A nil pointer means the field
// was not submitted and keeps its stored value; Description, Contact and
// Category additionally distinguish "submitted empty" (clear to NULL) via
// their Set flags.
type ProductPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Price          *float64
	Contact        *string
	ContactSet     bool
	Category       *string
	CategorySet    bool
	CoverURL       *string
}
