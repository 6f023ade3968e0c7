package response

import (
	"time"

	"campus-market/internal/data/entity"
	"campus-market/pkg/utils"
)

type ProductItem struct {
	ProductID   int64     `json:"product_id"`
	SellerID    int64     `json:"seller_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Contact     *string   `json:"contact"`
	Category    *string   `json:"category"`
	ImgURL      *string   `json:"img_url"`
	CreateTime  time.Time `json:"create_time"`
}

type ProductListResponse struct {
	Success  bool          `json:"success"`
	Products []ProductItem `json:"products"`
}

// ProductDetail adds the seller join: images is a zero- or one-element
// list holding the cover path, seller_name falls back to the seller email
// when both name parts are absent.
type ProductDetail struct {
	ProductItem
	SellerEmail string   `json:"seller_email"`
	SellerName  string   `json:"seller_name"`
	Images      []string `json:"images"`
}

type ProductDetailResponse struct {
	Success bool          `json:"success"`
	Product ProductDetail `json:"product"`
}

type ProductMutationResponse struct {
	Success   bool     `json:"success"`
	ProductID int64    `json:"product_id"`
	Images    []string `json:"images"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
	Deleted bool `json:"deleted"`
}

func ProductToItem(product *entity.Product) ProductItem {
	return ProductItem{
		ProductID:   product.ID,
		SellerID:    product.SellerID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Contact:     product.Contact,
		Category:    product.Category,
		ImgURL:      product.ImgURL,
		CreateTime:  product.CreateTime,
	}
}

func ProductToDetail(product *entity.ProductWithSeller) ProductDetail {
	images := []string{}
	if product.ImgURL != nil && *product.ImgURL != "" {
		images = append(images, *product.ImgURL)
	}

	sellerName := utils.JoinName(product.SellerFirstName, product.SellerLastName)
	if sellerName == "" {
		sellerName = product.SellerEmail
	}

	return ProductDetail{
		ProductItem: ProductToItem(&product.Product),
		SellerEmail: product.SellerEmail,
		SellerName:  sellerName,
		Images:      images,
	}
}
