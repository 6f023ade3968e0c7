package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"campus-market/internal/data/entity"
	"campus-market/internal/data/repository"
	"campus-market/internal/dto/request"
	"campus-market/internal/dto/response"
	"campus-market/pkg/upload"
	"campus-market/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	// listLimit caps the listing page; there is no further pagination.
	listLimit = 100
	// maxProductImages caps accepted uploads per mutation.
	maxProductImages = 5
)

type ProductService interface {
	List(ctx context.Context) (*response.ProductListResponse, error)
	Get(ctx context.Context, id int64) (*response.ProductDetailResponse, error)
	Create(ctx context.Context, sellerID int64, req *request.CreateProductRequest, files []*multipart.FileHeader) (*response.ProductMutationResponse, error)
	Update(ctx context.Context, userID, id int64, req *request.UpdateProductRequest, files []*multipart.FileHeader) (*response.ProductMutationResponse, error)
	Delete(ctx context.Context, userID, id int64) (*response.DeleteResponse, error)
}

type productService struct {
	productRepo repository.ProductRepository
	storage     upload.Storage
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, storage upload.Storage, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		storage:     storage,
		log:         log,
	}
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, invalid("price must be a non-negative number")
	}
	return price, nil
}

func (ps *productService) List(ctx context.Context) (*response.ProductListResponse, error) {
	products, err := ps.productRepo.FindRecent(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	items := make([]response.ProductItem, len(products))
	for i, product := range products {
		items[i] = response.ProductToItem(product)
	}

	return &response.ProductListResponse{Success: true, Products: items}, nil
}

func (ps *productService) Get(ctx context.Context, id int64) (*response.ProductDetailResponse, error) {
	product, err := ps.productRepo.FindByIDWithSeller(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, notFound("product not found")
	}

	return &response.ProductDetailResponse{
		Success: true,
		Product: response.ProductToDetail(product),
	}, nil
}

// Create stores every accepted upload and returns all of their URLs, but
// only the first becomes the persisted cover image.
func (ps *productService) Create(ctx context.Context, sellerID int64, req *request.CreateProductRequest, files []*multipart.FileHeader) (*response.ProductMutationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalid("title and price are required")
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	urls, cover, err := ps.storeImages(files)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: optional(req.Description),
		Price:       price,
		Contact:     optional(req.Contact),
		Category:    optional(req.Category),
	}

	if err := ps.productRepo.Create(ctx, product, cover); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	ps.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.Int64("seller_id", sellerID),
		zap.Int("images", len(urls)))

	return &response.ProductMutationResponse{
		Success:   true,
		ProductID: product.ID,
		Images:    urls,
	}, nil
}

// Update applies only the submitted fields; a new upload replaces the
// cover image with the first file.
func (ps *productService) Update(ctx context.Context, userID, id int64, req *request.UpdateProductRequest, files []*multipart.FileHeader) (*response.ProductMutationResponse, error) {
	product, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, notFound("product not found")
	}
	if product.SellerID != userID {
		ps.log.Warn("Update by non-owner",
			zap.Int64("product_id", id),
			zap.Int64("seller_id", product.SellerID),
			zap.Int64("user_id", userID))
		return nil, forbidden("you do not own this product")
	}

	patch := &entity.ProductPatch{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		patch.Title = &title
	}
	if req.Description != nil {
		patch.DescriptionSet = true
		patch.Description = optional(*req.Description)
	}
	if req.Price != nil && *req.Price != "" {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		patch.Price = &price
	}
	if req.Contact != nil {
		patch.ContactSet = true
		patch.Contact = optional(*req.Contact)
	}
	if req.Category != nil {
		patch.CategorySet = true
		patch.Category = optional(*req.Category)
	}

	urls, cover, err := ps.storeImages(files)
	if err != nil {
		return nil, err
	}
	patch.CoverURL = cover

	if err := ps.productRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("product not found")
		}
		return nil, fmt.Errorf("update product: %w", err)
	}

	ps.log.Info("Product updated",
		zap.Int64("product_id", id),
		zap.Int64("user_id", userID))

	return &response.ProductMutationResponse{
		Success:   true,
		ProductID: id,
		Images:    urls,
	}, nil
}

func (ps *productService) Delete(ctx context.Context, userID, id int64) (*response.DeleteResponse, error) {
	product, err := ps.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, notFound("product not found")
	}
	if product.SellerID != userID {
		ps.log.Warn("Delete by non-owner",
			zap.Int64("product_id", id),
			zap.Int64("seller_id", product.SellerID),
			zap.Int64("user_id", userID))
		return nil, forbidden("you do not own this product")
	}

	// Best-effort file cleanup; a leftover file never fails the delete
	if product.ImgURL != nil {
		if err := ps.storage.Remove(*product.ImgURL); err != nil {
			ps.log.Warn("Failed to remove cover image file",
				zap.Error(err),
				zap.Int64("product_id", id),
				zap.String("url", *product.ImgURL))
		}
	}

	if err := ps.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("product not found")
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}

	return &response.DeleteResponse{Success: true, Deleted: true}, nil
}

// storeImages persists up to maxProductImages uploads and returns every
// stored URL plus the first as the cover reference. The slice is non-nil
// so responses encode an empty list rather than null.
func (ps *productService) storeImages(files []*multipart.FileHeader) ([]string, *string, error) {
	if len(files) > maxProductImages {
		return nil, nil, invalid(fmt.Sprintf("at most %d images are allowed", maxProductImages))
	}

	urls := []string{}
	for _, file := range files {
		url, err := ps.storage.Save(file)
		if err != nil {
			ps.log.Error("Failed to store product image",
				zap.Error(err), zap.String("filename", file.Filename))
			return nil, nil, fmt.Errorf("store image: %w", err)
		}
		urls = append(urls, url)
	}

	var cover *string
	if len(urls) > 0 {
		cover = &urls[0]
	}
	return urls, cover, nil
}
