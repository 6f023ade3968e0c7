package repository

import (
	"context"
	"fmt"

	"campus-market/internal/data/entity"
	"campus-market/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product, coverURL *string) error
	FindRecent(ctx context.Context, limit int) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByIDWithSeller(ctx context.Context, id int64) (*entity.ProductWithSeller, error)
	Update(ctx context.Context, id int64, patch *entity.ProductPatch) error
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log,
	}
}

const productColumns = `product_id, seller_id, title, description, price, contact,
		       category, img_url, create_time`

// Create inserts the listing and sets the cover image in one transaction,
// so a crash cannot leave a row without its accepted cover reference.
func (pr *productRepository) Create(ctx context.Context, product *entity.Product, coverURL *string) error {
	tx, err := pr.db.Begin(ctx)
	if err != nil {
		pr.log.Error("Failed to begin create transaction", zap.Error(err))
		return fmt.Errorf("begin create product: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO product (seller_id, title, description, price, contact, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING product_id, create_time
	`

	err = tx.QueryRow(ctx, query,
		product.SellerID,
		product.Title,
		product.Description,
		product.Price,
		product.Contact,
		product.Category,
	).Scan(&product.ID, &product.CreateTime)

	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.Int64("seller_id", product.SellerID),
			zap.String("title", product.Title),
		)
		return fmt.Errorf("create product: %w", err)
	}

	if coverURL != nil {
		_, err = tx.Exec(ctx,
			`UPDATE product SET img_url = $2 WHERE product_id = $1`,
			product.ID, *coverURL)
		if err != nil {
			pr.log.Error("Failed to set cover image",
				zap.Error(err),
				zap.Int64("product_id", product.ID),
			)
			return fmt.Errorf("set cover image %d: %w", product.ID, err)
		}
		product.ImgURL = coverURL
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create product: %w", err)
	}

	return nil
}

// FindRecent returns the newest listings, descending by creation time.
func (pr *productRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM product
		ORDER BY create_time DESC
		LIMIT $1`

	rows, err := pr.db.Query(ctx, query, limit)
	if err != nil {
		pr.log.Error("Failed to list products",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list products limit %d: %w", limit, err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.SellerID,
			&product.Title,
			&product.Description,
			&product.Price,
			&product.Contact,
			&product.Category,
			&product.ImgURL,
			&product.CreateTime,
		)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (pr *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE product_id = $1`

	var product entity.Product
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.SellerID,
		&product.Title,
		&product.Description,
		&product.Price,
		&product.Contact,
		&product.Category,
		&product.ImgURL,
		&product.CreateTime,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

func (pr *productRepository) FindByIDWithSeller(ctx context.Context, id int64) (*entity.ProductWithSeller, error) {
	query := `
		SELECT p.product_id, p.seller_id, p.title, p.description, p.price,
		       p.contact, p.category, p.img_url, p.create_time,
		       u.email, u.first_name, u.last_name
		FROM product p
		JOIN users u ON p.seller_id = u.user_id
		WHERE p.product_id = $1
	`

	var product entity.ProductWithSeller
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.SellerID,
		&product.Title,
		&product.Description,
		&product.Price,
		&product.Contact,
		&product.Category,
		&product.ImgURL,
		&product.CreateTime,
		&product.SellerEmail,
		&product.SellerFirstName,
		&product.SellerLastName,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product with seller",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product with seller %d: %w", id, err)
	}

	return &product, nil
}

// Update applies only the fields the patch marks as submitted.
func (pr *productRepository) Update(ctx context.Context, id int64, patch *entity.ProductPatch) error {
	set := []string{}
	args := []any{id}

	addArg := func(clause string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf(clause, len(args)))
	}

	if patch.Title != nil {
		addArg("title = $%d", *patch.Title)
	}
	if patch.DescriptionSet {
		addArg("description = $%d", patch.Description)
	}
	if patch.Price != nil {
		addArg("price = $%d", *patch.Price)
	}
	if patch.ContactSet {
		addArg("contact = $%d", patch.Contact)
	}
	if patch.CategorySet {
		addArg("category = $%d", patch.Category)
	}
	if patch.CoverURL != nil {
		addArg("img_url = $%d", *patch.CoverURL)
	}

	if len(set) == 0 {
		return nil
	}

	query := "UPDATE product SET "
	for i, clause := range set {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += " WHERE product_id = $1"

	result, err := pr.db.Exec(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("update product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes the listing row and any auxiliary per-image rows in one
// transaction.
func (pr *productRepository) Delete(ctx context.Context, id int64) error {
	tx, err := pr.db.Begin(ctx)
	if err != nil {
		pr.log.Error("Failed to begin delete transaction", zap.Error(err))
		return fmt.Errorf("begin delete product: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, id); err != nil {
		pr.log.Error("Failed to delete product images",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("delete product images %d: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM product WHERE product_id = $1`, id)
	if err != nil {
		pr.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete product: %w", err)
	}

	pr.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}
