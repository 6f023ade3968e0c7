package request

type CreateProductRequest struct {
	Title       string `validate:"required"`
	Description string
	Price       string `validate:"required"`
	Contact     string
	Category    string
}

// UpdateProductRequest distinguishes absent fields from submitted ones: a
// nil pointer means the form key was not sent and the stored value is kept.
// Submitting an empty description/contact/category clears it; an empty
// title or price keeps the stored value.
type UpdateProductRequest struct {
	Title       *string
	Description *string
	Price       *string
	Contact     *string
	Category    *string
}
