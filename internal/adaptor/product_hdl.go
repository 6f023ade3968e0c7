package adaptor

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"campus-market/internal/dto/request"
	"campus-market/internal/usecase"
	"campus-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseOK(w, resp)
}

// Get handles GET /product/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseOK(w, resp)
}

// Create handles POST /product with up to 5 files in field "images"
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form")
		return
	}

	req := request.CreateProductRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Contact:     r.FormValue("contact"),
		Category:    r.FormValue("category"),
	}

	resp, err := h.service.Create(r.Context(), userID, &req, h.imageFiles(r))
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseOK(w, resp)
}

// Update handles PUT /product/{id}. Only submitted form keys change the
// stored row.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form")
		return
	}

	req := request.UpdateProductRequest{
		Title:       formField(r, "title"),
		Description: formField(r, "description"),
		Price:       formField(r, "price"),
		Contact:     formField(r, "contact"),
		Category:    formField(r, "category"),
	}

	resp, err := h.service.Update(r.Context(), userID, id, &req, h.imageFiles(r))
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseOK(w, resp)
}

// Delete handles DELETE /product/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Delete(r.Context(), userID, id)
	if err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseOK(w, resp)
}

func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) imageFiles(r *http.Request) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	return r.MultipartForm.File["images"]
}

// formField reports a form value only when its key was actually submitted,
// so absent fields stay distinguishable from empty ones.
func formField(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}
