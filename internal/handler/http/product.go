package http

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/service"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/storage"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/httputil"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/validator"
)

// maxImageSize caps multipart image uploads at 5MB.
const maxImageSize = 5 << 20

// ProductHandler handles HTTP requests for catalog and admin product
// endpoints.
type ProductHandler struct {
	catalog *service.CatalogService
	admin   *service.AdminService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(catalog *service.CatalogService, admin *service.AdminService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		admin:   admin,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateProductRequest is the JSON request body for creating a product.
// image_url attaches a blob already uploaded through the uploads endpoint.
type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=500"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	Category      string  `json:"category" validate:"required"`
	Size          string  `json:"size"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ImageURL      *string `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductRequest is the JSON request body for updating a product.
// An empty image_url clears the stored image.
type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=500"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	Category      *string  `json:"category"`
	Size          *string  `json:"size"`
	StockQuantity *int     `json:"stock_quantity" validate:"omitempty,gte=0"`
	ImageURL      *string  `json:"image_url" validate:"omitempty,url"`
}

// --- Catalog handlers ---

// ListProducts handles GET /api/v1/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	sort := r.URL.Query().Get("sort")

	products, err := h.catalog.ListProducts(r.Context(), category, sort)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products})
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "product id is required"},
		})
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// ListCategories handles GET /api/v1/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.catalog.Categories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: summaries})
}

// --- Admin handlers ---

// CreateProduct handles POST /api/v1/products. It accepts either a JSON
// body or a multipart form carrying an image file alongside the fields.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	input, cleanup, ok := h.decodeCreateInput(w, r)
	if !ok {
		return
	}
	defer cleanup()

	product, err := h.admin.CreateProduct(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: product})
}

// UpdateProduct handles PUT /api/v1/products/{id}. All fields are
// optional; like create, it accepts JSON or a multipart form.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	input, cleanup, ok := h.decodeUpdateInput(w, r)
	if !ok {
		return
	}
	defer cleanup()

	product, err := h.admin.UpdateProduct(r.Context(), id, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// DeleteProduct handles DELETE /api/v1/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.admin.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"id": id, "status": "deleted"}})
}

// --- Decoding helpers ---

func noopCleanup() {}

func (h *ProductHandler) decodeCreateInput(w http.ResponseWriter, r *http.Request) (*service.CreateProductInput, func(), bool) {
	if isMultipart(r) {
		return h.decodeCreateMultipart(w, r)
	}

	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return nil, nil, false
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return nil, nil, false
	}

	return &service.CreateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Size:          req.Size,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}, noopCleanup, true
}

func (h *ProductHandler) decodeCreateMultipart(w http.ResponseWriter, r *http.Request) (*service.CreateProductInput, func(), bool) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid multipart form: " + err.Error()},
		})
		return nil, nil, false
	}

	input := &service.CreateProductInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Size:        r.FormValue("size"),
	}

	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "price must be a valid number"},
			})
			return nil, nil, false
		}
		input.Price = price
	}

	// Unparseable quantities fall back to 0, same as an absent field.
	if v := r.FormValue("stock_quantity"); v != "" {
		qty, err := strconv.Atoi(v)
		if err != nil {
			qty = 0
		}
		input.StockQuantity = qty
	}

	image, cleanup, ok := formImage(w, r)
	if !ok {
		return nil, nil, false
	}
	input.Image = image

	return input, cleanup, true
}

func (h *ProductHandler) decodeUpdateInput(w http.ResponseWriter, r *http.Request) (*service.UpdateProductInput, func(), bool) {
	if isMultipart(r) {
		return h.decodeUpdateMultipart(w, r)
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return nil, nil, false
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return nil, nil, false
	}

	return &service.UpdateProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		Size:          req.Size,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	}, noopCleanup, true
}

func (h *ProductHandler) decodeUpdateMultipart(w http.ResponseWriter, r *http.Request) (*service.UpdateProductInput, func(), bool) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid multipart form: " + err.Error()},
		})
		return nil, nil, false
	}

	input := &service.UpdateProductInput{}

	if r.Form.Has("name") {
		v := r.FormValue("name")
		input.Name = &v
	}
	if r.Form.Has("description") {
		v := r.FormValue("description")
		input.Description = &v
	}
	if r.Form.Has("category") {
		v := r.FormValue("category")
		input.Category = &v
	}
	if r.Form.Has("size") {
		v := r.FormValue("size")
		input.Size = &v
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "price must be a valid number"},
			})
			return nil, nil, false
		}
		input.Price = &price
	}
	// Unparseable quantities fall back to 0, same as an absent field.
	if v := r.FormValue("stock_quantity"); v != "" {
		qty, err := strconv.Atoi(v)
		if err != nil {
			qty = 0
		}
		input.StockQuantity = &qty
	}

	image, cleanup, ok := formImage(w, r)
	if !ok {
		return nil, nil, false
	}
	input.Image = image

	return input, cleanup, true
}

// formImage extracts the optional "image" file from a parsed multipart
// form. The cleanup func closes the file once the service is done with it.
func formImage(w http.ResponseWriter, r *http.Request) (*storage.UploadInput, func(), bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, noopCleanup, true
		}
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid image file: " + err.Error()},
		})
		return nil, nil, false
	}

	return &storage.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        file,
	}, func() { _ = file.Close() }, true
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
