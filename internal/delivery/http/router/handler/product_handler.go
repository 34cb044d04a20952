package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers. It serves
// both the public catalog routes and the seller's own-listing routes.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	InStock     bool    `json:"in_stock"`
}

func (r *productRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		InStock:     r.InStock,
	}
}

// productID parses the :id path parameter. A malformed ID is indistinguishable
// from a missing product to the client, so it maps to the same 404.
func productID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrProductNotFound
	}

	return id, nil
}

// ListProducts handles the public catalog listing, optionally filtered by category.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct handles the public product page: the product plus its reviews
// and rating summary.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product retrieved successfully")
}

// ShareQRCode renders a PNG QR code linking to the public product page.
func (h *ProductHandler) ShareQRCode(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.uc.GenerateShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMyProducts handles the seller's own-listing index.
func (h *ProductHandler) ListMyProducts(c echo.Context) error {
	sess := middleware.GetSession(c)

	products, err := h.uc.ListSellerProducts(c.Request().Context(), sess.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetMyProduct returns one of the seller's own products.
func (h *ProductHandler) GetMyProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	sess := middleware.GetSession(c)

	product, err := h.uc.GetSellerProduct(c.Request().Context(), sess.UserID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct handles the listing creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sess := middleware.GetSession(c)

	product, err := h.uc.CreateProduct(c.Request().Context(), sess.UserID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct handles the full update of one of the seller's own products.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sess := middleware.GetSession(c)

	product, err := h.uc.UpdateProduct(c.Request().Context(), sess.UserID, id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes one of the seller's own products along with its reviews.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	sess := middleware.GetSession(c)

	if err := h.uc.DeleteProduct(c.Request().Context(), sess.UserID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted successfully")
}
