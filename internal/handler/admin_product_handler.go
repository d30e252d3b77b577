package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminProductHandler serves the admin CRUD over products.
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type AdminProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Discount    int64  `json:"discount"`
	// omitted on update keeps the stored sizes
	Sizes []model.SizeStock `json:"sizes"`
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in := adminInput(req)
	if in.Sizes == nil {
		in.Sizes = []model.SizeStock{}
	}

	p, err := h.uc.AdminCreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.AdminUpdateProduct(c.Request().Context(), c.Param("id"), adminInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	if err := h.uc.AdminDeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func adminInput(req AdminProductRequest) usecase.AdminProductInput {
	return usecase.AdminProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Brand:       req.Brand,
		Category:    req.Category,
		Discount:    req.Discount,
		Sizes:       req.Sizes,
	}
}
