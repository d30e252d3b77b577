package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/assets"
	"app/internal/domain/catalog"
	"app/internal/domain/model"
	"app/internal/domain/pricing"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

// ProductUsecase serves the public listing and the admin CRUD over the
// catalog. The storefront itself only ever reads.
type ProductUsecase struct {
	productRepo repo.ProductRepository
	resolver    *assets.Resolver
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, resolver *assets.Resolver) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		resolver:    resolver,
	}
}

// GET /products query
type ListProductsInput struct {
	Q           string
	Brand       string
	InStockOnly bool
	Sort        string
}

// ProductView is a product decorated for display: the image URL is
// resolved, the price rendered in đồng and, when a discount applies,
// the derived pre-discount price is attached for the strikethrough.
type ProductView struct {
	model.Product
	PriceLabel         string `json:"priceLabel"`
	OriginalPrice      int64  `json:"originalPrice,omitempty"`
	OriginalPriceLabel string `json:"originalPriceLabel,omitempty"`
}

type ProductListOutput struct {
	Items  []ProductView `json:"items"`
	Total  int           `json:"total"`
	Brands []string      `json:"brands"`
}

// ListProducts runs the filter/sort pipeline over the whole catalog.
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if !catalog.ValidSort(in.Sort) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	all, err := u.productRepo.List(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	filtered := catalog.FilterAndSort(all, catalog.Filter{
		Search:      strings.TrimSpace(in.Q),
		Brand:       in.Brand,
		InStockOnly: in.InStockOnly,
		Sort:        in.Sort,
	})
	items := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, u.view(p))
	}

	return ProductListOutput{
		Items:  items,
		Total:  len(items),
		Brands: catalog.Brands(all),
	}, nil
}

// SizeOptionView carries the selectable quantity range of one size,
// 0 up to its stock; the size picker renders it as-is.
type SizeOptionView struct {
	Size    string  `json:"size"`
	Options []int64 `json:"options"`
}

type ProductDetailOutput struct {
	ProductView
	SizeOptions []SizeOptionView `json:"sizeOptions"`
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (ProductDetailOutput, error) {
	if strings.TrimSpace(productID) == "" {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	opts := make([]SizeOptionView, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		opts = append(opts, SizeOptionView{Size: s.Size, Options: catalog.QuantityOptions(s)})
	}

	return ProductDetailOutput{
		ProductView: u.view(p),
		SizeOptions: opts,
	}, nil
}

func (u *ProductUsecase) view(p model.Product) ProductView {
	p.Image = u.resolver.URL(p.Image)
	v := ProductView{
		Product:    p,
		PriceLabel: pricing.FormatPrice(p.Price),
	}
	if orig, ok := pricing.OriginalPrice(p.Price, p.Discount); ok {
		v.OriginalPrice = orig
		v.OriginalPriceLabel = pricing.FormatPrice(orig)
	}
	return v
}

type AdminProductInput struct {
	Name        string
	Description string
	Price       int64
	Image       string
	Brand       string
	Category    string
	Discount    int64
	// nil on update means "keep the stored sizes"
	Sizes []model.SizeStock
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, in AdminProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Brand:       in.Brand,
		Category:    in.Category,
		Discount:    in.Discount,
		Sizes:       prunedSizes(in.Sizes),
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, productID string, in AdminProductInput) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	sizes := in.Sizes
	if sizes != nil {
		sizes = prunedSizes(sizes)
	}

	p, err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Brand:       in.Brand,
		Category:    in.Category,
		Discount:    in.Discount,
		Sizes:       sizes,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateProductInput(in AdminProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Discount < 0 || in.Discount >= 100 {
		return NewHTTPError(http.StatusBadRequest, "discount must be in [0,100)")
	}

	seen := make(map[string]bool)
	for _, s := range in.Sizes {
		if s.InStock < 0 {
			return NewHTTPError(http.StatusBadRequest, "inStock must be >= 0")
		}
		if seen[s.Size] {
			return NewHTTPError(http.StatusBadRequest, "duplicate size "+s.Size)
		}
		seen[s.Size] = true
	}
	return nil
}

// prunedSizes drops entries with no stock; the admin form submits the
// full size grid and only positive rows are kept.
func prunedSizes(sizes []model.SizeStock) []model.SizeStock {
	out := make([]model.SizeStock, 0, len(sizes))
	for _, s := range sizes {
		if s.InStock > 0 {
			out = append(out, s)
		}
	}
	return out
}
