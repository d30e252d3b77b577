package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/cart"
	"app/internal/domain/catalog"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase is the /cart business logic. It loads the stored cart,
// applies the pure cart transitions and writes the whole state back.
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type AddToCartInput struct {
	ProductID  string
	Selections []model.SizeSelection
}

type UpdateCartInput struct {
	ProductID string
	Size      string
	Quantity  int64
}

func (u *CartUsecase) GetCart(ctx context.Context, userID string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	c, err := u.cartRepo.Get(ctx, userID)
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return c, nil
}

// AddToCart commits the positive-quantity size selections of one
// product into the cart. A sized product with no positive selection is
// rejected without touching the stored state; requested quantities are
// checked against the per-size stock, counting what the cart already
// holds.
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, in AddToCartInput) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !catalog.IsAvailable(p) {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	// only positive quantities are committed; duplicate entries for the
	// same size are merged so the stock check sees their sum
	committed := make([]model.SizeSelection, 0, len(in.Selections))
	index := make(map[string]int)
	for _, sel := range in.Selections {
		if sel.Quantity <= 0 {
			continue
		}
		if i, ok := index[sel.Size]; ok {
			committed[i].Quantity += sel.Quantity
			continue
		}
		index[sel.Size] = len(committed)
		committed = append(committed, sel)
	}
	if len(committed) == 0 {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "no size selected")
	}

	c, err := u.cartRepo.Get(ctx, userID)
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	for _, sel := range committed {
		s, ok := catalog.FindSize(p, sel.Size)
		if !ok {
			return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid size "+sel.Size)
		}
		if cart.Quantity(c, p.ID, sel.Size)+sel.Quantity > s.InStock {
			return model.Cart{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
		}
	}

	snap := cart.Snapshot{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
	}
	for _, sel := range committed {
		c = cart.Add(c, snap, sel.Size, sel.Quantity)
	}

	if err := u.cartRepo.Save(ctx, userID, c); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return c, nil
}

// UpdateQuantity sets the quantity of one (product, size) line; a
// quantity <= 0 removes it. Updating a line that is not in the cart is
// a no-op.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID string, in UpdateCartInput) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	c, err := u.cartRepo.Get(ctx, userID)
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	c = cart.UpdateQuantity(c, in.ProductID, in.Size, in.Quantity)

	if err := u.cartRepo.Save(ctx, userID, c); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return c, nil
}

// RemoveFromCart deletes the (product, size) line; an empty size
// removes every line of the product. Removing an absent line is a
// no-op.
func (u *CartUsecase) RemoveFromCart(ctx context.Context, userID string, productID string, size string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(productID) == "" {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	c, err := u.cartRepo.Get(ctx, userID)
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	c = cart.Remove(c, productID, size)

	if err := u.cartRepo.Save(ctx, userID, c); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return c, nil
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID string) (model.Cart, error) {
	if userID == "" {
		return model.Cart{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	empty := cart.Clear(model.Cart{})
	if err := u.cartRepo.Save(ctx, userID, empty); err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return empty, nil
}

type GroupedCartOutput struct {
	Groups []cart.Group `json:"groups"`
	Total  int64        `json:"total"`
}

// GroupedCart returns the per-product-name aggregation used by the
// cart page. Derived on every call.
func (u *CartUsecase) GroupedCart(ctx context.Context, userID string) (GroupedCartOutput, error) {
	c, err := u.GetCart(ctx, userID)
	if err != nil {
		return GroupedCartOutput{}, err
	}
	return GroupedCartOutput{
		Groups: cart.GroupByName(c),
		Total:  c.Total,
	}, nil
}
