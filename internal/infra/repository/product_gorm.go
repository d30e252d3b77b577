package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// List returns the whole catalog with size stocks preloaded.
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Order("created_at asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// Update rewrites the product row and replaces its size stocks in one
// transaction. A nil Sizes slice keeps the stored entries.
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image":       p.Image,
			"brand":       p.Brand,
			"category":    p.Category,
			"discount":    p.Discount,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		if p.Sizes == nil {
			return nil
		}

		if err := tx.Where("product_id = ?", p.ID).Delete(&model.SizeStock{}).Error; err != nil {
			return err
		}
		for i := range p.Sizes {
			p.Sizes[i].ID = 0
			p.Sizes[i].ProductID = p.ID
		}
		if len(p.Sizes) > 0 {
			if err := tx.Create(&p.Sizes).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Product{}, err
	}
	return r.FindByID(ctx, p.ID)
}

func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
