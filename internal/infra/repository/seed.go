package repository

import "app/internal/domain/model"

// SeedProducts is the dev catalog of the Nhà Bơ storefront.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Váy Công Chúa Elsa",
			Price:       350000,
			Description: "Váy Elsa cho bé gái, chất liệu cotton thoáng mát, thiết kế xinh xắn.",
			Image:       "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Discount:    15,
			Sizes: []model.SizeStock{
				{Size: "1", InStock: 10},
				{Size: "2", InStock: 5},
			},
		},
		{
			ID:          "2",
			Name:        "Áo Thun Bé Trai Siêu Nhân",
			Price:       180000,
			Description: "Áo thun in hình siêu nhân cho bé trai, chất liệu mềm mại.",
			Image:       "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Discount:    10,
			Sizes: []model.SizeStock{
				{Size: "1", InStock: 15},
				{Size: "2", InStock: 8},
			},
		},
		{
			ID:          "3",
			Name:        "Bộ Đồ Chơi Xếp Hình",
			Price:       250000,
			Description: "Bộ xếp hình thông minh giúp phát triển tư duy cho bé.",
			Image:       "https://images.unsplash.com/photo-1503457574465-494bba506e52?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Sizes:       []model.SizeStock{{Size: "1", InStock: 20}},
		},
		{
			ID:          "4",
			Name:        "Set 3 Quần Legging Bé Gái",
			Price:       220000,
			Description: "Set 3 quần legging nhiều màu cho bé gái, co giãn tốt.",
			Image:       "https://images.unsplash.com/photo-1464983953574-0892a716854b?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Sizes: []model.SizeStock{
				{Size: "1", InStock: 0},
				{Size: "2", InStock: 12},
			},
		},
		{
			ID:          "5",
			Name:        "Nón Tai Gấu Dễ Thương",
			Price:       90000,
			Description: "Nón len tai gấu cho bé, giữ ấm và cực kỳ dễ thương.",
			Image:       "https://images.unsplash.com/photo-1517841905240-472988babdf9?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Discount:    20,
			Sizes:       []model.SizeStock{{Size: "1", InStock: 25}},
		},
		{
			ID:          "6",
			Name:        "Balo Hình Thú Cho Bé",
			Price:       150000,
			Description: "Balo nhỏ xinh hình thú cho bé đi học mẫu giáo.",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Sizes:       []model.SizeStock{{Size: "1", InStock: 18}},
		},
		{
			ID:          "7",
			Name:        "Váy Công Chúa Anna",
			Price:       320000,
			Description: "Váy Anna cho bé gái, thiết kế đẹp mắt với họa tiết hoa.",
			Image:       "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Discount:    25,
			Sizes: []model.SizeStock{
				{Size: "1", InStock: 8},
				{Size: "2", InStock: 6},
			},
		},
		{
			ID:          "8",
			Name:        "Áo Thun Spider-Man",
			Price:       160000,
			Description: "Áo thun in hình Spider-Man cho bé trai, chất liệu cotton 100%.",
			Image:       "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Sizes: []model.SizeStock{
				{Size: "1", InStock: 12},
				{Size: "2", InStock: 7},
			},
		},
		{
			ID:          "9",
			Name:        "Quần Jean Bé Trai",
			Price:       280000,
			Description: "Quần jean nam tính cho bé trai, chất liệu bền bỉ.",
			Image:       "https://images.unsplash.com/photo-1464983953574-0892a716854b?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Sizes: []model.SizeStock{
				{Size: "1", InStock: 9},
				{Size: "2", InStock: 11},
			},
		},
		{
			ID:          "10",
			Name:        "Bộ Xếp Hình LEGO",
			Price:       450000,
			Description: "Bộ xếp hình LEGO chính hãng, phát triển tư duy sáng tạo.",
			Image:       "https://images.unsplash.com/photo-1503457574465-494bba506e52?w=400&h=300&fit=crop",
			Brand:       "LEGO",
			Discount:    30,
			Sizes:       []model.SizeStock{{Size: "1", InStock: 15}},
		},
		{
			ID:          "11",
			Name:        "Giày Sneaker Bé Trai",
			Price:       320000,
			Description: "Giày sneaker thể thao cho bé trai, thoải mái khi vận động.",
			Image:       "https://images.unsplash.com/photo-1517841905240-472988babdf9?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Sizes: []model.SizeStock{
				{Size: "1", InStock: 14},
				{Size: "2", InStock: 8},
			},
		},
		{
			ID:          "12",
			Name:        "Túi Đeo Chéo Bé Gái",
			Price:       120000,
			Description: "Túi đeo chéo nhỏ xinh cho bé gái, nhiều màu sắc.",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Brand:       "Nhà Bơ",
			Sizes:       []model.SizeStock{{Size: "1", InStock: 22}},
		},
	}
}

// SeedPromos is the storefront's static promo list.
func SeedPromos() []model.Promo {
	return []model.Promo{
		{
			ID:          "1",
			Name:        "Khuyến mãi mùa hè",
			Description: "Giảm giá các sản phẩm mùa hè",
			Image:       "https://images.unsplash.com/photo-1607082348824-0a96f2a4b9da?w=400&h=300&fit=crop",
			Discount:    20,
			MaxProducts: 3,
			ProductIDs:  []string{"1", "2", "3"},
			IsActive:    true,
			StartDate:   "2024-01-01",
			EndDate:     "2024-12-31",
		},
		{
			ID:          "2",
			Name:        "Flash Sale",
			Description: "Giảm giá nhanh trong 24h",
			Image:       "https://images.unsplash.com/photo-1607082348824-0a96f2a4b9da?w=400&h=300&fit=crop",
			Discount:    30,
			MaxProducts: 2,
			ProductIDs:  []string{"4", "5"},
			IsActive:    true,
			StartDate:   "2024-06-01",
			EndDate:     "2024-06-02",
		},
	}
}
