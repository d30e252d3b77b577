package model

// Promo is a read-only promotional campaign shown on the storefront.
type Promo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Discount    int64    `json:"discount"`
	MaxProducts int      `json:"maxProducts"`
	ProductIDs  []string `json:"products"`
	IsActive    bool     `json:"isActive"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}
