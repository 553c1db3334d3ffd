package model

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Weight      float64 `json:"weight" validate:"gt=0"`
	// Price is a cached snapshot taken at create/edit time. It can drift from
	// the master table; the pricing package detects that. A price of 0 is
	// legal and means "contact admin for a quote".
	Price      int64         `gorm:"default:0" json:"price" validate:"gte=0"`
	ImageURL   string        `gorm:"type:text" json:"image_url"`
	IsActive   bool          `gorm:"default:true" json:"is_active"`
	CategoryID *uint         `gorm:"index" json:"category_id"`
	Category   *GoldCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
