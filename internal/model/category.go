package model

import "time"

// GoldCategory groups price rows and products by edition, usually a year
// label such as "2025". Renaming never touches the attached price rows.
type GoldCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (GoldCategory) TableName() string {
	return "gold_categories"
}
