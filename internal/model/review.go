package model

// Review lifecycle: created unapproved by public submission, approved only by
// explicit admin action, deletable in either state. There is no unpublish.
type Review struct {
	BaseModel
	CustomerName string `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	Rating       int    `gorm:"not null" json:"rating" validate:"min=1,max=5"`
	Comment      string `gorm:"type:text;not null" json:"comment" validate:"min=10"`
	IsApproved   bool   `gorm:"default:false" json:"is_approved"`
}
