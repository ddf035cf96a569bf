package models

import (
	"github.com/google/uuid"
)

// ShowcaseAdmin marks a user as allowed to review and manage every showcase
type ShowcaseAdmin struct {
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

// TableName returns the table name for ShowcaseAdmin
func (ShowcaseAdmin) TableName() string {
	return "showcase_admin"
}
