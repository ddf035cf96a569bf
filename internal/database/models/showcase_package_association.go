package models

import (
	"github.com/google/uuid"
)

// ShowcasePackageAssociation links a dataset to a showcase that reuses it
type ShowcasePackageAssociation struct {
	PackageID  uuid.UUID `json:"package_id" gorm:"type:uuid;primaryKey"`
	ShowcaseID uuid.UUID `json:"showcase_id" gorm:"type:uuid;primaryKey;index"`

	Package  *Package `json:"-" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Showcase *Package `json:"-" gorm:"foreignKey:ShowcaseID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

// TableName returns the table name for ShowcasePackageAssociation
func (ShowcasePackageAssociation) TableName() string {
	return "showcase_package_association"
}
