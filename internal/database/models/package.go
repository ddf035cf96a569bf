package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Package is a catalog entry. Showcases and the datasets they reuse share this table
// and are told apart by Type.
type Package struct {
	ID                    uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name                  string          `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Title                 string          `json:"title" gorm:"size:255"`
	Notes                 string          `json:"notes" gorm:"type:text"`
	Type                  PackageType     `json:"type" gorm:"type:varchar(20);not null;default:'dataset';index"`
	State                 PackageState    `json:"state" gorm:"type:varchar(20);not null;default:'active';index"`
	CreatorUserID         *uuid.UUID      `json:"creator_user_id,omitempty" gorm:"type:uuid;index"`
	URL                   string          `json:"url" gorm:"size:500"`
	ImageURL              string          `json:"image_url" gorm:"size:500"`
	ReuseType             ReuseType       `json:"reuse_type,omitempty" gorm:"type:varchar(50)"`
	TitleAr               string          `json:"title_ar,omitempty" gorm:"size:255"`
	NotesAr               string          `json:"notes_ar,omitempty" gorm:"type:text"`
	OriginalRelatedItemID string          `json:"original_related_item_id,omitempty" gorm:"size:100"`
	Extras                json.RawMessage `json:"extras,omitempty" gorm:"type:jsonb"`
	MetadataCreated       time.Time       `json:"metadata_created" gorm:"autoCreateTime;index"`
	MetadataModified      time.Time       `json:"metadata_modified" gorm:"autoUpdateTime"`

	Creator *User `json:"-" gorm:"foreignKey:CreatorUserID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Package
func (Package) TableName() string {
	return "packages"
}

// BeforeCreate sets the UUID and defaults if not already set
func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Type == "" {
		p.Type = PackageTypeDataset
	}
	if p.State == "" {
		p.State = PackageStateActive
	}
	return nil
}

// IsShowcase reports whether the package is a showcase
func (p *Package) IsShowcase() bool {
	return p.Type == PackageTypeShowcase
}

// IsActive reports whether the package is active
func (p *Package) IsActive() bool {
	return p.State == PackageStateActive
}

// IsCreatedBy reports whether userID created the package
func (p *Package) IsCreatedBy(userID *uuid.UUID) bool {
	return userID != nil && p.CreatorUserID != nil && *p.CreatorUserID == *userID
}
