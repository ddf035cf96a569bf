package database

import (
	"fmt"
	"time"

	"showcase-portal-backend/internal/database/models"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration IDs, in order. Never rename an ID that has shipped.
const (
	MigrationAddShowcaseTables      = "202401010000_add_showcase_tables"
	MigrationAddShowcaseApproval    = "202401020000_add_showcase_approval_table"
	MigrationAddApprovalStatusMtime = "202401030000_add_status_modified"
)

// showcaseApprovalV1 is showcase_approval as first shipped, before status_modified
type showcaseApprovalV1 struct {
	ShowcaseID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Feedback   string          `gorm:"type:text"`
	Status     string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	Showcase   *models.Package `gorm:"foreignKey:ShowcaseID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (showcaseApprovalV1) TableName() string {
	return "showcase_approval"
}

// Migrations returns the ordered schema migrations
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: MigrationAddShowcaseTables,
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.User{},
					&models.Package{},
					&models.ShowcasePackageAssociation{},
					&models.ShowcaseAdmin{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("showcase_admin", "showcase_package_association")
			},
		},
		{
			ID: MigrationAddShowcaseApproval,
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&showcaseApprovalV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("showcase_approval")
			},
		},
		{
			ID: MigrationAddApprovalStatusMtime,
			Migrate: func(tx *gorm.DB) error {
				m := tx.Migrator()
				if m.HasColumn(&models.ShowcaseApproval{}, "StatusModified") {
					return nil
				}
				if err := m.AddColumn(&models.ShowcaseApproval{}, "StatusModified"); err != nil {
					return err
				}
				return tx.Model(&models.ShowcaseApproval{}).
					Where("status_modified IS NULL").
					Update("status_modified", time.Now().UTC()).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropColumn(&models.ShowcaseApproval{}, "StatusModified")
			},
		},
	}
}

// Migrate applies every pending migration. A clean database gets the full schema in one step.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())

	m.InitSchema(func(tx *gorm.DB) error {
		logrus.Info("clean database detected, running full schema initialization")
		return tx.AutoMigrate(
			&models.User{},
			&models.Package{},
			&models.ShowcasePackageAssociation{},
			&models.ShowcaseAdmin{},
			&models.ShowcaseApproval{},
		)
	})

	if err := m.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// RollbackLast reverts the most recent migration
func RollbackLast(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, Migrations())
	if err := m.RollbackLast(); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
