package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/duanbtco-star/giaotuyet-api/internal/config"
	"github.com/duanbtco-star/giaotuyet-api/internal/domain/entity"
	"github.com/duanbtco-star/giaotuyet-api/internal/quote"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.MenuItem{},
		&entity.Quote{},
		&entity.Event{},
		&entity.Vendor{},
	)
}

// SeedDefaultData creates the default admin account and the reserved
// service items the quote engine prices tables, staff and frames from.
func SeedDefaultData(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	return seedServiceItems(db)
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &entity.User{
		FullName: "Administrator",
		Email:    "admin@giaotuyet.local",
		Password: string(hashed),
		Role:     entity.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Println("Seeded default admin account (admin@giaotuyet.local)")
	return nil
}

func seedServiceItems(db *gorm.DB) error {
	items := []entity.MenuItem{
		{Code: quote.CodeTableInox, Name: "Bàn inox", Unit: "bàn", SellingPrice: 250000, CostPrice: 250000},
		{Code: quote.CodeTableEvent, Name: "Bàn sự kiện", Unit: "bàn", SellingPrice: 300000, CostPrice: 280000},
		{Code: quote.CodeFrame, Name: "Khung rạp", Unit: "bộ", SellingPrice: 2000000, CostPrice: 1500000},
		{Code: quote.CodeStaff, Name: "Nhân viên phục vụ", Unit: "người", SellingPrice: 350000, CostPrice: 300000},
	}
	for _, item := range items {
		var count int64
		if err := db.Model(&entity.MenuItem{}).Where("code = ?", item.Code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		item.IsActive = true
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}
