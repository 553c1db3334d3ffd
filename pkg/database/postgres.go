package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-gold-catalog/internal/model"
)

func ConnectDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // pooled/transaction-mode hosts dislike implicit prepared statements
	}), &gorm.Config{
		Logger:      newLogger,
		PrepareStmt: false,
	})

	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db
}

// Migrate creates the schema. The two master price tables share one Go struct,
// so they are migrated per physical table and each gets its own unique
// (category_id, weight) index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.GoldCategory{}, &model.Product{}, &model.Review{}, &model.User{}); err != nil {
		return err
	}

	for _, table := range []model.PriceTable{model.TableSell, model.TableBuyback} {
		name, err := table.TableName()
		if err != nil {
			return err
		}
		if err := db.Table(name).AutoMigrate(&model.WeightPrice{}); err != nil {
			return err
		}
		idx := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_category_weight ON %s (category_id, weight)",
			name, name,
		)
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}
	return nil
}
