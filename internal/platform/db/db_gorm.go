package db

import (
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	briefingadapters "briefing_backend/internal/feature/briefing/adapters"
)

// DefaultSQLitePath はDATABASE_URL未設定時に使うローカルファイルです。
const DefaultSQLitePath = "briefings.db"

// Config holds database connection settings.
type Config struct {
	DatabaseURL string // Postgres接続文字列。空の場合はSQLiteにフォールバック
	SQLitePath  string
}

// LoadConfig loads database configuration from environment variables.
func LoadConfig() Config {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = DefaultSQLitePath
	}
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  path,
	}
}

// Dialector は設定に応じたGORMダイアレクタを返します。
// DATABASE_URLが設定されていればPostgres、なければローカルSQLiteを使います。
func Dialector(cfg Config) gorm.Dialector {
	if cfg.DatabaseURL != "" {
		return gpostgres.Open(cfg.DatabaseURL)
	}
	return gsqlite.Open(cfg.SQLitePath)
}

// OpenDB はデータベース接続を確立します。起動直後にDBが未準備の
// 場合に備え、60秒まで3秒間隔でリトライします。
func OpenDB() *gorm.DB {
	cfg := LoadConfig()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(Dialector(cfg), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&briefingadapters.BriefingModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
