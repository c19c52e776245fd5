package config

import (
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parleyhq/parley/internal/models"
)

var SQLiteDB *gorm.DB

// DBPath resolves the SQLite file location. It defaults to conversations.db
// next to the service binary so the store travels with the process, the same
// way the rest of its state does. SQLITE_PATH overrides it.
func DBPath() string {
	if p := os.Getenv("SQLITE_PATH"); p != "" {
		return p
	}
	exe, err := os.Executable()
	if err != nil {
		return "conversations.db"
	}
	return filepath.Join(filepath.Dir(exe), "conversations.db")
}

// InitSQLite opens (creating if absent) the conversation store and migrates
// the schema. AutoMigrate is idempotent: it creates the conversations table
// when missing and leaves existing rows untouched on every later boot.
func InitSQLite() error {
	return OpenSQLite(DBPath())
}

func OpenSQLite(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.ConversationRecord{}); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// SQLite permits a single writer; a small pool keeps request-scoped
	// checkouts cheap without piling up lock contention.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	SQLiteDB = db
	return nil
}
