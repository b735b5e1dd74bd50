package services

import (
	"path/filepath"
	"testing"

	"gridsearch-backend/models"

	"gorm.io/driver/sqlite"
)

// setupTestDB - 테스트용 sqlite DB로 전역 DB 교체
func setupTestDB(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	if err := OpenDatabase(sqlite.Open(path)); err != nil {
		t.Fatalf("테스트 DB 초기화 실패: %v", err)
	}
}

func TestOpenDatabaseMigratesRunLog(t *testing.T) {
	setupTestDB(t)

	if GetDB() == nil {
		t.Fatalf("GetDB returned nil after open")
	}
	if !GetDB().Migrator().HasTable(&models.SearchRunLog{}) {
		t.Fatalf("search run log table missing after migration")
	}
}

func TestInitDatabaseRequiresEnv(t *testing.T) {
	t.Setenv("MYSQL_HOST", "")
	t.Setenv("MYSQL_USER", "")
	t.Setenv("MYSQL_PASSWORD", "")
	t.Setenv("MYSQL_DATABASE", "")

	if err := InitDatabase(); err == nil {
		t.Fatalf("missing env vars must fail")
	}
}
