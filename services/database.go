package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gridsearch-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB 인스턴스
var db *gorm.DB

// InitDatabase - 환경 변수로 MySQL 연결
func InitDatabase() error {
	// 환경 변수에서 DSN 구성
	host := os.Getenv("MYSQL_HOST")
	portStr := os.Getenv("MYSQL_PORT")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	dbname := os.Getenv("MYSQL_DATABASE")

	if host == "" || user == "" || password == "" || dbname == "" {
		return fmt.Errorf("MySQL 환경 변수가 모두 설정되지 않았습니다: MYSQL_HOST, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port == 0 {
		port = 3306 // 기본 포트
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname)

	return OpenDatabase(mysql.Open(dsn))
}

// OpenDatabase - Dialector로 DB 열기 및 마이그레이션 (테스트에서는 sqlite 주입)
func OpenDatabase(dialector gorm.Dialector) error {
	var errDB error
	db, errDB = gorm.Open(dialector, &gorm.Config{})
	if errDB != nil {
		return fmt.Errorf("DB 연결 실패: %v", errDB)
	}

	// AutoMigrate - 테이블 자동 생성
	if err := db.AutoMigrate(&models.SearchRunLog{}); err != nil {
		return fmt.Errorf("마이그레이션 실패: %v", err)
	}

	log.Println("✅ DB 연결 및 마이그레이션 완료")
	return nil
}

// GetDB - GORM 인스턴스 반환
func GetDB() *gorm.DB {
	return db
}
