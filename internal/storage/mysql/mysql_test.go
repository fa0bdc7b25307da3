package mysql

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
)

var testStorage *Storage

func TestMain(m *testing.M) {
	// Test veritabanına bağlan
	db, err := sql.Open("mysql", "root:@tcp(mysql-8.0:3306)/takip_test?parseTime=true")
	if err != nil {
		panic(fmt.Errorf("test veritabanına bağlanılamadı: %w", err))
	}
	defer db.Close()

	// Bağlantıyı kontrol et
	if err := db.Ping(); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	testStorage = &Storage{db: db}

	code := m.Run()

	os.Exit(code)
}
