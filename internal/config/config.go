// internal/config/config.go

// Package config 讀取環境變數組成執行期設定。
// .env 由 cmd 層以 godotenv 載入（可選），本套件只讀 os.Getenv。
package config

import (
	"fmt"
	"os"

	"ibanbank/internal/money"

	"github.com/shopspring/decimal"
)

type AppConfig struct {
	LogMode  string // dev | prod
	Currency string // 顯示用貨幣符號

	// 啟動時預先建立的帳戶；SeedIBAN 為空則不建立
	SeedIBAN    string
	SeedHolder  string
	SeedBalance decimal.Decimal
}

// Load 組出設定；BANK_SEED_BALANCE 無法解析時回傳錯誤。
func Load() (AppConfig, error) {
	cfg := AppConfig{
		LogMode:    getEnv("BANK_LOG_MODE", "dev"),
		Currency:   getEnv("BANK_CURRENCY", "€"),
		SeedIBAN:   getEnv("BANK_SEED_IBAN", "ES7620770024003102575766"),
		SeedHolder: getEnv("BANK_SEED_DNI", "12345678A"),
	}
	bal, err := money.Parse(getEnv("BANK_SEED_BALANCE", "1000.00"))
	if err != nil {
		return cfg, fmt.Errorf("BANK_SEED_BALANCE: %w", err)
	}
	cfg.SeedBalance = bal
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
