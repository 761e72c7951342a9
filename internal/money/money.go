// internal/money/money.go

// Package money 定義金額的數值政策：
// 一律使用 decimal.Decimal，並以銀行家捨入法正規化到「分」（小數兩位）。
// 不使用二進位浮點數，因此多次存提款後不會累積表示誤差。
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Places 為金額保留的小數位數。
const Places = 2

// ErrParse 代表輸入字串不是合法的十進位金額。
var ErrParse = errors.New("money: not a decimal amount")

// Normalize 以銀行家捨入法將 d 捨入到小數兩位。
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Places)
}

// IsCents 回報 d 是否能以小數兩位精確表示。
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Places))
}

// Parse 解析使用者輸入的金額，接受 "150"、"150.5" 與逗號小數 "150,50"。
// 同時含有點與逗號（千分位）的輸入視為格式錯誤，避免歧義。
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrParse)
	}
	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") || strings.Count(s, ",") > 1 {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrParse, s)
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return Normalize(d), nil
}

// MustParse 供測試與常數初始化使用；解析失敗時 panic。
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Format 以兩位小數輸出並加上貨幣符號，例如 "1050.00€"。
func Format(d decimal.Decimal, symbol string) string {
	return d.StringFixed(Places) + symbol
}
