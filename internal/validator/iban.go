// internal/validator/iban.go

// Package validator 集中所有與帳戶無關的輸入驗證：
// 西班牙 IBAN（格式 + ISO 7064 MOD-97-10 檢查碼）、DNI 格式與金額正負。
// 所有函式皆為純函式，不持有共享狀態，可被任意 goroutine 同時呼叫。
package validator

import (
	"fmt"
	"regexp"
)

const (
	// CountryES 為本模組唯一支援的國別碼。
	CountryES = "ES"

	// ibanLen 為西班牙 IBAN 總長度："ES" + 2 位檢查碼 + 20 位 BBAN。
	ibanLen = 24
	bbanLen = 20
)

// ibanPattern 兩端皆錨定，不接受部分比對或前後空白。
var ibanPattern = regexp.MustCompile(`^ES[0-9]{22}$`)

// ValidIBANFormat reports whether s is exactly "ES" followed by 22 ASCII digits.
func ValidIBANFormat(s string) bool {
	return len(s) == ibanLen && ibanPattern.MatchString(s)
}

// ValidIBANChecksum 以 MOD-97-10 驗證檢查碼：
//  1. 將前四個字元移到尾端
//  2. 字母展開為兩位數字（A=10 … Z=35），數字原樣保留
//  3. 逐位累進取餘：acc = (acc*10 + d) % 97，避免大整數溢位
//  4. 餘數為 1 即合法
//
// 呼叫端應先通過 ValidIBANFormat；若遇到 [0-9A-Z] 以外的字元則直接回傳 false。
func ValidIBANChecksum(s string) bool {
	if len(s) < 4 {
		return false
	}
	rem, ok := mod97(s[4:] + s[:4])
	return ok && rem == 1
}

// ValidIBAN 為對外唯一的完整驗證入口：格式與檢查碼皆須成立。
func ValidIBAN(s string) bool {
	return ValidIBANFormat(s) && ValidIBANChecksum(s)
}

// CheckIBAN 與 ValidIBAN 相同，但以錯誤區分失敗原因，
// 讓前端能分別提示「格式錯誤」或「檢查碼錯誤」。
func CheckIBAN(s string) error {
	if !ValidIBANFormat(s) {
		return fmt.Errorf("%w: %q", ErrIBANFormat, s)
	}
	if !ValidIBANChecksum(s) {
		return fmt.Errorf("%w: %q", ErrIBANChecksum, s)
	}
	return nil
}

// IBANCheckDigits 計算 country + bban 對應的兩位檢查碼：98 - mod97(bban + country + "00")。
func IBANCheckDigits(country, bban string) (string, error) {
	if len(country) != 2 || bban == "" {
		return "", fmt.Errorf("%w: country=%q bban=%q", ErrBBAN, country, bban)
	}
	rem, ok := mod97(bban + country + "00")
	if !ok {
		return "", fmt.Errorf("%w: country=%q bban=%q", ErrBBAN, country, bban)
	}
	return fmt.Sprintf("%02d", 98-rem), nil
}

// BuildIBAN 由 20 位數字的西班牙 BBAN 組出含正確檢查碼的 IBAN。
func BuildIBAN(bban string) (string, error) {
	if len(bban) != bbanLen || !allDigits(bban) {
		return "", fmt.Errorf("%w: %q", ErrBBAN, bban)
	}
	cd, err := IBANCheckDigits(CountryES, bban)
	if err != nil {
		return "", err
	}
	return CountryES + cd + bban, nil
}

// mod97 對展開後的數字串逐位取餘，不會實體化完整的大整數。
// 第二個回傳值為 false 表示遇到無法展開的字元。
func mod97(s string) (int, bool) {
	rem := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			rem = (rem*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			// 字母展開後恆為兩位數
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		default:
			return 0, false
		}
	}
	return rem, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
