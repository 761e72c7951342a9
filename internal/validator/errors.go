// internal/validator/errors.go
//
// 驗證層的錯誤，只描述「哪一種輸入不合法」。
// 是否要轉成領域錯誤（例如 bank.ErrInvalidIdentifier）由呼叫端決定。

package validator

import "errors"

var (
	// ErrIBANFormat 代表字串不是 "ES" + 22 位數字。
	ErrIBANFormat = errors.New("iban: bad format")

	// ErrIBANChecksum 代表格式正確但 MOD-97 餘數不為 1。
	ErrIBANChecksum = errors.New("iban: bad checksum")

	// ErrBBAN 代表無法由輸入計算檢查碼。
	ErrBBAN = errors.New("iban: bad bban")

	// ErrDNIFormat 代表 DNI 不是 8 位數字加一個大寫字母。
	ErrDNIFormat = errors.New("dni: bad format")
)
