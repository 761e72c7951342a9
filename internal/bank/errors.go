// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 每個錯誤對應一種失敗類別，呼叫端以 errors.Is 判斷；細節以 %w 包裝附加。
// 所有回傳這些錯誤的操作都不會改變任何帳戶狀態。

package bank

import "errors"

var (
	// ErrInvalidIdentifier 代表 IBAN 格式錯誤或檢查碼錯誤。
	// 會同時包裝 validator.ErrIBANFormat / validator.ErrIBANChecksum 以區分原因。
	ErrInvalidIdentifier = errors.New("invalid account identifier")

	// ErrInvalidHolder 代表持有人 DNI 格式錯誤（8 位數字 + 1 個大寫字母）。
	ErrInvalidHolder = errors.New("invalid holder dni")

	// ErrInvalidAmount 代表金額非法（存提轉 <= 0，或初始餘額為負）。
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds 代表提款或轉帳金額超過餘額。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTarget 代表轉帳目標不是可用的帳戶（nil）。
	ErrInvalidTarget = errors.New("invalid transfer target")

	// ErrSameAccount 代表轉帳來源與目標為同一帳戶。
	ErrSameAccount = errors.New("from and to are same")

	// ErrDuplicateIdentifier 代表註冊表中已存在相同 IBAN。
	ErrDuplicateIdentifier = errors.New("account already exists")

	// ErrNotFound 代表帳戶不存在。
	ErrNotFound = errors.New("account not found")
)
