// internal/cli/response.go
//
// 本檔負責統一輸出格式。
// 所有領域錯誤集中在 message 轉成使用者可讀的訊息，
// 讓各處理函式只需呼叫 printErr，不必各自判斷錯誤類別。

package cli

import (
	"errors"
	"fmt"

	"ibanbank/internal/bank"
	"ibanbank/internal/money"
	"ibanbank/internal/validator"

	"github.com/shopspring/decimal"
)

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// amount 以兩位小數加貨幣符號輸出金額。
func (c *Console) amount(d decimal.Decimal) string {
	return money.Format(d, c.currency)
}

// printErr 輸出錯誤訊息，並以 warn 等級記錄原始錯誤。
func (c *Console) printErr(err error) {
	c.printf("Transaction Error: %s\n", message(err))
	c.log.Warn("operation failed", "err", err)
}

// message 將錯誤對應到使用者訊息；IBAN 的格式與檢查碼錯誤分開提示。
// 未知錯誤直接輸出 err.Error()。
func message(err error) string {
	switch {
	case errors.Is(err, validator.ErrIBANFormat):
		return "Invalid IBAN format. Must be ES followed by 22 digits."
	case errors.Is(err, validator.ErrIBANChecksum):
		return "Invalid IBAN checksum."
	case errors.Is(err, bank.ErrInvalidHolder):
		return "Invalid DNI format. Must be 8 digits followed by a letter."
	case errors.Is(err, bank.ErrInvalidIdentifier):
		return "Invalid IBAN."
	case errors.Is(err, bank.ErrInvalidAmount):
		return "Invalid amount."
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, bank.ErrSameAccount):
		return "Cannot transfer to the same account."
	case errors.Is(err, bank.ErrInvalidTarget):
		return "Invalid transfer target."
	case errors.Is(err, bank.ErrDuplicateIdentifier):
		return "An account with this IBAN already exists."
	case errors.Is(err, bank.ErrNotFound):
		return "Account not found."
	default:
		return err.Error()
	}
}
