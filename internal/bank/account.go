// internal/bank/account.go

// Package bank 定義核心領域模型與業務規則：以 IBAN 識別的帳戶（Account）
// 與帳戶註冊表（Bank）。本套件不含任何 I/O、持久化或前端細節。
//
// 金額一律為 decimal.Decimal，且必須能以「分」精確表示；帳戶內不做任何隱性捨入。
package bank

import (
	"fmt"

	"ibanbank/internal/money"
	"ibanbank/internal/validator"

	"github.com/shopspring/decimal"
)

// Account represents a single IBAN-identified balance.
//
// IBAN 與持有人於建構時驗證一次，之後不可變更；餘額只能透過
// Deposit / Withdraw / Transfer 改變，且任何操作完成後皆維持 >= 0。
// Account 本身不做同步，同一帳戶的並行變更需由呼叫端加鎖，或改經 Bank 操作。
type Account struct {
	iban    string
	holder  string
	balance decimal.Decimal
}

// AccountOption 調整建構時的可選欄位。
type AccountOption func(*Account)

// WithHolder 指定持有人 DNI；建構時會驗證其格式。
func WithHolder(dni string) AccountOption {
	return func(a *Account) { a.holder = dni }
}

// NewAccount 以 IBAN 與初始餘額建立帳戶。
// 驗證順序：IBAN（格式 → 檢查碼）→ 持有人 DNI → 初始餘額不得為負。
func NewAccount(iban string, initial decimal.Decimal, opts ...AccountOption) (*Account, error) {
	if err := validator.CheckIBAN(iban); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	}
	a := &Account{iban: iban}
	for _, opt := range opts {
		opt(a)
	}
	if a.holder != "" {
		if err := validator.CheckDNI(a.holder); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrInvalidIdentifier, ErrInvalidHolder, err)
		}
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance %s is negative", ErrInvalidAmount, initial)
	}
	if err := checkCents(initial); err != nil {
		return nil, err
	}
	a.balance = initial
	return a, nil
}

func (a *Account) IBAN() string { return a.iban }

// Holder 回傳持有人 DNI；未指定時為空字串。
func (a *Account) Holder() string { return a.holder }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit 存款：金額需 > 0。
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := checkPositive(amount); err != nil {
		return err
	}
	if err := checkCents(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// Withdraw 提款：金額需 > 0 且不得超過餘額。
// 餘額比較使用原始金額，因此 100.005 對 100.00 一律是餘額不足。
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := checkPositive(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance %s, requested %s",
			ErrInsufficientFunds, a.balance.StringFixed(money.Places), amount.String())
	}
	if err := checkCents(amount); err != nil {
		return err
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Transfer 轉帳 = 先扣款、再入帳。
// 扣款失敗時不會碰觸目標帳戶；轉給自己（同一指標或同一 IBAN）一律拒絕。
func (a *Account) Transfer(target *Account, amount decimal.Decimal) error {
	if target == nil {
		return ErrInvalidTarget
	}
	if err := checkPositive(amount); err != nil {
		return err
	}
	if target == a || target.iban == a.iban {
		return fmt.Errorf("%w: %s", ErrSameAccount, a.iban)
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	// 金額已驗證為正，入帳不會失敗
	return target.Deposit(amount)
}

func (a *Account) String() string {
	if a.holder == "" {
		return fmt.Sprintf("IBAN: %s\nBalance: %s", a.iban, a.balance.StringFixed(money.Places))
	}
	return fmt.Sprintf("DNI: %s\nIBAN: %s\nBalance: %s", a.holder, a.iban, a.balance.StringFixed(money.Places))
}

// checkPositive 以原始金額判斷正負，不先捨入。
func checkPositive(amount decimal.Decimal) error {
	if !validator.PositiveAmount(amount) {
		return fmt.Errorf("%w: %s must be > 0", ErrInvalidAmount, amount)
	}
	return nil
}

// checkCents 拒絕小數超過兩位的金額（例如 0.004），而不是默默捨入。
func checkCents(amount decimal.Decimal) error {
	if !money.IsCents(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, money.Places)
	}
	return nil
}
