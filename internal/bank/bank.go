// internal/bank/bank.go

// Bank 為帳戶註冊表（IBAN → *Account）：建立、查詢、列出、刪除，
// 以及依 IBAN 執行存提轉。採單一互斥鎖 (sync.Mutex) 序列化所有操作，
// 讓經由 Bank 進行的跨帳戶轉帳具備原子性。

package bank

import (
	"fmt"
	"sort"
	"sync"

	"ibanbank/internal/logger"

	"github.com/shopspring/decimal"
)

// Bank 為聚合根 (Aggregate Root)：
// - mu：序列化所有讀寫，確保轉帳的扣款與入帳在同一臨界區完成。
// - accts：帳戶索引表（IBAN → *Account），鍵值唯一。
// - log：注入的結構化 logger，未指定時不輸出。
type Bank struct {
	mu    sync.Mutex
	accts map[string]*Account
	log   *logger.Logger
}

// Option 調整 Bank 的可選依賴。
type Option func(*Bank)

// WithLogger 注入 logger。
func WithLogger(l *logger.Logger) Option {
	return func(b *Bank) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBank 建立空白註冊表。
func NewBank(opts ...Option) *Bank {
	b := &Bank{accts: make(map[string]*Account), log: logger.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With("component", "bank")
	return b
}

// Create 建立並登錄帳戶。IBAN 已存在時回傳 ErrDuplicateIdentifier；
// 其餘驗證錯誤沿用 NewAccount 的結果。
func (b *Bank) Create(iban string, initial decimal.Decimal, opts ...AccountOption) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accts[iban]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateIdentifier, iban)
	}
	a, err := NewAccount(iban, initial, opts...)
	if err != nil {
		return nil, err
	}
	b.accts[iban] = a
	b.log.Debug("account created", "iban", iban, "balance", a.balance.String())
	return a, nil
}

// Get 依 IBAN 取得帳戶；不存在回傳 ErrNotFound。
// 回傳的是內部指標：直接操作它時，同步責任在呼叫端。
func (b *Bank) Get(iban string) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lookup(iban)
}

// Balance 在鎖內讀取餘額，回傳值拷貝。
func (b *Bank) Balance(iban string) (decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.lookup(iban)
	if err != nil {
		return decimal.Zero, err
	}
	return a.balance, nil
}

func (b *Bank) Exists(iban string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.accts[iban]
	return ok
}

// Delete 移除帳戶；不存在時回傳 false（不是錯誤）。
func (b *Bank) Delete(iban string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accts[iban]; !ok {
		return false
	}
	delete(b.accts, iban)
	b.log.Debug("account deleted", "iban", iban)
	return true
}

// List 回傳目前所有帳戶的新 map；增刪這個 map 不會影響註冊表。
func (b *Bank) List() map[string]*Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]*Account, len(b.accts))
	for k, a := range b.accts {
		out[k] = a
	}
	return out
}

func (b *Bank) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accts)
}

// IBANs 回傳排序後的所有 IBAN。
func (b *Bank) IBANs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.accts))
	for k := range b.accts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Deposit 依 IBAN 存款，回傳更新後的帳戶。
func (b *Bank) Deposit(iban string, amount decimal.Decimal) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.lookup(iban)
	if err != nil {
		return nil, err
	}
	if err := a.Deposit(amount); err != nil {
		return nil, err
	}
	return a, nil
}

// Withdraw 依 IBAN 提款，回傳更新後的帳戶。
func (b *Bank) Withdraw(iban string, amount decimal.Decimal) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, err := b.lookup(iban)
	if err != nil {
		return nil, err
	}
	if err := a.Withdraw(amount); err != nil {
		return nil, err
	}
	return a, nil
}

// Transfer 在單一臨界區內完成：查找雙方 → Account.Transfer（先扣後入）。
// 任一步驟失敗皆不改變任何帳戶狀態。
func (b *Bank) Transfer(fromIBAN, toIBAN string, amount decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	from, err := b.lookup(fromIBAN)
	if err != nil {
		return err
	}
	to, err := b.lookup(toIBAN)
	if err != nil {
		return err
	}
	if err := from.Transfer(to, amount); err != nil {
		return err
	}
	b.log.Debug("transfer", "from", fromIBAN, "to", toIBAN, "amount", amount.String())
	return nil
}

// lookup 需在持有 mu 時呼叫。
func (b *Bank) lookup(iban string) (*Account, error) {
	a, ok := b.accts[iban]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, iban)
	}
	return a, nil
}
