// internal/cli/console.go
//
// Package cli
// ─────────────────────────────────────────────
// 提供互動式文字選單，作為 bank 模組的前端 (Presentation Layer)。
// 每個選項僅負責：
//  1. 讀取並驗證使用者輸入（選項、IBAN、金額）
//  2. 呼叫 bank.Bank 執行商業邏輯
//  3. 輸出結果或錯誤訊息
//
// 重試（例如重新輸入金額）只發生在本層；bank 層的錯誤一律原樣上拋到這裡再轉成訊息。
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ibanbank/internal/bank"
	"ibanbank/internal/logger"
	"ibanbank/internal/money"

	"github.com/shopspring/decimal"
)

// errExit 由「離開」選項回傳，讓 Run 正常結束。
var errExit = errors.New("exit")

// Console 為前端核心結構：
// - Bank：注入的帳戶註冊表。
// - current：目前選取的帳戶 IBAN，空字串代表尚未選取。
type Console struct {
	Bank *bank.Bank

	in       *bufio.Scanner
	out      io.Writer
	currency string
	current  string
	log      *logger.Logger
}

// Option 調整 Console 的可選設定。
type Option func(*Console)

// WithCurrency 設定顯示用貨幣符號（預設 "€"）。
func WithCurrency(symbol string) Option {
	return func(c *Console) { c.currency = symbol }
}

// WithAccount 預先選取帳戶。
func WithAccount(iban string) Option {
	return func(c *Console) { c.current = iban }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Console) {
		if l != nil {
			c.log = l
		}
	}
}

// New 建立 Console；in/out 通常為 os.Stdin / os.Stdout，測試時可替換。
func New(b *bank.Bank, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		Bank:     b,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: "€",
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "cli")
	return c
}

// Run 執行選單迴圈，直到選擇離開、輸入結束 (EOF) 或 ctx 被取消。
// 讀取輸入本身無法中斷，因此 ctx 只在每次顯示選單前檢查。
func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to the Bank CLI!")
	c.log.Info("session started", "accounts", c.Bank.Count())
	for {
		if err := ctx.Err(); err != nil {
			c.log.Info("session cancelled")
			return err
		}
		c.printMenu()
		choice, ok := c.readLine(fmt.Sprintf("Select an option (1-%d): ", len(menu)))
		if !ok {
			c.log.Info("session ended", "reason", "eof")
			return c.in.Err()
		}
		err := c.dispatch(choice)
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			c.println("Thank you for using the Bank CLI. Goodbye!")
			c.log.Info("session ended", "reason", "exit")
			return nil
		case errors.Is(err, io.EOF):
			c.log.Info("session ended", "reason", "eof")
			return c.in.Err()
		default:
			return err
		}
	}
}

// readLine 輸出提示並讀取一行（去除前後空白）；EOF 或讀取錯誤時 ok 為 false。
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readAmount 反覆詢問直到取得正數金額。
func (c *Console) readAmount(prompt string) (decimal.Decimal, error) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return decimal.Zero, io.EOF
		}
		amt, err := money.Parse(line)
		if err != nil {
			c.println("Invalid input. Please enter a number.")
			continue
		}
		if !amt.IsPositive() {
			c.println("Amount must be positive.")
			continue
		}
		return amt, nil
	}
}

// readBalance 讀取初始餘額：空白代表 0，負數交由 bank 層拒絕。
func (c *Console) readBalance(prompt string) (decimal.Decimal, error) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return decimal.Zero, io.EOF
		}
		if line == "" {
			return decimal.Zero, nil
		}
		amt, err := money.Parse(line)
		if err != nil {
			c.println("Invalid input. Please enter a number.")
			continue
		}
		return amt, nil
	}
}
