// internal/cli/console_test.go
//
// 本檔為 cli 層的整合測試。
// 以 strings.Reader 模擬使用者逐行輸入、bytes.Buffer 收集輸出，
// 驗證選單流程、重新輸入、錯誤訊息對應，以及 bank 狀態是否正確。

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ibanbank/internal/bank"
	"ibanbank/internal/money"
	"ibanbank/internal/validator"
)

const (
	iban1 = "ES9121000418450200051332"
	iban2 = "ES7921000813610123456789"
)

// run 為測試輔助函式：以 lines 作為輸入執行一次完整 session，回傳輸出。
func run(t *testing.T, b *bank.Bank, current string, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	c := New(b, in, &out, WithAccount(current), WithCurrency("€"))
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run err=%v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func seeded(t *testing.T) *bank.Bank {
	t.Helper()
	b := bank.NewBank()
	if _, err := b.Create(iban1, money.MustParse("1000")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Create(iban2, money.MustParse("500")); err != nil {
		t.Fatal(err)
	}
	return b
}

func balance(t *testing.T, b *bank.Bank, iban string) string {
	t.Helper()
	a, err := b.Get(iban)
	if err != nil {
		t.Fatal(err)
	}
	return a.Balance().StringFixed(2)
}

func mustContain(t *testing.T, out string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(out, p) {
			t.Fatalf("output missing %q\noutput:\n%s", p, out)
		}
	}
}

// TestMenuFlow 1000 → 存 200 → 提 150 → 轉 100 → 950 / 600。
func TestMenuFlow(t *testing.T) {
	b := seeded(t)
	out := run(t, b, iban1,
		"2", "200",
		"3", "150",
		"4", iban2, "100",
		"1",
		"9",
	)
	mustContain(t, out,
		"Welcome to the Bank CLI!",
		"Deposited 200.00€. New balance: 1200.00€",
		"Withdrew 150.00€. New balance: 1050.00€",
		"Transferred 100.00€ to "+iban2+". New balance: 950.00€",
		"IBAN: "+iban1,
		"Balance: 950.00€",
		"Goodbye!",
	)
	if got := balance(t, b, iban1); got != "950.00" {
		t.Fatalf("iban1=%s want 950.00", got)
	}
	if got := balance(t, b, iban2); got != "600.00" {
		t.Fatalf("iban2=%s want 600.00", got)
	}
}

// TestAmountReprompt 非數字與非正數金額會重新詢問，直到輸入合法金額。
func TestAmountReprompt(t *testing.T) {
	b := seeded(t)
	out := run(t, b, iban1, "2", "abc", "-5", "0", "25,50", "9")
	mustContain(t, out,
		"Invalid input. Please enter a number.",
		"Amount must be positive.",
		"Deposited 25.50€. New balance: 1025.50€",
	)
}

func TestInvalidOption(t *testing.T) {
	out := run(t, seeded(t), iban1, "0", "x", "42", "9")
	if n := strings.Count(out, "Invalid option. Please select 1-9."); n != 3 {
		t.Fatalf("invalid option count=%d want 3\n%s", n, out)
	}
}

// TestErrorMessages 領域錯誤轉為訊息且不改變餘額。
func TestErrorMessages(t *testing.T) {
	b := seeded(t)
	out := run(t, b, iban1,
		"3", "5000",
		"4", iban1, "1",
		"4", "ES6621000418401234567891", "1",
		"9",
	)
	mustContain(t, out,
		"Transaction Error: Insufficient funds.",
		"Transaction Error: Cannot transfer to the same account.",
		"Transaction Error: Account not found.",
	)
	if got := balance(t, b, iban1); got != "1000.00" {
		t.Fatalf("iban1=%s want 1000.00", got)
	}
}

// TestCreateSelectListDelete 建立帳戶時區分 IBAN 格式錯誤與檢查碼錯誤。
func TestCreateSelectListDelete(t *testing.T) {
	b := bank.NewBank()
	out := run(t, b, "",
		"1",
		"5", "ES123", "", "",
		"5", "ES1234567890123456789012", "", "",
		"5", iban1, "1234", "10",
		"5", iban1, "12345678A", "",
		"5", iban2, "", "-1",
		"5", iban2, "", "250",
		"6",
		"7", "ES0000000000000000000000",
		"7", iban2,
		"6",
		"8", iban2,
		"8", iban2,
		"2",
		"9",
	)
	mustContain(t, out,
		"No account selected.",
		"Transaction Error: Invalid IBAN format. Must be ES followed by 22 digits.",
		"Transaction Error: Invalid IBAN checksum.",
		"Transaction Error: Invalid DNI format.",
		"Account "+iban1+" created with balance 0.00€",
		"Transaction Error: Invalid amount.",
		"Account "+iban2+" created with balance 250.00€",
		"2 account(s):",
		"* "+iban1+" 0.00€",
		"  "+iban2+" 250.00€",
		"Selected account "+iban2,
		"* "+iban2+" 250.00€",
		"Account "+iban2+" deleted",
		"No account with that IBAN.",
	)
	if b.Count() != 1 || !b.Exists(iban1) {
		t.Fatalf("accounts=%v", b.IBANs())
	}
	a, _ := b.Get(iban1)
	if a.Holder() != "12345678A" {
		t.Fatalf("holder=%q", a.Holder())
	}
}

// TestEOFEndsSession 輸入在任何提示中結束時，Run 正常返回。
func TestEOFEndsSession(t *testing.T) {
	for _, input := range []string{"", "2", "2\n", "4\n" + iban2, "5\n" + iban1} {
		var out bytes.Buffer
		c := New(seeded(t), strings.NewReader(input), &out, WithAccount(iban1))
		if err := c.Run(context.Background()); err != nil {
			t.Fatalf("input=%q err=%v", input, err)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	c := New(seeded(t), strings.NewReader("1\n"), &out)
	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestMessageMapping(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: %w", bank.ErrInvalidIdentifier, validator.ErrIBANChecksum), "Invalid IBAN checksum."},
		{bank.ErrInvalidIdentifier, "Invalid IBAN."},
		{fmt.Errorf("%w: %w: %w", bank.ErrInvalidIdentifier, bank.ErrInvalidHolder, validator.ErrDNIFormat), "Invalid DNI format. Must be 8 digits followed by a letter."},
		{bank.ErrInvalidTarget, "Invalid transfer target."},
		{bank.ErrDuplicateIdentifier, "An account with this IBAN already exists."},
		{errors.New("boom"), "boom"},
	}
	for _, c := range cases {
		if got := message(c.err); got != c.want {
			t.Errorf("message(%v)=%q want=%q", c.err, got, c.want)
		}
	}
}
