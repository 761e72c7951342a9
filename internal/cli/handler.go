// internal/cli/handler.go
//
// 各選單選項的處理函式。
// 回傳 nil 表示回到選單；io.EOF 表示輸入結束；領域錯誤在此即轉為訊息，不往上拋。

package cli

import (
	"io"

	"ibanbank/internal/bank"
)

// show 顯示目前帳戶資訊。
func (c *Console) show() error {
	a, ok := c.currentAccount()
	if !ok {
		return nil
	}
	c.println("\nAccount Information:")
	if a.Holder() != "" {
		c.printf("DNI: %s\n", a.Holder())
	}
	c.printf("IBAN: %s\n", a.IBAN())
	bal, err := c.Bank.Balance(a.IBAN())
	if err != nil {
		c.printErr(err)
		return nil
	}
	c.printf("Balance: %s\n", c.amount(bal))
	return nil
}

func (c *Console) deposit() error {
	if _, ok := c.currentAccount(); !ok {
		return nil
	}
	amt, err := c.readAmount("Enter amount to deposit: ")
	if err != nil {
		return err
	}
	if _, err := c.Bank.Deposit(c.current, amt); err != nil {
		c.printErr(err)
		return nil
	}
	bal, err := c.Bank.Balance(c.current)
	if err != nil {
		c.printErr(err)
		return nil
	}
	c.printf("Deposited %s. New balance: %s\n", c.amount(amt), c.amount(bal))
	return nil
}

func (c *Console) withdraw() error {
	if _, ok := c.currentAccount(); !ok {
		return nil
	}
	amt, err := c.readAmount("Enter amount to withdraw: ")
	if err != nil {
		return err
	}
	if _, err := c.Bank.Withdraw(c.current, amt); err != nil {
		c.printErr(err)
		return nil
	}
	bal, err := c.Bank.Balance(c.current)
	if err != nil {
		c.printErr(err)
		return nil
	}
	c.printf("Withdrew %s. New balance: %s\n", c.amount(amt), c.amount(bal))
	return nil
}

// transfer 由目前帳戶轉出到指定 IBAN。
func (c *Console) transfer() error {
	from, ok := c.currentAccount()
	if !ok {
		return nil
	}
	to, ok := c.readLine("Enter target IBAN: ")
	if !ok {
		return io.EOF
	}
	amt, err := c.readAmount("Enter amount to transfer: ")
	if err != nil {
		return err
	}
	if err := c.Bank.Transfer(from.IBAN(), to, amt); err != nil {
		c.printErr(err)
		return nil
	}
	// 轉帳後的餘額經由 Bank 在鎖內重新讀取
	bal, err := c.Bank.Balance(from.IBAN())
	if err != nil {
		c.printErr(err)
		return nil
	}
	c.printf("Transferred %s to %s. New balance: %s\n", c.amount(amt), to, c.amount(bal))
	c.log.Info("transfer completed", "from", from.IBAN(), "to", to, "amount", amt.String())
	return nil
}

// create 建立帳戶；若尚未選取任何帳戶，新帳戶自動成為目前帳戶。
func (c *Console) create() error {
	iban, ok := c.readLine("Enter IBAN: ")
	if !ok {
		return io.EOF
	}
	dni, ok := c.readLine("Enter holder DNI (optional): ")
	if !ok {
		return io.EOF
	}
	bal, err := c.readBalance("Enter initial balance (default 0): ")
	if err != nil {
		return err
	}
	var opts []bank.AccountOption
	if dni != "" {
		opts = append(opts, bank.WithHolder(dni))
	}
	a, err := c.Bank.Create(iban, bal, opts...)
	if err != nil {
		c.printErr(err)
		return nil
	}
	if c.current == "" {
		c.current = a.IBAN()
	}
	c.printf("Account %s created with balance %s\n", a.IBAN(), c.amount(a.Balance()))
	return nil
}

// list 依 IBAN 排序列出所有帳戶，目前帳戶以 * 標示。
func (c *Console) list() error {
	accts := c.Bank.List()
	if len(accts) == 0 {
		c.println("No accounts.")
		return nil
	}
	c.printf("\n%d account(s):\n", len(accts))
	for _, iban := range c.Bank.IBANs() {
		a, ok := accts[iban]
		if !ok {
			continue
		}
		mark := " "
		if iban == c.current {
			mark = "*"
		}
		c.printf("%s %s %s\n", mark, iban, c.amount(a.Balance()))
	}
	return nil
}

func (c *Console) selectAccount() error {
	iban, ok := c.readLine("Enter IBAN: ")
	if !ok {
		return io.EOF
	}
	if !c.Bank.Exists(iban) {
		c.printErr(bank.ErrNotFound)
		return nil
	}
	c.current = iban
	c.printf("Selected account %s\n", iban)
	return nil
}

// remove 刪除帳戶；刪除的是目前帳戶時一併取消選取。
func (c *Console) remove() error {
	iban, ok := c.readLine("Enter IBAN to delete: ")
	if !ok {
		return io.EOF
	}
	if !c.Bank.Delete(iban) {
		c.println("No account with that IBAN.")
		return nil
	}
	if iban == c.current {
		c.current = ""
	}
	c.printf("Account %s deleted\n", iban)
	return nil
}

// currentAccount 取出目前帳戶；尚未選取或已不存在時輸出提示。
func (c *Console) currentAccount() (*bank.Account, bool) {
	if c.current == "" {
		c.println("No account selected. Create or select an account first.")
		return nil, false
	}
	a, err := c.Bank.Get(c.current)
	if err != nil {
		c.printErr(err)
		return nil, false
	}
	return a, true
}
