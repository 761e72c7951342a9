// internal/cli/menu.go
//
// 本檔負責選單註冊：選項編號 → 處理函式。
// 與 handler.go 分離：handler 定義「如何處理」，menu 定義「哪個選項導向哪個處理」。
// 新增功能時只需在 menu 追加一列。

package cli

import "strconv"

type entry struct {
	label  string
	action func(*Console) error
}

// menu 的索引 +1 即為使用者輸入的選項編號。
var menu = []entry{
	{"Show account info", (*Console).show},
	{"Deposit", (*Console).deposit},
	{"Withdraw", (*Console).withdraw},
	{"Transfer", (*Console).transfer},
	{"Create account", (*Console).create},
	{"List accounts", (*Console).list},
	{"Select account", (*Console).selectAccount},
	{"Delete account", (*Console).remove},
	{"Exit", func(*Console) error { return errExit }},
}

func (c *Console) printMenu() {
	c.println("\nBank Account CLI Menu:")
	for i, e := range menu {
		c.printf("%d. %s\n", i+1, e.label)
	}
}

// dispatch 將輸入導向對應處理函式；非法選項僅提示後回到選單。
func (c *Console) dispatch(choice string) error {
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(menu) {
		c.printf("Invalid option. Please select 1-%d.\n", len(menu))
		return nil
	}
	return menu[n-1].action(c)
}
