// internal/bank/account.go

// Package bank 定義帳戶領域模型：名稱、餘額與存提款操作。
// 本模型刻意不做任何驗證：存款金額可為任意正負值，提款允許透支（餘額可為負）。
// 不含 HTTP、儲存或併發細節；每個 Account 由建立它的呼叫端獨佔使用。
// 金額以 int64 儲存，超出範圍時依 Go 整數規則回繞。
package bank

import (
	"fmt"
	"io"
)

// Account represents a bank account.
type Account struct {
	Name    string `json:"name" yaml:"name"`
	Balance int64  `json:"balance" yaml:"balance"`
}

// NewAccount 以名稱與初始餘額建立帳戶；初始餘額不做檢查。
func NewAccount(name string, balance int64) *Account {
	return &Account{Name: name, Balance: balance}
}

// Deposit 存款：無條件將 amount 加入餘額。
func (a *Account) Deposit(amount int64) {
	a.Balance += amount
}

// Withdraw 提款：無條件自餘額扣除 amount，餘額不足時變為負值。
func (a *Account) Withdraw(amount int64) {
	a.Balance -= amount
}

// BalanceLine 回傳餘額顯示文字（不含換行）。
func (a *Account) BalanceLine() string {
	return fmt.Sprintf("%s's balance is %d euros", a.Name, a.Balance)
}

// DisplayBalance 將餘額顯示行寫入 w；w 為 nil 時不輸出。
func (a *Account) DisplayBalance(w io.Writer) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintln(w, a.BalanceLine())
}
