// internal/bank/account_test.go
//
// 本檔為 Account 模組的單元測試。
// 覆蓋存提款、可透支行為與餘額顯示格式；全部 in-memory 執行。

package bank

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkshopScenario 驗證範例腳本：Celian 1000 → 存 500 → 提 200 → 1300。
func TestWorkshopScenario(t *testing.T) {
	a := NewAccount("Celian", 1000)
	a.Deposit(500)
	a.Withdraw(200)

	require.Equal(t, int64(1300), a.Balance)

	var buf bytes.Buffer
	a.DisplayBalance(&buf)
	assert.Equal(t, "Celian's balance is 1300 euros\n", buf.String())
}

// TestDepositWithdrawRoundTrip 驗證同額存款後提款，餘額回到原值。
func TestDepositWithdrawRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		amount  int64
	}{
		{name: "positive", balance: 100, amount: 50},
		{name: "zero amount", balance: 100, amount: 0},
		{name: "negative amount", balance: 100, amount: -75},
		{name: "from negative balance", balance: -20, amount: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount("A", tt.balance)
			a.Deposit(tt.amount)
			a.Withdraw(tt.amount)
			assert.Equal(t, tt.balance, a.Balance)
		})
	}
}

// TestWithdrawOverdraft 驗證提款超過餘額仍成功，餘額變為負值。
func TestWithdrawOverdraft(t *testing.T) {
	a := NewAccount("A", 100)
	a.Withdraw(250)
	assert.Equal(t, int64(-150), a.Balance)
	assert.Equal(t, "A's balance is -150 euros", a.BalanceLine())
}

// TestDepositNegative 驗證負數存款不被拒絕，等同扣款。
func TestDepositNegative(t *testing.T) {
	a := NewAccount("A", 10)
	a.Deposit(-30)
	assert.Equal(t, int64(-20), a.Balance)
}

// TestDisplayBalanceNilWriter 驗證 nil writer 不會 panic 也不改變狀態。
func TestDisplayBalanceNilWriter(t *testing.T) {
	a := NewAccount("A", 1)
	assert.NotPanics(t, func() { a.DisplayBalance(nil) })
	assert.Equal(t, int64(1), a.Balance)
}
