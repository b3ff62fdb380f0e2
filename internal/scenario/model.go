// internal/scenario/model.go
//
// 定義「情境 (scenario)」的資料模型：以資料描述示範腳本要建立的物件與依序呼叫的操作。
// 本層只描述結構，不含執行邏輯；YAML 與 JSON 共用同一組欄位名稱。

package scenario

// 載具種類。
const (
	KindVehicle = "vehicle"
	KindCar     = "car"
)

// 支援的操作名稱。
const (
	OpDeposit        = "deposit"
	OpWithdraw       = "withdraw"
	OpDisplayBalance = "display_balance"
	OpSpeedUp        = "speed_up"
	OpPrintSpeed     = "print_speed"
	OpDrift          = "drift"
)

// AccountSpec 描述一個要建立的帳戶。
type AccountSpec struct {
	ID      string `json:"id" yaml:"id"`           // 步驟引用用的識別字
	Name    string `json:"name" yaml:"name"`       // 帳戶名稱
	Balance int64  `json:"balance" yaml:"balance"` // 初始餘額
}

// VehicleSpec 描述一個要建立的載具。
type VehicleSpec struct {
	ID       string `json:"id" yaml:"id"`
	Kind     string `json:"kind" yaml:"kind"` // "vehicle" 或 "car"
	MaxSpeed int    `json:"max_speed" yaml:"max_speed"`
}

// Step 為單一操作：對 Target 執行 Op，Amount 僅用於 deposit / withdraw / speed_up。
type Step struct {
	Target string `json:"target" yaml:"target"`
	Op     string `json:"op" yaml:"op"`
	Amount int64  `json:"amount,omitempty" yaml:"amount,omitempty"`
}

// Scenario 為完整情境：先建立所有物件，再依序執行 Steps。
type Scenario struct {
	Name     string        `json:"name" yaml:"name"`
	Accounts []AccountSpec `json:"accounts,omitempty" yaml:"accounts,omitempty"`
	Vehicles []VehicleSpec `json:"vehicles,omitempty" yaml:"vehicles,omitempty"`
	Steps    []Step        `json:"steps" yaml:"steps"`
}

// AccountState 為執行後帳戶的最終狀態。
type AccountState struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

// VehicleState 為執行後載具的最終狀態。
type VehicleState struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Speed    int    `json:"speed"`
	MaxSpeed int    `json:"max_speed"`
}

// Result 為一次執行的結果：主控台輸出逐行保存，狀態依宣告順序排列。
type Result struct {
	RunID    string         `json:"run_id"`
	Scenario string         `json:"scenario"`
	Lines    []string       `json:"lines"`
	Accounts []AccountState `json:"accounts"`
	Vehicles []VehicleState `json:"vehicles"`
}

// Default 回傳內建的 workshop 情境，即原始示範腳本的呼叫順序。
func Default() Scenario {
	return Scenario{
		Name:     "workshop",
		Accounts: []AccountSpec{{ID: "account", Name: "Celian", Balance: 1000}},
		Vehicles: []VehicleSpec{
			{ID: "spaceship", Kind: KindVehicle, MaxSpeed: 1000},
			{ID: "car", Kind: KindCar, MaxSpeed: 200},
		},
		Steps: []Step{
			{Target: "account", Op: OpDeposit, Amount: 500},
			{Target: "account", Op: OpWithdraw, Amount: 200},
			{Target: "account", Op: OpDisplayBalance},
			{Target: "spaceship", Op: OpSpeedUp, Amount: 300},
			{Target: "spaceship", Op: OpPrintSpeed},
			{Target: "car", Op: OpSpeedUp, Amount: 30},
			{Target: "car", Op: OpPrintSpeed},
			{Target: "car", Op: OpDrift},
		},
	}
}
