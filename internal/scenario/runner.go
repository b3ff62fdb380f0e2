// internal/scenario/runner.go

// Package scenario 將示範腳本表達為資料：建立帳戶與載具，依序執行步驟並收集主控台輸出。
// 每次 Run 都建立全新的物件，執行之間不共享任何狀態。
package scenario

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"workshop/internal/bank"
	"workshop/internal/vehicle"
)

// Runner 執行情境；logger 只記錄執行過程，主控台輸出一律寫入 Run 的 out。
type Runner struct {
	logger *slog.Logger
}

// NewRunner 建立 Runner；logger 為 nil 時丟棄日誌。
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

// kindAccount 為帳戶在驗證時使用的種類名稱。
const kindAccount = "account"

// world 為單次執行的物件集合。
type world struct {
	accounts map[string]*bank.Account
	vehicles map[string]vehicle.SpeedAdjustable
}

// Validate 檢查識別字唯一、載具種類合法，以及每個步驟的目標與操作相符。
func Validate(s Scenario) error {
	kinds := make(map[string]string, len(s.Accounts)+len(s.Vehicles))
	for _, a := range s.Accounts {
		if _, ok := kinds[a.ID]; ok {
			return fmt.Errorf("account %q: %w", a.ID, ErrDuplicateID)
		}
		kinds[a.ID] = kindAccount
	}
	for _, v := range s.Vehicles {
		if _, ok := kinds[v.ID]; ok {
			return fmt.Errorf("vehicle %q: %w", v.ID, ErrDuplicateID)
		}
		if v.Kind != KindVehicle && v.Kind != KindCar {
			return fmt.Errorf("vehicle %q: %w: %q", v.ID, ErrUnknownKind, v.Kind)
		}
		kinds[v.ID] = v.Kind
	}
	for i, st := range s.Steps {
		kind, ok := kinds[st.Target]
		if !ok {
			return fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownTarget, st.Target)
		}
		if !supports(kind, st.Op) {
			return fmt.Errorf("step %d: %w: %s on %s %q", i+1, ErrUnsupportedOp, st.Op, kind, st.Target)
		}
	}
	return nil
}

func supports(kind, op string) bool {
	switch op {
	case OpDeposit, OpWithdraw, OpDisplayBalance:
		return kind == kindAccount
	case OpSpeedUp, OpPrintSpeed:
		return kind == KindVehicle || kind == KindCar
	case OpDrift:
		return kind == KindCar
	default:
		return false
	}
}

// Run 驗證並執行情境，將主控台輸出寫入 out（可為 nil）。
// 每個步驟之間檢查 ctx；取消時回傳 ctx.Err()，已執行步驟的輸出保留在 out。
func (r *Runner) Run(ctx context.Context, s Scenario, out io.Writer) (*Result, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	// 同時寫入呼叫端與內部緩衝，以便回傳逐行輸出
	var transcript bytes.Buffer
	w := io.Writer(&transcript)
	if out != nil {
		w = io.MultiWriter(out, &transcript)
	}

	runID := uuid.NewString()
	log := r.logger.With("run_id", runID, "scenario", s.Name)

	wd := build(s, w)
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			log.Warn("scenario cancelled", "step", i+1, "error", err)
			return nil, err
		}
		log.Debug("step", "index", i+1, "target", st.Target, "op", st.Op, "amount", st.Amount)
		wd.apply(st, w)
	}

	res := &Result{
		RunID:    runID,
		Scenario: s.Name,
		Lines:    splitLines(transcript.String()),
		Accounts: make([]AccountState, 0, len(s.Accounts)),
		Vehicles: make([]VehicleState, 0, len(s.Vehicles)),
	}
	for _, a := range s.Accounts {
		acct := wd.accounts[a.ID]
		res.Accounts = append(res.Accounts, AccountState{ID: a.ID, Name: acct.Name, Balance: acct.Balance})
	}
	for _, v := range s.Vehicles {
		sa := wd.vehicles[v.ID]
		res.Vehicles = append(res.Vehicles, VehicleState{ID: v.ID, Kind: v.Kind, Speed: sa.Speed(), MaxSpeed: sa.MaxSpeed()})
	}

	log.Info("scenario finished", "steps", len(s.Steps), "lines", len(res.Lines))
	return res, nil
}

// build 依宣告建立全新的帳戶與載具；Car 的訊息寫入 w。
func build(s Scenario, w io.Writer) *world {
	wd := &world{
		accounts: make(map[string]*bank.Account, len(s.Accounts)),
		vehicles: make(map[string]vehicle.SpeedAdjustable, len(s.Vehicles)),
	}
	for _, a := range s.Accounts {
		wd.accounts[a.ID] = bank.NewAccount(a.Name, a.Balance)
	}
	for _, v := range s.Vehicles {
		if v.Kind == KindCar {
			wd.vehicles[v.ID] = vehicle.NewCar(v.MaxSpeed, w)
		} else {
			wd.vehicles[v.ID] = vehicle.NewVehicle(v.MaxSpeed)
		}
	}
	return wd
}

// apply 執行單一步驟；Validate 已保證目標存在且支援該操作。
func (wd *world) apply(st Step, w io.Writer) {
	switch st.Op {
	case OpDeposit:
		wd.accounts[st.Target].Deposit(st.Amount)
	case OpWithdraw:
		wd.accounts[st.Target].Withdraw(st.Amount)
	case OpDisplayBalance:
		wd.accounts[st.Target].DisplayBalance(w)
	case OpSpeedUp:
		wd.vehicles[st.Target].SpeedUp(int(st.Amount))
	case OpPrintSpeed:
		vehicle.PrintSpeed(w, wd.vehicles[st.Target])
	case OpDrift:
		if c, ok := wd.vehicles[st.Target].(*vehicle.Car); ok {
			c.Drift()
		}
	}
}

// splitLines 依換行切分輸出；不限制單行長度。
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
