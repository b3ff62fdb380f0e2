// internal/vehicle/car.go

package vehicle

import (
	"fmt"
	"io"
)

// RacingMessage 為 Car 每次加速前輸出的固定訊息。
const RacingMessage = "that's racing"

// Car 以組合包裝任一 SpeedAdjustable：加速前先輸出 RacingMessage，再委派給底層的限速邏輯。
// 底層行為不變，Car 只多一行輸出與 Drift 操作。
type Car struct {
	base SpeedAdjustable
	out  io.Writer
}

var _ SpeedAdjustable = (*Car)(nil)

// NewCar 建立包裝全新 Vehicle 的 Car；out 為 nil 時訊息被丟棄。
func NewCar(maxSpeed int, out io.Writer) *Car {
	return Racing(NewVehicle(maxSpeed), out)
}

// Racing 以 Car 包裝既有的 base。
func Racing(base SpeedAdjustable, out io.Writer) *Car {
	if out == nil {
		out = io.Discard
	}
	return &Car{base: base, out: out}
}

// SpeedUp 先輸出 RacingMessage，再回傳底層 SpeedUp 的結果。
func (c *Car) SpeedUp(amount int) int {
	_, _ = fmt.Fprintln(c.out, RacingMessage)
	return c.base.SpeedUp(amount)
}

func (c *Car) Speed() int { return c.base.Speed() }

func (c *Car) MaxSpeed() int { return c.base.MaxSpeed() }

// Drift 輸出目前速度的甩尾訊息；不改變狀態。
func (c *Car) Drift() {
	_, _ = fmt.Fprintf(c.out, "deja vu: delivering sushi at %d kmh\n", c.base.Speed())
}
