// internal/vehicle/vehicle.go

// Package vehicle 定義「可加速」能力 (SpeedAdjustable) 與其預設的限速實作 Vehicle。
// 速度只能透過 SpeedUp 改變；當 speed + amount 超過 maxSpeed 時直接夾到 maxSpeed。
// 加速量不做驗證，負值會使速度下降。
package vehicle

import (
	"fmt"
	"io"
	"math"
)

// SpeedAdjustable is anything that can speed up toward a fixed maximum.
type SpeedAdjustable interface {
	// SpeedUp 加速 amount 並回傳加速後的速度。
	SpeedUp(amount int) int
	Speed() int
	MaxSpeed() int
}

// Vehicle 為預設的限速實作；maxSpeed 於建立時固定，speed 由 0 開始。
type Vehicle struct {
	maxSpeed int
	speed    int
}

// NewVehicle 建立最高速為 maxSpeed、目前速度為 0 的載具。
func NewVehicle(maxSpeed int) *Vehicle {
	return &Vehicle{maxSpeed: maxSpeed}
}

// SpeedUp 將速度提高 amount；超過最高速時夾到 maxSpeed。
// 相加向上溢位視為超過最高速；負值向下溢位時速度停在 math.MinInt。
func (v *Vehicle) SpeedUp(amount int) int {
	sum := v.speed + amount
	switch {
	case amount > 0 && sum < v.speed:
		v.speed = v.maxSpeed
	case amount < 0 && sum > v.speed:
		v.speed = math.MinInt
	case sum > v.maxSpeed:
		v.speed = v.maxSpeed
	default:
		v.speed = sum
	}
	return v.speed
}

// Speed returns the current speed.
func (v *Vehicle) Speed() int { return v.speed }

// MaxSpeed returns the fixed upper bound.
func (v *Vehicle) MaxSpeed() int { return v.maxSpeed }

// PrintSpeed 將目前速度以純數字一行寫入 w。
func PrintSpeed(w io.Writer, s SpeedAdjustable) {
	if w == nil {
		return
	}
	_, _ = fmt.Fprintln(w, s.Speed())
}
