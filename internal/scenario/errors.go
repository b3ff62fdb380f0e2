// internal/scenario/errors.go
//
// 本檔集中定義情境層的錯誤。
// 帳戶與載具的操作本身永遠成功；這些錯誤只描述「情境資料本身不合法」，
// 由上層（CLI / HTTP handler）轉換成結束碼或 400 Bad Request。

package scenario

import "errors"

var (
	// ErrDuplicateID 代表兩個物件使用相同識別字。
	ErrDuplicateID = errors.New("duplicate object id")

	// ErrUnknownKind 代表載具種類不是 vehicle 或 car。
	ErrUnknownKind = errors.New("unknown vehicle kind")

	// ErrUnknownTarget 代表步驟引用了未宣告的物件。
	ErrUnknownTarget = errors.New("unknown step target")

	// ErrUnsupportedOp 代表目標物件不支援該操作（例如對一般載具 drift）。
	ErrUnsupportedOp = errors.New("operation not supported by target")

	// ErrUnknownFormat 代表情境檔副檔名無法辨識。
	ErrUnknownFormat = errors.New("unknown scenario format")
)
