// cmd/workshop/main.go

// 本程式提供帳戶與載具兩組示範模型的命令列入口：
// demo 重播原始示範腳本，run 執行情境檔，serve 啟動無狀態的 HTTP 介面。
package main

import (
	"os"

	"workshop/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
