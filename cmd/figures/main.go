// cmd/figures/main.go

// figures 為幾何圖形目錄的命令列工具。
// 設定、logger 與倉庫於 root command 的 PersistentPreRunE 內初始化（見 internal/cli），
// 每次成功變更後寫入 JSON 快照，下次啟動時自動載入。

package main

import (
	"fmt"
	"os"

	"figures/internal/cli"
)

func main() {
	root := cli.NewRootCommand(os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
