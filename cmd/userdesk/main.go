// @title        Userdesk API
// @version      1.0
// @description  使用者管理服務：登入驗證碼、帳號新增刪除與分頁查詢
// @host         localhost:8080
// @BasePath     /
package main

import (
	"fmt"
	"os"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
)

var exitFunc = os.Exit

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)

	if err := cmd.Execute(); err != nil {
		exitFunc(1)
	}
}
