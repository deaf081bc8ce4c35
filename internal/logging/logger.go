// Package logging 建立 zap logger：stdout 使用 console encoder，
// 設定 LOG_FILE 時另外以 timberjack 輪替寫出 JSON 檔
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/DeRuina/timberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	stdout  zapcore.WriteSyncer = zapcore.Lock(os.Stdout)
	mkdirAll                    = os.MkdirAll
)

// ParseLevel 無法辨識時回傳 info 與錯誤
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// New 回傳 logger 與關閉檔案輸出的函式
func New(opts Options) (*zap.Logger, func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleCfg.EncodeCaller = zapcore.ShortCallerEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), stdout, lvl),
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		w, err := newFileWriter(opts)
		if err != nil {
			return nil, nil, err
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.TimeKey = "timestamp"
		fileCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(w), lvl))
		closeFn = w.Close
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return logger, closeFn, nil
}

func newFileWriter(opts Options) (io.WriteCloser, error) {
	if dir := filepath.Dir(opts.File); dir != "." && dir != "/" {
		if err := mkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}
	return &timberjack.Logger{
		Filename:         opts.File,
		MaxSize:          opts.MaxSizeMB,
		MaxBackups:       opts.MaxBackups,
		MaxAge:           opts.MaxAgeDays,
		Compress:         opts.Compress,
		LocalTime:        true,
		RotationInterval: 24 * time.Hour,
	}, nil
}
