package logger

import (
	"os"
	"strconv"
	"strings"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level  string // Log level: debug, info, warn, error
	Format string // Format: json hoặc text
	Output string // Output: file, stdout hoặc both

	LogPath         string // Thư mục chứa file log (tương đối so với root project)
	AppFile         string // File log chính của ứng dụng
	ErrorFile       string // File log lỗi
	PerformanceFile string // File log performance

	MaxSize    int  // Kích thước tối đa của file log (MB) trước khi rotate
	MaxBackups int  // Số file cũ giữ lại
	MaxAge     int  // Số ngày giữ file log cũ
	Compress   bool // Nén file log cũ

	// FilterPatterns chứa các chuỗi, entry nào có message chứa chuỗi này sẽ bị bỏ qua
	FilterPatterns []string
}

// DefaultConfig trả về cấu hình logging mặc định, đọc override từ environment variables
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:           "info",
		Format:          "text",
		Output:          "both",
		LogPath:         "logs",
		AppFile:         "app.log",
		ErrorFile:       "error.log",
		PerformanceFile: "performance.log",
		MaxSize:         100,
		MaxBackups:      5,
		MaxAge:          30,
		Compress:        true,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSize = n
		}
	}
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxBackups = n
		}
	}
	if v := os.Getenv("LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxAge = n
		}
	}
	if v := os.Getenv("LOG_FILTER_PATTERNS"); v != "" {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.FilterPatterns = append(cfg.FilterPatterns, p)
			}
		}
	}

	return cfg
}
