package transport

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrianrdguez/GoFast/models"
)

type FileLoggerImpl struct {
	filePath string
	mutex    sync.Mutex
}

func NewFileLogger(logPath string) (FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	return &FileLoggerImpl{
		filePath: logPath,
	}, nil
}

func (l *FileLoggerImpl) LogRequest(providerName string, dest string, mode models.TransportMode) {
	logEntry := map[string]interface{}{
		"timestamp": time.Now().Format(time.RFC3339),
		"provider":  providerName,
		"event":     "request",
		"airport":   dest,
		"mode":      mode,
	}

	l.writeLog(logEntry)
}

// LogResponse logs a successful travel-time lookup
func (l *FileLoggerImpl) LogResponse(providerName string, dest string, mode models.TransportMode, eta *ETA, duration time.Duration) {
	logEntry := map[string]interface{}{
		"timestamp":   time.Now().Format(time.RFC3339),
		"provider":    providerName,
		"event":       "response",
		"airport":     dest,
		"mode":        mode,
		"duration_ms": duration.Milliseconds(),
		"response": map[string]interface{}{
			"eta_seconds": eta.Duration.Seconds(),
			"estimated":   eta.Estimated,
		},
	}

	l.writeLog(logEntry)
}

// LogError logs a failed travel-time lookup
func (l *FileLoggerImpl) LogError(providerName string, dest string, mode models.TransportMode, err error, duration time.Duration) {
	logEntry := map[string]interface{}{
		"timestamp":   time.Now().Format(time.RFC3339),
		"provider":    providerName,
		"event":       "error",
		"airport":     dest,
		"mode":        mode,
		"duration_ms": duration.Milliseconds(),
		"error":       err.Error(),
	}

	l.writeLog(logEntry)
}

func (l *FileLoggerImpl) writeLog(entry map[string]interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	file, err := os.OpenFile(l.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.Error("open log file", "error", err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("close log file", "error", closeErr)
		}
	}()

	jsonData, err := json.Marshal(entry)
	if err != nil {
		slog.Error("marshal log entry", "error", err)
		return
	}

	if _, err := file.WriteString(string(jsonData) + "\n"); err != nil {
		slog.Error("write log entry", "error", err)
	}
}
