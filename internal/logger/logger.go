package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jobdev/jobboard/internal/config"
	"github.com/jobdev/jobboard/pkg/loki"
	log "github.com/sirupsen/logrus"
)

const ErrorTypeField = "error_type"

const (
	ErrorTypeSupabase = "supabase_api"
	ErrorTypeAuth     = "auth_api"
	ErrorTypeHTTP     = "http"
)

var logFile *os.File

func Setup(cfg config.LoggerConfig) {

	logDir := filepath.Dir(cfg.OutputFile)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	logFile, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(multiWriter)

	customFormatter := &log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000 -0700",
	}
	log.SetFormatter(customFormatter)

	addPrometheusHook()

	if cfg.LokiURL != "" {
		err = addLokiHook(context.Background(), loki.Config{
			Url:          cfg.LokiURL,
			Username:     cfg.LokiUser,
			Password:     cfg.LokiPassword,
			BatchMaxWait: 5 * time.Second,
			Labels:       map[string]string{"app": cfg.AppName},
		}, log.WarnLevel)
		if err != nil {
			log.Errorf("Failed to enable loki logging: %v", err)
		}
	}

	switch cfg.LogLevel {
	case config.LevelInfo:
		log.SetLevel(log.InfoLevel)
	case config.LevelDebug:
		log.SetLevel(log.DebugLevel)
	case config.LevelWarning:
		log.SetLevel(log.WarnLevel)
	case config.LevelError:
		log.SetLevel(log.ErrorLevel)
	case config.LevelFatal:
		log.SetLevel(log.FatalLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
	}
}
