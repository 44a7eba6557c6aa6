package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFile is where the rotated log for app lives under dir.
func LogFile(dir, app string) string {
	if app == "" {
		app = "tourism-booking"
	}
	return filepath.Join(dir, app+".log")
}

// InitLogger writes every entry to stdout and to a rotated file named after
// the app. Entries carry the app name so shared sinks can tell services apart.
func InitLogger(app AppConfig) (*zap.Logger, error) {
	if app.LogPath != "" {
		if err := os.MkdirAll(app.LogPath, 0755); err != nil {
			return nil, err
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder
	level := zap.InfoLevel
	if app.Debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder
		level = zap.DebugLevel
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	rotated := zapcore.AddSync(&lumberjack.Logger{
		Filename:   LogFile(app.LogPath, app.Name),
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder(encoderConfig), rotated, level),
		zapcore.NewCore(encoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	)

	return zap.New(core, zap.AddCaller()).With(zap.String("app", app.Name)), nil
}
