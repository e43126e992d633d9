package logger

import (
	"fmt"
	"os"
	"path"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/natefinch/lumberjack"
)

var (
	logger = zap.NewNop()

	defaultLoggerFilename        = "smush.log"
	defaultLoggerMaxSizeMb       = 10
	defaultLoggerMaxBackupsCount = 3
	defaultLoggerMaxAgeDays      = 7
)

// MockLogger - mocks logger
func MockLogger() {
	logger = zap.NewNop()
}

// InitLogger - initializes logger with level, writing to stderr and,
// when output is set, to a rotated JSON file in that directory.
func InitLogger(level, output string) error {
	atomicLevel, err := getAtomicLevel(level)
	if err != nil {
		return err
	}

	Init(getCore(atomicLevel, output))
	return nil
}

// Init - initializes new logger
func Init(core zapcore.Core, options ...zap.Option) {
	logger = zap.New(core, options...)
}

// L - returns the current logger.
func L() *zap.Logger {
	return logger
}

// Debug - used for debug logging
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info - used for info logging
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn - used for warn logging
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error - used for error logging
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Sync - flushes buffered entries.
func Sync() error {
	return logger.Sync()
}

func getAtomicLevel(logLevel string) (zap.AtomicLevel, error) {
	if logLevel == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}

	var level zapcore.Level
	if err := level.Set(logLevel); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("failed to set log level: %w", err)
	}

	return zap.NewAtomicLevelAt(level), nil
}

func getCore(level zap.AtomicLevel, output string) zapcore.Core {
	var tee []zapcore.Core
	if output != "" {
		productionCfg := zap.NewProductionEncoderConfig()
		productionCfg.TimeKey = "timestamp"
		productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		file := zapcore.AddSync(
			&lumberjack.Logger{
				Filename:   path.Join(output, defaultLoggerFilename),
				MaxSize:    defaultLoggerMaxSizeMb,
				MaxBackups: defaultLoggerMaxBackupsCount,
				MaxAge:     defaultLoggerMaxAgeDays,
			})
		fileEncoder := zapcore.NewJSONEncoder(productionCfg)
		tee = append(tee, zapcore.NewCore(fileEncoder, file, level))
	}

	// stdout carries encoded payloads in the CLI, so console logs go to stderr.
	developmentCfg := zap.NewDevelopmentEncoderConfig()
	developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(developmentCfg)
	tee = append(tee, zapcore.NewCore(
		consoleEncoder, zapcore.AddSync(os.Stderr), level))

	return zapcore.NewTee(tee...)
}
