package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger = zap.NewNop()

type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// Init builds a logger writing to stderr and, when file.Path is set,
// to a size-rotated log file.
func Init(dev bool, level string, file FileOptions) *zap.Logger {
	config := zap.NewProductionConfig()
	if dev {
		config = zap.NewDevelopmentConfig()
	}
	config.OutputPaths = []string{"stderr"}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log level %q: %v\n", level, err)
			os.Exit(1)
		}
		config.Level = lvl
	}

	if file.Path == "" {
		return initLogger(config)
	}

	rotated := zapcore.AddSync(&lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
	})
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		rotated,
		config.Level,
	)
	return initLogger(config, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
}

func initLogger(config zap.Config, opts ...zap.Option) *zap.Logger {
	var err error
	logger, err = config.Build(append(opts, zap.AddStacktrace(zap.WarnLevel))...)
	if err != nil {
		fmt.Printf("Failed to init zap logger: %v", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func Sync() {
	_ = logger.Sync()
}
