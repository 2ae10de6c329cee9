package logging

import (
	"io"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for file loggers.
const (
	fileMaxSizeMB  = 64
	fileMaxBackups = 2
)

// NewFileLogger returns a logger that writes JSON entries at `level` and above to a size-rotated file at
// path. The file is created on first write. The returned closer releases the file and must be called
// once logging is done.
func NewFileLogger(name, path string, level Level) (Logger, io.Closer) {
	atomicLevel := NewAtomicLevelAt(level)
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		Compress:   true,
	}
	encoderConfig := NewLoggerConfig().EncoderConfig
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), atomicLevel)
	return newImpl(name, atomicLevel, core), writer
}

// NewWriterLogger returns a logger that writes console entries at `level` and above to w.
func NewWriterLogger(name string, w io.Writer, level Level) Logger {
	atomicLevel := NewAtomicLevelAt(level)
	encoderConfig := NewLoggerConfig().EncoderConfig
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(w)), atomicLevel)
	return newImpl(name, atomicLevel, core)
}
