// Package log is the zap based logger of the sparsetable command.
// Library packages of the module don't log.
package log

import "go.uber.org/zap"

var sugar *zap.SugaredLogger

// Options configures Init.
type Options struct {
	// Log mode: SIMPLE, FULL.
	//
	// Default: "FULL".
	Mode string `yaml:"mode"`
	// Log level: DEBUG, INFO, WARN, ERROR, FATAL.
	//
	// Default: "INFO".
	Level string `yaml:"level"`
	// Log filename, required for the sinks FILE and MULTI.
	//
	// Default: "".
	Filename string `yaml:"filename"`
	// Log sink: CONSOLE, FILE, and MULTI.
	//
	// Default: "CONSOLE".
	Sink string `yaml:"sink"`
}

// Init sets the log options.
func Init(opt *Options) error {
	sinkType, err := GetSinkType(opt.Sink)
	if err != nil {
		return err
	}
	switch sinkType {
	case SinkFile:
		return InitFileLog(opt.Mode, opt.Level, opt.Filename)
	case SinkMulti:
		return InitMultiLog(opt.Mode, opt.Level, opt.Filename)
	default:
		return InitConsoleLog(opt.Mode, opt.Level)
	}
}

// Log returns the current sugared logger.
func Log() *zap.SugaredLogger { return sugar }

// Sync flushes buffered log entries.
func Sync() error { return zaplogger.Sync() }

func Debugf(template string, args ...any) { sugar.Debugf(template, args...) }
func Infof(template string, args ...any)  { sugar.Infof(template, args...) }
func Warnf(template string, args ...any)  { sugar.Warnf(template, args...) }
func Errorf(template string, args ...any) { sugar.Errorf(template, args...) }

func Debugw(msg string, keysAndValues ...any) { sugar.Debugw(msg, keysAndValues...) }
func Infow(msg string, keysAndValues ...any)  { sugar.Infow(msg, keysAndValues...) }
