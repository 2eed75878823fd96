package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var zaplogger *zap.Logger

// SkipUntilTrueCaller is the caller skip level
// that reports the caller of the package level log functions.
const SkipUntilTrueCaller = 1

func init() {
	err := InitConsoleLog("FULL", "INFO")
	if err != nil {
		panic(err)
	}
}

var levelMap = map[string]zapcore.Level{
	"DEBUG": zapcore.DebugLevel,
	"INFO":  zapcore.InfoLevel,
	"WARN":  zapcore.WarnLevel,
	"ERROR": zapcore.ErrorLevel,
	"FATAL": zapcore.FatalLevel,
}

var modeMap = map[string]ModeEncoder{
	"SIMPLE": getSimpleEncoder,
	"FULL":   getFullEncoder,
}

type SinkType int

const (
	SinkConsole SinkType = iota // default
	SinkFile
	SinkMulti
)

var sinkMap = map[string]SinkType{
	"":        SinkConsole,
	"CONSOLE": SinkConsole,
	"FILE":    SinkFile,
	"MULTI":   SinkMulti,
}

func GetSinkType(sink string) (SinkType, error) {
	sinkType, ok := sinkMap[strings.ToUpper(sink)]
	if !ok {
		return SinkConsole, fmt.Errorf("illegal log sink: %s", sink)
	}
	return sinkType, nil
}

// console is the destination of the console sink.
var console io.Writer = os.Stderr

func updateLogger(core zapcore.Core) {
	if zaplogger != nil {
		_ = zaplogger.Sync()
	}
	zaplogger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(SkipUntilTrueCaller))
	sugar = zaplogger.Sugar()
}

// InitConsoleLog sets the console log mode and level.
func InitConsoleLog(mode, level string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	updateLogger(zapcore.NewCore(modeEncoder(), zapcore.AddSync(console), zapLevel))
	return nil
}

// InitFileLog sets the log mode and level
// for a rotated log file with the passed filename.
func InitFileLog(mode, level, filename string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	ws, err := createFileWriter(filename)
	if err != nil {
		return err
	}
	updateLogger(zapcore.NewCore(modeEncoder(), ws, zapLevel))
	return nil
}

// InitMultiLog is like InitFileLog
// but also logs to the console.
func InitMultiLog(mode, level, filename string) error {
	modeEncoder, zapLevel, err := getEncoderAndLevel(mode, level)
	if err != nil {
		return err
	}
	fileSyncer, err := createFileWriter(filename)
	if err != nil {
		return err
	}
	updateLogger(zapcore.NewCore(
		modeEncoder(),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(console), fileSyncer),
		zapLevel,
	))
	return nil
}

func getEncoderAndLevel(mode, level string) (ModeEncoder, zapcore.Level, error) {
	modeEncoder, ok := modeMap[strings.ToUpper(mode)]
	if !ok {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log mode: %s", mode)
	}
	zapLevel, ok := levelMap[strings.ToUpper(level)]
	if !ok {
		return nil, zapcore.DebugLevel, fmt.Errorf("illegal log level: %s", level)
	}
	return modeEncoder, zapLevel, nil
}

// NewSugar returns a named child of the current logger.
func NewSugar(name string) *zap.SugaredLogger {
	return zaplogger.Named(name).Sugar()
}

func createFileWriter(filename string) (zapcore.WriteSyncer, error) {
	if filename == "" {
		return nil, fmt.Errorf("create file logger failed: missing filename")
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // megabytes
		MaxAge:     30, // days
		MaxBackups: 7,
		LocalTime:  true,
	}), nil
}

type ModeEncoder func() zapcore.Encoder

func getSimpleEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.CallerKey = ""
	encoderConfig.FunctionKey = ""
	encoderConfig.EncodeTime = nil
	encoderConfig.EncodeLevel = nil
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func getFullEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.FunctionKey = "func"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.ConsoleSeparator = "|"
	return zapcore.NewConsoleEncoder(encoderConfig)
}
