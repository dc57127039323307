package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	mu      sync.Mutex
	echo    io.Writer
	fields  logrus.Fields
	entry   *logrus.Entry
	rotated *lumberjack.Logger
}

type properties struct {
	filename   string
	maxSize    int
	maxBackups int
	maxAge     int
	compress   bool
	level      string
}

func readLoggerProperties(dir string) (properties, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 7)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return properties{}, fmt.Errorf("read logger properties: %w", err)
		}
	}

	return properties{
		filename:   cast.ToString(v.Get("logFilename")),
		maxSize:    cast.ToInt(v.Get("maxSize")),
		maxBackups: cast.ToInt(v.Get("maxBackups")),
		maxAge:     cast.ToInt(v.Get("maxAge")),
		compress:   cast.ToBool(v.Get("compress")),
		level:      cast.ToString(v.Get("level")),
	}, nil
}

// Init points the logger at the rotating file named in <dir>/logger.properties.
// Echo mirrors every line to stdout; the terminal host turns it off since it
// owns the screen.
func (l *Logger) Init(dir string, echo bool) error {
	props, err := readLoggerProperties(dir)
	if err != nil {
		return err
	}

	rotated := &lumberjack.Logger{
		Filename:   props.filename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}

	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(rotated)
	base.SetLevel(parseLevel(props.level))

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rotated != nil {
		_ = l.rotated.Close()
	}
	l.rotated = rotated
	l.entry = logrus.NewEntry(base).WithFields(l.fields)
	l.echo = nil
	if echo {
		l.echo = os.Stdout
	}
	return nil
}

// UseOutput sends JSON lines to w instead of a file. Tests use it.
func (l *Logger) UseOutput(w io.Writer, level string) {
	base := logrus.New()
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetOutput(w)
	base.SetLevel(parseLevel(level))

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry = logrus.NewEntry(base).WithFields(l.fields)
	l.echo = nil
}

// SetField stamps key on every later line, e.g. the session id.
func (l *Logger) SetField(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fields == nil {
		l.fields = logrus.Fields{}
	}
	l.fields[key] = value
	if l.entry != nil {
		l.entry = l.entry.WithField(key, value)
	}
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rotated == nil {
		return nil
	}
	err := l.rotated.Close()
	l.rotated = nil
	return err
}

func parseLevel(level string) logrus.Level {
	switch cast.ToString(level) {

	case "Trace":
		return logrus.TraceLevel

	case "Debug":
		return logrus.DebugLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

func (l *Logger) current() (*logrus.Entry, io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.entry == nil {
		l.entry = logrus.NewEntry(logrus.StandardLogger()).WithFields(l.fields)
	}
	return l.entry, l.echo
}

func (l *Logger) Info(message string) {
	e, echo := l.current()
	e.Info(message)
	if echo != nil {
		fmt.Fprintln(echo, "Info:", message)
	}
}

func (l *Logger) Error(message string) {
	e, echo := l.current()
	e.Error(message)
	if echo != nil {
		fmt.Fprintln(echo, "Error:", message)
	}
}

func (l *Logger) Debug(message string) {
	e, echo := l.current()
	e.Debug(message)
	if echo != nil {
		fmt.Fprintln(echo, "Debug:", message)
	}
}

func (l *Logger) Trace(message string) {
	e, _ := l.current()
	e.Trace(message)
}

func (l *Logger) Warn(message string) {
	e, echo := l.current()
	e.Warn(message)
	if echo != nil {
		fmt.Fprintln(echo, "Warn:", message)
	}
}

func (l *Logger) Fatal(message string) {
	e, echo := l.current()
	if echo != nil {
		fmt.Fprintln(echo, "Fatal:", message)
	}
	e.Fatal(message)
}
