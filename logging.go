package tesseract

import (
	"fmt"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) prefixf(level string, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

// ZapLogger adapts a zap logger to Logger. The debug switch is an atomic
// level, so it can be flipped while systems are logging.
type ZapLogger struct {
	level zap.AtomicLevel
	sugar *zap.SugaredLogger
}

func NewZapLogger(prefix string, debug bool) (*ZapLogger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level.SetLevel(zap.DebugLevel)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	if prefix != "" {
		base = base.Named(prefix)
	}
	return &ZapLogger{level: level, sugar: base.Sugar()}, nil
}

// NewZapLoggerWithCore wraps an existing core, e.g. an observer in tests.
func NewZapLoggerWithCore(core zapcore.Core, debug bool) *ZapLogger {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debug {
		level.SetLevel(zap.DebugLevel)
	}
	return &ZapLogger{level: level, sugar: zap.New(core).Sugar()}
}

func (l *ZapLogger) DebugEnabled() bool {
	return l.level.Enabled(zap.DebugLevel)
}

func (l *ZapLogger) SetDebug(enabled bool) {
	if enabled {
		l.level.SetLevel(zap.DebugLevel)
	} else {
		l.level.SetLevel(zap.InfoLevel)
	}
}

func (l *ZapLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.sugar.Debugf(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *ZapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *ZapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

const (
	LogBackendStd = "std"
	LogBackendZap = "zap"
)

// LoggingModule installs a logger as a resource.
type LoggingModule struct {
	Prefix  string
	Debug   bool
	Backend string
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	if m.Backend == LogBackendZap {
		logger, err := NewZapLogger(m.Prefix, m.Debug)
		if err == nil {
			app.addResources(logger)
			return
		}
		fallback := NewDefaultLogger(m.Prefix, m.Debug)
		fallback.Warnf("zap backend unavailable, using std: %v", err)
		app.addResources(fallback)
		return
	}
	app.addResources(NewDefaultLogger(m.Prefix, m.Debug))
}

type nopLogger struct{}

func NewNopLogger() Logger                                  { return &nopLogger{} }
func (n *nopLogger) DebugEnabled() bool                     { return false }
func (n *nopLogger) SetDebug(enabled bool)                  {}
func (n *nopLogger) Debugf(format string, args ...any)      {}
func (n *nopLogger) Infof(format string, args ...any)       {}
func (n *nopLogger) Warnf(format string, args ...any)       {}
func (n *nopLogger) Errorf(format string, args ...any)      {}

// Logger returns the first Logger resource if present, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
