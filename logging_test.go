package tesseract

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLogger_Format(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewDefaultLogger("tess", false)
	l.out = log.New(&out, "", 0)
	l.err = log.New(&errOut, "", 0)

	l.Debugf("hidden %d", 1)
	l.Infof("frame %d", 2)
	l.Warnf("slow")
	assert.Equal(t, "[tess] INFO: frame 2\n", out.String())
	assert.Equal(t, "[tess] WARN: slow\n", errOut.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 3)
	assert.Contains(t, out.String(), "[tess] DEBUG: shown 3")

	bare := NewDefaultLogger("", false)
	bare.err = log.New(&errOut, "", 0)
	bare.Errorf("boom")
	assert.Contains(t, errOut.String(), "ERROR: boom\n")
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerWithCore(core, false)

	l.Debugf("hidden")
	l.Infof("hello %d", 1)
	l.Warnf("careful")
	l.Errorf("bad %s", "thing")
	assert.False(t, l.DebugEnabled())
	assert.Equal(t, 0, logs.FilterMessage("hidden").Len())
	assert.Equal(t, 1, logs.FilterMessage("hello 1").Len())
	assert.Equal(t, 1, logs.FilterMessage("careful").Len())

	bad := logs.FilterMessage("bad thing").All()
	require.Len(t, bad, 1)
	assert.Equal(t, zapcore.ErrorLevel, bad[0].Level)

	l.SetDebug(true)
	l.Debugf("shown")
	assert.Equal(t, 1, logs.FilterMessage("shown").Len())
}

func TestLoggingModule_Backends(t *testing.T) {
	app := NewAppBuilder().UseModule(LoggingModule{Prefix: "test", Backend: LogBackendZap}).Build()
	zl := Resource[ZapLogger](app)
	require.NotNil(t, zl)
	assert.Same(t, zl, app.Logger())

	app = NewAppBuilder().UseModule(LoggingModule{Prefix: "test", Debug: true}).Build()
	dl := Resource[DefaultLogger](app)
	require.NotNil(t, dl)
	assert.True(t, app.Logger().DebugEnabled())
}

func TestSystems_LogThroughAppLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := NewAppBuilder().UseStates(StateRunning, StateExiting).Build()
	app.Commands().AddResources(NewZapLoggerWithCore(core, true))

	app.UseSystem(System(func(log Logger, cmd *Commands) {
		log.Infof("from system")
		cmd.Logger().Debugf("from commands")
	}))
	app.Step()

	assert.Equal(t, 1, logs.FilterMessage("from system").Len())
	assert.Equal(t, 1, logs.FilterMessage("from commands").Len())
}
