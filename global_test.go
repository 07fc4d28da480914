package slg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Default_SingleInstance(t *testing.T) {
	const _GETTERS_ = 16
	hold := make(chan struct{})
	got := make([]*Logger, _GETTERS_)
	wg := sync.WaitGroup{}
	for i := 0; i < _GETTERS_; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			<-hold
			got[slot] = Default()
		}(i)
	}
	close(hold) // start together
	wg.Wait()
	for i := 1; i < _GETTERS_; i++ {
		assert.Same(t, got[0], got[i], "racing getters saw different loggers")
	}
}

func Test_PackageLevel_Delegates(t *testing.T) {
	out, errw := &FakeWriter{}, &FakeWriter{}
	SetConsole(out, errw)
	SetLevel(SEV_WARNING)
	defer func() {
		SetConsole(nil, nil)
		SetLevel(DEFAULT_SEVERITY)
		SetOutput(DEFAULT_SINKS)
		SetColor(false)
	}()

	Information("below the floor")
	assert.Empty(t, out.String())
	assert.Empty(t, errw.String())

	Warning("watch this")
	assert.Contains(t, out.String(), "[WARNING]: watch this")

	E("gone wrong")
	assert.Contains(t, errw.String(), "[ERROR]: gone wrong")

	res := Now(Sinks().Console()).SetColor(false)
	assert.Same(t, Default(), res, "mirrored setters chain a different logger")
	W("after the chain")
	assert.Contains(t, out.String(), "after the chain")
}

func Test_PackageLevel_AllSeverities(t *testing.T) {
	sink := &recordSink{}
	SetSystemSink(sink)
	SetOutput(Sinks().SystemLog())
	defer func() {
		SetOutput(DEFAULT_SINKS)
		SetSystemSink(nil)
		SetLevel(DEFAULT_SEVERITY)
	}()
	SetLevel(DEFAULT_SEVERITY)

	Debugging("m")
	Alert("m")
	Critical("m")
	Error("m")
	Warning("m")
	Notice("m")
	Information("m")
	D("s")
	A("s")
	C("s")
	E("s")
	W("s")
	N("s")
	I("s")

	require.Len(t, sink.lines, 14)
	order := []Severity{SEV_DEBUGGING, SEV_ALERT, SEV_CRITICAL, SEV_ERROR, SEV_WARNING, SEV_NOTICE, SEV_INFORMATION}
	for i, sev := range order {
		assert.Equal(t, sev.String()+"|m", sink.lines[i])
		assert.Equal(t, sev.String()+"|s", sink.lines[i+len(order)], "alias routed to a different severity")
	}
}
