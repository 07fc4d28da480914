package slg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Severity_Scale(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		// urgency grows towards zero
		assert.True(t, SEV_DEBUGGING < SEV_ALERT)
		assert.True(t, SEV_ALERT < SEV_CRITICAL)
		assert.True(t, SEV_CRITICAL < SEV_ERROR)
		assert.True(t, SEV_ERROR < SEV_WARNING)
		assert.True(t, SEV_WARNING < SEV_NOTICE)
		assert.True(t, SEV_NOTICE < SEV_INFORMATION)
	})
	t.Run("tables_cover_scale", func(t *testing.T) {
		for sev := SEV_DEBUGGING; sev < _SEV_MAX_for_checks_only; sev++ {
			assert.NotEmpty(t, SevNames[sev], "no name for severity %d", sev)
			assert.NotEmpty(t, SevColorOnBlackMap[sev], "no color for severity %d", sev)
		}
	})
}

func Test_Severity_Names(t *testing.T) {
	cases := []struct {
		sev  Severity
		name string
	}{
		{SEV_DEBUGGING, "DEBUGGING"},
		{SEV_ALERT, "ALERT"},
		{SEV_CRITICAL, "CRITICAL"},
		{SEV_ERROR, "ERROR"},
		{SEV_WARNING, "WARNING"},
		{SEV_NOTICE, "NOTICE"},
		{SEV_INFORMATION, "INFORMATION"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.name, c.sev.String())
			parsed, err := ParseSeverity(strings.ToLower(c.name))
			assert.NoError(t, err)
			assert.Equal(t, c.sev, parsed)
			// single-letter alias, lower case
			parsed, err = ParseSeverity(strings.ToLower(c.name[:1]))
			assert.NoError(t, err)
			assert.Equal(t, c.sev, parsed)
		})
	}
	t.Run("unknown", func(t *testing.T) {
		_, err := ParseSeverity("verbose")
		assert.Error(t, err)
		assert.Equal(t, "SEVERITY(42)", Severity(42).String())
	})
}

func Test_Severity_Norm(t *testing.T) {
	assert.Equal(t, SEV_ERROR, normSeverity(SEV_ERROR))
	assert.Equal(t, SEV_DEBUGGING, normSeverity(SEV_DEBUGGING))
	assert.Equal(t, DEFAULT_SEVERITY, normSeverity(_SEV_MAX_for_checks_only))
	assert.Equal(t, DEFAULT_SEVERITY, normSeverity(Severity(200)))
}

func Test_SinkSet_Builder(t *testing.T) {
	assert.Equal(t, SINK_NONE, Sinks(), "fresh set is not empty")
	s := Sinks().Console().File()
	assert.True(t, s.Has(SINK_CONSOLE))
	assert.True(t, s.Has(SINK_FILE))
	assert.False(t, s.Has(SINK_SYSTEM))
	assert.Equal(t, s, s.Console().Console(), "repeated add changed the set")
	assert.Equal(t, SINK_ALL, Sinks().SystemLog().Console().File())
	assert.False(t, SINK_ALL.Has(SINK_NONE), "empty member reported as present")
}

func Test_SinkSet_Norm(t *testing.T) {
	assert.Equal(t, SINK_ALL, normSinks(SinkSet(0xFF)))
	assert.Equal(t, SINK_NONE, normSinks(SinkSet(0xF8)))
	assert.Equal(t, SINK_CONSOLE, normSinks(SINK_CONSOLE))
}

func Test_SinkSet_StringParse(t *testing.T) {
	assert.Equal(t, "none", SINK_NONE.String())
	assert.Equal(t, "console", SINK_CONSOLE.String())
	assert.Equal(t, "system|console|file", SINK_ALL.String())

	s, err := ParseSinks("console, file")
	assert.NoError(t, err)
	assert.Equal(t, Sinks().Console().File(), s)

	s, err = ParseSinks("syslog|console")
	assert.NoError(t, err)
	assert.Equal(t, Sinks().SystemLog().Console(), s)

	s, err = ParseSinks("")
	assert.NoError(t, err)
	assert.Equal(t, SINK_NONE, s)

	_, err = ParseSinks("console,tape")
	assert.Error(t, err)
}
