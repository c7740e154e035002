package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	debugs, infos, warns, errs []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.debugs = append(r.debugs, msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.infos = append(r.infos, msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.warns = append(r.warns, msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.errs = append(r.errs, msg) }

func TestOutputMirrorsToLogger(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Error("boom")
	Warning("careful")
	Info("hello")
	Success("done")

	assert.Equal(t, []string{"boom"}, rec.errs)
	assert.Equal(t, []string{"careful"}, rec.warns)
	assert.Equal(t, []string{"hello", "done"}, rec.infos)
}

func TestDebugMirrorsEvenWhenDisabled(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	SetDebug(false)
	Debug("trace me")

	assert.Equal(t, []string{"trace me"}, rec.debugs)
}

func TestMultipleArgsAreJoined(t *testing.T) {
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Warning("failed to open", "history.tsv")

	assert.Equal(t, []string{"failed to open history.tsv"}, rec.warns)
}
