//go:generate mockgen -destination ./mock/writer.go -package mock_exectimer io Writer
package exectimer

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"exectimer/internal/config"
)

const reportPrefix = "Time: "

// emitter measures intervals and writes one report line per timed operation.
// Wrappers capture the package default emitter when they are created.
type emitter struct {
	// out is the report sink; nil means whatever os.Stdout is at write time.
	out     io.Writer
	clock   clock.PassiveClock
	log     logrus.FieldLogger
	enabled bool
}

var std atomic.Pointer[emitter]

func init() {
	std.Store(newDefaultEmitter())
}

// defaultEmitter is read by every wrapper constructor; it may run concurrently with SetLogger.
func defaultEmitter() *emitter {
	return std.Load()
}

func newDefaultEmitter() *emitter {
	cfg := config.Get()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel())

	e := &emitter{
		clock:   clock.RealClock{},
		log:     log.WithField("component", "exectimer"),
		enabled: !cfg.Disabled,
	}
	if !e.enabled {
		e.log.Debug("timing reports disabled by configuration")
	}
	return e
}

// SetLogger sets the logger used for the package's own diagnostics, such as report lines that could not be
// written. Timing reports themselves always go to standard output. Wrappers created before the call keep
// the previous logger.
func SetLogger(log logrus.FieldLogger) {
	entry := log.WithField("component", "exectimer")
	for {
		prev := std.Load()
		e := *prev
		e.log = entry
		if std.CompareAndSwap(prev, &e) {
			return
		}
	}
}

func formatReport(d time.Duration) string {
	return fmt.Sprintf("%s%.6gs\n", reportPrefix, d.Seconds())
}

func (e *emitter) start() *interval {
	return startInterval(e.clock)
}

func (e *emitter) writer() io.Writer {
	if e.out != nil {
		return e.out
	}
	return os.Stdout
}

// emit writes the report for d with a single Write call.
func (e *emitter) emit(d time.Duration) error {
	if !e.enabled {
		return nil
	}
	if _, err := io.WriteString(e.writer(), formatReport(d)); err != nil {
		return fmt.Errorf("writing timing report: %w", err)
	}
	return nil
}

func (e *emitter) emitOrLog(d time.Duration) {
	if err := e.emit(d); err != nil {
		e.logLost(err)
	}
}

func (e *emitter) logLost(err error) {
	e.log.Errorf("timing report lost: %v", err)
}

// finish stops iv and reports it. Callers only reach it when the timed operation returned normally.
func (e *emitter) finish(iv *interval) {
	iv.Stop()
	e.emitOrLog(iv.Duration())
}
