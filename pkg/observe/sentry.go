package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"weather-dashboard/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer meant to be passed to logger.New next to stdout.
// It re-reads each JSON record and forwards error-level ones to Sentry.
type SentryHook struct {
	appZone string
	appName string
	l       *logger.Logger
	capture func(*sentry.Event) *sentry.EventID
}

func NewSentryHook(
	appZone, appName string,
	maxErrorDepth int,
	isDebug bool,
	dsn string,
) *SentryHook {
	if dsn == "" {
		log.Println("Stacktracer init error: no DSN")
	}
	if maxErrorDepth == 0 {
		maxErrorDepth = _sentryMaxErrorDepth
	}
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    maxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {

		log.Println("Stacktracer init error: ", err.Error())
	} else {
		log.Println("Stacktracer init success")
	}
	return &SentryHook{
		appZone: appZone,
		appName: appName,
		capture: sentry.CaptureEvent,
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {

	switch zl {

	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal

	}

	return sentry.LevelDebug
}

func (h *SentryHook) forwards() bool {
	switch h.appZone {
	case "prod", "production", "dev", "development":
		return true
	}
	return false
}

// logRecord is the subset of a logger.Logger JSON line the hook cares about.
type logRecord struct {
	Level      string `json:"level"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	// request fields, set by the http error handler
	Path      string `json:"path"`
	Method    string `json:"method"`
	RequestID string `json:"requestId"`
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if !h.forwards() {
		return len(p), nil
	}

	var rec logRecord
	if err := json.Unmarshal(p, &rec); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(rec.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}
	if rec.Message == "" || level < zapcore.ErrorLevel {
		return len(p), nil
	}

	h.capture(h.newEvent(rec, level))
	return len(p), nil
}

func (h *SentryHook) newEvent(rec logRecord, level zapcore.Level) *sentry.Event {
	event := sentry.NewEvent()
	event.Environment = h.appZone
	event.Level = h.mapLevel(level)
	event.Message = rec.Message
	event.Timestamp, _ = time.ParseInLocation(logger.TimestampLayout, rec.Timestamp, time.UTC)

	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = rec.Error
	event.Extra["CallerFile"] = rec.CallerFile
	event.Extra["CallerLine"] = rec.CallerLine
	event.Extra["CallerFunc"] = rec.CallerFunc
	event.Extra["Stack"] = rec.Stack

	for tag, v := range map[string]string{"path": rec.Path, "method": rec.Method, "request_id": rec.RequestID} {
		if v != "" {
			event.Tags[tag] = v
		}
	}

	event.Exception = append(event.Exception, sentry.Exception{
		Type:       rec.Message,
		Value:      rec.Error,
		Stacktrace: sentry.NewStacktrace(),
	})
	return event
}

// report must not go through h.l at error level: that would loop back into Write.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Warning(err.Error())
		return
	}
	log.Println(err.Error())
}

func (h *SentryHook) SetLogger(l *logger.Logger) {
	if l != nil {
		h.l = l
	}
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return sentry.Flush(_sentryFlushTimeout)
}
