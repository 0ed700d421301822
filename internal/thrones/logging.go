package thrones

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingAPI is a decorator that logs every API call with its latency and
// outcome.
type LoggingAPI struct {
	inner API
	log   *zap.Logger
}

// WithLogging wraps an API with call logging.
func WithLogging(api API, log *zap.Logger) API {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingAPI{inner: api, log: log.Named("thrones")}
}

func (l *LoggingAPI) ListCharacters(ctx context.Context) ([]Character, error) {
	start := time.Now()
	chars, err := l.inner.ListCharacters(ctx)
	l.record("list characters", start, err, zap.Int("count", len(chars)))
	return chars, err
}

func (l *LoggingAPI) GetCharacter(ctx context.Context, id int) (*Character, error) {
	start := time.Now()
	char, err := l.inner.GetCharacter(ctx, id)
	l.record("get character", start, err, zap.Int("id", id))
	return char, err
}

func (l *LoggingAPI) SaveCharacter(ctx context.Context, update CharacterUpdate) error {
	start := time.Now()
	err := l.inner.SaveCharacter(ctx, update)
	l.record("save character", start, err,
		zap.String("id", update.ID),
		zap.String("full_name", update.FullName),
	)
	return err
}

func (l *LoggingAPI) record(op string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("op", op),
		zap.Duration("latency", time.Since(start)),
	)
	if err != nil {
		l.log.Warn("api call failed", append(fields, zap.Error(err))...)
		return
	}
	l.log.Info("api call", fields...)
}

// SaveResponseLogger returns a save observer that logs the raw response of
// the update endpoint.
func SaveResponseLogger(log *zap.Logger) func(status int, body []byte) {
	if log == nil {
		log = zap.NewNop()
	}
	return func(status int, body []byte) {
		log.Named("thrones").Info("save response",
			zap.Int("status", status),
			zap.ByteString("body", body),
		)
	}
}
