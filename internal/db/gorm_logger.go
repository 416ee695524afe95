package db

import (
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// SlowQueryThreshold is the duration above which gorm reports a query as slow.
const SlowQueryThreshold = 200 * time.Millisecond

// zerologWriter adapts a zerolog logger to gorm's Printf-style writer.
type zerologWriter struct {
	logger zerolog.Logger
}

func (w zerologWriter) Printf(format string, args ...interface{}) {
	w.logger.Warn().Msgf(format, args...)
}

// NewGormLogger routes gorm's statement log into zerolog. Statements are
// logged with placeholders only, so bound values such as credential hashes
// never reach the log.
func NewGormLogger(logger zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(
		zerologWriter{logger: logger.With().Str("component", "gorm").Logger()},
		gormlogger.Config{
			SlowThreshold:             SlowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)
}
