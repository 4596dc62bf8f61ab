// Package logging provides structured logging using uber/zap.
//
// Production loggers write JSON; development loggers write colored console
// output. Formula packages never log. The provider registry, HTTP layer and
// command-line tools take a *Logger and fall back to a no-op logger when
// given nil.
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8000"))
package logging
