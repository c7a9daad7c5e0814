// Package logging builds the zap logger used by the radixdemo driver.
package logging

import (
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at the named level.
// Timestamps are omitted so demo output stays reproducible.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)

	return zap.New(core), nil
}

// PassTracer returns a radix OnPass hook that logs every pass at debug level.
// The view is cloned because cores such as zaptest/observer keep fields.
func PassTracer(l *zap.Logger) func(pass, exp int, view []int) {
	return func(pass, exp int, view []int) {
		l.Debug("radix pass",
			zap.Int("pass", pass),
			zap.Int("exp", exp),
			zap.Ints("view", slices.Clone(view)),
		)
	}
}
