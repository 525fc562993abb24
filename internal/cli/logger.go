package cli

import (
	"io"

	cfg "huelog/internal/config"
	"huelog/internal/system"
	"huelog/logger"
)

// newLogger builds a Logger from config.json and the global flags.
func newLogger(out io.Writer, extra ...logger.Option) (*logger.Logger, error) {
	settings, err := cfg.Load()
	if err != nil {
		return nil, err
	}
	if p, perr := cfg.Path(); perr == nil {
		system.Logger.Debug("loaded config", "path", p, "subjects", len(settings.IgnoredSubjects), "severities", len(settings.IgnoredSeverities))
	}
	opts, err := settings.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, logger.WithOutput(out))
	if flagNoColor {
		opts = append(opts, logger.WithoutColor())
	}
	opts = append(opts, extra...)
	return logger.New(opts...), nil
}
