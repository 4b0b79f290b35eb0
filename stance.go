package stance

import (
	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/TimothyDexter/FiveM-StanceModifier/player/component"
	"github.com/TimothyDexter/FiveM-StanceModifier/settings"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// New returns a stance controller configured by the settings passed, with its components registered.
// The log level of the logger is set from the settings. An error is returned if the settings name
// an unknown debug mode.
func New(log *logrus.Logger, s settings.Settings, providers player.Providers) (*player.Controller, error) {
	modes, err := s.DebugModes()
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.SetLevel(s.LogLevel())
	}

	c := player.New(log, s.Opts(), providers)
	for _, mode := range modes {
		c.Dbg.Enable(mode)
	}
	component.Register(c)
	return c, nil
}

// InitSentry sets up the Sentry client recoveries are reported to. It does nothing if no DSN is set.
func InitSentry(s settings.Settings) error {
	if s.Sentry.DSN == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              s.Sentry.DSN,
		Environment:      s.Sentry.Environment,
		AttachStacktrace: true,
	})
}
