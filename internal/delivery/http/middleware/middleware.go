package middleware

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type MiddlewareConfig struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

// Middleware holds the shared dependencies of the fiber handlers in this
// package. A zero Middleware is usable and falls back to defaults.
type Middleware struct {
	Log    *logrus.Logger
	Config *viper.Viper
}

func NewMiddleware(c *MiddlewareConfig) *Middleware {
	if c == nil {
		return &Middleware{}
	}

	return &Middleware{
		Log:    c.Log,
		Config: c.Config,
	}
}

func (m *Middleware) getInt(key string, def int) int {
	if m == nil || m.Config == nil {
		return def
	}
	if v := m.Config.GetInt(key); v > 0 {
		return v
	}
	return def
}

func (m *Middleware) logger() logrus.FieldLogger {
	if m == nil || m.Log == nil {
		return logrus.StandardLogger()
	}
	return m.Log
}
