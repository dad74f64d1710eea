package dialog

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config carries the call-scoped constants §6 names: T1 (base RTT
// estimate), T2 (retransmission ceiling), and T_dialog (dialog
// inactivity timeout). Constructed with functional options, the same
// idiom the teacher uses for ServerOption/ClientOption/UserAgentOption.
type Config struct {
	T1           time.Duration
	T2           time.Duration
	DialogExpiry time.Duration

	log zerolog.Logger
}

// Option configures a Config.
type Option func(*Config)

// WithT1 overrides the base RTT estimate (default 500ms).
func WithT1(d time.Duration) Option {
	return func(c *Config) { c.T1 = d }
}

// WithT2 overrides the retransmission ceiling (default 4s).
func WithT2(d time.Duration) Option {
	return func(c *Config) { c.T2 = d }
}

// WithDialogTimeout overrides the dialog inactivity timeout T_dialog.
func WithDialogTimeout(d time.Duration) Option {
	return func(c *Config) { c.DialogExpiry = d }
}

// WithLogger overrides the default logger, mirroring
// WithServerLogger's functional-option shape.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.log = logger }
}

// NewConfig builds a Config with RFC 3261 defaults (T1=500ms,
// T2=4s) and a 32s dialog inactivity timeout, then applies opts.
func NewConfig(opts ...Option) Config {
	c := Config{
		T1:           500 * time.Millisecond,
		T2:           4 * time.Second,
		DialogExpiry: 32 * time.Second,
		log:          log.Logger.With().Str("component", "dialog").Logger(),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func (c Config) Logger() zerolog.Logger { return c.log }
