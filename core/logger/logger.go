package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	level       slog.Level
	output      io.Writer
	json        bool
	attrs       []slog.Attr
	handlerOpts *slog.HandlerOptions
}

// Option configures the logger produced by New.
type Option func(*options)

// WithLevel sets the minimum record level. Ignored when WithHandlerOptions
// supplies its own level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON records.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithTextFormatter switches output to logfmt-style text records, the
// default.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithOutput redirects log output; stdout is the default. Nil writers are
// ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr attaches base attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithHandlerOptions replaces the handler options wholesale for full
// control over source annotation and attribute rewriting.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(o *options) {
		o.handlerOpts = opts
	}
}

// WithDevelopment configures the development profile: text format at debug
// level, tagged with the application name.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.json = false
		o.level = slog.LevelDebug
		if appName != "" {
			o.attrs = append(o.attrs, slog.String("app", appName))
		}
	}
}

// WithProduction configures the production profile: JSON format at info
// level, tagged with the application name.
func WithProduction(appName string) Option {
	return func(o *options) {
		o.json = true
		o.level = slog.LevelInfo
		if appName != "" {
			o.attrs = append(o.attrs, slog.String("app", appName))
		}
	}
}

// WithStaging configures the staging profile, which mirrors production
// output so staging logs exercise the same pipeline.
func WithStaging(appName string) Option {
	return WithProduction(appName)
}

// New builds a slog.Logger from the given options. Without options the
// logger writes text records at info level to stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := o.handlerOpts
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: o.level}
	}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(handler)
}

// SetAsDefault installs log as both the slog default and the log package
// output.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}
