package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config del logger del servicio.
type Config struct {
	App   string // se agrega como campo "app" a cada evento
	Env   string // development = consola; cualquier otro valor = JSON
	Level string // nivel zerolog (debug, info, warn...); inválido = info
}

// Logger es el logger que reciben casos de uso, adaptadores y middlewares.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger de cmd/api y cmd/seed_roles y lo deja como global de zerolog.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	l := build(w, cfg)
	log.Logger = l.zl
	return l
}

// FromWriter escribe JSON en w, sin tocar el logger global.
func FromWriter(w io.Writer, cfg Config) *Logger {
	return build(w, cfg)
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func build(w io.Writer, cfg Config) *Logger {
	ctx := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp()
	if cfg.App != "" {
		ctx = ctx.Str("app", cfg.App)
	}
	if cfg.Env != "" {
		ctx = ctx.Str("env", cfg.Env)
	}
	return &Logger{zl: ctx.Logger()}
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// Named agrega el campo "component" (registration, auth, role_cache, seed_roles).
func (l *Logger) Named(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}
