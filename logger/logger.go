package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger envuelve slog y satisface interfaces.Logger.
type Logger struct {
	slog *slog.Logger
}

// New crea el logger del bot: salida JSON a consola y a un archivo
// rotado con lumberjack.
func New() *Logger {
	logFile := &lumberjack.Logger{
		Filename:   "nexo.log",
		MaxSize:    10, // MB por archivo
		MaxBackups: 5,
		MaxAge:     30, // días
		Compress:   true,
	}

	out := io.MultiWriter(os.Stdout, logFile)

	return &Logger{
		slog: slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// Fatal registra el error y termina el proceso con estado distinto de cero.
func (l *Logger) Fatal(msg string, args ...any) {
	l.slog.Error(msg, args...)
	os.Exit(1)
}
