package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ian-shakespeare/liblox/internal/config"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Level is shared by every handler New builds, so SetLevel takes effect on
// loggers that already exist.
var level = new(slog.LevelVar)

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func SetLevel(l slog.Level) {
	level.Set(l)
}

// New returns a logger writing text records to w and, when cfg.Journal is set,
// to the systemd journal as well. A journal that cannot be reached is reported
// through the text handler and otherwise ignored.
func New(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	l, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	SetLevel(l)

	terminalHandler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{terminalHandler}

	if cfg.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// toJournalKey maps an attribute key onto the journal field alphabet:
// upper-case letters, digits and underscores, not starting with a digit or
// underscore.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return '_'
	}, str)
	str = strings.TrimLeft(str, "_0123456789")
	if str == "" {
		return "FIELD"
	}
	return str
}
