package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с уровнем Info, поэтому безопасен в тестах.
var Log = logrus.New()

// Init настраивает глобальный логгер: уровень ("debug" показывает рассылки
// групп врагов и выстрелы способностей) и формат ("json" для разбора
// прогонов, всё остальное — цветной текст). Неизвестный уровень
// заменяется на info с предупреждением.
func Init(level, format string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Log.SetLevel(logrus.InfoLevel)
		Log.WithField("level", level).Warn("unknown log level, using info")
		return
	}
	Log.SetLevel(parsed)
}

// For возвращает запись с полем system — так подписаны логи всех систем симуляции.
func For(system string) *logrus.Entry {
	return Log.WithField("system", system)
}
