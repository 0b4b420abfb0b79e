package config

import "flag"

// Flags — параметры командной строки игры.
type Flags struct {
	Encounter string
	Seed      int64
	DebugAddr string
	SkipMenu  bool
	LogLevel  string
	LogFormat string
}

// ParseFlags разбирает args. Без -skip-menu игра начинается с титульного экрана.
func ParseFlags(name string, args []string) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.Encounter, "encounter", "", "путь к YAML-описанию встречи (по умолчанию встроенная)")
	fs.Int64Var(&f.Seed, "seed", 0, "сид генератора случайных чисел, 0 — от текущего времени")
	fs.StringVar(&f.DebugAddr, "debug-addr", "", "адрес pprof и /metrics")
	fs.BoolVar(&f.SkipMenu, "skip-menu", false, "начинать сразу с игры, без титульного экрана")
	fs.StringVar(&f.LogLevel, "log-level", "", "уровень логов (debug, info, warn...)")
	fs.StringVar(&f.LogFormat, "log-format", "", "формат логов: text или json")
	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}
