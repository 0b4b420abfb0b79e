// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-drosera/internal/config"
	"go-drosera/internal/defs"
	"go-drosera/internal/metrics"
	"go-drosera/internal/state"
	"go-drosera/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flags, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	logger.Init(config.LogLevel(flags.LogLevel), config.LogFormat(flags.LogFormat), os.Stdout)

	enc, err := loadEncounter(flags.Encounter)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load encounter")
	}

	session := state.Session{
		Encounter: enc,
		Seed:      flags.Seed,
		Metrics:   metrics.NewCollector(prometheus.DefaultRegisterer),
	}

	addr := config.DebugAddr(flags.DebugAddr)
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		logger.Log.WithField("addr", addr).Info("debug server listening")
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Log.WithError(err).Warn("debug server stopped")
		}
	}()

	sm := state.NewStateMachine()
	if flags.SkipMenu {
		gs, err := state.NewGameState(sm, session)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to create game")
		}
		sm.SetState(gs)
	} else {
		menu, err := state.NewMenuState(sm, session)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to create menu")
		}
		sm.SetState(menu)
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Drosera")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("game loop failed")
	}
}

func loadEncounter(path string) (*defs.Encounter, error) {
	if path == "" {
		return defs.DefaultEncounter()
	}
	return defs.LoadEncounter(path)
}
