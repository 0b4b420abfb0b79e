// internal/metrics/collector.go
package metrics

import (
	"go-drosera/internal/event"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector переводит события ядра в Prometheus-метрики.
// Один Collector переживает перезапуски сессии: Attach подписывает его
// на диспетчер новой игры.
type Collector struct {
	shots        *prometheus.CounterVec
	cooldowns    *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	damageTaken  prometheus.Counter
	enemiesAggro prometheus.Counter
	enemiesDead  prometheus.Counter
	oreMined     prometheus.Counter
	roomsEntered prometheus.Counter
	gamesLost    prometheus.Counter
}

// NewCollector создаёт метрики и регистрирует их в reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		shots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "shots_fired_total",
			Help:      "Выстрелы и применения способностей по источнику.",
		}, []string{"source"}),
		cooldowns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "cooldowns_started_total",
			Help:      "Начатые перезарядки по действию.",
		}, []string{"action"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "player_state_transitions_total",
			Help:      "Переходы автомата игрока по целевому состоянию.",
		}, []string{"to"}),
		damageTaken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "player_damage_taken_total",
			Help:      "Суммарный урон, полученный игроком.",
		}),
		enemiesAggro: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "enemies_aggroed_total",
			Help:      "Сколько раз враги переходили в агрессию.",
		}),
		enemiesDead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "enemies_destroyed_total",
			Help:      "Уничтоженные враги.",
		}),
		oreMined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "ore_mined_total",
			Help:      "Добытые порции руды.",
		}),
		roomsEntered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "rooms_entered_total",
			Help:      "Переходы игрока между комнатами.",
		}),
		gamesLost: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "drosera",
			Name:      "games_lost_total",
			Help:      "Проигранные сессии.",
		}),
	}
	reg.MustRegister(
		c.shots, c.cooldowns, c.transitions,
		c.damageTaken, c.enemiesAggro, c.enemiesDead,
		c.oreMined, c.roomsEntered, c.gamesLost,
	)
	return c
}

// Attach подписывает коллектор на события диспетчера.
func (c *Collector) Attach(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.ShotFired,
		event.CooldownStarted,
		event.PlayerStateChanged,
		event.DamageTaken,
		event.EnemyAggroed,
		event.EnemyDestroyed,
		event.OreMined,
		event.RoomEntered,
		event.GameLost,
	} {
		d.Subscribe(t, c)
	}
}

func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		if data, ok := e.Data.(event.ShotData); ok {
			c.shots.WithLabelValues(data.Source).Inc()
		}
	case event.CooldownStarted:
		if data, ok := e.Data.(event.CooldownData); ok {
			c.cooldowns.WithLabelValues(data.Action).Inc()
		}
	case event.PlayerStateChanged:
		if data, ok := e.Data.(event.StateChangeData); ok {
			c.transitions.WithLabelValues(data.To).Inc()
		}
	case event.DamageTaken:
		if data, ok := e.Data.(event.DamageData); ok {
			c.damageTaken.Add(data.Amount)
		}
	case event.EnemyAggroed:
		c.enemiesAggro.Inc()
	case event.EnemyDestroyed:
		c.enemiesDead.Inc()
	case event.OreMined:
		c.oreMined.Inc()
	case event.RoomEntered:
		c.roomsEntered.Inc()
	case event.GameLost:
		c.gamesLost.Inc()
	}
}
