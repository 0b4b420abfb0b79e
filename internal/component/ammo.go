package component

import "errors"

// ErrAmmoUnderflow — вызывающий потратил больше патронов, чем было заряжено.
var ErrAmmoUnderflow = errors.New("ammo: spend exceeds loaded ammo")

// AmmoPool — заряженные патроны и запас.
// Инвариант Loaded <= Max соблюдается только при перезарядке.
type AmmoPool struct {
	Loaded int
	Held   int
	Max    int
}

// CanSpend сообщает, хватает ли заряженных патронов на cost.
func (a *AmmoPool) CanSpend(cost int) bool {
	return cost <= a.Loaded
}

// Spend списывает cost патронов. При нехватке обнуляет счётчик
// и возвращает ErrAmmoUnderflow.
func (a *AmmoPool) Spend(cost int) error {
	if cost <= 0 {
		return nil
	}
	if cost > a.Loaded {
		a.Loaded = 0
		return ErrAmmoUnderflow
	}
	a.Loaded -= cost
	return nil
}

// Reload переносит патроны из запаса в магазин до Max.
// Возвращает количество перенесённых патронов.
func (a *AmmoPool) Reload() int {
	if a.Held <= 0 || a.Loaded >= a.Max {
		return 0
	}
	total := a.Held + a.Loaded
	before := a.Loaded
	if total > a.Max {
		a.Loaded = a.Max
		a.Held = total - a.Max
	} else {
		a.Loaded = total
		a.Held = 0
	}
	return a.Loaded - before
}

// AddLoaded добавляет патроны прямо в магазин (добыча руды).
func (a *AmmoPool) AddLoaded(n int) {
	if n > 0 {
		a.Loaded += n
	}
}
