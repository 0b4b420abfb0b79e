// internal/component/ore.go
package component

// OreVein — рудная жила, из которой игрок добывает патроны.
type OreVein struct {
	Uses    int // Оставшиеся добычи
	MaxUses int
}

// Depleted — жила выработана.
func (o *OreVein) Depleted() bool {
	return o.Uses <= 0
}

// Hyperseed — цель уровня; подбор переводит все группы врагов в агрессию.
type Hyperseed struct {
	Grabbed bool
}
