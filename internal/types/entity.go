// internal/types/entity.go
package types

// EntityID — стабильный дескриптор сущности в ECS.
// Ноль никогда не выдаётся и означает «нет сущности».
type EntityID uint64

// None — пустой дескриптор.
const None EntityID = 0
