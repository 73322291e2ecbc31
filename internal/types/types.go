package types

// EntityID identifies a spawned entity for the lifetime of one run.
type EntityID uint64
