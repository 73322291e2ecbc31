package interfaces

// Lifecycle is what a host needs to drive a run and react to its end.
type Lifecycle interface {
	Start()
	Stop()
	Restart()
	IsGameOver() bool
}
