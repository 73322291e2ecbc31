package app

import (
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/interfaces"
)

// RestartOnKey restarts and resumes a finished run when k is the restart
// binding. It reports whether a restart happened. Hosts call it on key-down.
func RestartOnKey(g interfaces.Lifecycle, k input.Key) bool {
	if k != input.KeyR || !g.IsGameOver() {
		return false
	}
	g.Restart()
	g.Start()
	return true
}
