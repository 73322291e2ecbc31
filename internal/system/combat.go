package system

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
)

// CombatSystem removes the dead and applies contact damage.
type CombatSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{eventDispatcher: eventDispatcher}
}

// Cull splits enemies into survivors and the dead. alive reuses the backing
// array of enemies.
func (s *CombatSystem) Cull(enemies []*entity.Enemy) (alive, dead []*entity.Enemy) {
	alive = enemies[:0]
	for _, e := range enemies {
		if e.IsDead() {
			dead = append(dead, e)
			continue
		}
		alive = append(alive, e)
	}
	// drop references held past the new length
	for i := len(alive); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return alive, dead
}

// Touching reports whether e overlaps the player's collision circle.
func Touching(p *entity.Player, e *entity.Enemy) bool {
	return p.Position.DistanceTo(e.Position) < e.Radius()+config.PlayerCollisionRadius
}

// ResolveContacts damages the player once per touching enemy; contacts stack
// within a tick. It returns the number of hits.
func (s *CombatSystem) ResolveContacts(p *entity.Player, enemies []*entity.Enemy) int {
	hits := 0
	for _, e := range enemies {
		if !Touching(p, e) {
			continue
		}
		amount := e.Damage * config.ContactScale
		p.TakeDamage(amount)
		hits++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDamaged,
			Data: event.PlayerDamagedData{Amount: amount, Health: p.Health.Value},
		})
	}
	return hits
}
