package system

import (
	"testing"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
)

func TestCull(t *testing.T) {
	cs := NewCombatSystem(event.NewDispatcher())
	a := entity.NewEnemy(1, 0, 0, component.Position{})
	b := entity.NewEnemy(2, 0, 0, component.Position{})
	c := entity.NewEnemy(3, 0, 0, component.Position{})
	b.TakeDamage(60)

	enemies := []*entity.Enemy{a, b, c}
	alive, dead := cs.Cull(enemies)

	if len(alive) != 2 || alive[0] != a || alive[1] != c {
		t.Errorf("Expected [a c] alive, got %v", alive)
	}
	if len(dead) != 1 || dead[0] != b {
		t.Errorf("Expected [b] dead, got %v", dead)
	}
	if enemies[2] != nil {
		t.Error("Expected stale tail reference cleared")
	}
}

func TestTouchingThreshold(t *testing.T) {
	p := entity.NewPlayer(100, 100)
	tests := []struct {
		name string
		dist float64
		want bool
	}{
		{"34 < 35", 34, true},
		{"exactly 35", 35, false},
		{"overlapping", 0, true},
		{"far", 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entity.NewEnemy(1, 100+tt.dist, 100, component.Position{})
			if got := Touching(p, e); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResolveContactsStacks(t *testing.T) {
	d := event.NewDispatcher()
	var hits []event.PlayerDamagedData
	d.Subscribe(event.PlayerDamaged, event.ListenerFunc(func(e event.Event) {
		hits = append(hits, e.Data.(event.PlayerDamagedData))
	}))
	cs := NewCombatSystem(d)

	p := entity.NewPlayer(100, 100)
	enemies := []*entity.Enemy{
		entity.NewEnemy(1, 134, 100, component.Position{}),
		entity.NewEnemy(2, 100, 80, component.Position{}),
		entity.NewEnemy(3, 500, 500, component.Position{}),
	}

	if n := cs.ResolveContacts(p, enemies); n != 2 {
		t.Errorf("Expected 2 hits, got %d", n)
	}
	if p.Health.Value != 90 {
		t.Errorf("Expected 90 health after two 5-point hits, got %v", p.Health.Value)
	}
	if len(hits) != 2 || hits[0].Amount != 5 || hits[1].Health != 90 {
		t.Errorf("Unexpected damage events %+v", hits)
	}
}

func TestResolveContactsClampsAtZero(t *testing.T) {
	cs := NewCombatSystem(event.NewDispatcher())
	p := entity.NewPlayer(0, 0)
	p.Health.Value = 7
	enemies := []*entity.Enemy{
		entity.NewEnemy(1, 0, 0, component.Position{}),
		entity.NewEnemy(2, 1, 0, component.Position{}),
	}
	cs.ResolveContacts(p, enemies)
	if p.Health.Value != 0 || !p.IsDead() {
		t.Errorf("Expected clamped 0 health, got %v", p.Health.Value)
	}
}
