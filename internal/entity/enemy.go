package entity

import (
	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/ui"
	"go-zombie-survival/pkg/render"
)

// Enemy chases the player. Health is not clamped and may go negative.
type Enemy struct {
	ID       types.EntityID
	Position component.Position
	Velocity component.Velocity
	Health   component.Health
	Damage   float64 // per contact, before the contact scale
	Target   component.Position
	Visual   component.Renderable
}

// NewEnemy creates an enemy at (x, y) heading for target.
func NewEnemy(id types.EntityID, x, y float64, target component.Position) *Enemy {
	return &Enemy{
		ID:       id,
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{Speed: config.EnemySpeed},
		Health:   component.Health{Value: config.EnemyHealth},
		Damage:   config.EnemyDamage,
		Target:   target,
		Visual:   component.Renderable{Color: config.EnemyColor, Radius: config.EnemyRadius},
	}
}

// Update retargets to playerPos and steps straight toward it. An enemy that
// sits exactly on its target does not move.
func (e *Enemy) Update(deltaTime float64, playerPos component.Position) {
	e.Target = playerPos

	d := e.Target.Sub(e.Position)
	dist := d.Len()
	if dist > 0 {
		e.Position = e.Position.Add(d.Scale(e.Velocity.Speed * deltaTime / dist))
	}
}

func (e *Enemy) TakeDamage(amount float64) {
	e.Health.Value -= amount
}

func (e *Enemy) IsDead() bool {
	return e.Health.Value <= 0
}

func (e *Enemy) Radius() float64 { return e.Visual.Radius }

// Render draws the body and a health bar. The bar is scaled against
// config.EnemyHealth, not against a per-enemy maximum.
func (e *Enemy) Render(s render.Surface) {
	x, y, r := e.Position.X, e.Position.Y, e.Visual.Radius
	s.FillCircle(x, y, r, e.Visual.Color)
	ui.EnemyHealthBar.Draw(s, x, y, r, e.Health.Fraction(config.EnemyHealth))
}
