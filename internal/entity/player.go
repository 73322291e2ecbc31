package entity

import (
	"math"

	"go-zombie-survival/internal/component"
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/input"
	"go-zombie-survival/internal/ui"
	"go-zombie-survival/pkg/render"
)

// Player is the entity the user steers. Health stays within [0, MaxHealth].
type Player struct {
	Position  component.Position
	Velocity  component.Velocity
	Health    component.Health
	MaxHealth float64
	Angle     float64 // facing, radians
	Visual    component.Renderable
}

// NewPlayer creates a player at full health at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		Position:  component.Position{X: x, Y: y},
		Velocity:  component.Velocity{Speed: config.PlayerSpeed},
		Health:    component.Health{Value: config.PlayerMaxHealth},
		MaxHealth: config.PlayerMaxHealth,
		Visual:    component.Renderable{Color: config.PlayerColor, Radius: config.PlayerRadius},
	}
}

// Update moves the player by the held keys and turns it toward the pointer.
// Each binding adds its own axis step, so opposite keys cancel and two
// perpendicular keys move sqrt(2) times faster than one. There is no
// boundary clamping.
func (p *Player) Update(deltaTime float64, keys input.KeySet, pointerX, pointerY float64) {
	step := p.Velocity.Speed * deltaTime
	if keys.Has(input.KeyW) || keys.Has(input.KeyUp) {
		p.Position.Y -= step
	}
	if keys.Has(input.KeyS) || keys.Has(input.KeyDown) {
		p.Position.Y += step
	}
	if keys.Has(input.KeyA) || keys.Has(input.KeyLeft) {
		p.Position.X -= step
	}
	if keys.Has(input.KeyD) || keys.Has(input.KeyRight) {
		p.Position.X += step
	}

	p.Angle = component.Position{X: pointerX, Y: pointerY}.Sub(p.Position).Angle()
}

func (p *Player) TakeDamage(amount float64) {
	p.Health.Value = math.Max(0, p.Health.Value-amount)
}

func (p *Player) Heal(amount float64) {
	p.Health.Value = math.Min(p.MaxHealth, p.Health.Value+amount)
}

func (p *Player) IsDead() bool {
	return p.Health.Value <= 0
}

// Render draws the body, the facing line and the health bar.
func (p *Player) Render(s render.Surface) {
	x, y, r := p.Position.X, p.Position.Y, p.Visual.Radius
	s.FillCircle(x, y, r, p.Visual.Color)

	reach := r + config.PlayerAimLength
	s.StrokeLine(x, y, x+math.Cos(p.Angle)*reach, y+math.Sin(p.Angle)*reach, config.AimLineWidth, config.PlayerAimColor)

	ui.PlayerHealthBar.Draw(s, x, y, r, p.Health.Fraction(p.MaxHealth))
}
