package gatecloud

import (
	"testing"

	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
)

func TestEffectsExpireOnFrameClock(t *testing.T) {
	var fx Effects
	fx.Observe([]sim.Event{
		sim.CollisionEvent{Obstacle: 3, Pos: core.V(10, 10), Points: 20},
		sim.ZoneLandedEvent{Zone: "q0", Label: sim.KetOne},
		sim.SpawnEvent{},
	}, 10)

	if n := len(fx.Active()); n != 2 {
		t.Fatalf("expected 2 tickets, got %d", n)
	}
	if !fx.obstacleFlash(3) || !fx.zoneFlash("q0") {
		t.Error("fresh tickets should flash their targets")
	}
	if fx.Active()[0].Text != "+20" {
		t.Errorf("collision text = %q", fx.Active()[0].Text)
	}

	fx.Expire(10 + effectTTL[EffectCollision])
	if !fx.obstacleFlash(3) {
		t.Error("ticket should live through its expiry frame")
	}

	fx.Expire(10 + effectTTL[EffectCollision] + 1)
	if fx.obstacleFlash(3) {
		t.Error("collision ticket should be gone")
	}
	if !fx.zoneFlash("q0") {
		t.Error("landing ticket lasts longer than a collision")
	}

	fx.Clear()
	if len(fx.Active()) != 0 {
		t.Error("Clear should drop every ticket")
	}
}
