package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ghostvac/ecs"
	"github.com/milk9111/ghostvac/ecs/component"
)

const testDT = 1.0 / 60.0

// tb is the part of testing.TB that *rapid.T also provides.
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

type recordingHUD struct {
	health, maxHealth int
	coins             int
	energy            []float64
}

func (h *recordingHUD) SetHealth(current, max int) { h.health, h.maxHealth = current, max }
func (h *recordingHUD) SetCoins(coins int)         { h.coins = coins }
func (h *recordingHUD) SetTorchEnergy(f float64)   { h.energy = append(h.energy, f) }

// stubQuery answers raycasts with fn and overlaps with a fixed list.
type stubQuery struct {
	ray      func(origin, dir cp.Vector, maxDistance float64) (ecs.RayHit, bool)
	overlaps []ecs.Entity
	rays     int
}

func (q *stubQuery) Raycast(origin, dir cp.Vector, maxDistance float64, mask uint) (ecs.RayHit, bool) {
	q.rays++
	if q.ray == nil {
		return ecs.RayHit{}, false
	}
	return q.ray(origin, dir.Normalize(), maxDistance)
}

func (q *stubQuery) OverlapCircle(center cp.Vector, radius float64, mask uint) []ecs.Entity {
	return q.overlaps
}

func (q *stubQuery) OverlapBox(center, size cp.Vector, rotation float64, mask uint) []ecs.Entity {
	return q.overlaps
}

func mustAdd[T any](t tb, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) *T {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
	return v
}

// newZeroGravityWorld returns a world with an attached physics space and
// no gravity so forces are easy to read back.
func newZeroGravityWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(cp.Vector{}))
	return w
}

type testPlayer struct {
	e      ecs.Entity
	player *component.Player
	input  *component.Input
	arb    *component.AbilityArbiter
	torch  *component.Torch
	vacuum *component.Vacuum
	aim    *component.Aim
}

func newTestPlayer(t tb, w *ecs.World, pos cp.Vector) testPlayer {
	t.Helper()
	e := ecs.CreateEntity(w)
	p := testPlayer{e: e}
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1})
	p.player = mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:          8,
		JumpSpeed:          12,
		GroundProbeRadius:  0.15,
		GroundProbeOffset:  0.5,
		KnockbackForce:     5,
		KnockbackDuration:  0.2,
		InvincibleDuration: 0.5,
		RespawnDelay:       1.5,
		FacingRight:        true,
	})
	p.input = mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	p.arb = mustAdd(t, w, e, component.AbilityArbiterComponent.Kind(), &component.AbilityArbiter{})
	p.aim = mustAdd(t, w, e, component.AimComponent.Kind(), &component.Aim{EnterThreshold: 0.6, ExitThreshold: 0.4})
	p.torch = mustAdd(t, w, e, component.TorchComponent.Kind(), newTestTorch())
	p.vacuum = mustAdd(t, w, e, component.VacuumComponent.Kind(), &component.Vacuum{
		MaxRange:        5,
		ConeAngle:       40,
		PullForce:       25,
		CollectRadius:   0.6,
		PickupMoveSpeed: 12,
	})
	mustAdd(t, w, e, component.InventoryComponent.Kind(), &component.Inventory{})
	mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Max: 3, Current: 3})
	mustAdd(t, w, e, component.BeamComponent.Kind(), &component.Beam{})
	mustAdd(t, w, e, component.FlashComponent.Kind(), &component.Flash{})
	return p
}

func newTestTorch() *component.Torch {
	return &component.Torch{
		HitboxWidth:        2,
		HitboxHeight:       1.2,
		Offset:             cp.Vector{X: 0.4, Y: 0.1},
		DamagePerTick:      1,
		TickInterval:       1,
		MaxEnergy:          3,
		Energy:             3,
		DrainRate:          1,
		RechargeRate:       0.5,
		MinEnergyToStart:   1,
		RechargeDelay:      0.6,
		LastEnergyFraction: -1,
	}
}

type testGhost struct {
	e       ecs.Entity
	ghost   *component.Ghost
	capture *component.Capture
	health  *component.Health
}

// newTestGhost adds a ghost. withBody gives it a dynamic circle body on the
// ghost layer in the world's physics space.
func newTestGhost(t tb, w *ecs.World, pos cp.Vector, withBody bool) testGhost {
	t.Helper()
	e := ecs.CreateEntity(w)
	g := testGhost{e: e}
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1})
	g.ghost = mustAdd(t, w, e, component.GhostComponent.Kind(), &component.Ghost{
		MoveSpeed:      2,
		WaypointRadius: 0.25,
		WaitMin:        0.5,
		WaitMax:        1,
		RetargetDelay:  4,
		LookAhead:      0.8,
		AvoidStrength:  6,
		HoverAmplitude: 0.05,
		HoverSpeed:     3,
		FlipDeadzone:   0.3,
		WallMargin:     0.5,
		FallbackRadius: 2,
		Spawn:          pos,
		FacingRight:    true,
	})
	g.capture = mustAdd(t, w, e, component.CaptureComponent.Kind(), &component.Capture{ProgressMax: 3, CaptureRate: 1.5})
	g.health = mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Max: 3, Current: 3})
	mustAdd(t, w, e, component.ContactDamageComponent.Kind(), &component.ContactDamage{Amount: 1})
	if withBody {
		mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Type:          component.BodyDynamic,
			Radius:        0.35,
			Mass:          0.2,
			FixedRotation: true,
			IgnoreGravity: true,
			Layer:         component.LayerGhost,
			Mask:          component.LayerObstacle,
		})
		NewPhysicsSystem().Sync(w)
	}
	return g
}

func addTestWall(t tb, w *ecs.World, lo, hi cp.Vector) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	center := lo.Add(hi).Mult(0.5)
	size := hi.Sub(lo)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Type:   component.BodyStatic,
		Width:  size.X,
		Height: size.Y,
		Layer:  component.LayerObstacle,
	})
	NewPhysicsSystem().Sync(w)
	return e
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func approxVec(a, b cp.Vector, eps float64) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps)
}
