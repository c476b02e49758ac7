package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name plus a map of component specs keyed by
// component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	// Type is dynamic, kinematic or static.
	Type          string   `yaml:"type"`
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	Radius        float64  `yaml:"radius"`
	Mass          float64  `yaml:"mass"`
	Friction      float64  `yaml:"friction"`
	Elasticity    float64  `yaml:"elasticity"`
	Sensor        bool     `yaml:"sensor"`
	IgnoreGravity bool     `yaml:"ignore_gravity"`
	FixedRotation bool     `yaml:"fixed_rotation"`
	Layer         string   `yaml:"layer"`
	Mask          []string `yaml:"mask"`
}

type PlayerComponentSpec struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpSpeed          float64 `yaml:"jump_speed"`
	GroundProbeRadius  float64 `yaml:"ground_probe_radius"`
	GroundProbeOffset  float64 `yaml:"ground_probe_offset"`
	KnockbackForce     float64 `yaml:"knockback_force"`
	KnockbackDuration  float64 `yaml:"knockback_duration"`
	InvincibleDuration float64 `yaml:"invincible_duration"`
	RespawnDelay       float64 `yaml:"respawn_delay"`
}

type AimComponentSpec struct {
	EnterThreshold float64 `yaml:"enter_threshold"`
	ExitThreshold  float64 `yaml:"exit_threshold"`
}

type TorchComponentSpec struct {
	HitboxWidth      float64  `yaml:"hitbox_width"`
	HitboxHeight     float64  `yaml:"hitbox_height"`
	Offset           Vec2Spec `yaml:"offset"`
	DamagePerTick    int      `yaml:"damage_per_tick"`
	TickInterval     float64  `yaml:"tick_interval"`
	MaxEnergy        float64  `yaml:"max_energy"`
	DrainRate        float64  `yaml:"drain_rate"`
	RechargeRate     float64  `yaml:"recharge_rate"`
	MinEnergyToStart float64  `yaml:"min_energy_to_start"`
	RechargeDelay    float64  `yaml:"recharge_delay"`
}

type VacuumComponentSpec struct {
	MaxRange        float64  `yaml:"max_range"`
	ConeAngle       float64  `yaml:"cone_angle"`
	PullForce       float64  `yaml:"pull_force"`
	CollectRadius   float64  `yaml:"collect_radius"`
	PickupMoveSpeed float64  `yaml:"pickup_move_speed"`
	Offset          Vec2Spec `yaml:"offset"`
}

type GhostComponentSpec struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	WaypointRadius float64 `yaml:"waypoint_radius"`
	WaitMin        float64 `yaml:"wait_min"`
	WaitMax        float64 `yaml:"wait_max"`
	RetargetDelay  float64 `yaml:"retarget_delay"`
	LookAhead      float64 `yaml:"look_ahead"`
	AvoidStrength  float64 `yaml:"avoid_strength"`
	HoverAmplitude float64 `yaml:"hover_amplitude"`
	HoverSpeed     float64 `yaml:"hover_speed"`
	FlipDeadzone   float64 `yaml:"flip_deadzone"`
	WallMargin     float64 `yaml:"wall_margin"`
	FallbackRadius float64 `yaml:"fallback_radius"`
}

type CaptureComponentSpec struct {
	ProgressMax float64 `yaml:"progress_max"`
	CaptureRate float64 `yaml:"capture_rate"`
	Reward      string  `yaml:"reward"`
}

type HealthComponentSpec struct {
	Max     int `yaml:"max"`
	Current int `yaml:"current"`
}

type ContactDamageComponentSpec struct {
	Amount int `yaml:"amount"`
}

type PickupComponentSpec struct {
	// Kind is coin or health.
	Kind         string  `yaml:"kind"`
	Value        int     `yaml:"value"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobSpeed     float64 `yaml:"bob_speed"`
}

type ProjectileComponentSpec struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Damage   int     `yaml:"damage"`
	Lifetime float64 `yaml:"lifetime"`
}

type PatrollerComponentSpec struct {
	MoveSpeed         float64  `yaml:"move_speed"`
	GroundProbeOffset Vec2Spec `yaml:"ground_probe_offset"`
	GroundProbeLength float64  `yaml:"ground_probe_length"`
	WallProbeOffset   Vec2Spec `yaml:"wall_probe_offset"`
	WallProbeLength   float64  `yaml:"wall_probe_length"`
	TurnPause         float64  `yaml:"turn_pause"`
	StartRight        bool     `yaml:"start_right"`
}

type VisualComponentSpec struct {
	Color  YAMLColor `yaml:"color"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Radius float64   `yaml:"radius"`
	Layer  int       `yaml:"layer"`
}
