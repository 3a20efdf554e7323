package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every tuning validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Tuning aggregates every tunable group so it can be loaded and validated as a unit.
type Tuning struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Boss    BossConfig    `yaml:"boss"`
	Camera  CameraConfig  `yaml:"camera"`
	Pickup  PickupConfig  `yaml:"pickup"`
}

// Current snapshots the package-level tuning.
func Current() Tuning {
	return Tuning{
		Screen:  Screen,
		Physics: Physics,
		Player:  Player,
		Boss:    Boss,
		Camera:  Camera,
		Pickup:  Pickup,
	}
}

// Apply installs t as the package-level tuning. Callers should Validate first.
func Apply(t Tuning) {
	Screen = t.Screen
	Physics = t.Physics
	Player = t.Player
	Boss = t.Boss
	Camera = t.Camera
	Pickup = t.Pickup
}

// LoadTuning decodes YAML from r on top of the current tuning, so a partial
// document only overrides the keys it names. The result is validated but not applied.
func LoadTuning(r io.Reader) (Tuning, error) {
	t := Current()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuningFile is LoadTuning for a file on disk.
func LoadTuningFile(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	t, err := LoadTuning(f)
	if err != nil {
		return Tuning{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate fails on the first value the simulation cannot run with.
func (t Tuning) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{t.Screen.Width > 0 && t.Screen.Height > 0, "screen size must be positive"},
		{t.Physics.Gravity >= 0, "gravity must not be negative"},
		{t.Physics.FloorY > 0, "floorY must be positive"},

		{t.Player.CollisionWidth > 0 && t.Player.CollisionHeight > 0, "player size must be positive"},
		{t.Player.SlideHeight > 0 && t.Player.SlideHeight <= t.Player.CollisionHeight, "player slideHeight must be in (0, collisionHeight]"},
		{t.Player.Speed >= 0 && t.Player.SlideSpeed >= 0, "player speeds must not be negative"},
		{t.Player.JumpForce < 0, "player jumpForce must be negative"},
		{t.Player.MaxJumps >= 1, "player maxJumps must be at least 1"},
		{t.Player.SlideDuration >= 0 && t.Player.SlideCooldown >= 0, "player slide timers must not be negative"},
		{t.Player.ChargeThreshold > 0 && t.Player.ChargeVisibleTime >= 0, "player charge timers must be positive"},
		{t.Player.ShootInterval >= 0, "player shootInterval must not be negative"},
		{t.Player.BulletSize > 0 && t.Player.ChargedSize > 0, "player bullet sizes must be positive"},
		{t.Player.BulletDamage >= 0 && t.Player.ChargedDamage >= 0, "player bullet damage must not be negative"},
		{t.Player.Health > 0, "player health must be positive"},
		{t.Player.StartingLives >= 0, "player startingLives must not be negative"},

		{t.Boss.CollisionWidth > 0 && t.Boss.CollisionHeight > 0, "boss size must be positive"},
		{t.Boss.Direction == DirectionLeft || t.Boss.Direction == DirectionRight, "boss direction must be -1 or 1"},
		{t.Boss.Speed >= 0 && t.Boss.SlideMultiplier >= 0, "boss speeds must not be negative"},
		{t.Boss.Health > 0, "boss health must be positive"},
		{t.Boss.SafeDistance >= 0 && t.Boss.AggroRange >= 0, "boss distances must not be negative"},
		{probability(t.Boss.AggroThreshold), "boss aggroThreshold must be in [0, 1]"},
		{probability(t.Boss.AggroChance), "boss aggroChance must be in [0, 1]"},
		{probability(t.Boss.ReactiveJumpChance), "boss reactiveJumpChance must be in [0, 1]"},
		{t.Boss.ShootMinTicks >= 0 && t.Boss.ShootSpreadTicks >= 0, "boss shoot timers must not be negative"},
		{t.Boss.BulletSize > 0, "boss bulletSize must be positive"},
		{t.Boss.BulletDamage >= 0, "boss bulletDamage must not be negative"},

		{t.Camera.RetreatOffset >= 0 && t.Camera.RetreatOffset <= t.Camera.AdvanceOffset, "camera offsets must satisfy 0 <= retreat <= advance"},
		{t.Camera.AdvanceOffset <= float64(t.Screen.Width), "camera advanceOffset must fit the screen"},
		{probability(t.Pickup.HealFraction), "pickup healFraction must be in [0, 1]"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, c.msg)
		}
	}
	return nil
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}
