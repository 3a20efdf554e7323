package config

import "time"

// ScreenConfig describes the fixed viewport the camera window is measured in.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig contains world-wide physics values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // added to vertical speed every tick
	FloorY  float64 `yaml:"floorY"`  // fixed floor line actors are clamped to
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawnX"`
	SpawnY float64 `yaml:"spawnY"`

	// Movement
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jumpForce"` // negative is up
	MaxJumps  int     `yaml:"maxJumps"`

	// Slide mechanics
	SlideSpeed    float64 `yaml:"slideSpeed"`
	SlideDuration int     `yaml:"slideDuration"` // ticks
	SlideCooldown int     `yaml:"slideCooldown"` // ticks
	SlideHeight   float64 `yaml:"slideHeight"`   // hitbox height while sliding

	// Shooting
	ChargeThreshold   int           `yaml:"chargeThreshold"`   // ticks held for a charged shot
	ChargeVisibleTime int           `yaml:"chargeVisibleTime"` // ticks before the charge meter shows
	ShootInterval     time.Duration `yaml:"shootInterval"`     // wall-clock gate for uncharged shots
	BulletSpeed       float64       `yaml:"bulletSpeed"`
	BulletSize        float64       `yaml:"bulletSize"`
	BulletDamage      int           `yaml:"bulletDamage"`
	ChargedSize       float64       `yaml:"chargedSize"`
	ChargedDamage     int           `yaml:"chargedDamage"`

	// Combat
	Health int `yaml:"health"`

	// Lives (0 = unlimited respawns)
	StartingLives int `yaml:"startingLives"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// BossConfig contains the boss AI and combat values
type BossConfig struct {
	SpawnX    float64 `yaml:"spawnX"`
	SpawnY    float64 `yaml:"spawnY"`
	Direction float64 `yaml:"direction"` // initial facing

	Speed  float64 `yaml:"speed"`
	Health int     `yaml:"health"`

	// AI behavior
	SafeDistance       float64 `yaml:"safeDistance"`       // chase when further than this
	AggroThreshold     float64 `yaml:"aggroThreshold"`     // health ratio below which slides are allowed
	AggroRange         float64 `yaml:"aggroRange"`         // max distance for an aggro slide
	AggroChance        float64 `yaml:"aggroChance"`        // per-tick slide probability
	SlideMultiplier    float64 `yaml:"slideMultiplier"`    // slide speed = Speed * SlideMultiplier
	ReactiveJumpSpeedY float64 `yaml:"reactiveJumpSpeedY"` // player vertical speed that provokes a jump
	ReactiveJumpChance float64 `yaml:"reactiveJumpChance"`
	JumpForce          float64 `yaml:"jumpForce"`

	// Shooting (ticks); threshold = ShootMinTicks + roll*ShootSpreadTicks
	ShootMinTicks    float64 `yaml:"shootMinTicks"`
	ShootSpreadTicks float64 `yaml:"shootSpreadTicks"`
	BulletSpeed      float64 `yaml:"bulletSpeed"`
	BulletSize       float64 `yaml:"bulletSize"`
	BulletDamage     int     `yaml:"bulletDamage"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// CameraConfig contains the dead-zone camera offsets
type CameraConfig struct {
	AdvanceOffset float64 `yaml:"advanceOffset"` // camera scrolls right when player.x > cameraX + AdvanceOffset
	RetreatOffset float64 `yaml:"retreatOffset"` // camera scrolls left when player.x < cameraX + RetreatOffset
}

// PickupConfig contains collectible values
type PickupConfig struct {
	HealFraction float64 `yaml:"healFraction"` // fraction of max health restored
}

var (
	Screen  ScreenConfig
	Physics PhysicsConfig
	Player  PlayerConfig
	Boss    BossConfig
	Camera  CameraConfig
	Pickup  PickupConfig
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Apply(Defaults())
}

// Defaults returns the reference tuning.
func Defaults() Tuning {
	return Tuning{
		Screen: ScreenConfig{
			Width:  800,
			Height: 480,
		},
		Physics: PhysicsConfig{
			Gravity: 0.5,
			FloorY:  440,
		},
		Player: PlayerConfig{
			SpawnX: 100,
			SpawnY: 380,

			Speed:     4,
			JumpForce: -10,
			MaxJumps:  2,

			SlideSpeed:    7,
			SlideDuration: 25, // ~0.4s at 60fps
			SlideCooldown: 30,
			SlideHeight:   20,

			ChargeThreshold:   90, // ~1.5s at 60fps
			ChargeVisibleTime: 30,
			ShootInterval:     150 * time.Millisecond,
			BulletSpeed:       8,
			BulletSize:        8,
			BulletDamage:      10,
			ChargedSize:       16,
			ChargedDamage:     20,

			Health:        100,
			StartingLives: 0,

			CollisionWidth:  32,
			CollisionHeight: 40,
		},
		Boss: BossConfig{
			SpawnX:    2000,
			SpawnY:    400,
			Direction: DirectionLeft,

			Speed:  3,
			Health: 200,

			SafeDistance:       250,
			AggroThreshold:     0.5,
			AggroRange:         100,
			AggroChance:        0.05,
			SlideMultiplier:    2.5,
			ReactiveJumpSpeedY: -5,
			ReactiveJumpChance: 0.3,
			JumpForce:          -10,

			ShootMinTicks:    60,
			ShootSpreadTicks: 120,
			BulletSpeed:      6,
			BulletSize:       8,
			BulletDamage:     10,

			CollisionWidth:  32,
			CollisionHeight: 40,
		},
		Camera: CameraConfig{
			AdvanceOffset: 400,
			RetreatOffset: 200,
		},
		Pickup: PickupConfig{
			HealFraction: 0.5,
		},
	}
}
