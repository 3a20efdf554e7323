package sim

import (
	"slices"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/gamemath"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/automoto/busterclone/systems"
	"github.com/yohamta/donburi"
)

// Snapshot is a value copy of everything the presentation needs for one frame.
// It holds no references into the simulation.
type Snapshot struct {
	Tick         int
	State        cfg.GameStateID
	BossRevealed bool
	Respawns     int
	CameraX      float64

	Player PlayerSnapshot
	Boss   BossSnapshot
	Level  LevelSnapshot
}

type ActorSnapshot struct {
	Body      gamemath.Rect
	SpeedX    float64
	SpeedY    float64
	Grounded  bool
	Direction float64
	Health    int
	MaxHealth int
	Bullets   []components.Bullet
}

func (a ActorSnapshot) HealthRatio() float64 {
	if a.MaxHealth <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

type PlayerSnapshot struct {
	ActorSnapshot
	JumpCount      int
	Sliding        bool
	Charging       bool
	ChargeTime     int
	ChargeProgress float64 // min(chargeTime/threshold, 1)
	ChargeVisible  bool
	ChargeReady    bool
	Lives          int
	MaxLives       int
}

type BossSnapshot struct {
	ActorSnapshot
	State      cfg.BossStateID
	ShootTimer int
}

type CollectibleSnapshot struct {
	Body      gamemath.Rect
	Kind      leveldata.CollectibleKind
	Collected bool
}

type CheckpointSnapshot struct {
	Body   gamemath.Rect
	Active bool
}

type LevelSnapshot struct {
	Name           string
	Width          float64
	BossRoomX      float64
	Platforms      []gamemath.Rect
	Collectibles   []CollectibleSnapshot
	Checkpoints    []CheckpointSnapshot
	LastCheckpoint leveldata.Point
}

// Snapshot copies the current state out of the world.
func (s *Simulation) Snapshot() Snapshot {
	game := s.game()
	snap := Snapshot{
		Tick:         game.Tick,
		State:        game.State,
		BossRevealed: game.BossRevealed,
		Respawns:     game.Respawns,
		Player:       s.playerSnapshot(),
		Boss:         s.bossSnapshot(),
		Level:        s.levelSnapshot(),
	}
	if e, ok := components.Camera.First(s.world); ok {
		snap.CameraX = components.Camera.Get(e).Position.X
	}
	return snap
}

func actorSnapshot(e *donburi.Entry, direction float64) ActorSnapshot {
	physics := components.Physics.Get(e)
	health := components.Health.Get(e)
	return ActorSnapshot{
		Body:      components.Object.Get(e).Rect(),
		SpeedX:    physics.SpeedX,
		SpeedY:    physics.SpeedY,
		Grounded:  physics.OnGround,
		Direction: direction,
		Health:    health.Current,
		MaxHealth: health.Max,
		Bullets:   slices.Clone(components.Gun.Get(e).Bullets),
	}
}

func (s *Simulation) playerSnapshot() PlayerSnapshot {
	player := components.Player.Get(s.player)
	lives := components.Lives.Get(s.player)
	return PlayerSnapshot{
		ActorSnapshot:  actorSnapshot(s.player, player.Direction),
		JumpCount:      player.JumpCount,
		Sliding:        player.Sliding,
		Charging:       player.Charging,
		ChargeTime:     player.ChargeTime,
		ChargeProgress: systems.ChargeProgress(player),
		ChargeVisible:  systems.ChargeVisible(player),
		ChargeReady:    player.Charging && player.ChargeTime >= cfg.Player.ChargeThreshold,
		Lives:          lives.Lives,
		MaxLives:       lives.MaxLives,
	}
}

func (s *Simulation) bossSnapshot() BossSnapshot {
	boss := components.Boss.Get(s.boss)
	return BossSnapshot{
		ActorSnapshot: actorSnapshot(s.boss, boss.Direction),
		State:         boss.State,
		ShootTimer:    boss.ShootTimer,
	}
}

func (s *Simulation) levelSnapshot() LevelSnapshot {
	e, ok := components.Level.First(s.world)
	if !ok {
		return LevelSnapshot{}
	}
	level := components.Level.Get(e)
	out := LevelSnapshot{
		Name:           level.Name,
		Width:          level.Width,
		BossRoomX:      level.BossRoomX,
		LastCheckpoint: level.LastCheckpoint,
	}
	for _, entity := range level.Platforms {
		out.Platforms = append(out.Platforms, components.Object.Get(s.world.Entry(entity)).Rect())
	}
	for _, entity := range level.Collectibles {
		entry := s.world.Entry(entity)
		pickup := components.Collectible.Get(entry)
		out.Collectibles = append(out.Collectibles, CollectibleSnapshot{
			Body:      components.Object.Get(entry).Rect(),
			Kind:      pickup.Kind,
			Collected: pickup.Collected,
		})
	}
	for _, entity := range level.Checkpoints {
		entry := s.world.Entry(entity)
		out.Checkpoints = append(out.Checkpoints, CheckpointSnapshot{
			Body:   components.Object.Get(entry).Rect(),
			Active: components.Checkpoint.Get(entry).Activated,
		})
	}
	return out
}

func (s *Simulation) game() *components.GameData {
	e, _ := components.Game.First(s.world)
	return components.Game.Get(e)
}
