package systems

import (
	"testing"
	"time"

	"github.com/automoto/busterclone/components"
	cfg "github.com/automoto/busterclone/config"
	"github.com/automoto/busterclone/shared/leveldata"
	"github.com/automoto/busterclone/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// fixedDice always rolls the same value and counts how often it was asked.
type fixedDice struct {
	value float64
	calls int
}

func (d *fixedDice) Float64() float64 {
	d.calls++
	return d.value
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testWorld struct {
	w      donburi.World
	player *donburi.Entry
	boss   *donburi.Entry
	dice   *fixedDice
	clock  *manualClock
}

// newTestWorld builds the default stage with dice that never trigger random behavior.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	layout := leveldata.Default()
	require.NoError(t, layout.Validate(float64(cfg.Screen.Width)))

	w := donburi.NewWorld()
	tw := &testWorld{
		w:     w,
		dice:  &fixedDice{value: 0.99},
		clock: &manualClock{now: time.Unix(1000, 0)},
	}
	factory.CreateLevel(w, layout)
	tw.player = factory.CreatePlayer(w, layout.PlayerSpawn.X, layout.PlayerSpawn.Y)
	tw.boss = factory.CreateBoss(w, cfg.Boss.SpawnX, cfg.Boss.SpawnY)
	factory.CreateCamera(w)
	factory.CreateGame(w)
	factory.CreateInput(w)
	factory.CreateRuntime(w, tw.dice, tw.clock)
	return tw
}

func (tw *testWorld) playerObj() *components.ObjectData { return components.Object.Get(tw.player) }
func (tw *testWorld) playerPhysics() *components.PhysicsData {
	return components.Physics.Get(tw.player)
}
func (tw *testWorld) playerData() *components.PlayerData  { return components.Player.Get(tw.player) }
func (tw *testWorld) playerHealth() *components.HealthData { return components.Health.Get(tw.player) }
func (tw *testWorld) bossObj() *components.ObjectData     { return components.Object.Get(tw.boss) }
func (tw *testWorld) bossHealth() *components.HealthData   { return components.Health.Get(tw.boss) }
func (tw *testWorld) level() *components.LevelData         { return getLevel(tw.w) }
func (tw *testWorld) game() *components.GameData           { return getGame(tw.w) }

// placePlayer moves the player body and refreshes its cells.
func (tw *testWorld) placePlayer(x, y float64) {
	obj := tw.playerObj()
	obj.X, obj.Y = x, y
	obj.Update()
}

// tickPlayer latches held and runs the player controller once.
func (tw *testWorld) tickPlayer(held ...cfg.ActionID) {
	var in [cfg.ActionCount]bool
	for _, id := range held {
		in[id] = true
	}
	LatchInput(tw.w, in)
	UpdatePlayer(tw.w)
}

// settlePlayer lets the player fall until the floor catches them.
func (tw *testWorld) settlePlayer(t *testing.T) {
	t.Helper()
	for i := 0; i < 120; i++ {
		tw.tickPlayer()
		if tw.playerPhysics().OnGround {
			return
		}
	}
	t.Fatal("player never landed")
}
