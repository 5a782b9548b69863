package sim

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

func wallContext(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext(testConfig(), nil, nil, nil)
	require.Len(t, SpawnWalls(ctx), 4)
	return ctx
}

func TestBounceFlipsOnceWhileOverlapping(t *testing.T) {
	ctx := wallContext(t)
	// Overlaps the left wall (x in [-665, -615]) by 10 units, moving left.
	adv := spawnBox(ctx, box(-600, 0, 50, 50), Velocity{core.V(-400, 0)}, BoundCollider{})

	BounceOffWalls(ctx)
	vel, _ := ctx.Velocities.Value(adv)
	assert.Equal(t, 400.0, vel.X)

	BounceOffWalls(ctx)
	vel, _ = ctx.Velocities.Value(adv)
	assert.Equal(t, 400.0, vel.X, "already moving away, must not re-flip")
}

func TestBounceByWall(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
		vel  core.Vec2
		want core.Vec2
	}{
		{"right wall heading right", box(600, 0, 50, 50), core.V(400, 0), core.V(-400, 0)},
		{"right wall heading left", box(600, 0, 50, 50), core.V(-400, 0), core.V(-400, 0)},
		{"floor falling", box(0, -345, 50, 50), core.V(0, -300), core.V(0, 300)},
		{"floor rising", box(0, -345, 50, 50), core.V(0, 300), core.V(0, 300)},
		{"ceiling rising", box(0, 345, 50, 50), core.V(10, 300), core.V(10, -300)},
		{"open field", box(0, 0, 50, 50), core.V(-400, -400), core.V(-400, -400)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := wallContext(t)
			e := spawnBox(ctx, tc.tr, Velocity{tc.vel}, BoundCollider{})

			BounceOffWalls(ctx)

			vel, _ := ctx.Velocities.Value(e)
			assert.Equal(t, tc.want, vel.Vec2)
		})
	}
}

func TestBounceIgnoresNonColliders(t *testing.T) {
	ctx := wallContext(t)
	shot := spawnBox(ctx, box(600, 0, 50, 50), Velocity{core.V(400, 0)}, Projectile{})

	BounceOffWalls(ctx)

	vel, _ := ctx.Velocities.Value(shot)
	assert.Equal(t, 400.0, vel.X)
}

func TestStrikeDestroysAndScores(t *testing.T) {
	ctx := NewContext(testConfig(), nil, nil, nil)
	adv := spawnBox(ctx, box(0, 0, 50, 50), Adversary{}, ProjectileTarget{})
	spawnBox(ctx, box(0, -26, 5, 5), Projectile{})

	StrikeTargets(ctx)

	assert.Equal(t, 100, ctx.Score.Value())
	assert.Equal(t, 1, ctx.Events.Pending(EventCollision))
	assert.False(t, ctx.World.Alive(adv))

	EndTick(ctx)
	assert.False(t, ctx.Transforms.Has(adv), "components dropped at end of tick")
	assert.Zero(t, ctx.Events.Pending(EventCollision))
	assert.Equal(t, 1, ctx.Projectiles.Count(), "projectile survives the hit")
}

func TestStrikeSkipsTargetsThatAreNotAdversaries(t *testing.T) {
	ctx := NewContext(testConfig(), nil, nil, nil)
	target := spawnBox(ctx, box(0, 0, 50, 50), ProjectileTarget{})
	spawnBox(ctx, box(0, 0, 5, 5), Projectile{})

	StrikeTargets(ctx)

	assert.Zero(t, ctx.Score.Value())
	assert.Zero(t, ctx.Events.Pending(EventCollision))
	assert.True(t, ctx.World.Alive(target))
}

func TestStrikeMisses(t *testing.T) {
	ctx := NewContext(testConfig(), nil, nil, nil)
	adv := spawnBox(ctx, box(0, 0, 50, 50), Adversary{}, ProjectileTarget{})
	// Touching edges do not overlap.
	spawnBox(ctx, box(0, -27.5, 5, 5), Projectile{})

	StrikeTargets(ctx)

	assert.Zero(t, ctx.Score.Value())
	assert.True(t, ctx.World.Alive(adv))
}

func TestStrikeScoresEachAdversaryOnce(t *testing.T) {
	ctx := NewContext(testConfig(), nil, nil, nil)
	spawnBox(ctx, box(0, 0, 50, 50), Adversary{}, ProjectileTarget{})
	spawnBox(ctx, box(-5, 0, 5, 5), Projectile{})
	spawnBox(ctx, box(5, 0, 5, 5), Projectile{})

	StrikeTargets(ctx)

	assert.Equal(t, 100, ctx.Score.Value())
	assert.Equal(t, 1, ctx.Events.Pending(EventCollision))
}

func TestSimultaneousHitsPlayOneSound(t *testing.T) {
	audio := &recordingAudio{}
	ctx := NewContext(testConfig(), audio, nil, nil)
	for i := range 3 {
		x := float64(i*200 - 200)
		spawnBox(ctx, box(x, 0, 50, 50), Adversary{}, ProjectileTarget{})
		spawnBox(ctx, box(x, 0, 5, 5), Projectile{})
	}

	StrikeTargets(ctx)
	PlayReactions(ctx)

	assert.Equal(t, 300, ctx.Score.Value())
	assert.Equal(t, 1, audio.hits)
	assert.Zero(t, audio.shots)
	assert.Zero(t, ctx.Events.Pending(EventCollision), "reaction drains the queue")
	assert.Equal(t, 3, ctx.World.PendingDestroy())
}

func TestBruteForcePairs(t *testing.T) {
	as := []ecs.Entity{1, 2}
	bs := []ecs.Entity{2, 3}

	var got [][2]ecs.Entity
	for a, b := range (BruteForce{}).Pairs(as, bs) {
		got = append(got, [2]ecs.Entity{a, b})
	}
	assert.Equal(t, [][2]ecs.Entity{{1, 2}, {1, 3}, {2, 3}}, got)

	n := 0
	for range (BruteForce{}).Pairs(as, bs) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

type countingPairer struct {
	BruteForce
	calls int
}

func (p *countingPairer) Pairs(as, bs []ecs.Entity) iter.Seq2[ecs.Entity, ecs.Entity] {
	p.calls++
	return p.BruteForce.Pairs(as, bs)
}

func TestCustomPairerIsUsed(t *testing.T) {
	p := &countingPairer{}
	ctx := NewContext(testConfig(), nil, p, nil)

	BounceOffWalls(ctx)
	StrikeTargets(ctx)

	assert.Equal(t, 2, p.calls)
}

func TestActorCardinalityPanics(t *testing.T) {
	ctx := NewContext(testConfig(), nil, nil, nil)
	assert.Panics(t, func() { MoveActor(ctx) }, "no actor")

	SpawnActor(ctx)
	assert.NotPanics(t, func() { MoveActor(ctx) })

	SpawnActor(ctx)
	assert.Panics(t, func() { MoveActor(ctx) }, "two actors")
}
