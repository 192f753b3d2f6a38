package story_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/vigil/ecs"
	"github.com/plus3/vigil/internal/story"
)

func newStoryWorld(seed uint64) (*ecs.World[story.Args], *bytes.Buffer) {
	world := ecs.NewWorld[story.Args]()
	story.Seed(world.Storage)

	out := &bytes.Buffer{}
	story.Register(world.Scheduler, out, rand.New(rand.NewPCG(seed, seed)))
	return world, out
}

func TestSeed(t *testing.T) {
	world := ecs.NewWorld[story.Args]()
	story.Seed(world.Storage)

	assert.Equal(t, 8, world.EntityCount())
	assert.Equal(t, 4, world.Count(
		ecs.ComponentTypeOf[story.Enemy](world.Storage),
		ecs.ComponentTypeOf[story.City](world.Storage),
		ecs.ComponentTypeOf[story.Action](world.Storage),
	))
	assert.Equal(t, 2, world.Count(ecs.ComponentTypeOf[story.Hero](world.Storage)))
	assert.Equal(t, 2, world.Count(ecs.ComponentTypeOf[story.MediaSource](world.Storage)))
}

func TestRegisterOrder(t *testing.T) {
	world, _ := newStoryWorld(1)

	assert.Equal(t, []ecs.SystemInfo{
		{Name: "AttackSystem", Priority: 0},
		{Name: "DefenseSystem", Priority: 0},
		{Name: "NewsSystem", Priority: 0},
	}, world.Scheduler.Systems())
}

func TestStory(t *testing.T) {
	gothamAttacks := []string{
		"(Joker) *brings anarchy*",
		"(LeagueOfShadows) *inspires terror with psychotropic gas*",
	}
	batmanMoves := map[string]bool{
		"(Batman) *methodically beats with fists*": true,
		"(Batman) *threatens in a low voice*":      true,
		"(Batman) *throws shurikens*":              true,
	}

	for seed := uint64(1); seed <= 20; seed++ {
		world, out := newStoryWorld(seed)
		require.NoError(t, world.ProcessSystems(story.Args{Hero: "Batman", City: "Gotham", Media: "TV"}))

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.GreaterOrEqual(t, len(lines), 3)
		require.LessOrEqual(t, len(lines), 5)

		assert.Contains(t, gothamAttacks, lines[0])

		seen := make(map[string]bool)
		for _, line := range lines[1 : len(lines)-1] {
			assert.True(t, batmanMoves[line], "unexpected defense line %q", line)
			assert.False(t, seen[line], "move repeated: %q", line)
			seen[line] = true
		}

		assert.Equal(t, "~ *ahem-ahem* Breaking news! Today is a great day because Batman saved Gotham! ~", lines[len(lines)-1])
	}
}

func TestStoryIsDeterministicForSeed(t *testing.T) {
	args := story.Args{Hero: "Catwoman", City: "Tokyo", Media: "Radio"}

	first, out1 := newStoryWorld(42)
	second, out2 := newStoryWorld(42)
	require.NoError(t, first.ProcessSystems(args))
	require.NoError(t, second.ProcessSystems(args))

	assert.Equal(t, out1.String(), out2.String())
	assert.True(t, strings.HasSuffix(out1.String(), "~ *creaks* Important news, residents! Catwoman saved Tokyo! ~\n"))
}

func TestStoryUnknownCity(t *testing.T) {
	world, out := newStoryWorld(1)

	err := world.ProcessSystems(story.Args{Hero: "Batman", City: "Metropolis", Media: "TV"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, story.ErrNoEnemies))
	assert.True(t, eris.Is(err, story.ErrNoEnemies))
	assert.Contains(t, err.Error(), "Metropolis")

	// attack runs first, so nothing else was printed
	assert.Empty(t, out.String())
}

func TestStoryUnknownHeroAndMedia(t *testing.T) {
	world, out := newStoryWorld(3)

	require.NoError(t, world.ProcessSystems(story.Args{Hero: "Superman", City: "Tokyo", Media: "Newspaper"}))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, []string{
		"(Catzilla) *breaks buildings with its tail and meows chthonically*",
		"(Ykuza) *take the government hostage*",
	}, lines[0])
}

func TestDefenseSystemEmptyRepertoire(t *testing.T) {
	world := ecs.NewWorld[story.Args]()
	world.CreateEntity(story.Hero{Name: "Mime"}, story.ActionList{})

	out := &bytes.Buffer{}
	world.Scheduler.Add(&story.DefenseSystem{Out: out, Rand: rand.New(rand.NewPCG(1, 1))})

	require.NoError(t, world.ProcessSystems(story.Args{Hero: "Mime"}))
	assert.Empty(t, out.String())
}
