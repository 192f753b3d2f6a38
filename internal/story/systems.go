package story

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/plus3/vigil/ecs"
)

// ErrNoEnemies is returned by AttackSystem when nobody threatens the chosen city.
var ErrNoEnemies = eris.New("no enemies in city")

// AttackSystem announces one random enemy attacking the city named in the args.
type AttackSystem struct {
	Out  io.Writer
	Rand *rand.Rand
}

func (s *AttackSystem) Process(frame *ecs.Frame[Args]) error {
	type threat struct {
		enemy  Enemy
		action Action
	}

	var threats []threat
	for _, row := range ecs.Query3[Enemy, Action, City](frame.Storage) {
		if row.C.Name == frame.Args.City {
			threats = append(threats, threat{enemy: row.A, action: row.B})
		}
	}
	if len(threats) == 0 {
		return eris.Wrapf(ErrNoEnemies, "city %q", frame.Args.City)
	}

	// query order is unspecified, sort so a seeded Rand picks the same enemy
	slices.SortFunc(threats, func(a, b threat) int {
		return strings.Compare(a.enemy.Name, b.enemy.Name)
	})

	picked := threats[s.Rand.IntN(len(threats))]
	_, err := fmt.Fprintf(s.Out, "(%s) *%s*\n", picked.enemy.Name, picked.action.Value)
	return eris.Wrap(err, "write attack")
}

// DefenseSystem makes the hero named in the args answer with a random, non-empty
// selection of their moves. An unknown hero stays silent.
type DefenseSystem struct {
	Out  io.Writer
	Rand *rand.Rand
}

func (s *DefenseSystem) Process(frame *ecs.Frame[Args]) error {
	for _, row := range ecs.Query2[Hero, ActionList](frame.Storage) {
		if row.A.Name != frame.Args.Hero {
			continue
		}

		moves := row.B.Value
		if len(moves) == 0 {
			return nil
		}

		count := 1 + s.Rand.IntN(len(moves))
		for _, i := range s.Rand.Perm(len(moves))[:count] {
			if _, err := fmt.Fprintf(s.Out, "(%s) *%s*\n", row.A.Name, moves[i]); err != nil {
				return eris.Wrap(err, "write defense")
			}
		}
		return nil
	}
	return nil
}

// NewsSystem has the media source named in the args report the rescue.
type NewsSystem struct {
	Out io.Writer
}

func (s *NewsSystem) Process(frame *ecs.Frame[Args]) error {
	for _, row := range ecs.Query1[MediaSource](frame.Storage) {
		if row.A.Name != frame.Args.Media {
			continue
		}
		_, err := fmt.Fprintf(s.Out, "~ %s %s saved %s! ~\n", row.A.Intro, frame.Args.Hero, frame.Args.City)
		if err != nil {
			return eris.Wrap(err, "write news")
		}
	}
	return nil
}

// Register adds the three story systems to the scheduler, all with priority 0,
// so they run attack, defense, news.
func Register(scheduler *ecs.Scheduler[Args], out io.Writer, rng *rand.Rand) {
	scheduler.Add(&AttackSystem{Out: out, Rand: rng})
	scheduler.Add(&DefenseSystem{Out: out, Rand: rng})
	scheduler.Add(&NewsSystem{Out: out})
}
