package ebitenview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/osier"
)

// Stage owns a set of views and drives the per-frame work a native toolkit
// would do for them: it pumps the scheduler queue so deferred playback
// starts, then steps every view's animations. Embed one in an ebiten.Game
// and call Update and Draw from the game's hooks.
type Stage struct {
	views []*View
	queue *osier.TurnQueue
}

// NewStage returns an empty stage pumping the package-wide scheduler, the
// one transitions use unless given their own.
func NewStage() *Stage {
	return &Stage{queue: osier.DefaultScheduler()}
}

// NewStageWithQueue returns a stage pumping its own queue. Transitions on
// its views must be built with osier.WithScheduler(queue) to defer through
// it.
func NewStageWithQueue(queue *osier.TurnQueue) *Stage {
	if queue == nil {
		panic("ebitenview: NewStageWithQueue requires a queue")
	}
	return &Stage{queue: queue}
}

// Queue returns the scheduler queue this stage pumps.
func (s *Stage) Queue() *osier.TurnQueue {
	return s.queue
}

// Add realizes v and places it on the stage. Views draw in Add order, later
// views on top.
func (s *Stage) Add(v *View) {
	for _, existing := range s.views {
		if existing == v {
			return
		}
	}
	v.realized = true
	s.views = append(s.views, v)
}

// Remove takes v off the stage and unrealizes it, the way removing an
// element from the native tree disposes its backing view. Animations still
// registered on it stop being stepped.
func (s *Stage) Remove(v *View) {
	for i, existing := range s.views {
		if existing == v {
			s.views = append(s.views[:i], s.views[i+1:]...)
			v.realized = false
			v.anims = nil
			return
		}
	}
}

// Update runs one frame of host work at the game's fixed tick rate. Turns
// run before stepping so playback deferred last frame starts at this frame's
// beginning, not after it already advanced.
func (s *Stage) Update() {
	s.Advance(time.Second / time.Duration(ebiten.TPS()))
}

// Advance is Update with an explicit frame time, for hosts that measure
// their own.
func (s *Stage) Advance(dt time.Duration) {
	s.queue.RunTurn()
	for _, v := range s.views {
		v.Step(dt)
	}
}

// Draw renders every view in Add order.
func (s *Stage) Draw(screen *ebiten.Image) {
	for _, v := range s.views {
		v.Draw(screen)
	}
}
