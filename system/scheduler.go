package system

import "github.com/milk9111/adventure/scene"

type System interface {
	Update(s *scene.Scene)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Update(sc *scene.Scene) {
	for _, system := range s.systems {
		system.Update(sc)
	}
}
