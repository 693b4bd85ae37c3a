package yuletree

// Task is a named per-frame update run by a Scheduler.
type Task struct {
	Name string
	Run  func(dt float64)
}

// Scheduler runs an ordered list of tasks once per tick. Tasks run in the
// order they were added, every tick, until the process exits.
type Scheduler struct {
	tasks  []Task
	frame  uint64
	paused bool
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends a task. Panics if fn is nil or name is already registered.
func (s *Scheduler) Add(name string, fn func(dt float64)) {
	if fn == nil {
		panic("yuletree: nil task " + name)
	}
	for _, t := range s.tasks {
		if t.Name == name {
			panic("yuletree: duplicate task " + name)
		}
	}
	s.tasks = append(s.tasks, Task{Name: name, Run: fn})
}

// Tasks returns the registered task names in run order.
func (s *Scheduler) Tasks() []string {
	names := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		names[i] = t.Name
	}
	return names
}

// Tick runs every task once with the given frame duration in seconds.
// A paused scheduler does nothing.
func (s *Scheduler) Tick(dt float64) {
	if s.paused {
		return
	}
	for i := range s.tasks {
		s.tasks[i].Run(dt)
	}
	s.frame++
}

// Frame returns the number of ticks that ran tasks.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// SetPaused stops or resumes task execution.
func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}
