package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Change describes the outcome of a single toggle.
type Change struct {
	Task          Task
	PreviousLevel int
	Level         int
	TotalPoints   int
	LeveledUp     bool
}

// Checklist is the application state: the ordered task list and the points tracker.
// It is not safe for concurrent use.
type Checklist struct {
	tasks   []Task
	tracker Tracker
	level   int
	newID   func() string
}

func NewChecklist() *Checklist {
	return &Checklist{
		level: LevelFor(0),
		newID: func() string { return uuid.New().String() },
	}
}

// Add appends a new incomplete task. An empty description is ignored.
func (c *Checklist) Add(description string, tag Tag) (Task, bool) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return Task{}, false
	}
	task := Task{
		ID:          c.nextID(),
		Description: trimmed,
		Tag:         tag,
	}
	c.tasks = append(c.tasks, task)
	return task, true
}

// Toggle flips the completion flag of the task with the given id and adjusts the points.
func (c *Checklist) Toggle(id string) (Change, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Change{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	task := &c.tasks[idx]
	task.Completed = !task.Completed
	c.tracker.Adjust(task.Tag, task.Completed)

	previous := c.level
	c.level = c.tracker.Level()
	return Change{
		Task:          *task,
		PreviousLevel: previous,
		Level:         c.level,
		TotalPoints:   c.tracker.TotalPoints,
		LeveledUp:     c.level > previous,
	}, nil
}

// ToggleAt toggles the task at a zero-based position.
func (c *Checklist) ToggleAt(index int) (Change, error) {
	if index < 0 || index >= len(c.tasks) {
		return Change{}, fmt.Errorf("%w: position %d", ErrTaskNotFound, index+1)
	}
	return c.Toggle(c.tasks[index].ID)
}

// ReplaceAll swaps the task list for records and clears the points.
func (c *Checklist) ReplaceAll(records []Task) {
	c.tasks = make([]Task, 0, len(records))
	c.tracker.Reset()
	c.level = LevelFor(0)
	for _, rec := range records {
		rec.ID = c.nextID()
		c.tasks = append(c.tasks, rec)
	}
}

// Restore replaces the list and rebuilds the points from the completed records.
// The level is recomputed without reporting a level-up.
func (c *Checklist) Restore(records []Task) {
	c.ReplaceAll(records)
	for _, task := range c.tasks {
		if task.Completed {
			c.tracker.Adjust(task.Tag, true)
		}
	}
	c.level = c.tracker.Level()
}

func (c *Checklist) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

func (c *Checklist) Len() int {
	return len(c.tasks)
}

func (c *Checklist) TotalPoints() int {
	return c.tracker.TotalPoints
}

func (c *Checklist) Level() int {
	return c.level
}

func (c *Checklist) Progress() float64 {
	return ProgressWithinLevel(c.tracker.TotalPoints, c.level)
}

// Summary is a read-only snapshot of the progression state.
type Summary struct {
	Tasks       int
	Completed   int
	TotalPoints int
	Level       int
	Progress    float64
	NextAt      int
	MaxLevel    bool
}

func (c *Checklist) Summary() Summary {
	completed := 0
	for _, t := range c.tasks {
		if t.Completed {
			completed++
		}
	}
	next, ok := NextThreshold(c.level)
	return Summary{
		Tasks:       len(c.tasks),
		Completed:   completed,
		TotalPoints: c.tracker.TotalPoints,
		Level:       c.level,
		Progress:    c.Progress(),
		NextAt:      next,
		MaxLevel:    !ok,
	}
}

func (c *Checklist) indexOf(id string) int {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Checklist) nextID() string {
	if c.newID == nil {
		c.newID = func() string { return uuid.New().String() }
	}
	return c.newID()
}
