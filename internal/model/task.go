package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrTaskNotFound = errors.New("model: task not found")

type Tag string

const (
	TagStudy    Tag = "study"
	TagExercise Tag = "exercise"
	TagChores   Tag = "chores"
	TagWork     Tag = "work"
	TagCreative Tag = "creative"
	TagCoding   Tag = "coding"
)

// tagOrder is the selector order; the first entry is the default tag.
var tagOrder = []Tag{TagStudy, TagExercise, TagChores, TagWork, TagCreative, TagCoding}

var tagPoints = map[Tag]int{
	TagStudy:    10,
	TagExercise: 15,
	TagChores:   5,
	TagWork:     12,
	TagCreative: 8,
	TagCoding:   7,
}

// Tags returns the known tags in selector order.
func Tags() []Tag {
	out := make([]Tag, len(tagOrder))
	copy(out, tagOrder)
	return out
}

// DefaultTag is the tag preselected for new tasks.
func DefaultTag() Tag {
	return tagOrder[0]
}

// PointsFor returns the point value of a tag. Unknown tags are worth 0.
func PointsFor(tag Tag) int {
	return tagPoints[tag]
}

func (t Tag) IsKnown() bool {
	_, ok := tagPoints[t]
	return ok
}

// ParseTag normalises user input. It never fails: unknown tags are kept as-is and score 0.
func ParseTag(raw string) Tag {
	return Tag(strings.ToLower(strings.TrimSpace(raw)))
}

type Task struct {
	ID          string
	Description string
	Tag         Tag
	Completed   bool
}

func (t Task) Points() int {
	return PointsFor(t.Tag)
}

func (t Task) Label() string {
	return fmt.Sprintf("%s [%s]", t.Description, t.Tag)
}
