package storage

import (
	"fmt"

	"github.com/sandeepkv93/levelup/internal/model"
)

// taskRecord is the on-disk shape of one task. Pointer fields let the decoder
// tell a missing key apart from a zero value.
type taskRecord struct {
	Text      *string `json:"text"`
	Tag       *string `json:"tag"`
	Completed *bool   `json:"completed"`
}

func recordFromTask(t model.Task) taskRecord {
	text := t.Description
	tag := string(t.Tag)
	completed := t.Completed
	return taskRecord{Text: &text, Tag: &tag, Completed: &completed}
}

func (r taskRecord) toTask(index int) (model.Task, error) {
	switch {
	case r.Text == nil:
		return model.Task{}, missingKey(index, "text")
	case r.Tag == nil:
		return model.Task{}, missingKey(index, "tag")
	case r.Completed == nil:
		return model.Task{}, missingKey(index, "completed")
	}
	return model.Task{
		Description: *r.Text,
		Tag:         model.Tag(*r.Tag),
		Completed:   *r.Completed,
	}, nil
}

func missingKey(index int, key string) error {
	return fmt.Errorf("%w: entry %d is missing key %q", ErrMalformed, index, key)
}
