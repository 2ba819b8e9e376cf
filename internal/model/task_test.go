package model

import "testing"

func TestPointsForKnownAndUnknownTags(t *testing.T) {
	cases := map[Tag]int{
		TagStudy:    10,
		TagExercise: 15,
		TagChores:   5,
		TagWork:     12,
		TagCreative: 8,
		TagCoding:   7,
		Tag("golf"): 0,
		Tag(""):     0,
	}
	for tag, want := range cases {
		if got := PointsFor(tag); got != want {
			t.Fatalf("PointsFor(%q) = %d, want %d", tag, got, want)
		}
	}
}

func TestTagsOrderAndDefault(t *testing.T) {
	tags := Tags()
	if len(tags) != 6 || tags[0] != TagStudy || tags[5] != TagCoding {
		t.Fatalf("unexpected tag order: %v", tags)
	}
	tags[0] = "mutated"
	if DefaultTag() != TagStudy {
		t.Fatalf("Tags must return a copy, default is now %q", DefaultTag())
	}
}

func TestParseTagNormalises(t *testing.T) {
	if got := ParseTag("  Exercise "); got != TagExercise {
		t.Fatalf("unexpected tag: %q", got)
	}
	if got := ParseTag("Gardening"); got.IsKnown() {
		t.Fatalf("expected unknown tag, got %q", got)
	}
}

func TestTaskLabel(t *testing.T) {
	task := Task{Description: "Run 5k", Tag: TagExercise}
	if task.Label() != "Run 5k [exercise]" {
		t.Fatalf("unexpected label: %q", task.Label())
	}
	if task.Points() != 15 {
		t.Fatalf("unexpected points: %d", task.Points())
	}
}
