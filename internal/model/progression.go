package model

// LevelThresholds are the cumulative point totals at which each level starts.
var LevelThresholds = []int{0, 50, 150, 300, 500, 800}

// openEndedWindow is the progress window used past the last threshold.
const openEndedWindow = 100

// LevelFor returns the number of thresholds at or below total, never less than 1.
// A total equal to a threshold belongs to the higher level.
func LevelFor(total int) int {
	level := 0
	for _, threshold := range LevelThresholds {
		if total < threshold {
			break
		}
		level++
	}
	if level < 1 {
		return 1
	}
	return level
}

// ProgressWithinLevel returns how far total has advanced through level, in percent.
// The result is not clamped.
func ProgressWithinLevel(total, level int) float64 {
	floor := 0
	if level > 1 && level-1 < len(LevelThresholds) {
		floor = LevelThresholds[level-1]
	}
	ceiling := total + openEndedWindow
	if level >= 1 && level < len(LevelThresholds) {
		ceiling = LevelThresholds[level]
	}
	span := ceiling - floor
	if span == 0 {
		return 0
	}
	return float64(total-floor) / float64(span) * 100
}

// NextThreshold returns the point total that starts the next level, or false at the top level.
func NextThreshold(level int) (int, bool) {
	if level < 1 || level >= len(LevelThresholds) {
		return 0, false
	}
	return LevelThresholds[level], true
}

// Tracker holds the running point total. Level and progress are derived from it.
type Tracker struct {
	TotalPoints int
}

// Adjust adds or removes the points of tag depending on the new completion state.
func (t *Tracker) Adjust(tag Tag, nowCompleted bool) {
	points := PointsFor(tag)
	if nowCompleted {
		t.TotalPoints += points
		return
	}
	t.TotalPoints -= points
}

func (t *Tracker) Reset() {
	t.TotalPoints = 0
}

func (t Tracker) Level() int {
	return LevelFor(t.TotalPoints)
}

func (t Tracker) Progress() float64 {
	return ProgressWithinLevel(t.TotalPoints, t.Level())
}
