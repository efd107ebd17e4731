// Package emotion provides facial expression scoring and mood label derivation.
package emotion

import "sort"

// Label identifies a facial expression category.
type Label string

// Expression labels produced by the detector.
const (
	Neutral   Label = "neutral"
	Happy     Label = "happy"
	Sad       Label = "sad"
	Angry     Label = "angry"
	Fearful   Label = "fearful"
	Disgusted Label = "disgusted"
	Surprised Label = "surprised"
)

// Priority is the canonical label order. It doubles as the tie-break order
// when two labels carry an equal maximum score: the earlier label wins.
var Priority = []Label{Neutral, Happy, Sad, Angry, Fearful, Disgusted, Surprised}

// Scores maps each expression label to a confidence value in [0,1].
// A Scores value is produced fresh for every sampled frame and never stored.
type Scores map[Label]float64

// Dominant returns the label with the maximum score and that score.
// Ties resolve to the label appearing first in Priority; labels outside the
// canonical set are considered last, in lexical order, so the result is
// deterministic for any input. ok is false when the map is empty.
func (s Scores) Dominant() (label Label, score float64, ok bool) {
	if len(s) == 0 {
		return "", 0, false
	}

	for _, l := range Priority {
		v, present := s[l]
		if !present {
			continue
		}
		if !ok || v > score {
			label, score, ok = l, v, true
		}
	}

	// Detector vocabularies can drift; fold in any label we do not know
	// about rather than silently dropping it.
	extras := extraLabels(s)
	for _, l := range extras {
		if v := s[l]; !ok || v > score {
			label, score, ok = l, v, true
		}
	}

	return label, score, ok
}

// extraLabels returns the keys of s that are not in Priority, sorted.
func extraLabels(s Scores) []Label {
	var extras []Label
	for l := range s {
		if !isCanonical(l) {
			extras = append(extras, l)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	return extras
}

func isCanonical(l Label) bool {
	for _, p := range Priority {
		if l == p {
			return true
		}
	}
	return false
}
