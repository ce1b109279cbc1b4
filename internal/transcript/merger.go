package transcript

import "sort"

// Merge flattens multiple transcripts into one sequence and orders it
// by start time. The sort is stable and keyed on StartTime alone, so
// records sharing a timestamp keep concatenation order: within a
// transcript the original order, across transcripts the order the
// inputs were supplied in. Inputs are never mutated.
func Merge(transcripts [][]Utterance) []Utterance {
	var total int
	for _, t := range transcripts {
		total += len(t)
	}

	merged := make([]Utterance, 0, total)
	for _, t := range transcripts {
		merged = append(merged, t...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].StartTime < merged[j].StartTime
	})

	return merged
}
