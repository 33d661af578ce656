package questionbank

import "sort"

// QuestionWithStats pairs a question with its derived stats.
type QuestionWithStats struct {
	Question Question
	Stats    QuestionStats
}

// SortByWeakness orders questions by accuracy ascending, then by total
// attempts descending, so questions answered often but still missed come first.
// The sort is stable and happens in place.
func SortByWeakness(items []QuestionWithStats) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Stats, items[j].Stats
		if a.Accuracy != b.Accuracy {
			return a.Accuracy < b.Accuracy
		}
		return a.TotalCount > b.TotalCount
	})
}

// Summary aggregates a set of answer records.
type Summary struct {
	Total    int
	Correct  int
	Wrong    int
	Accuracy float64
}

func Summarize(records []AnswerRecord) Summary {
	var s Summary
	for _, r := range records {
		if r.Correct {
			s.Correct++
		}
	}
	s.Total = len(records)
	s.Wrong = s.Total - s.Correct
	s.Accuracy = ratio(s.Correct, s.Total)
	return s
}
