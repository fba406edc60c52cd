package stats

import "math"

const (
	MinRating = 1
	MaxRating = 10
)

// Ratings maps every tracked language to a score in [MinRating, MaxRating].
type Ratings map[Language]int

// FallbackRatings returns the fixed ratings used when nothing was counted.
func FallbackRatings() Ratings {
	ratings := make(Ratings, len(languages))
	for _, spec := range languages {
		ratings[spec.Name] = spec.Fallback
	}
	return ratings
}

// CalculateRatings converts line counts into ratings proportional to each
// language's share of the total. Shares are rounded half away from zero and
// floored at MinRating. A zero total yields FallbackRatings.
func CalculateRatings(counts LineCounts) Ratings {
	total := counts.Total()
	if total == 0 {
		return FallbackRatings()
	}

	ratings := make(Ratings, len(languages))
	for _, spec := range languages {
		share := float64(counts[spec.Name]) / float64(total)
		rating := int(math.Round(share * MaxRating))
		if rating < MinRating {
			rating = MinRating
		}
		ratings[spec.Name] = rating
	}
	return ratings
}
