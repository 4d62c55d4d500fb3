package query

// RatingStats is the aggregate of a set of review ratings.
type RatingStats struct {
	Average float64
	Count   int64
}

// Aggregate computes the mean rating; an empty set averages to 0.
// The postgres store computes SUM(rating)::float8 / COUNT, which rounds the
// same way as the float64 division here.
func Aggregate(ratings []int) RatingStats {
	if len(ratings) == 0 {
		return RatingStats{}
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return RatingStats{
		Average: float64(sum) / float64(len(ratings)),
		Count:   int64(len(ratings)),
	}
}

// AverageRatingSQL and ReviewCountSQL aggregate reviews aliased r per group.
const (
	AverageRatingSQL = "COALESCE(SUM(r.rating)::float8 / NULLIF(COUNT(r.id), 0), 0)"
	ReviewCountSQL   = "COUNT(r.id)"
)
