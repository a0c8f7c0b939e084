package metrics

import (
	"fmt"
	"math"

	"github.com/creatorpulse/creatorpulse/internal/models"
)

// Formula is the per-platform capability set plugged into the shared
// pipeline: the engagement term summed by the aggregator, the power score
// ranking the best post, and the handle-score curve.
type Formula struct {
	Engagement func(NormalizedPost) int64
	PowerScore func(NormalizedPost) int64
	baseScore  func(avg float64) float64
}

// HandleScore maps an average engagement and a caller-supplied bias offset
// to a handle score, bounded to [0, 1000].
func (f Formula) HandleScore(avg, bias float64) int {
	total := math.Round(f.baseScore(avg) + bias)
	if total < 0 {
		return 0
	}
	if total > 1000 {
		return 1000
	}
	return int(total)
}

var formulas = map[string]Formula{
	models.PlatformInstagram: {
		Engagement: func(p NormalizedPost) int64 { return p.Likes + p.Comments },
		PowerScore: func(p NormalizedPost) int64 { return p.Likes + 2*p.Comments },
		baseScore:  func(avg float64) float64 { return math.Round(avg*0.7 + 0.36) },
	},
	models.PlatformLinkedIn: {
		Engagement: func(p NormalizedPost) int64 { return p.Likes + p.Comments },
		PowerScore: func(p NormalizedPost) int64 { return p.Likes + 2*p.Comments + 3*p.Shares },
		baseScore:  func(avg float64) float64 { return math.Round(avg*3.0) + 100 },
	},
	models.PlatformTwitter: {
		// Views never enter the engagement sum, they only surface on the
		// best-post record.
		Engagement: func(p NormalizedPost) int64 { return p.Likes + p.Comments + p.Shares },
		PowerScore: func(p NormalizedPost) int64 { return p.Likes + 2*p.Comments + 3*p.Shares },
		baseScore:  func(avg float64) float64 { return math.Round(avg*4.0) + 50 },
	},
}

// FormulaFor returns the formula set for a platform.
func FormulaFor(platform string) (Formula, error) {
	f, ok := formulas[platform]
	if !ok {
		return Formula{}, fmt.Errorf("%w: %s", models.ErrUnknownPlatform, platform)
	}
	return f, nil
}
