package intake

import (
	"strings"

	"golang.org/x/text/cases"

	vo "intake/internal/domain/intake/valueobjects"
)

// Classification is the outcome of scoring a description, with the
// per-category detail that produced it.
type Classification struct {
	Category vo.Category
	Scores   map[vo.Category]int
	Matches  map[vo.Category][]string
}

// Classifier maps free text to a category by weighted keyword scoring.
// It holds no mutable state after construction and is safe for concurrent use.
type Classifier struct {
	table  KeywordTable
	policy ScoringPolicy
}

// NewClassifier builds a classifier from a keyword table and policy. Keywords
// are normalized the same way as input text so table casing does not matter.
func NewClassifier(table KeywordTable, policy ScoringPolicy) *Classifier {
	normalized := make(KeywordTable, len(table))
	for category, set := range table {
		normalized[category] = KeywordSet{
			Strong: normalizeAll(set.Strong),
			Weak:   normalizeAll(set.Weak),
		}
	}

	order := make([]vo.Category, 0, len(policy.Order))
	for _, category := range policy.Order {
		if category.IsValid() && !category.IsOther() {
			order = append(order, category)
		}
	}
	policy.Order = order

	return &Classifier{
		table:  normalized,
		policy: policy,
	}
}

// NewDefaultClassifier returns a classifier with the reference keyword table
// and weighted scoring policy.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultKeywordTable(), DefaultScoringPolicy())
}

// Classify returns exactly one category for any input, falling back to
// other when nothing scores at or above the threshold.
func (c *Classifier) Classify(text string) vo.Category {
	return c.Explain(text).Category
}

// Explain scores text against every category in evaluation order.
func (c *Classifier) Explain(text string) Classification {
	result := Classification{
		Category: vo.CategoryOther,
		Scores:   make(map[vo.Category]int, len(c.policy.Order)),
		Matches:  make(map[vo.Category][]string, len(c.policy.Order)),
	}

	normalized := normalize(text)
	if normalized == "" {
		return result
	}

	best := vo.CategoryOther
	bestScore := 0
	for _, category := range c.policy.Order {
		score, matched := c.score(normalized, c.table[category])
		result.Scores[category] = score
		if len(matched) > 0 {
			result.Matches[category] = matched
		}

		// strictly greater keeps the earlier category on ties
		if score > bestScore {
			best = category
			bestScore = score
		}
	}

	if bestScore >= c.policy.Threshold {
		result.Category = best
	}

	return result
}

func (c *Classifier) score(text string, set KeywordSet) (int, []string) {
	score := 0
	var matched []string

	for _, keyword := range set.Strong {
		if keyword != "" && strings.Contains(text, keyword) {
			score += c.policy.StrongWeight
			matched = append(matched, keyword)
		}
	}
	for _, keyword := range set.Weak {
		if keyword != "" && strings.Contains(text, keyword) {
			score += c.policy.WeakWeight
			matched = append(matched, keyword)
		}
	}

	return score, matched
}

// normalize case-folds and trims. A fresh Caser is used per call since
// cases.Caser values are not safe to share between goroutines.
func normalize(text string) string {
	return strings.TrimSpace(cases.Fold().String(text))
}

func normalizeAll(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if k := normalize(keyword); k != "" {
			out = append(out, k)
		}
	}
	return out
}
