package intake

import (
	vo "intake/internal/domain/intake/valueobjects"
)

// KeywordSet holds the phrases that vote for a single category. Strong and
// weak lists are disjoint; each phrase is matched independently.
type KeywordSet struct {
	Strong []string
	Weak   []string
}

// KeywordTable maps every scorable category to its keywords. The fallback
// category has no entry.
type KeywordTable map[vo.Category]KeywordSet

// ScoringPolicy carries the tunable constants of the classifier.
type ScoringPolicy struct {
	StrongWeight int
	WeakWeight   int
	// Threshold is the minimum winning score required to leave the fallback
	// category.
	Threshold int
	// Order fixes the evaluation order; on equal scores the earlier category
	// wins.
	Order []vo.Category
}

// DefaultScoringPolicy returns the weighted policy: strong hits score 2, weak
// hits 1, and a single hit of either kind is enough to classify.
func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		StrongWeight: 2,
		WeakWeight:   1,
		Threshold:    1,
		Order: []vo.Category{
			vo.CategoryBilling,
			vo.CategoryTechnicalSupport,
			vo.CategoryNewMatterProject,
		},
	}
}

// DefaultKeywordTable returns the reference keyword configuration.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		vo.CategoryBilling: {
			Strong: []string{"invoice", "overcharge", "refund", "receipt", "credit card", "subscription"},
			Weak:   []string{"payment", "bill", "charge", "pricing", "cost", "fee", "cancel"},
		},
		vo.CategoryTechnicalSupport: {
			Strong: []string{"error", "broken", "crash", "500", "404", "timeout", "down", "offline"},
			Weak:   []string{"login", "bug", "slow", "password", "not working", "access"},
		},
		vo.CategoryNewMatterProject: {
			Strong: []string{"quote", "proposal", "new project", "engagement", "consultation"},
			Weak:   []string{"hire", "estimate", "contract", "scope", "start", "begin"},
		},
	}
}
