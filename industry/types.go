// SPDX-License-Identifier: MIT
// Package: geomark/industry
//
// types.go — the closed category set and the total keyword resolver.
//
// Contract (strict):
//   - Resolve never fails and never returns a value outside the closed set.
//   - Matching is case-insensitive substring search over an ordered synonym
//     table; the first matching rule wins, so rule order is part of the
//     public behavior (e.g. "legal" → Finance before any other match).

package industry

import (
	"fmt"
	"strings"
)

// Industry is one of the nine canonical categories.
type Industry uint8

const (
	// General is the fallback for unrecognized input.
	General Industry = iota

	// Technology covers software, hardware, and digital products.
	Technology

	// Finance covers banking, fintech, legal, and insurance.
	Finance

	// Health covers medical, pharma, and wellness.
	Health

	// Food covers restaurants, cafés, and food products.
	Food

	// Education covers schools, courses, and tutoring.
	Education

	// Creative covers design, media, and the arts.
	Creative

	// Nature covers ecology, gardening, and outdoors.
	Nature

	// Retail covers shops, commerce, and fashion.
	Retail
)

// names holds canonical lowercase labels, indexed by enum value.
var names = [...]string{
	"general", "technology", "finance", "health", "food",
	"education", "creative", "nature", "retail",
}

// String returns the canonical lowercase label.
func (i Industry) String() string {
	if int(i) < len(names) {
		return names[i]
	}

	return fmt.Sprintf("industry(%d)", uint8(i))
}

// keywordRule binds one synonym list to its category.
type keywordRule struct {
	category Industry
	keywords []string
}

// keywordRules is the fixed, ordered synonym table. First match wins.
// Append-only: reordering or removing entries changes resolved categories
// for existing inputs.
var keywordRules = []keywordRule{
	// Finance precedes Technology so "fintech" resolves by its own rule
	// rather than through the "tech" substring.
	{Finance, []string{"financ", "fintech", "bank", "crypto", "invest", "capital", "legal", "law", "insurance", "account", "fund"}},
	{Technology, []string{"tech", "software", "saas", "startup", "digital", "cyber", "data", "cloud", "robot"}},
	{Health, []string{"health", "medic", "clinic", "pharma", "dental", "fitness", "wellness", "therapy", "care"}},
	{Food, []string{"food", "restaurant", "cafe", "coffee", "bakery", "brew", "kitchen", "catering", "culinary"}},
	{Education, []string{"education", "school", "learn", "academy", "tutor", "universit", "course", "teach"}},
	{Creative, []string{"creative", "design", "art", "studio", "media", "photo", "film", "music", "agency"}},
	{Nature, []string{"nature", "eco", "green", "garden", "organic", "farm", "environment", "outdoor", "plant"}},
	{Retail, []string{"retail", "shop", "store", "commerce", "boutique", "market", "fashion", "apparel"}},
}

// Resolve maps freeform input to a canonical category; General on no match.
// Complexity: O(rules × keywords × len(input)), all small constants.
func Resolve(input string) Industry {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return General
	}

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(needle, kw) {
				return rule.category
			}
		}
	}

	return General
}
