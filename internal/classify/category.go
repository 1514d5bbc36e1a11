// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package classify

import (
	"github.com/goccy/go-json"
)

// Category is a closed enumeration of content tags. Adding a value requires
// updating String, categoryNames and the pattern table so switches over the
// enum stay exhaustive.
type Category int

const (
	// CategoryOther is the fallback for unclassifiable content.
	CategoryOther Category = iota
	CategoryEvent
	CategorySelfie
	CategoryPortrait
	CategoryFood
	CategoryTravel
	CategoryNature
	CategoryArt
	CategoryFashion
	CategoryMusic
	CategoryTechnology
	CategoryAnnouncement
	CategoryExhibition
	CategoryWorkshop
	CategorySports
	CategoryFitness
	CategoryPets
	CategoryFamily
	CategoryFriends
	CategoryParty
	CategoryWedding
	CategoryConcert
	CategoryShopping
	CategoryBeauty
	CategoryEducation
	CategoryBusiness
	CategoryMeme
	CategoryQuote

	// numCategories bounds iteration over the enum.
	numCategories
)

var categoryNames = [numCategories]string{
	CategoryOther:        "other",
	CategoryEvent:        "event",
	CategorySelfie:       "selfie",
	CategoryPortrait:     "portrait",
	CategoryFood:         "food",
	CategoryTravel:       "travel",
	CategoryNature:       "nature",
	CategoryArt:          "art",
	CategoryFashion:      "fashion",
	CategoryMusic:        "music",
	CategoryTechnology:   "technology",
	CategoryAnnouncement: "announcement",
	CategoryExhibition:   "exhibition",
	CategoryWorkshop:     "workshop",
	CategorySports:       "sports",
	CategoryFitness:      "fitness",
	CategoryPets:         "pets",
	CategoryFamily:       "family",
	CategoryFriends:      "friends",
	CategoryParty:        "party",
	CategoryWedding:      "wedding",
	CategoryConcert:      "concert",
	CategoryShopping:     "shopping",
	CategoryBeauty:       "beauty",
	CategoryEducation:    "education",
	CategoryBusiness:     "business",
	CategoryMeme:         "meme",
	CategoryQuote:        "quote",
}

// String returns the category's wire name.
func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "other"
	}
	return categoryNames[c]
}

// MarshalJSON serializes the category as its wire name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a wire name; unknown names resolve to Other.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range categoryNames {
		if name == s {
			*c = Category(i)
			return nil
		}
	}
	*c = CategoryOther
	return nil
}

// CategoryResult describes a caption's classification.
type CategoryResult struct {
	// Primary is the best-scoring category.
	Primary Category `json:"primary"`

	// Secondary is the runner-up, present only when its score cleared the
	// secondary threshold.
	Secondary *Category `json:"secondary,omitempty"`

	// Confidence is the classifier's confidence in Primary, in [0, 1].
	Confidence float64 `json:"confidence"`

	// Hashtags lists caption hashtags in order of appearance, duplicates
	// included, without the leading '#'.
	Hashtags []string `json:"hashtags"`
}
