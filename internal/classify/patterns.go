// Feedscope - Social Feed Ranking and Digest Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/feedscope

package classify

import "regexp"

// categoryPatterns is the fixed pattern table. Every category except Other
// has an entry; match counts against these drive classification scores.
// Patterns are matched case-insensitively against the raw caption and
// against the concatenated hashtag string.
var categoryPatterns = map[Category][]*regexp.Regexp{
	CategoryEvent: compileAll(
		`\b(?:rsvp|save the date|join us|tickets?)\b`,
		`\b(?:event|happening|meetup|gathering)\b`,
		`\bdoors? open\b`,
	),
	CategorySelfie: compileAll(
		`\bselfie\b`,
		`\bmirror (?:pic|photo|shot)\b`,
		`\b(?:no filter|nofilter)\b`,
		`\bfelt cute\b`,
	),
	CategoryPortrait: compileAll(
		`\bportrait\b`,
		`\bheadshot\b`,
		`\bphotoshoot\b`,
		`\bgolden hour\b`,
	),
	CategoryFood: compileAll(
		`\b(?:food|foodie|delicious|yummy|tasty)\b`,
		`\b(?:brunch|breakfast|lunch|dinner)\b`,
		`\b(?:recipe|homemade|cooking|baking)\b`,
		`\b(?:restaurant|cafe|coffee)\b`,
	),
	CategoryTravel: compileAll(
		`\b(?:travel|traveling|travelling|wanderlust)\b`,
		`\b(?:trip|vacation|holiday|getaway)\b`,
		`\b(?:airport|flight|passport)\b`,
		`\bexplor(?:e|ing)\b`,
	),
	CategoryNature: compileAll(
		`\b(?:nature|outdoors|wilderness)\b`,
		`\b(?:hike|hiking|trail|mountain|forest)\b`,
		`\b(?:sunset|sunrise|ocean|beach|lake)\b`,
		`\b(?:flowers?|garden|bloom)\b`,
	),
	CategoryArt: compileAll(
		`\b(?:art|artist|artwork)\b`,
		`\b(?:painting|drawing|sketch|illustration)\b`,
		`\b(?:sculpture|canvas|studio)\b`,
		`\bcommissions? open\b`,
	),
	CategoryFashion: compileAll(
		`\b(?:fashion|style|outfit|ootd)\b`,
		`\b(?:wearing|dressed|wardrobe)\b`,
		`\b(?:designer|runway|lookbook)\b`,
	),
	CategoryMusic: compileAll(
		`\b(?:music|song|album|single)\b`,
		`\b(?:band|dj|setlist|playlist)\b`,
		`\b(?:live show|on stage|soundcheck)\b`,
		`\bnew track\b`,
	),
	CategoryTechnology: compileAll(
		`\b(?:tech|technology|gadget)\b`,
		`\b(?:coding|programming|software|hardware)\b`,
		`\b(?:launch|startup|demo)\b`,
		`\b(?:ai|robot)\b`,
	),
	CategoryAnnouncement: compileAll(
		`\b(?:announcement|announcing|big news)\b`,
		`\b(?:excited to share|proud to share)\b`,
		`\b(?:coming soon|stay tuned)\b`,
	),
	CategoryExhibition: compileAll(
		`\b(?:exhibition|exhibit|gallery)\b`,
		`\b(?:opening night|vernissage|private view)\b`,
		`\b(?:museum|showcase|installation)\b`,
		`\bon display\b`,
	),
	CategoryWorkshop: compileAll(
		`\b(?:workshop|masterclass|bootcamp)\b`,
		`\b(?:hands-on|hands on|learn how)\b`,
		`\b(?:class|course|session|training)\b`,
		`\b(?:register|sign up|seats? (?:are )?limited)\b`,
	),
	CategorySports: compileAll(
		`\b(?:game|match|tournament|league)\b`,
		`\b(?:soccer|football|basketball|tennis|baseball)\b`,
		`\b(?:score|win|victory|champions?)\b`,
	),
	CategoryFitness: compileAll(
		`\b(?:fitness|workout|gym)\b`,
		`\b(?:run|running|marathon|5k|10k)\b`,
		`\b(?:yoga|pilates|crossfit|lifting)\b`,
		`\b(?:gains|personal best|pb)\b`,
	),
	CategoryPets: compileAll(
		`\b(?:dog|puppy|cat|kitten)\b`,
		`\b(?:pet|pets|paws?|furry)\b`,
		`\b(?:adopt(?:ed|ion)?|rescue)\b`,
	),
	CategoryFamily: compileAll(
		`\b(?:family|families)\b`,
		`\b(?:mom|dad|mother|father|parents)\b`,
		`\b(?:kids?|children|baby|son|daughter)\b`,
		`\b(?:grandma|grandpa|grandparents)\b`,
	),
	CategoryFriends: compileAll(
		`\b(?:friends?|bestie|bff)\b`,
		`\b(?:squad|crew|gang)\b`,
		`\b(?:reunion|catch(?:ing)? up)\b`,
	),
	CategoryParty: compileAll(
		`\b(?:party|celebration|celebrate)\b`,
		`\b(?:birthday|bday|anniversary)\b`,
		`\b(?:cheers|toast|festivities)\b`,
	),
	CategoryWedding: compileAll(
		`\b(?:wedding|bride|groom)\b`,
		`\b(?:engaged|engagement|proposal)\b`,
		`\b(?:married|newlyweds?|honeymoon)\b`,
		`\bsaid yes\b`,
	),
	CategoryConcert: compileAll(
		`\b(?:concert|gig|tour)\b`,
		`\b(?:live music|encore|front row)\b`,
		`\b(?:festival|headliner|lineup)\b`,
	),
	CategoryShopping: compileAll(
		`\b(?:shopping|haul|unboxing)\b`,
		`\b(?:sale|discount|deal)\b`,
		`\b(?:new in|just bought|treat(?:ed)? myself)\b`,
	),
	CategoryBeauty: compileAll(
		`\b(?:makeup|skincare|beauty)\b`,
		`\b(?:lipstick|mascara|palette)\b`,
		`\b(?:glow|glowing|routine)\b`,
	),
	CategoryEducation: compileAll(
		`\b(?:university|college|school|campus)\b`,
		`\b(?:studying|exam|thesis|lecture)\b`,
		`\b(?:graduat(?:ed|ion)|degree|diploma)\b`,
	),
	CategoryBusiness: compileAll(
		`\b(?:business|entrepreneur|founder)\b`,
		`\b(?:office|meeting|networking)\b`,
		`\b(?:clients?|customers?|growth)\b`,
	),
	CategoryMeme: compileAll(
		`\b(?:meme|memes)\b`,
		`\b(?:lol|lmao|rofl)\b`,
		`\b(?:relatable|mood|vibe check)\b`,
	),
	CategoryQuote: compileAll(
		`\b(?:quote|quotes)\b`,
		`\b(?:motivation|inspiration|wisdom)\b`,
		`\b(?:mindset|daily reminder)\b`,
	),
}

// eventSubCategories are checked, in order, when a caption already carries
// event indicators. A strong match (two or more distinct patterns) reroutes
// the primary category from Event to the sub-category.
var eventSubCategories = []Category{
	CategoryExhibition,
	CategoryWorkshop,
	CategoryMusic,
}

// firstPersonPattern detects first-person pronouns for the Selfie bonus.
var firstPersonPattern = regexp.MustCompile(`(?i)\b(?:i|i'm|im|me|my|myself)\b`)

// hashtagPattern extracts #word tokens. \p{L}\p{N} keeps the scan
// Unicode-aware where Go's \w would be ASCII-only.
var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+expr))
	}
	return patterns
}
