package analysis

import "regexp"

// themeVocabulary is the fixed set of theme keywords matched against record
// summaries during speaker aggregation. Order is the output order.
var themeVocabulary = []string{
	"pricing",
	"trust",
	"time",
	"dealer",
	"negotiation",
	"research",
	"stress",
	"confidence",
}

// stopWords are dropped from hypothesis keyword extraction, along with any
// token of three characters or fewer.
var stopWords = map[string]bool{
	"about": true, "also": true, "been": true, "being": true,
	"could": true, "does": true, "from": true, "have": true,
	"into": true, "just": true, "like": true, "more": true,
	"most": true, "only": true, "over": true, "should": true,
	"some": true, "such": true, "than": true, "that": true,
	"their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "those": true,
	"very": true, "what": true, "when": true, "which": true,
	"will": true, "with": true, "would": true, "your": true,
}

// positiveWords and negativeWords are the fixed sentiment vocabularies used
// to classify matching records. A record with more negative than positive
// hits counts as support: hypotheses here assert user pain, so negative
// sentiment is the confirming signal.
var positiveWords = []string{
	"easy", "helpful", "great", "love", "simple", "clear", "smooth", "convenient",
}

var negativeWords = []string{
	"confusing", "frustrating", "difficult", "annoying", "hate",
	"worried", "stressful", "overwhelming", "scam",
}

// painPointRule pairs a category label with the pattern that detects it and
// the keywords used to pick representative quotes.
type painPointRule struct {
	category string
	pattern  *regexp.Regexp
	keywords []string
}

// painPointRules are the ten fixed classification buckets, evaluated
// independently against each record. A record may match several categories
// but increments each matched category at most once.
var painPointRules = []painPointRule{
	{
		category: "Pricing Confusion",
		pattern:  regexp.MustCompile(`(?i)pric(e|es|ing).{0,60}(confus|unclear|hidden|inconsistent|vary|varies)`),
		keywords: []string{"pricing", "price", "cost", "fee"},
	},
	{
		category: "Trust Issues",
		pattern:  regexp.MustCompile(`(?i)(scam|trust|dishonest|honest|pressur|shady|sketchy|lied|lying)`),
		keywords: []string{"scam", "trust", "honest", "pressure"},
	},
	{
		category: "Complexity",
		pattern:  regexp.MustCompile(`(?i)(confus|complicated|complex|overwhelm|convoluted)`),
		keywords: []string{"confusing", "complicated", "complex", "overwhelming"},
	},
	{
		category: "Time Waste",
		pattern:  regexp.MustCompile(`(?i)(wast(e|ed|ing).{0,30}time|took (hours|forever|too long)|so slow|tedious|hours of)`),
		keywords: []string{"time", "hours", "slow", "forever"},
	},
	{
		category: "Negotiation Anxiety",
		pattern:  regexp.MustCompile(`(?i)(negotiat|haggl|bargain)`),
		keywords: []string{"negotiate", "negotiation", "haggle", "bargain"},
	},
	{
		category: "Information Overload",
		pattern:  regexp.MustCompile(`(?i)(too much information|information overload|endless (options|research|tabs)|so many (sites|sources|reviews))`),
		keywords: []string{"information", "research", "reviews", "options"},
	},
	{
		category: "Financing Confusion",
		pattern:  regexp.MustCompile(`(?i)(financ|loan|interest rate|apr\b|credit score)`),
		keywords: []string{"financing", "loan", "interest", "credit"},
	},
	{
		category: "Dealer Experience",
		pattern:  regexp.MustCompile(`(?i)(dealer|dealership|salesperson|salesman|showroom)`),
		keywords: []string{"dealer", "dealership", "salesperson", "showroom"},
	},
	{
		category: "Hidden Fees",
		pattern:  regexp.MustCompile(`(?i)(hidden (fee|charge|cost)|extra (fee|charge)|add.?ons?|surprise (fee|charge|cost))`),
		keywords: []string{"fee", "fees", "charge", "charges"},
	},
	{
		category: "Decision Paralysis",
		pattern:  regexp.MustCompile(`(?i)(can.?t decide|couldn.?t decide|too many (option|choice)|second.?guess|paralysis|unsure which)`),
		keywords: []string{"decide", "choice", "choices", "options", "unsure"},
	},
}
