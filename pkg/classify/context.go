package classify

import (
	"regexp"

	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
	"github.com/0xshadow-dev/skipwise-sub000/pkg/config"
)

// ContextAnalyzer derives per-category confidence boosts from the wall
// clock hour and from action phrasing in the text. Boosts are additive
// and sum across every rule that fires. All regexes compile once at
// construction.
type ContextAnalyzer struct {
	rules       []actionRule
	bands       []timeBand
	timeBoost   float64
	actionBoost float64
}

type actionRule struct {
	re       *regexp.Regexp
	category category.Category
	name     string
}

type timeBand struct {
	fromHour   int // inclusive
	toHour     int // exclusive
	categories []category.Category
	name       string
}

var actionPatterns = []struct {
	pattern  string
	category category.Category
	name     string
}{
	{`\b(grab|grabbed|get|got|buy|bought|pick up|picked up)\b.*\b(coffee|latte|espresso|cappuccino|brew)\b`, category.Coffee, "coffee run phrasing"},
	{`\b(gym|workout|work out|exercise|training session)\b`, category.Fitness, "workout phrasing"},
	{`\b(order|ordered|delivery|delivered)\b.*\b(food|lunch|dinner|pizza|takeout)\b`, category.Dining, "food delivery phrasing"},
	{`\b(fill|filled|top|topped)\b.*\b(tank|gas|fuel|petrol)\b`, category.Transport, "refuelling phrasing"},
	{`\b(round of|night out|drinks with|happy hour)\b`, category.Alcohol, "drinks phrasing"},
	{`\b(stock|stocked)\b.*\b(up|fridge|pantry)\b`, category.Groceries, "stocking-up phrasing"},
	{`\b(movie|cinema|concert|show)\b.*\btickets?\b`, category.Entertainment, "ticket phrasing"},
	{`\bmonthly\b.*\b(fee|charge|renewal)\b`, category.Subscriptions, "recurring charge phrasing"},
}

// NewContextAnalyzer compiles the action rules and installs the default
// time bands. Boost sizes come from cfg.
func NewContextAnalyzer(cfg config.ContextConfig) *ContextAnalyzer {
	a := &ContextAnalyzer{
		bands: []timeBand{
			{6, 10, []category.Category{category.Coffee, category.Dining}, "morning"},
			{11, 14, []category.Category{category.Dining}, "midday"},
			{17, 21, []category.Category{category.Dining, category.Alcohol}, "evening"},
		},
	}
	for _, p := range actionPatterns {
		a.rules = append(a.rules, actionRule{
			re:       regexp.MustCompile(p.pattern),
			category: p.category,
			name:     p.name,
		})
	}
	a.timeBoost = cfg.TimeBandBoost
	a.actionBoost = cfg.ActionBoost
	return a
}

// Boost holds one fired context rule.
type Boost struct {
	Category category.Category
	Amount   float64
	Reason   string
}

// Boosts evaluates every band and rule against normalized text and an
// hour in [0,24), returning the summed additive boost per category along
// with the individual reasons.
func (a *ContextAnalyzer) Boosts(norm string, hour int) ([]Boost, map[category.Category]float64) {
	var fired []Boost
	total := make(map[category.Category]float64)

	for _, band := range a.bands {
		if hour < band.fromHour || hour >= band.toHour {
			continue
		}
		for _, cat := range band.categories {
			fired = append(fired, Boost{cat, a.timeBoost, band.name + " hours"})
			total[cat] += a.timeBoost
		}
	}
	for _, rule := range a.rules {
		if rule.re.MatchString(norm) {
			fired = append(fired, Boost{rule.category, a.actionBoost, rule.name})
			total[rule.category] += a.actionBoost
		}
	}
	return fired, total
}

// TimeGuess returns the single most likely category for the hour alone,
// used by the classifier's low-confidence fallback.
func (a *ContextAnalyzer) TimeGuess(hour int) (category.Category, bool) {
	for _, band := range a.bands {
		if hour >= band.fromHour && hour < band.toHour {
			return band.categories[0], true
		}
	}
	return category.Category{}, false
}
