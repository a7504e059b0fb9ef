package vocab

import (
	"github.com/0xshadow-dev/skipwise-sub000/pkg/category"
)

// Curated vocabulary tables. Keyword lists lean on common US merchant and
// activity vocabulary; region-specific merchants live in the regional
// table with a region tag.

func terms(source string, weight float64, words ...string) []Term {
	out := make([]Term, 0, len(words))
	for _, w := range words {
		out = append(out, Term{Canonical: w, Weight: weight, Source: source})
	}
	return out
}

// PrimarySource holds the strongest direct category indicators.
func PrimarySource() Source {
	const name = "primary"
	return Source{
		Name:     name,
		Priority: PriorityPrimary,
		Terms: map[category.Category][]Term{
			category.Coffee: {
				{Canonical: "coffee", Variations: []string{"coffe", "cofee"}, Weight: WeightPrimary, Source: name, ContextClues: []string{"morning", "cup"}},
				{Canonical: "latte", Weight: WeightPrimary, Source: name},
				{Canonical: "espresso", Variations: []string{"expresso"}, Weight: WeightPrimary, Source: name},
				{Canonical: "cappuccino", Variations: []string{"capuccino", "cappucino"}, Weight: WeightPrimary, Source: name},
				{Canonical: "americano", Weight: WeightPrimary, Source: name},
				{Canonical: "mocha", Weight: WeightPrimary, Source: name},
			},
			category.Dining: {
				{Canonical: "lunch", Weight: WeightPrimary, Source: name, ContextClues: []string{"noon"}},
				{Canonical: "dinner", Weight: WeightPrimary, Source: name, ContextClues: []string{"evening"}},
				{Canonical: "breakfast", Weight: WeightPrimary, Source: name},
				{Canonical: "restaurant", Variations: []string{"resturant", "restraunt"}, Weight: WeightPrimary, Source: name},
				{Canonical: "burger", Weight: WeightPrimary, Source: name},
				{Canonical: "pizza", Weight: WeightPrimary, Source: name},
				{Canonical: "sushi", Weight: WeightPrimary, Source: name},
				{Canonical: "takeout", Variations: []string{"take out", "takeaway"}, Weight: WeightPrimary, Source: name},
			},
			category.Groceries: {
				{Canonical: "groceries", Variations: []string{"grocery", "grocerys"}, Weight: WeightPrimary, Source: name},
				{Canonical: "supermarket", Weight: WeightPrimary, Source: name},
				{Canonical: "produce", Weight: WeightPrimary, Source: name},
				{Canonical: "market", Weight: WeightPrimary, Source: name},
			},
			category.Transport: {
				{Canonical: "taxi", Weight: WeightPrimary, Source: name},
				{Canonical: "bus", Weight: WeightPrimary, Source: name},
				{Canonical: "train", Weight: WeightPrimary, Source: name},
				{Canonical: "subway", Weight: WeightPrimary, Source: name},
				{Canonical: "fuel", Variations: []string{"gas", "petrol"}, Weight: WeightPrimary, Source: name},
				{Canonical: "parking", Weight: WeightPrimary, Source: name},
			},
			category.Shopping: {
				{Canonical: "shopping", Weight: WeightPrimary, Source: name},
				{Canonical: "clothes", Variations: []string{"clothing"}, Weight: WeightPrimary, Source: name},
				{Canonical: "shoes", Weight: WeightPrimary, Source: name},
				{Canonical: "mall", Weight: WeightPrimary, Source: name},
			},
			category.Entertainment: {
				{Canonical: "movie", Variations: []string{"cinema", "film"}, Weight: WeightPrimary, Source: name},
				{Canonical: "concert", Weight: WeightPrimary, Source: name},
				{Canonical: "theater", Variations: []string{"theatre"}, Weight: WeightPrimary, Source: name},
				{Canonical: "game", Variations: []string{"gaming"}, Weight: WeightPrimary, Source: name},
			},
			category.Health: {
				{Canonical: "pharmacy", Variations: []string{"chemist"}, Weight: WeightPrimary, Source: name},
				{Canonical: "doctor", Weight: WeightPrimary, Source: name},
				{Canonical: "dentist", Weight: WeightPrimary, Source: name},
				{Canonical: "medicine", Variations: []string{"meds"}, Weight: WeightPrimary, Source: name},
			},
			category.Fitness: {
				{Canonical: "gym", Weight: WeightPrimary, Source: name},
				{Canonical: "workout", Weight: WeightPrimary, Source: name},
				{Canonical: "yoga", Weight: WeightPrimary, Source: name},
				{Canonical: "exercise", Weight: WeightPrimary, Source: name},
			},
			category.Travel: {
				{Canonical: "flight", Weight: WeightPrimary, Source: name},
				{Canonical: "hotel", Weight: WeightPrimary, Source: name},
				{Canonical: "airbnb", Weight: WeightPrimary, Source: name},
				{Canonical: "vacation", Variations: []string{"holiday"}, Weight: WeightPrimary, Source: name},
			},
			category.Utilities: {
				{Canonical: "electricity", Variations: []string{"electric bill"}, Weight: WeightPrimary, Source: name},
				{Canonical: "internet", Variations: []string{"wifi", "broadband"}, Weight: WeightPrimary, Source: name},
				{Canonical: "water bill", Weight: WeightPrimary, Source: name},
				{Canonical: "phone bill", Weight: WeightPrimary, Source: name},
			},
			category.Home: {
				{Canonical: "rent", Weight: WeightPrimary, Source: name},
				{Canonical: "furniture", Weight: WeightPrimary, Source: name},
				{Canonical: "repair", Weight: WeightPrimary, Source: name},
				{Canonical: "cleaning", Weight: WeightPrimary, Source: name},
			},
			category.Electronics: {
				{Canonical: "laptop", Weight: WeightPrimary, Source: name},
				{Canonical: "phone", Weight: WeightPrimary, Source: name},
				{Canonical: "charger", Weight: WeightPrimary, Source: name},
				{Canonical: "headphones", Variations: []string{"earbuds"}, Weight: WeightPrimary, Source: name},
			},
			category.Subscriptions: {
				{Canonical: "subscription", Variations: []string{"sub"}, Weight: WeightPrimary, Source: name},
				{Canonical: "membership", Weight: WeightPrimary, Source: name},
				{Canonical: "streaming", Weight: WeightPrimary, Source: name},
			},
			category.Alcohol: {
				{Canonical: "beer", Weight: WeightPrimary, Source: name},
				{Canonical: "wine", Weight: WeightPrimary, Source: name},
				{Canonical: "cocktail", Variations: []string{"cocktails"}, Weight: WeightPrimary, Source: name},
				{Canonical: "whiskey", Variations: []string{"whisky"}, Weight: WeightPrimary, Source: name},
				{Canonical: "bar", Weight: WeightPrimary, Source: name},
			},
			category.PersonalCare: {
				{Canonical: "haircut", Weight: WeightPrimary, Source: name},
				{Canonical: "salon", Weight: WeightPrimary, Source: name},
				{Canonical: "barber", Weight: WeightPrimary, Source: name},
				{Canonical: "spa", Weight: WeightPrimary, Source: name},
			},
			category.Education: {
				{Canonical: "tuition", Weight: WeightPrimary, Source: name},
				{Canonical: "textbook", Variations: []string{"books"}, Weight: WeightPrimary, Source: name},
				{Canonical: "course", Weight: WeightPrimary, Source: name},
			},
			category.Gifts: {
				{Canonical: "gift", Variations: []string{"present"}, Weight: WeightPrimary, Source: name},
				{Canonical: "birthday", Weight: WeightPrimary, Source: name},
			},
		},
	}
}

// BrandsSource maps well-known merchant names onto categories.
func BrandsSource() Source {
	const name = "brands"
	return Source{
		Name:     name,
		Priority: PriorityBrands,
		Terms: map[category.Category][]Term{
			category.Coffee: {
				{Canonical: "starbucks", Variations: []string{"sbux", "starbuck"}, Weight: 0.95, Source: name},
				{Canonical: "dunkin", Variations: []string{"dunkin donuts", "dd"}, Weight: WeightBrand, Source: name},
				{Canonical: "peets", Weight: 0.85, Source: name},
				{Canonical: "costa", Weight: 0.85, Source: name},
			},
			category.Dining: {
				{Canonical: "mcdonalds", Variations: []string{"mcd", "maccas", "mickey ds"}, Weight: 0.95, Source: name},
				{Canonical: "chipotle", Weight: WeightBrand, Source: name},
				{Canonical: "subway sandwiches", Variations: []string{"subway sub"}, Weight: 0.85, Source: name},
				{Canonical: "kfc", Weight: WeightBrand, Source: name},
				{Canonical: "doordash", Weight: WeightBrand, Source: name},
				{Canonical: "grubhub", Weight: WeightBrand, Source: name},
			},
			category.Groceries: {
				{Canonical: "walmart", Variations: []string{"wal mart"}, Weight: WeightBrand, Source: name},
				{Canonical: "costco", Weight: WeightBrand, Source: name},
				{Canonical: "trader joes", Variations: []string{"trader joe"}, Weight: WeightBrand, Source: name},
				{Canonical: "whole foods", Weight: WeightBrand, Source: name},
				{Canonical: "safeway", Weight: 0.85, Source: name},
				{Canonical: "kroger", Weight: 0.85, Source: name},
			},
			category.Transport: {
				{Canonical: "uber", Weight: 0.95, Source: name},
				{Canonical: "lyft", Weight: 0.95, Source: name},
				{Canonical: "shell", Weight: 0.85, Source: name},
				{Canonical: "chevron", Weight: 0.85, Source: name},
			},
			category.Shopping: {
				{Canonical: "amazon", Variations: []string{"amzn"}, Weight: WeightBrand, Source: name},
				{Canonical: "target", Weight: WeightBrand, Source: name},
				{Canonical: "ikea", Weight: 0.85, Source: name},
				{Canonical: "ebay", Weight: 0.85, Source: name},
			},
			category.Entertainment: {
				{Canonical: "amc", Weight: 0.85, Source: name},
				{Canonical: "steam", Weight: 0.85, Source: name},
				{Canonical: "ticketmaster", Weight: WeightBrand, Source: name},
			},
			category.Electronics: {
				{Canonical: "best buy", Variations: []string{"bestbuy"}, Weight: WeightBrand, Source: name},
				{Canonical: "apple store", Weight: WeightBrand, Source: name},
				{Canonical: "newegg", Weight: 0.85, Source: name},
			},
			category.Subscriptions: {
				{Canonical: "netflix", Weight: 0.95, Source: name},
				{Canonical: "spotify", Weight: 0.95, Source: name},
				{Canonical: "hulu", Weight: WeightBrand, Source: name},
				{Canonical: "disney plus", Variations: []string{"disney+"}, Weight: WeightBrand, Source: name},
				{Canonical: "youtube premium", Weight: 0.85, Source: name},
			},
			category.Fitness: {
				{Canonical: "planet fitness", Weight: WeightBrand, Source: name},
				{Canonical: "equinox", Weight: 0.85, Source: name},
			},
			category.Travel: {
				{Canonical: "delta", Weight: 0.85, Source: name},
				{Canonical: "united", Weight: 0.85, Source: name},
				{Canonical: "expedia", Weight: WeightBrand, Source: name},
				{Canonical: "marriott", Weight: 0.85, Source: name},
			},
			category.PersonalCare: {
				{Canonical: "sephora", Weight: WeightBrand, Source: name},
				{Canonical: "cvs", Weight: 0.85, Source: name},
			},
		},
	}
}

// RegionalSource tags merchants that only read correctly in one region.
func RegionalSource() Source {
	const name = "regional"
	regional := func(region string, weight float64, words ...string) []Term {
		out := terms(name, weight, words...)
		for i := range out {
			out[i].Region = region
		}
		return out
	}
	return Source{
		Name:     name,
		Priority: PriorityRegional,
		Terms: map[category.Category][]Term{
			category.Groceries: append(
				regional("uk", 0.85, "tesco", "sainsburys", "asda", "waitrose"),
				append(regional("de", 0.85, "aldi", "lidl", "rewe", "edeka"),
					regional("in", 0.85, "big bazaar", "dmart", "reliance fresh")...)...),
			category.Dining: append(
				regional("uk", 0.8, "greggs", "nandos", "pret"),
				regional("in", 0.8, "swiggy", "zomato", "dhaba")...),
			category.Transport: append(
				regional("uk", 0.8, "oyster", "national rail"),
				regional("in", 0.8, "ola", "rickshaw", "auto fare")...),
			category.Coffee: regional("au", 0.8, "flat white", "gloria jeans"),
		},
	}
}

// SynonymsSource covers secondary wordings for each category.
func SynonymsSource() Source {
	const name = "synonyms"
	return Source{
		Name:     name,
		Priority: PrioritySynonyms,
		Terms: map[category.Category][]Term{
			category.Coffee:        terms(name, WeightSynonym, "brew", "caffeine", "cafe", "coffeehouse", "cold brew"),
			category.Dining:        terms(name, WeightSynonym, "meal", "eatery", "diner", "bistro", "brunch", "snack", "food"),
			category.Groceries:     terms(name, WeightSynonym, "provisions", "veggies", "pantry"),
			category.Transport:     terms(name, WeightSynonym, "ride", "cab", "commute", "fare", "toll"),
			category.Shopping:      terms(name, WeightSynonym, "purchase", "order", "retail", "outlet", "store"),
			category.Entertainment: terms(name, WeightSynonym, "show", "tickets", "arcade", "festival"),
			category.Health:        terms(name, WeightSynonym, "clinic", "prescription", "checkup", "therapy"),
			category.Fitness:       terms(name, WeightSynonym, "training", "pilates", "crossfit", "swimming"),
			category.Travel:        terms(name, WeightSynonym, "trip", "airfare", "lodging", "booking"),
			category.Utilities:     terms(name, WeightSynonym, "utility", "heating", "sewage"),
			category.Home:          terms(name, WeightSynonym, "decor", "appliance", "garden", "mortgage"),
			category.Electronics:   terms(name, WeightSynonym, "gadget", "device", "accessory", "tech"),
			category.Subscriptions: terms(name, WeightSynonym, "renewal", "plan", "premium"),
			category.Alcohol:       terms(name, WeightSynonym, "drinks", "pub", "brewery", "happy hour"),
			category.PersonalCare:  terms(name, WeightSynonym, "grooming", "skincare", "cosmetics", "manicure"),
			category.Education:     terms(name, WeightSynonym, "class", "workshop", "seminar", "lesson"),
			category.Gifts:         terms(name, WeightSynonym, "wedding", "anniversary", "souvenir"),
		},
	}
}

// ActionsSource holds verb phrases that imply a category without naming it.
func ActionsSource() Source {
	const name = "actions"
	return Source{
		Name:     name,
		Priority: PriorityActions,
		Terms: map[category.Category][]Term{
			category.Coffee:    terms(name, 0.7, "coffee run", "grabbed a coffee", "morning caffeine"),
			category.Dining:    terms(name, 0.65, "ate out", "ordered food", "grabbed lunch", "grabbed dinner"),
			category.Groceries: terms(name, WeightAction, "stocked up", "weekly shop", "grocery run"),
			category.Transport: terms(name, WeightAction, "filled up", "topped up the tank", "took a cab"),
			category.Fitness:   terms(name, WeightAction, "hit the gym", "went for a run", "gym session"),
			category.Shopping:  terms(name, 0.55, "picked up", "bought some", "splurged on"),
			category.Alcohol:   terms(name, WeightAction, "night out", "went drinking", "round of drinks"),
		},
	}
}

// CustomSource builds a high-priority source from user-defined categories
// and their keyword lists, as supplied by the host application.
func CustomSource(keywords map[string][]string) Source {
	const name = "custom"
	src := Source{Name: name, Priority: PriorityCustom, Terms: map[category.Category][]Term{}}
	for label, words := range keywords {
		cat := category.Parse(label)
		src.Terms[cat] = append(src.Terms[cat], terms(name, WeightCustom, words...)...)
	}
	return src
}

// BuiltinSources returns the full curated stack in no particular order;
// consolidation sorts by priority.
func BuiltinSources() []Source {
	return []Source{
		PrimarySource(),
		BrandsSource(),
		RegionalSource(),
		SynonymsSource(),
		ActionsSource(),
	}
}
