package textscore

import (
	"math"
	"strings"

	"github.com/surgebase/porter2"
)

// Semantic similarity is deliberately coarse: each word in a small curated
// lexicon carries a binary indicator vector over a handful of spending
// clusters, and similarity is the cosine between those vectors. Words
// outside the lexicon score 0 against everything. This is not a trained
// embedding and is not meant to behave like one.

type cluster uint16

const (
	clusterFood cluster = 1 << iota
	clusterDrink
	clusterShopping
	clusterFitness
	clusterTechnology
	clusterEntertainment
	clusterTravel
	clusterHome
)

// clusterWords seeds the lexicon; entries are stemmed at init so lookups
// can stem freely.
var clusterWords = map[cluster][]string{
	clusterFood: {
		"food", "meal", "lunch", "dinner", "breakfast", "brunch", "snack",
		"burger", "pizza", "sandwich", "sushi", "taco", "salad", "pasta",
		"restaurant", "eat", "bakery", "grocery", "groceries", "bagel",
		"noodle", "rice", "chicken", "steak", "dessert", "cake",
	},
	clusterDrink: {
		"drink", "coffee", "latte", "espresso", "cappuccino", "mocha",
		"tea", "juice", "smoothie", "soda", "beer", "wine", "cocktail",
		"whiskey", "brew", "cafe", "americano",
	},
	clusterShopping: {
		"shop", "shopping", "store", "mall", "buy", "purchase", "order",
		"clothes", "shoes", "shirt", "jeans", "dress", "retail", "outlet",
		"gift", "sale",
	},
	clusterFitness: {
		"gym", "workout", "exercise", "fitness", "yoga", "run", "running",
		"swim", "cycling", "trainer", "pilates", "crossfit", "sport",
	},
	clusterTechnology: {
		"phone", "laptop", "computer", "tablet", "charger", "cable",
		"headphones", "keyboard", "monitor", "software", "app", "gadget",
		"electronics", "camera", "console",
	},
	clusterEntertainment: {
		"movie", "cinema", "film", "concert", "show", "theater", "game",
		"gaming", "music", "streaming", "ticket", "festival", "arcade",
	},
	clusterTravel: {
		"flight", "hotel", "taxi", "uber", "train", "bus", "airline",
		"airport", "trip", "vacation", "travel", "rental", "fuel", "gas",
		"parking", "toll",
	},
	clusterHome: {
		"rent", "furniture", "couch", "lamp", "kitchen", "cleaning",
		"garden", "repair", "paint", "tools", "appliance", "decor",
		"utilities", "electricity", "internet",
	},
}

var semanticLexicon = buildLexicon()

func buildLexicon() map[string]cluster {
	lex := make(map[string]cluster, 128)
	for c, words := range clusterWords {
		for _, w := range words {
			lex[porter2.Stem(w)] |= c
		}
	}
	return lex
}

func clusterVector(word string) cluster {
	return semanticLexicon[porter2.Stem(strings.ToLower(word))]
}

func popCount(c cluster) int {
	n := 0
	for c != 0 {
		c &= c - 1
		n++
	}
	return n
}

// SemanticSimilarity returns the cosine similarity between the cluster
// indicator vectors of two words, or 0 when either word is outside the
// curated lexicon.
func SemanticSimilarity(wordA, wordB string) float64 {
	va := clusterVector(wordA)
	vb := clusterVector(wordB)
	if va == 0 || vb == 0 {
		return 0
	}
	shared := popCount(va & vb)
	if shared == 0 {
		return 0
	}
	return float64(shared) / (math.Sqrt(float64(popCount(va))) * math.Sqrt(float64(popCount(vb))))
}
