package intent

import (
	"dealerbot/pkg"
)

// term is one weighted keyword group. The group scores its weight
// once if any of its words appears in the message. Whole-word terms
// only hit standalone tokens, so "vs" stays quiet inside "suvs".
type term struct {
	words     []string
	weight    float64
	wholeWord bool
}

// intentSpec is a declarative scoring table for one intent. Boosts
// apply on top of keyword hits when the corresponding signal is set.
type intentSpec struct {
	intent       pkg.Intent
	terms        []term
	cartBoost    float64
	compareBoost float64
	authBoost    float64
}

func kw(weight float64, words ...string) term {
	return term{words: words, weight: weight}
}

// word builds a whole-word term for keywords too short to substring
// match safely.
func word(weight float64, words ...string) term {
	return term{words: words, weight: weight, wholeWord: true}
}

// defaultSpecs holds the scoring tables for the nine non-general
// intents. Declaration order doubles as the tie-break order.
var defaultSpecs = []intentSpec{
	{
		intent: pkg.IntentHelp,
		terms: []term{
			kw(0.8, "help"), kw(0.8, "how to"), kw(0.8, "how do i"),
			kw(0.8, "what can you"), kw(0.8, "guide"), kw(0.8, "assist"),
			kw(0.4, "show me"), kw(0.4, "explain"), kw(0.4, "tutorial"),
			kw(0.4, "instructions"), kw(0.4, "support"),
			kw(0.2, "?"),
			kw(0.3, "what", "how"),
		},
	},
	{
		intent: pkg.IntentVehicle,
		terms: []term{
			kw(0.7, "car"), kw(0.7, "vehicle"), kw(0.7, "truck"), kw(0.7, "suv"),
			kw(0.7, "sedan"), kw(0.7, "hatchback"), kw(0.7, "coupe"),
			kw(0.7, "convertible"), kw(0.7, "minivan"),
			kw(0.6, "toyota"), kw(0.6, "honda"), kw(0.6, "ford"), kw(0.6, "chevrolet"),
			kw(0.6, "nissan"), kw(0.6, "bmw"), kw(0.6, "mercedes"), kw(0.6, "audi"),
			kw(0.6, "tesla"), kw(0.6, "hyundai"),
			kw(0.4, "engine"), kw(0.4, "transmission"), kw(0.4, "mileage"),
			kw(0.4, "year"), kw(0.4, "model"), kw(0.4, "make"),
			kw(0.3, "new"), kw(0.3, "used"), kw(0.3, "certified"), kw(0.3, "electric"),
			kw(0.3, "hybrid"), kw(0.3, "gas"), kw(0.3, "diesel"),
		},
	},
	{
		intent: pkg.IntentLoan,
		terms: []term{
			kw(0.8, "loan"), kw(0.8, "finance"), kw(0.8, "financing"),
			kw(0.8, "payment"), kw(0.8, "monthly"), kw(0.8, "interest"), kw(0.8, "apr"),
			kw(0.6, "credit"), kw(0.6, "score"), kw(0.6, "down payment"), kw(0.6, "trade-in"),
			kw(0.7, "monthly payment"), kw(0.7, "installment"), kw(0.7, "lease"),
		},
	},
	{
		intent: pkg.IntentDealership,
		terms: []term{
			kw(0.8, "hours"), kw(0.8, "contact"), kw(0.8, "phone"),
			kw(0.8, "email"), kw(0.8, "address"), kw(0.8, "location"),
			kw(0.7, "warranty"), kw(0.7, "service"), kw(0.7, "maintenance"),
			kw(0.7, "repair"), kw(0.7, "test drive"),
		},
	},
	{
		intent: pkg.IntentComparison,
		terms: []term{
			kw(0.8, "compare"), kw(0.8, "comparison"), word(0.8, "vs"), kw(0.8, "versus"),
			kw(0.8, "difference"), kw(0.8, "better"), kw(0.8, "which"),
			kw(0.4, "than"), kw(0.4, "against"), word(0.4, "or"), kw(0.4, "between"),
		},
		compareBoost: 0.3,
	},
	{
		intent: pkg.IntentPricing,
		terms: []term{
			kw(0.8, "price"), kw(0.8, "cost"), kw(0.8, "how much"), kw(0.8, "expensive"),
			kw(0.8, "cheap"), kw(0.8, "budget"), kw(0.8, "afford"),
			kw(0.5, "$"), kw(0.5, "dollar"), kw(0.5, "thousand"), kw(0.5, "payment"),
		},
	},
	{
		intent: pkg.IntentCart,
		terms: []term{
			kw(0.8, "cart"), kw(0.8, "shopping"), kw(0.8, "checkout"),
			kw(0.8, "purchase"), kw(0.8, "buy"), kw(0.8, "selected"),
		},
		cartBoost: 0.4,
	},
	{
		intent: pkg.IntentPersonal,
		terms: []term{
			kw(0.7, "my"), kw(0.7, "account"), kw(0.7, "profile"),
			kw(0.7, "history"), kw(0.7, "purchase"),
		},
		authBoost: 0.3,
	},
	{
		intent: pkg.IntentRecommendation,
		terms: []term{
			kw(0.8, "recommend"), kw(0.8, "suggestion"), kw(0.8, "best"),
			kw(0.8, "top"), kw(0.8, "popular"), kw(0.8, "should i"),
			kw(0.5, "need"), kw(0.5, "looking for"), kw(0.5, "want"),
			kw(0.5, "family"), kw(0.5, "commute"),
		},
	},
}
