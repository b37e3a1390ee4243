package intent

import (
	"strings"
	"unicode"

	"dealerbot/pkg"
)

// Signals carries the snapshot-derived state that feeds the
// contextual score boosts.
type Signals struct {
	CartCount     int
	CompareCount  int
	Authenticated bool
}

// Classifier maps a user utterance to exactly one intent by scoring
// it against per-intent keyword tables. Classification is a pure
// function of the utterance and the signals; running it twice on the
// same inputs yields the same intent.
type Classifier struct {
	threshold float64
	specs     []intentSpec
}

// NewClassifier builds a classifier with the default keyword tables.
// An intent is only returned when its score exceeds threshold;
// otherwise IntentGeneral wins.
func NewClassifier(threshold float64) *Classifier {
	return &Classifier{
		threshold: threshold,
		specs:     defaultSpecs,
	}
}

// Classify lower-cases the message, scores every non-general intent
// and returns the best one above the threshold. Ties break in table
// declaration order.
func (c *Classifier) Classify(message string, sig Signals) pkg.Intent {
	message = strings.ToLower(message)

	best := pkg.IntentGeneral
	bestScore := 0.0
	for _, spec := range c.specs {
		score := spec.score(message, sig)
		if score > bestScore {
			best = spec.intent
			bestScore = score
		}
	}

	if bestScore > c.threshold {
		return best
	}
	return pkg.IntentGeneral
}

// Scores returns the raw per-intent scores, mostly for debugging and
// tests.
func (c *Classifier) Scores(message string, sig Signals) map[pkg.Intent]float64 {
	message = strings.ToLower(message)
	scores := make(map[pkg.Intent]float64, len(c.specs))
	for _, spec := range c.specs {
		scores[spec.intent] = spec.score(message, sig)
	}
	return scores
}

func (s intentSpec) score(message string, sig Signals) float64 {
	score := 0.0
	for _, t := range s.terms {
		for _, w := range t.words {
			if t.matches(message, w) {
				score += t.weight
				break // a term fires at most once, however many synonyms hit
			}
		}
	}

	if sig.CartCount > 0 {
		score += s.cartBoost
	}
	if sig.CompareCount > 0 {
		score += s.compareBoost
	}
	if sig.Authenticated {
		score += s.authBoost
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func (t term) matches(message, w string) bool {
	if t.wholeWord {
		return containsWord(message, w)
	}
	return strings.Contains(message, w)
}

// containsWord reports whether w occurs in the message as a standalone
// token. Tokens split on anything that is not a letter or digit.
func containsWord(message, w string) bool {
	for _, token := range strings.FieldsFunc(message, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if token == w {
			return true
		}
	}
	return false
}
