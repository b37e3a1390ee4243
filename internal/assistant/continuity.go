package assistant

import (
	"fmt"
	"strings"

	"dealerbot/internal/respond"
	"dealerbot/pkg"
)

// followUpMarkers are linguistic cues that an utterance continues the
// previous topic rather than opening a new one.
var followUpMarkers = []string{
	"what about", "how about", "and", "also", "too", "as well",
	"what else", "any other", "more", "different", "similar",
	"compare", "versus", "vs", "difference", "better", "worse",
}

func isFollowUp(message string) bool {
	for _, marker := range followUpMarkers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}

// augment appends a context-linking clause to the reply when the
// previous topic pairs with the newly classified one. Only two
// pairings fire: vehicle→vehicle and loan→pricing; everything else is
// a no-op.
func augment(reply string, previous, current pkg.Intent, rc respond.Context) string {
	if previous == pkg.IntentVehicle && current == pkg.IntentVehicle && rc.Prefs.PreferredShape != "" {
		clause := fmt.Sprintf(" Since you're interested in %ss, ", rc.Prefs.PreferredShape)
		switch {
		case len(rc.Snapshot.CartItems) > 0:
			clause += "you might want to check out our comparison tool to see how your cart items stack up against other options. "
		case len(rc.Snapshot.CompareItems) > 0:
			clause += "you can add more vehicles to your comparison list to get a better view of your options. "
		default:
			clause += "you can add vehicles to your comparison list or cart to keep track of your favorites. "
		}
		return reply + clause
	}

	if previous == pkg.IntentLoan && current == pkg.IntentPricing {
		return reply + " You can use our loan calculator to see how different down payments and terms affect your monthly payments. "
	}

	return reply
}
