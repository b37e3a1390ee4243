package respond

import (
	"fmt"
	"sort"
	"strings"

	"dealerbot/pkg"
)

// Recommendation picks up to three vehicles: preferred-shape matches
// first (at most two), then the lowest-priced remaining candidates as
// backfill. An optional budget mentioned in the message filters the
// candidate pool before selection.
func (r *Responder) Recommendation(message string, rc Context) string {
	vehicles := rc.Snapshot.Vehicles

	if containsAny(message, "recommend", "suggestion", "best") {
		if len(vehicles) == 0 {
			return "I'd love to recommend vehicles, but our inventory data isn't available right now. Please check back soon or browse our catalog directly!"
		}

		budget, hasBudget := ParseBudget(message)
		candidates := vehicles
		if hasBudget {
			candidates = filterMaxPrice(vehicles, budget)
			if len(candidates) == 0 {
				return fmt.Sprintf("No vehicles available under %s. Our most affordable option starts at %s. Would you like to see vehicles in a higher price range?",
					usd(budget), usd(cheapestPrice(vehicles)))
			}
		}

		var picks []pkg.Vehicle
		preferred := rc.Prefs.PreferredShape
		if preferred != "" {
			matches := filterShape(candidates, preferred)
			if len(matches) > 2 {
				matches = matches[:2]
			}
			picks = append(picks, matches...)
		}

		if len(picks) < 3 {
			remaining := make([]pkg.Vehicle, 0, len(candidates))
			for _, v := range candidates {
				if !containsVehicle(picks, v) {
					remaining = append(remaining, v)
				}
			}
			sort.SliceStable(remaining, func(i, j int) bool { return remaining[i].Price < remaining[j].Price })
			if len(remaining) > 3-len(picks) {
				remaining = remaining[:3-len(picks)]
			}
			picks = append(picks, remaining...)
		}

		if len(picks) == 0 {
			return "Let me understand your needs better. What's most important: budget, vehicle type, fuel efficiency, or specific features?"
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Here are my top %d recommendations", len(picks))
		if hasBudget {
			fmt.Fprintf(&b, " under %s", usd(budget))
		}
		b.WriteString(": ")

		details := make([]string, len(picks))
		for i, v := range picks {
			detail := fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, usd(v.Price))
			if v.NewVehicle {
				detail += " - New"
			}
			details[i] = detail
		}
		b.WriteString(strings.Join(details, ", "))
		b.WriteString(". ")

		if preferred != "" && anyShape(picks, preferred) {
			fmt.Fprintf(&b, "I included %ss since you've shown interest in them. ", strings.ToLower(preferred))
		}

		switch {
		case len(rc.Snapshot.CartItems) > 0:
			b.WriteString("Want to compare these with items in your cart? ")
		case len(rc.Snapshot.CompareItems) > 0:
			b.WriteString("Add any to your comparison list? ")
		default:
			b.WriteString("Would you like detailed specs on any of these? ")
		}

		return b.String()
	}

	if containsAny(message, "family", "kids") {
		var family []pkg.Vehicle
		for _, v := range vehicles {
			if v.Shape == "SUV" || v.Shape == "Minivan" {
				family = append(family, v)
			}
		}
		if len(family) > 0 {
			return fmt.Sprintf("For family vehicles, I'd recommend: %s. These offer great space, safety features, and comfort for family trips. Would you like to learn more about any of these?",
				strings.Join(examples(family, 3), ", "))
		}
	}

	if containsAny(message, "commute", "work", "daily") {
		var commuters []pkg.Vehicle
		for _, v := range vehicles {
			if v.Shape == "Sedan" || v.Shape == "Hatchback" {
				commuters = append(commuters, v)
			}
		}
		if len(commuters) > 0 {
			return fmt.Sprintf("For daily commuting, I'd recommend: %s. These offer great fuel efficiency and comfort for daily driving. Would you like to learn more about any of these?",
				strings.Join(examples(commuters, 3), ", "))
		}
	}

	return "I can help you find the perfect vehicle! What are you looking for in a car?"
}

func containsVehicle(list []pkg.Vehicle, v pkg.Vehicle) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func anyShape(list []pkg.Vehicle, shape string) bool {
	for _, v := range list {
		if v.Shape == shape {
			return true
		}
	}
	return false
}
