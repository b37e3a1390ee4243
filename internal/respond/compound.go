package respond

import (
	"fmt"
	"strings"

	"dealerbot/pkg"
)

var shapeKeywords = map[string]string{
	"suv":       "SUV",
	"sedan":     "Sedan",
	"truck":     "Truck",
	"hatchback": "Hatchback",
	"coupe":     "Coupe",
}

// Compound handles utterances carrying two or more simultaneous
// criteria: budget, body shape, brand, fuel efficiency, new/used.
// All detected filters apply conjunctively. With fewer than two
// criteria it reports ok=false and the caller falls through to the
// simpler single-criterion branches.
func (r *Responder) Compound(message string, rc Context) (string, bool) {
	vehicles := rc.Snapshot.Vehicles
	if len(vehicles) == 0 {
		return "", false
	}

	filtered := vehicles
	var criteria []string

	if budget, ok := ParseBudget(message); ok {
		filtered = filterMaxPrice(filtered, budget)
		criteria = append(criteria, "under "+usd(budget))
	}

	for _, keyword := range []string{"suv", "sedan", "truck", "hatchback", "coupe"} {
		if strings.Contains(message, keyword) {
			shape := shapeKeywords[keyword]
			filtered = filterShape(filtered, shape)
			criteria = append(criteria, strings.ToLower(shape))
			break
		}
	}

	if brand := matchBrand(message, rc.Facts.Brands); brand != "" {
		filtered = filterBrand(filtered, brand)
		criteria = append(criteria, brand)
	}

	if containsAny(message, "efficient", "mpg", "gas mileage") {
		// Sedans and hybrids stand in for fuel-efficient inventory.
		var efficient []pkg.Vehicle
		for _, v := range filtered {
			if v.Shape == "Sedan" || strings.Contains(strings.ToLower(v.Description), "hybrid") {
				efficient = append(efficient, v)
			}
		}
		filtered = efficient
		criteria = append(criteria, "fuel efficient")
	}

	if strings.Contains(message, "new") {
		var fresh []pkg.Vehicle
		for _, v := range filtered {
			if v.NewVehicle {
				fresh = append(fresh, v)
			}
		}
		filtered = fresh
		criteria = append(criteria, "new")
	} else if strings.Contains(message, "used") {
		var used []pkg.Vehicle
		for _, v := range filtered {
			if !v.NewVehicle {
				used = append(used, v)
			}
		}
		filtered = used
		criteria = append(criteria, "used")
	}

	if len(criteria) < 2 {
		return "", false
	}

	joined := strings.Join(criteria, ", ")
	if len(filtered) == 0 {
		return fmt.Sprintf("No vehicles match your criteria (%s). Would you like to adjust your requirements or see similar options?", joined), true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d vehicle%s matching \"%s\"! ", len(filtered), plural(len(filtered)), joined)
	if top := examples(filtered, 3); len(top) > 0 {
		fmt.Fprintf(&b, "Top matches: %s. ", strings.Join(top, ", "))
	}
	if len(filtered) > 3 {
		fmt.Fprintf(&b, "Plus %d more options. ", len(filtered)-3)
	}
	b.WriteString("Want detailed specs on any of these?")
	return b.String(), true
}
