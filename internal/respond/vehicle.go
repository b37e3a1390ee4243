package respond

import (
	"fmt"
	"strings"

	"dealerbot/pkg"
)

// Vehicle answers inventory questions. Branch order matters: shape
// branches win over brand matching, which wins over the compound path
// and the budget-sentiment fallbacks.
func (r *Responder) Vehicle(message string, rc Context) string {
	vehicles := rc.Snapshot.Vehicles

	switch {
	case containsAny(message, "suv", "sport utility"):
		return r.suvReply(message, rc)
	case containsAny(message, "sedan", "car"):
		return r.sedanReply(message, rc)
	case containsAny(message, "truck", "pickup"):
		return r.truckReply(message, rc)
	case containsAny(message, "electric", "ev", "hybrid"):
		return r.ecoReply(message, rc)
	}

	if brand := matchBrand(message, rc.Facts.Brands); brand != "" {
		return r.brandReply(message, brand, rc)
	}

	if reply, ok := r.Compound(message, rc); ok {
		return reply
	}

	if containsAny(message, "budget", "affordable", "cheap") {
		affordable := filterMaxPrice(vehicles, 29999)
		if len(affordable) > 0 {
			return fmt.Sprintf("For budget-friendly options, I'd recommend: %s. These are great value vehicles under $30,000. Would you like to learn more about any of these?",
				strings.Join(examples(affordable, 3), ", "))
		}
	}

	if containsAny(message, "luxury", "premium", "expensive") {
		var luxury []pkg.Vehicle
		for _, v := range vehicles {
			if v.Price > 50000 {
				luxury = append(luxury, v)
			}
		}
		if len(luxury) > 0 {
			return fmt.Sprintf("For luxury options, I'd recommend: %s. These premium vehicles offer exceptional features and performance. Would you like to learn more about any of these?",
				strings.Join(examples(luxury, 3), ", "))
		}
	}

	return "We have a diverse inventory of vehicles. You can browse our catalog to see all available makes and models, or let me know what specific features you're looking for and I can help narrow down your options."
}

func (r *Responder) suvReply(message string, rc Context) string {
	suvs := filterShape(rc.Snapshot.Vehicles, "SUV")
	if len(suvs) == 0 {
		return "We currently don't have SUVs in stock, but new inventory arrives weekly. Would you like me to help you find similar crossover vehicles or notify you when SUVs become available?"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "We have %d SUVs available! ", len(suvs))
	if min, max, ok := priceBounds(suvs); ok {
		fmt.Fprintf(&b, "Pricing: %s - %s. ", usd(min), usd(max))
	}
	if top := examples(suvs, 3); len(top) > 0 {
		fmt.Fprintf(&b, "Top options: %s. ", strings.Join(top, ", "))
	}
	b.WriteString(budgetClause(message, suvs, "SUV"))

	if rc.Prefs.PreferredShape == "SUV" {
		b.WriteString("Perfect choice - you've looked at SUVs before! ")
	}
	for _, item := range rc.Snapshot.CartItems {
		if item.Shape == "SUV" {
			b.WriteString("I see you have an SUV in your cart. Want to compare options? ")
			break
		}
	}

	b.WriteString("Would you like specific recommendations based on your needs?")
	return b.String()
}

func (r *Responder) sedanReply(message string, rc Context) string {
	sedans := filterShape(rc.Snapshot.Vehicles, "Sedan")
	if len(sedans) == 0 {
		return "We're currently out of sedans, but we expect new arrivals soon. Can I interest you in similar hatchbacks or compact cars?"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d sedans in stock! ", len(sedans))
	if min, max, ok := priceBounds(sedans); ok {
		fmt.Fprintf(&b, "Price range: %s - %s. ", usd(min), usd(max))
	}
	if top := examples(sedans, 3); len(top) > 0 {
		fmt.Fprintf(&b, "Featured models: %s. ", strings.Join(top, ", "))
	}
	if containsAny(message, "efficient", "mpg", "gas") {
		b.WriteString("Our sedans offer excellent fuel economy for daily commuting. ")
	}
	b.WriteString(budgetClause(message, sedans, "sedan"))

	if rc.Prefs.PreferredShape == "Sedan" {
		b.WriteString("Great - sedans are your preferred type! ")
	}

	b.WriteString("What features matter most: fuel efficiency, luxury, or value?")
	return b.String()
}

func (r *Responder) truckReply(message string, rc Context) string {
	trucks := filterShape(rc.Snapshot.Vehicles, "Truck")
	if len(trucks) == 0 {
		return "No trucks currently in stock, but we can order one or help you find a suitable SUV with similar hauling capacity."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d trucks available! ", len(trucks))
	if min, _, ok := priceBounds(trucks); ok {
		fmt.Fprintf(&b, "Starting from %s. ", usd(min))
	}
	if top := examples(trucks, 3); len(top) > 0 {
		fmt.Fprintf(&b, "Options: %s. ", strings.Join(top, ", "))
	}

	if containsAny(message, "work", "haul", "tow") {
		b.WriteString("Perfect for work and heavy-duty tasks. ")
	} else if containsAny(message, "family", "daily") {
		b.WriteString("Great for both family use and utility. ")
	}

	if rc.Prefs.PreferredShape == "Truck" {
		b.WriteString("Trucks are a smart choice! ")
	}

	b.WriteString("Need help choosing between cab sizes or bed lengths?")
	return b.String()
}

func (r *Responder) ecoReply(message string, rc Context) string {
	var evs, hybrids []pkg.Vehicle
	for _, v := range rc.Snapshot.Vehicles {
		desc := strings.ToLower(v.Description)
		if v.Brand == "Tesla" || strings.Contains(desc, "electric") || strings.Contains(desc, "hybrid") {
			evs = append(evs, v)
		}
		if strings.Contains(desc, "hybrid") {
			hybrids = append(hybrids, v)
		}
	}

	total := len(evs) + len(hybrids)
	if total == 0 {
		return "We don't currently have electric or hybrid vehicles in stock, but we can order them! Tesla and other EV manufacturers have new models arriving monthly."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d eco-friendly vehicles available! ", total)
	if len(evs) > 0 {
		fmt.Fprintf(&b, "Electric: %s. ", strings.Join(examples(evs, 2), ", "))
	}
	if len(hybrids) > 0 {
		fmt.Fprintf(&b, "Plus %d hybrid options. ", len(hybrids))
	}
	b.WriteString("Benefits: lower fuel costs, environmental impact, often tax incentives. ")

	if rc.Snapshot.User != nil {
		b.WriteString("As a registered customer, you may qualify for federal EV tax credits up to $7,500! ")
	}
	if containsAny(message, "range", "charge") {
		b.WriteString("Our EVs offer 250+ mile range with fast charging capability. ")
	}

	b.WriteString("Want details on charging options or specific models?")
	return b.String()
}

func (r *Responder) brandReply(message, brand string, rc Context) string {
	matches := filterBrand(rc.Snapshot.Vehicles, brand)
	if len(matches) == 0 {
		return fmt.Sprintf("We don't currently have %s vehicles in stock, but we can help you find similar alternatives or check when new %s inventory arrives.", brand, brand)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %s vehicles in stock! ", len(matches), brand)
	if min, max, ok := priceBounds(matches); ok {
		fmt.Fprintf(&b, "From %s to %s. ", usd(min), usd(max))
	}

	models := make([]string, 0, 3)
	for _, v := range matches {
		if len(models) == 3 {
			break
		}
		models = append(models, v.Model+" ("+usd(v.Price)+")")
	}
	if len(models) > 0 {
		fmt.Fprintf(&b, "Models: %s. ", strings.Join(models, ", "))
	}

	for _, v := range matches {
		if strings.Contains(message, strings.ToLower(v.Model)) {
			fmt.Fprintf(&b, "The %s is available for %s! ", v.Model, usd(v.Price))
			break
		}
	}

	inCart := false
	for _, item := range rc.Snapshot.CartItems {
		if item.Brand == brand {
			inCart = true
			break
		}
	}
	inCompare := false
	for _, v := range rc.Snapshot.CompareItems {
		if v.Brand == brand {
			inCompare = true
			break
		}
	}
	if inCart {
		fmt.Fprintf(&b, "You have a %s in your cart. Compare with others? ", brand)
	} else if inCompare {
		fmt.Fprintf(&b, "You're comparing %s vehicles. Good choice! ", brand)
	}

	b.WriteString("Need specific model details or want to see alternatives?")
	return b.String()
}

// budgetClause reports how many of the filtered set fit a budget
// mentioned in the message, or names the cheapest option when none do.
// Empty when no budget expression is present.
func budgetClause(message string, vehicles []pkg.Vehicle, label string) string {
	budget, ok := ParseBudget(message)
	if !ok {
		return ""
	}

	affordable := filterMaxPrice(vehicles, budget)
	if len(affordable) > 0 {
		return fmt.Sprintf("%d %ss fit your budget under %s. ", len(affordable), label, usd(budget))
	}
	return fmt.Sprintf("No %ss available under %s, but our most affordable %s starts at %s. ",
		label, usd(budget), label, usd(cheapestPrice(vehicles)))
}
