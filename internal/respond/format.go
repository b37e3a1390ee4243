package respond

import (
	"strings"

	"dealerbot/pkg"

	"github.com/dustin/go-humanize"
)

// usd formats a dollar amount with thousands separators.
func usd(amount int) string {
	return "$" + humanize.Comma(int64(amount))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func containsAny(message string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}

// examples renders up to limit vehicles as "Brand Model ($price)".
func examples(vehicles []pkg.Vehicle, limit int) []string {
	if len(vehicles) > limit {
		vehicles = vehicles[:limit]
	}
	out := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v.Brand+" "+v.Model+" ("+usd(v.Price)+")")
	}
	return out
}

// priceBounds returns the min and max price of a vehicle set.
func priceBounds(vehicles []pkg.Vehicle) (min, max int, ok bool) {
	if len(vehicles) == 0 {
		return 0, 0, false
	}
	min, max = vehicles[0].Price, vehicles[0].Price
	for _, v := range vehicles[1:] {
		if v.Price < min {
			min = v.Price
		}
		if v.Price > max {
			max = v.Price
		}
	}
	return min, max, true
}

func cheapestPrice(vehicles []pkg.Vehicle) int {
	min, _, _ := priceBounds(vehicles)
	return min
}

func filterShape(vehicles []pkg.Vehicle, shape string) []pkg.Vehicle {
	var out []pkg.Vehicle
	for _, v := range vehicles {
		if v.Shape == shape {
			out = append(out, v)
		}
	}
	return out
}

func filterBrand(vehicles []pkg.Vehicle, brand string) []pkg.Vehicle {
	var out []pkg.Vehicle
	for _, v := range vehicles {
		if v.Brand == brand {
			out = append(out, v)
		}
	}
	return out
}

func filterMaxPrice(vehicles []pkg.Vehicle, budget int) []pkg.Vehicle {
	var out []pkg.Vehicle
	for _, v := range vehicles {
		if v.Price <= budget {
			out = append(out, v)
		}
	}
	return out
}

// matchBrand finds the first known brand mentioned in the message,
// case-insensitively.
func matchBrand(message string, brands []string) string {
	for _, brand := range brands {
		if strings.Contains(message, strings.ToLower(brand)) {
			return brand
		}
	}
	return ""
}
