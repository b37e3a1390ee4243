package inventory

import (
	"strings"

	"dealerbot/pkg"
)

// Sample returns the built-in demo catalog used when no live
// inventory endpoint backs the assistant.
func Sample() []pkg.Vehicle {
	return []pkg.Vehicle{
		{
			Brand:       "Toyota",
			Model:       "RAV4",
			Shape:       "SUV",
			Price:       32500,
			Description: "Compact SUV with all-wheel drive",
			NewVehicle:  true,
		},
		{
			Brand:       "Honda",
			Model:       "Civic",
			Shape:       "Sedan",
			Price:       24900,
			Description: "Reliable daily commuter sedan",
			NewVehicle:  true,
		},
		{
			Brand:       "Ford",
			Model:       "F-150",
			Shape:       "Truck",
			Price:       45200,
			Description: "Full-size pickup for work and hauling",
			NewVehicle:  true,
		},
		{
			Brand:       "Tesla",
			Model:       "Model 3",
			Shape:       "Sedan",
			Price:       42000,
			Description: "Electric sedan with long range",
			NewVehicle:  true,
		},
		{
			Brand:       "Toyota",
			Model:       "Prius",
			Shape:       "Hatchback",
			Price:       28300,
			Description: "Hybrid hatchback with excellent fuel economy",
			NewVehicle:  false,
		},
		{
			Brand:       "BMW",
			Model:       "X5",
			Shape:       "SUV",
			Price:       68500,
			Description: "Luxury midsize SUV",
			NewVehicle:  true,
		},
		{
			Brand:       "Honda",
			Model:       "Odyssey",
			Shape:       "Minivan",
			Price:       38900,
			Description: "Family minivan with three rows",
			NewVehicle:  false,
			Accident:    true,
		},
		{
			Brand:       "Chevrolet",
			Model:       "Malibu",
			Shape:       "Sedan",
			Price:       21700,
			Description: "Affordable midsize sedan",
			NewVehicle:  false,
		},
	}
}

// Search filters vehicles by a case-insensitive substring match over
// brand, model and description. An empty query returns everything.
func Search(vehicles []pkg.Vehicle, query string) []pkg.Vehicle {
	if query == "" {
		return vehicles
	}

	var results []pkg.Vehicle
	q := strings.ToLower(query)
	for _, v := range vehicles {
		if strings.Contains(strings.ToLower(v.Brand), q) ||
			strings.Contains(strings.ToLower(v.Model), q) ||
			strings.Contains(strings.ToLower(v.Description), q) {
			results = append(results, v)
		}
	}
	return results
}
