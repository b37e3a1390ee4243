package respond

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dealerbot/internal/config"
	"dealerbot/pkg"
)

func TestCartSummary(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	rc := Context{
		Snapshot: pkg.Snapshot{
			CartItems: []pkg.CartItem{
				{Brand: "BMW", Model: "X5", Shape: "SUV", Price: 87000, Quantity: 1},
			},
		},
	}

	reply := r.Cart("what's in my cart", rc)
	assert.Contains(t, reply, "1 item in your cart")
	assert.Contains(t, reply, "BMW X5")
	assert.Contains(t, reply, "$87,000")
	assert.Contains(t, reply, "checkout")
}

func TestCartQuantityWeightedTotal(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	rc := Context{
		Snapshot: pkg.Snapshot{
			CartItems: []pkg.CartItem{
				{Brand: "Honda", Model: "Civic", Shape: "Sedan", Price: 24900, Quantity: 2},
				{Brand: "Toyota", Model: "RAV4", Shape: "SUV", Price: 32500, Quantity: 1},
			},
		},
	}

	reply := r.Cart("show my cart", rc)
	assert.Contains(t, reply, "3 items")
	assert.Contains(t, reply, "$82,300")
}

func TestCartEmpty(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	reply := r.Cart("my cart", Context{})
	assert.Contains(t, reply, "cart is currently empty")
}

func TestComparisonListsItems(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	rc := Context{
		Snapshot: pkg.Snapshot{
			CompareItems: []pkg.Vehicle{
				{Brand: "Toyota", Model: "RAV4", Price: 32500},
				{Brand: "BMW", Model: "X5", Price: 68500},
			},
		},
	}

	reply := r.Comparison("compare these", rc)
	assert.Contains(t, reply, "2 vehicles in your comparison list")
	assert.Contains(t, reply, "Toyota RAV4, BMW X5")

	reply = r.Comparison("how do i compare cars", Context{})
	assert.Contains(t, reply, "comparison tool")
}

func TestPricingUsesInventoryBounds(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	rc := Context{
		Snapshot: pkg.Snapshot{Vehicles: []pkg.Vehicle{
			{Brand: "Chevrolet", Model: "Malibu", Price: 21700},
			{Brand: "BMW", Model: "X5", Price: 68500},
		}},
	}

	reply := r.Pricing("what fits my budget", rc)
	assert.Contains(t, reply, "$21,700")
	assert.Contains(t, reply, "$68,500")

	// No inventory yet still answers, just without numbers.
	reply = r.Pricing("what can i afford", Context{})
	assert.NotContains(t, reply, "$")
}

func TestDealershipBranches(t *testing.T) {
	r := NewResponder(config.Default().Loan)

	tests := []struct {
		message string
		want    string
	}{
		{"what are your hours", "Monday-Friday"},
		{"how do i contact you", "(555) 123-4567"},
		{"is there a warranty", "warranties"},
		{"can i schedule a test drive", "test drive"},
		{"where are you", "dealership"},
	}
	for _, tt := range tests {
		if got := r.Dealership(tt.message); !assert.Contains(t, got, tt.want) {
			t.Logf("message %q", tt.message)
		}
	}
}

func TestPersonalRequiresLogin(t *testing.T) {
	r := NewResponder(config.Default().Loan)

	reply := r.Personal("show my account", Context{})
	assert.Contains(t, reply, "log in")

	rc := Context{Snapshot: pkg.Snapshot{User: &pkg.User{ID: "u1", Name: "Dana"}}}
	reply = r.Personal("show my account", rc)
	assert.Contains(t, reply, "Welcome back, Dana")
}

func TestUserDisplayNameFallsBackToEmail(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	rc := Context{Snapshot: pkg.Snapshot{User: &pkg.User{ID: "u2", Email: "dana@example.com"}}}

	reply := r.Personal("my profile", rc)
	assert.Contains(t, reply, "dana@example.com")
}
