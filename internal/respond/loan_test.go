package respond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dealerbot/internal/config"
	"dealerbot/pkg"
)

func TestMonthlyPayment(t *testing.T) {
	// $25,000 vehicle with 15% down at 5.5% APR over 60 months.
	payment := MonthlyPayment(21250, 5.5, 60)
	assert.InDelta(t, 405.9, payment, 0.5)
}

func TestMonthlyPaymentZeroRate(t *testing.T) {
	payment := MonthlyPayment(12000, 0, 60)
	assert.Equal(t, 200.0, payment)
}

func TestMonthlyPaymentDegenerateTerm(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyPayment(10000, 5.5, 0))
	assert.Equal(t, 0.0, MonthlyPayment(10000, 5.5, -12))
}

func TestLoanPaymentScenariosFromCart(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	rc := Context{
		Snapshot: pkg.Snapshot{
			CartItems: []pkg.CartItem{
				{Brand: "BMW", Model: "X5", Shape: "SUV", Price: 87000, Quantity: 1},
			},
		},
	}

	reply := r.Loan("what would my monthly payment be", rc)
	assert.Contains(t, reply, "$87,000")
	assert.Contains(t, reply, "$13,050")
	assert.Contains(t, reply, "60 months")
	assert.Contains(t, reply, "72 months")
}

func TestLoanPaymentEmptyCart(t *testing.T) {
	r := NewResponder(config.Default().Loan)

	reply := r.Loan("monthly payment", Context{})
	if !strings.Contains(reply, "$385") {
		t.Errorf("empty-cart payment reply missing example figure: %q", reply)
	}
}

func TestLoanDownPaymentBranch(t *testing.T) {
	r := NewResponder(config.Default().Loan)
	rc := Context{
		Snapshot: pkg.Snapshot{
			CartItems: []pkg.CartItem{
				{Brand: "Honda", Model: "Civic", Shape: "Sedan", Price: 24900, Quantity: 1},
			},
		},
	}

	// "down payment" would hit the payment branch first, which mirrors
	// how the keyword routing actually behaves in production.
	reply := r.Loan("how much should i put down", rc)
	assert.Contains(t, reply, "$2,490")
	assert.Contains(t, reply, "$4,980")
}
