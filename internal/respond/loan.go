package respond

import (
	"fmt"
	"math"
	"strings"
)

// MonthlyPayment computes the standard amortized payment
// M = P*r*(1+r)^n / ((1+r)^n - 1) where r is the monthly rate.
// A zero rate degenerates to straight division.
func MonthlyPayment(principal float64, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 100 / 12
	if r == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+r, float64(months))
	return principal * r * factor / (factor - 1)
}

// Loan answers financing questions. With a non-empty cart the payment
// branch works two illustrative scenarios from the cart total; the
// other branches are static guidance.
func (r *Responder) Loan(message string, rc Context) string {
	cart := rc.Snapshot.CartItems

	if containsAny(message, "monthly payment", "payment") {
		if len(cart) == 0 {
			return "I can calculate exact payments for any vehicle! Our rates start at 3.9% APR. " +
				"Typical payment for a $25,000 car (15% down, 60 months): ~$385/month. " +
				"Add vehicles to your cart for personalized estimates!"
		}

		total := rc.Snapshot.CartTotal()
		down := float64(total) * r.loan.DownPaymentRate
		principal := float64(total) - down

		var b strings.Builder
		fmt.Fprintf(&b, "For your cart total of %s: ", usd(total))
		fmt.Fprintf(&b, "Estimated payments (with %s down, %.1f%% APR): ", usd(int(math.Round(down))), r.loan.APR)
		scenarios := make([]string, 0, len(r.loan.TermsMonths))
		for _, term := range r.loan.TermsMonths {
			payment := MonthlyPayment(principal, r.loan.APR, term)
			scenarios = append(scenarios, fmt.Sprintf("%d months = %s/month", term, usd(int(math.Round(payment)))))
		}
		b.WriteString(strings.Join(scenarios, ", "))
		b.WriteString(". Rates starting from 3.9% APR with good credit!")
		return b.String()
	}

	if containsAny(message, "down payment", "down") {
		if len(cart) > 0 {
			total := rc.Snapshot.CartTotal()
			low := int(math.Round(float64(total) * 0.1))
			high := int(math.Round(float64(total) * 0.2))
			return fmt.Sprintf("For your cart (%s): Minimum down payment could be as low as %s (10%%), recommended %s (20%%) for better rates. Lower down = higher monthly payments.",
				usd(total), usd(low), usd(high))
		}
		return "Down payments typically range from 10-20%. Higher down payment = lower monthly payments and better interest rates. We're flexible with down payment amounts!"
	}

	if containsAny(message, "credit", "score") {
		return "We work with all credit types! Excellent credit (720+): 3.9% APR. Good credit (650+): 5.9% APR. Fair credit (580+): 8.9% APR. Poor credit: we have special programs! Our finance team will find you the best rate."
	}

	if containsAny(message, "rate", "interest", "apr") {
		return "Current rates: 3.9% APR (excellent credit), 5.9% APR (good credit), up to 12.9% APR (all credit types accepted). Rate depends on credit score, loan term, and down payment. Pre-approval available!"
	}

	return "We offer competitive financing: 3.9%-12.9% APR, 36-84 month terms, flexible down payments. We work with all credit types and offer pre-approval! Want a payment estimate?"
}
