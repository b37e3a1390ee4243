package respond

import (
	"fmt"
	"strings"

	"dealerbot/internal/config"
	"dealerbot/pkg"
)

// Context carries everything a generator may inspect for one turn:
// the application snapshot plus the store-derived preferences and
// inventory facts. Generators never mutate it.
type Context struct {
	Snapshot pkg.Snapshot
	Prefs    pkg.Preferences
	Facts    pkg.InventoryFacts
}

// Responder holds the per-intent response generators. Replies are
// plain strings; a generator never fails and never returns an empty
// reply.
type Responder struct {
	loan config.LoanConfig
}

func NewResponder(loan config.LoanConfig) *Responder {
	return &Responder{loan: loan}
}

// Respond dispatches to the generator for the classified intent.
// The message must already be lower-cased.
func (r *Responder) Respond(intent pkg.Intent, message string, rc Context) string {
	switch intent {
	case pkg.IntentHelp:
		return r.Help(message, rc)
	case pkg.IntentVehicle:
		return r.Vehicle(message, rc)
	case pkg.IntentLoan:
		return r.Loan(message, rc)
	case pkg.IntentDealership:
		return r.Dealership(message)
	case pkg.IntentComparison:
		return r.Comparison(message, rc)
	case pkg.IntentPricing:
		return r.Pricing(message, rc)
	case pkg.IntentCart:
		return r.Cart(message, rc)
	case pkg.IntentPersonal:
		return r.Personal(message, rc)
	case pkg.IntentRecommendation:
		return r.Recommendation(message, rc)
	default:
		return r.General(message, rc)
	}
}

// Help returns the fixed capability summary, personalized with login,
// cart and comparison facts. It never inspects the inventory.
func (r *Responder) Help(_ string, rc Context) string {
	var b strings.Builder

	b.WriteString("I'm here to help you navigate our car dealership! Here's what I can assist you with:\n\n")
	b.WriteString("Vehicle Information: ask about specific vehicles, brands, types (SUV, sedan, truck, electric), or get recommendations\n")
	b.WriteString("Pricing & Financing: pricing, loans, monthly payments, down payments, and credit options\n")
	b.WriteString("Dealership Services: hours, contact info, warranties, test drives, and services\n")
	b.WriteString("Vehicle Comparison: compare vehicles side by side\n")
	b.WriteString("Shopping Cart: manage your cart, view items, and proceed to checkout\n")

	b.WriteString("\nQuick actions available:\n")
	b.WriteString("- Browse our vehicle catalog\n")
	b.WriteString("- Use our loan calculator\n")
	b.WriteString("- Compare vehicles\n")
	b.WriteString("- View your cart\n")
	b.WriteString("- Contact us\n")

	if rc.Snapshot.User != nil {
		fmt.Fprintf(&b, "\nYour account: welcome back, %s! I can help with your account, preferences, and purchase history.\n", rc.Snapshot.User.DisplayName())
	}
	if n := len(rc.Snapshot.CartItems); n > 0 {
		fmt.Fprintf(&b, "\nYour cart: you have %d item%s in your cart. I can help you review or proceed to checkout.\n", n, plural(n))
	}
	if n := len(rc.Snapshot.CompareItems); n > 0 {
		fmt.Fprintf(&b, "\nYour comparison: you have %d vehicle%s in your comparison list.\n", n, plural(n))
	}

	b.WriteString("\nExample questions you can ask:\n")
	b.WriteString("- \"Show me SUVs\" or \"What sedans do you have?\"\n")
	b.WriteString("- \"How much are monthly payments?\" or \"What's the down payment?\"\n")
	b.WriteString("- \"What are your hours?\" or \"How do I schedule a test drive?\"\n")
	b.WriteString("- \"Compare these vehicles\" or \"Which is better?\"\n")
	b.WriteString("- \"What's in my cart?\" or \"Help me find a family car\"\n")
	b.WriteString("\nJust type your question naturally, and I'll help you find what you're looking for!")

	return b.String()
}

var greetingWords = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}
var farewellWords = []string{"bye", "goodbye", "see you", "thanks", "thank you"}

// General handles everything below the confidence threshold:
// greetings, farewells, and a capability-listing fallback.
func (r *Responder) General(message string, rc Context) string {
	if containsAny(message, greetingWords...) {
		var b strings.Builder
		b.WriteString("Hello! I'm your car dealership assistant. ")
		if rc.Snapshot.User != nil {
			fmt.Fprintf(&b, "Welcome back, %s! ", rc.Snapshot.User.DisplayName())
		}
		if n := len(rc.Snapshot.CartItems); n > 0 {
			fmt.Fprintf(&b, "I see you have %d item%s in your cart. ", n, plural(n))
		}
		if n := len(rc.Snapshot.CompareItems); n > 0 {
			fmt.Fprintf(&b, "You also have %d vehicle%s in your comparison list. ", n, plural(n))
		}
		b.WriteString("I can help you with vehicle information, financing options, pricing, and general questions. What would you like to know?")
		return b.String()
	}

	if containsAny(message, farewellWords...) {
		return "You're welcome! Feel free to reach out if you have more questions. I'm here to help you find your perfect vehicle!"
	}

	return "I'm not sure I understand. I can help you with: vehicle information, financing options, pricing, comparing vehicles, dealership services, and general questions. Could you please rephrase your question?"
}
