package respond

import (
	"fmt"
	"strings"
)

// Dealership answers hours, contact, warranty and test-drive
// questions from static content; it inspects no application state.
func (r *Responder) Dealership(message string) string {
	if containsAny(message, "hours", "open") {
		return "We're open Monday-Friday 9AM-8PM, Saturday 9AM-6PM, and Sunday 12PM-5PM. We're here to help you find your perfect vehicle!"
	}
	if containsAny(message, "contact", "phone", "call") {
		return "You can reach us at (555) 123-4567 during business hours, or email us at info@dealership.com. We're happy to answer any questions!"
	}
	if containsAny(message, "warranty", "service") {
		return "All our vehicles come with comprehensive warranties. New vehicles include manufacturer warranty, and used vehicles come with our certified pre-owned warranty. We also have a full-service department for maintenance and repairs."
	}
	if containsAny(message, "test drive", "drive") {
		return "Absolutely! We encourage test drives. You can schedule one by calling us or visiting our dealership. What vehicle are you interested in? We'll make sure it's ready for your test drive."
	}
	return "I'm here to help with any questions about our dealership, vehicles, financing, or services. What would you like to know more about?"
}

// Comparison reports the current compare list or explains the tool.
// The 4-item cap is enforced by the host UI, not here.
func (r *Responder) Comparison(_ string, rc Context) string {
	items := rc.Snapshot.CompareItems
	if len(items) == 0 {
		return "You can compare vehicles side by side using our comparison tool! Just add vehicles to your compare list from the catalog, then visit the compare page to see detailed differences in features, pricing, and specifications."
	}

	names := make([]string, len(items))
	for i, v := range items {
		names[i] = v.Brand + " " + v.Model
	}
	return fmt.Sprintf("You currently have %d vehicle%s in your comparison list: %s. You can view the detailed comparison on our compare page, or add more vehicles (up to 4 total) to compare side by side!",
		len(items), plural(len(items)), strings.Join(names, ", "))
}

// Pricing answers budget questions with the live inventory bounds
// when available.
func (r *Responder) Pricing(message string, rc Context) string {
	vehicles := rc.Snapshot.Vehicles

	if containsAny(message, "budget", "afford") {
		if min, max, ok := priceBounds(vehicles); ok {
			return fmt.Sprintf("We have vehicles at various price points to fit different budgets, ranging from %s to %s. Our finance team can help you find the right vehicle and payment plan. What's your target monthly payment or total budget?",
				usd(min), usd(max))
		}
		return "We have vehicles at various price points to fit different budgets. Our finance team can help you find the right vehicle and payment plan. What's your target monthly payment or total budget?"
	}

	if containsAny(message, "expensive", "cheap") {
		return "We offer vehicles across all price ranges, from affordable options to luxury models. Our goal is to find the perfect vehicle that fits both your needs and budget. What features are most important to you?"
	}

	return "Our pricing is competitive and transparent. You can view detailed pricing in our catalog, and we're happy to discuss financing options to make your purchase more affordable. Is there a specific vehicle you're interested in?"
}

// Cart reports the cart contents with a quantity-weighted total.
func (r *Responder) Cart(message string, rc Context) string {
	cart := rc.Snapshot.CartItems

	if containsAny(message, "cart", "shopping") {
		if len(cart) == 0 {
			return "Your cart is currently empty. Browse our catalog to find the perfect vehicle and add it to your cart!"
		}

		totalItems := 0
		names := make([]string, len(cart))
		for i, item := range cart {
			totalItems += item.Quantity
			names[i] = item.Brand + " " + item.Model
		}
		return fmt.Sprintf("You have %d item%s in your cart: %s. Total value: %s. Would you like to proceed to checkout or continue shopping?",
			totalItems, plural(totalItems), strings.Join(names, ", "), usd(rc.Snapshot.CartTotal()))
	}

	return "I can help you with your shopping cart! You can view your cart, proceed to checkout, or continue shopping. What would you like to do?"
}

// Personal answers account questions, keyed on the auth state.
func (r *Responder) Personal(message string, rc Context) string {
	user := rc.Snapshot.User

	if containsAny(message, "my", "account", "profile") {
		if user != nil {
			return fmt.Sprintf("Welcome back, %s! I can help you with your account, recent vehicles, or any questions about your purchases. What would you like to know?", user.DisplayName())
		}
		return "I'd be happy to help you with your account! Please log in first so I can provide personalized assistance with your vehicle preferences and purchase history."
	}

	return "I'm here to provide personalized assistance! If you log in, I can help you with your account, preferences, and purchase history."
}
