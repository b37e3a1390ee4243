package pkg

import (
	"time"
)

// Core types shared between the assistant components.

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Intent is the classified purpose of a user utterance, drawn from a
// fixed closed set. IntentGeneral is the fallback when no category
// clears the confidence threshold.
type Intent string

const (
	IntentHelp           Intent = "help_query"
	IntentVehicle        Intent = "vehicle_query"
	IntentLoan           Intent = "loan_query"
	IntentDealership     Intent = "dealership_query"
	IntentComparison     Intent = "comparison_query"
	IntentPricing        Intent = "pricing_query"
	IntentCart           Intent = "cart_query"
	IntentPersonal       Intent = "personal_query"
	IntentRecommendation Intent = "recommendation_query"
	IntentGeneral        Intent = "general"
)

// ConversationTurn is a single message in the conversation history.
// Turns are immutable once appended; ordering is insertion order.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// User is the authenticated customer, when one exists.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName prefers the profile name over the login email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Vehicle is a single inventory record. Numeric fields are assumed
// present and well-formed on inventory records.
type Vehicle struct {
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Shape       string `json:"shape"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	NewVehicle  bool   `json:"new_vehicle"`
	Accident    bool   `json:"accident"`
}

// CartItem is a vehicle placed in the shopping cart with a quantity.
type CartItem struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Shape    string `json:"shape"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// Snapshot is a point-in-time copy of the host application's state,
// supplied by the UI layer on every turn. A nil User means logged out;
// nil slices are treated as empty.
type Snapshot struct {
	User         *User      `json:"user,omitempty"`
	CartItems    []CartItem `json:"cart_items"`
	CompareItems []Vehicle  `json:"compare_items"`
	Vehicles     []Vehicle  `json:"vehicles"`
}

// CartTotal is the quantity-weighted sum of cart item prices.
func (s Snapshot) CartTotal() int {
	total := 0
	for _, item := range s.CartItems {
		total += item.Price * item.Quantity
	}
	return total
}

// Preferences are inferred from the conversation and updated after
// every classified turn. Last write wins; no averaging.
type Preferences struct {
	PreferredShape string   `json:"preferred_shape,omitempty"`
	PreferredFuel  string   `json:"preferred_fuel,omitempty"`
	BudgetRange    string   `json:"budget_range,omitempty"`
	RecentTopics   []Intent `json:"recent_topics,omitempty"` // most-recent-first, capped at 5
}

// PriceStats summarizes the price distribution of a vehicle set.
type PriceStats struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Average int `json:"average"`
}

// InventoryFacts are aggregates recomputed whenever a snapshot carries
// a non-empty inventory. Pure function of the vehicle list.
type InventoryFacts struct {
	Brands          []string   `json:"brands"`
	PriceRange      PriceStats `json:"price_range"`
	PopularVehicles []Vehicle  `json:"popular_vehicles"` // 5 lowest-priced
}

// QuickAction is a suggested follow-up shown alongside a reply.
type QuickAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}
