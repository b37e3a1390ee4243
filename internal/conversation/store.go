package conversation

import (
	"context"
	"sort"
	"strings"
	"time"

	"dealerbot/internal/logger"
	"dealerbot/pkg"

	"github.com/google/uuid"
)

// defaultTopicLimit caps the recent-topic list kept in preferences.
const defaultTopicLimit = 5

// Store is the single source of truth for conversational state: the
// turn history, the inferred preferences, the last classified topic
// and the most recent application snapshot with its derived facts.
//
// A Store belongs to exactly one session. It performs no locking;
// concurrent sessions must each own their own instance.
type Store struct {
	sessionID  string
	turns      []pkg.ConversationTurn
	prefs      pkg.Preferences
	topic      pkg.Intent
	snapshot   pkg.Snapshot
	facts      pkg.InventoryFacts
	topicLimit int
	repo       Repository
}

// NewStore creates an empty store with a fresh session identifier.
func NewStore() *Store {
	return &Store{
		sessionID:  uuid.NewString(),
		topicLimit: defaultTopicLimit,
	}
}

// NewPersistentStore creates a store that mirrors every recorded turn
// into repo. Persistence failures are logged and otherwise ignored.
func NewPersistentStore(repo Repository) *Store {
	s := NewStore()
	s.repo = repo
	return s
}

func (s *Store) SessionID() string {
	return s.sessionID
}

// SetTopicLimit overrides the recent-topic cap. Non-positive values
// are ignored.
func (s *Store) SetTopicLimit(limit int) {
	if limit > 0 {
		s.topicLimit = limit
	}
}

// RecordTurn appends a turn to the history. History grows
// monotonically; only bounded windows of it are ever read back.
func (s *Store) RecordTurn(role pkg.Role, text string) {
	turn := pkg.ConversationTurn{
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
	s.turns = append(s.turns, turn)

	if s.repo != nil {
		if err := s.repo.Append(context.Background(), s.sessionID, turn); err != nil {
			logger.Warn().Err(err).Str("session_id", s.sessionID).Msg("failed to persist conversation turn")
		}
	}
}

// History returns the full turn sequence.
func (s *Store) History() []pkg.ConversationTurn {
	return s.turns
}

// IngestSnapshot replaces the stored application snapshot wholesale.
// Derived inventory facts are recomputed only when the snapshot
// carries vehicles; otherwise the previous facts are kept, since a
// stale aggregate beats an empty one when the inventory fetch failed.
func (s *Store) IngestSnapshot(snap pkg.Snapshot) {
	s.snapshot = snap
	if len(snap.Vehicles) > 0 {
		s.facts = ComputeFacts(snap.Vehicles)
	}
}

func (s *Store) Snapshot() pkg.Snapshot {
	return s.snapshot
}

func (s *Store) Facts() pkg.InventoryFacts {
	return s.facts
}

func (s *Store) Preferences() pkg.Preferences {
	return s.prefs
}

// CurrentTopic returns the intent recorded by the previous turn's
// UpdatePreferences call. During a turn this is the one-turn-lagged
// topic the continuity layer keys off; callers must read it before
// UpdatePreferences overwrites it.
func (s *Store) CurrentTopic() pkg.Intent {
	return s.topic
}

// UpdatePreferences inspects the lower-cased utterance for shape, fuel
// and budget-sentiment keywords, records the classified intent as the
// current topic and pushes it onto the recent-topic list.
func (s *Store) UpdatePreferences(intent pkg.Intent, message string) {
	s.topic = intent

	if intent == pkg.IntentVehicle {
		switch {
		case strings.Contains(message, "suv"):
			s.prefs.PreferredShape = "SUV"
		case strings.Contains(message, "sedan"):
			s.prefs.PreferredShape = "Sedan"
		case strings.Contains(message, "truck"):
			s.prefs.PreferredShape = "Truck"
		}
		if strings.Contains(message, "electric") || strings.Contains(message, "ev") {
			s.prefs.PreferredFuel = "Electric"
		}
		if strings.Contains(message, "hybrid") {
			s.prefs.PreferredFuel = "Hybrid"
		}
	}

	if intent == pkg.IntentPricing {
		if strings.Contains(message, "budget") || strings.Contains(message, "affordable") {
			s.prefs.BudgetRange = "affordable"
		} else if strings.Contains(message, "luxury") || strings.Contains(message, "premium") {
			s.prefs.BudgetRange = "luxury"
		}
	}

	s.prefs.RecentTopics = append([]pkg.Intent{intent}, s.prefs.RecentTopics...)
	if len(s.prefs.RecentTopics) > s.topicLimit {
		s.prefs.RecentTopics = s.prefs.RecentTopics[:s.topicLimit]
	}
}

// Summary renders the last windowSize turns as "role: text" lines.
func (s *Store) Summary(windowSize int) string {
	turns := s.turns
	if len(turns) > windowSize {
		turns = turns[len(turns)-windowSize:]
	}

	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines = append(lines, string(turn.Role)+": "+turn.Text)
	}
	return strings.Join(lines, "\n")
}

// PreferencesSummary renders the inferred preferences for display.
func (s *Store) PreferencesSummary() string {
	var parts []string
	if s.prefs.PreferredShape != "" {
		parts = append(parts, "Preferred vehicle type: "+s.prefs.PreferredShape)
	}
	if s.prefs.PreferredFuel != "" {
		parts = append(parts, "Preferred fuel type: "+s.prefs.PreferredFuel)
	}
	if s.prefs.BudgetRange != "" {
		parts = append(parts, "Budget preference: "+s.prefs.BudgetRange)
	}
	if len(s.prefs.RecentTopics) > 0 {
		topics := s.prefs.RecentTopics
		if len(topics) > 3 {
			topics = topics[:3]
		}
		names := make([]string, len(topics))
		for i, t := range topics {
			names[i] = string(t)
		}
		parts = append(parts, "Recent interests: "+strings.Join(names, ", "))
	}
	return strings.Join(parts, ", ")
}

// ComputeFacts derives inventory aggregates from a vehicle list. The
// input is never mutated.
func ComputeFacts(vehicles []pkg.Vehicle) pkg.InventoryFacts {
	facts := pkg.InventoryFacts{}
	if len(vehicles) == 0 {
		return facts
	}

	seen := make(map[string]bool)
	sum := 0
	facts.PriceRange.Min = vehicles[0].Price
	facts.PriceRange.Max = vehicles[0].Price
	for _, v := range vehicles {
		if !seen[v.Brand] {
			seen[v.Brand] = true
			facts.Brands = append(facts.Brands, v.Brand)
		}
		if v.Price < facts.PriceRange.Min {
			facts.PriceRange.Min = v.Price
		}
		if v.Price > facts.PriceRange.Max {
			facts.PriceRange.Max = v.Price
		}
		sum += v.Price
	}
	facts.PriceRange.Average = sum / len(vehicles)

	byPrice := make([]pkg.Vehicle, len(vehicles))
	copy(byPrice, vehicles)
	sort.SliceStable(byPrice, func(i, j int) bool { return byPrice[i].Price < byPrice[j].Price })
	if len(byPrice) > 5 {
		byPrice = byPrice[:5]
	}
	facts.PopularVehicles = byPrice

	return facts
}
