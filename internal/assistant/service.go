package assistant

import (
	"strings"

	"dealerbot/internal/config"
	"dealerbot/internal/conversation"
	"dealerbot/internal/intent"
	"dealerbot/internal/logger"
	"dealerbot/internal/respond"
	"dealerbot/pkg"
)

// Service is the conversational assistant for one session. It owns a
// context store and runs the full turn pipeline: record the utterance,
// classify it, generate the reply, apply continuity, then update the
// topic and preferences.
//
// The whole pipeline is synchronous and deterministic; a Service must
// not be shared between concurrent sessions.
type Service struct {
	store      *conversation.Store
	classifier *intent.Classifier
	responder  *respond.Responder
	cfg        config.AssistantConfig
}

func New(cfg *config.Config, store *conversation.Store) *Service {
	store.SetTopicLimit(cfg.Assistant.RecentTopicLimit)
	return &Service{
		store:      store,
		classifier: intent.NewClassifier(cfg.Assistant.ConfidenceThreshold),
		responder:  respond.NewResponder(cfg.Loan),
		cfg:        cfg.Assistant,
	}
}

// Store exposes the session's context store.
func (s *Service) Store() *conversation.Store {
	return s.store
}

// HistorySummary renders the configured window of recent turns.
func (s *Service) HistorySummary() string {
	return s.store.Summary(s.cfg.HistoryWindow)
}

// UpdateAppContext replaces the mirrored application state. Idempotent;
// calling it twice with the same snapshot changes nothing.
func (s *Service) UpdateAppContext(snap pkg.Snapshot) {
	s.store.IngestSnapshot(snap)
}

// GenerateResponse runs one conversation turn and returns the reply.
// It never fails and never returns an empty string: classification
// below the confidence threshold falls back to the general generator.
func (s *Service) GenerateResponse(userMessage string, snap pkg.Snapshot) string {
	message := strings.ToLower(userMessage)

	s.UpdateAppContext(snap)
	s.store.RecordTurn(pkg.RoleUser, userMessage)

	// The previous topic must be read before this turn's classification
	// overwrites it; continuity keys off the topic as it stood when the
	// user hit send.
	previousTopic := s.store.CurrentTopic()
	followUp := isFollowUp(message)

	sig := intent.Signals{
		CartCount:     len(snap.CartItems),
		CompareCount:  len(snap.CompareItems),
		Authenticated: snap.User != nil,
	}
	classified := s.classifier.Classify(message, sig)

	rc := respond.Context{
		Snapshot: snap,
		Prefs:    s.store.Preferences(),
		Facts:    s.store.Facts(),
	}
	reply := s.responder.Respond(classified, message, rc)

	if followUp && previousTopic != "" {
		reply = augment(reply, previousTopic, classified, rc)
	}

	s.store.RecordTurn(pkg.RoleBot, reply)
	s.store.UpdatePreferences(classified, message)

	logger.Debug().
		Str("session_id", s.store.SessionID()).
		Str("intent", string(classified)).
		Int("utterance_len", len(userMessage)).
		Bool("follow_up", followUp).
		Msg("turn completed")

	return reply
}

// QuickActions returns the suggestion chips for the current state:
// View Cart and View Comparison slot in ahead of the four base actions
// when those collections are non-empty.
func (s *Service) QuickActions() []pkg.QuickAction {
	actions := []pkg.QuickAction{
		{Label: "Browse Vehicles", Action: "catalog"},
		{Label: "Calculate Loan", Action: "loan"},
		{Label: "Compare Cars", Action: "compare"},
		{Label: "Contact Us", Action: "contact"},
	}

	snap := s.store.Snapshot()
	if len(snap.CartItems) > 0 {
		actions = append([]pkg.QuickAction{{Label: "View Cart", Action: "cart"}}, actions...)
	}
	if len(snap.CompareItems) > 0 {
		actions = append([]pkg.QuickAction{{Label: "View Comparison", Action: "compare"}}, actions...)
	}

	return actions
}
