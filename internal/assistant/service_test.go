package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerbot/internal/config"
	"dealerbot/internal/conversation"
	"dealerbot/internal/inventory"
	"dealerbot/pkg"
)

func newTestService() *Service {
	return New(config.Default(), conversation.NewStore())
}

func sampleSnapshot() pkg.Snapshot {
	return pkg.Snapshot{Vehicles: inventory.Sample()}
}

func TestGenerateResponseRecordsBothTurns(t *testing.T) {
	s := newTestService()
	reply := s.GenerateResponse("Show me SUVs", sampleSnapshot())
	require.NotEmpty(t, reply)

	turns := s.Store().History()
	require.Len(t, turns, 2)
	assert.Equal(t, pkg.RoleUser, turns[0].Role)
	assert.Equal(t, "Show me SUVs", turns[0].Text)
	assert.Equal(t, pkg.RoleBot, turns[1].Role)
	assert.Equal(t, reply, turns[1].Text)
}

func TestGenerateResponseNeverEmpty(t *testing.T) {
	s := newTestService()
	for _, message := range []string{"", "hello", "xyzzy", "Show me SUVs", "what are your hours"} {
		if reply := s.GenerateResponse(message, sampleSnapshot()); reply == "" {
			t.Errorf("empty reply for %q", message)
		}
	}
}

func TestGenerateResponseUpdatesTopicAndPreferences(t *testing.T) {
	s := newTestService()
	s.GenerateResponse("Show me SUVs", sampleSnapshot())

	assert.Equal(t, pkg.IntentVehicle, s.Store().CurrentTopic())
	assert.Equal(t, "SUV", s.Store().Preferences().PreferredShape)
	require.NotEmpty(t, s.Store().Preferences().RecentTopics)
	assert.Equal(t, pkg.IntentVehicle, s.Store().Preferences().RecentTopics[0])
}

func TestFollowUpLinksToPreviousVehicleTopic(t *testing.T) {
	s := newTestService()
	snap := sampleSnapshot()

	s.GenerateResponse("Show me SUVs", snap)
	reply := s.GenerateResponse("What about trucks?", snap)

	// The continuity clause references the preference recorded on the
	// previous turn, not this one.
	assert.Contains(t, reply, "Since you're interested in SUVs")
	assert.Contains(t, reply, "comparison list or cart")

	// This turn still answered the truck question.
	assert.Contains(t, reply, "trucks available")
}

func TestFollowUpClauseAdaptsToCart(t *testing.T) {
	s := newTestService()
	snap := sampleSnapshot()
	snap.CartItems = []pkg.CartItem{
		{Brand: "Toyota", Model: "RAV4", Shape: "SUV", Price: 32500, Quantity: 1},
	}

	s.GenerateResponse("Show me SUVs", snap)
	reply := s.GenerateResponse("What about sedans?", snap)
	assert.Contains(t, reply, "Since you're interested in SUVs")
	assert.Contains(t, reply, "cart items stack up")
}

func TestPluralSUVQueryReachesVehicleGenerator(t *testing.T) {
	s := newTestService()
	snap := pkg.Snapshot{Vehicles: []pkg.Vehicle{
		{Brand: "Honda", Model: "Civic", Shape: "Sedan", Price: 24900, NewVehicle: true},
	}}

	// Plural "SUVs" contains "vs"; it must still route to the vehicle
	// generator, which apologizes when no SUVs are stocked.
	reply := s.GenerateResponse("Show me SUVs", snap)
	assert.Contains(t, reply, "don't have SUVs in stock")
	assert.NotContains(t, reply, "comparison tool")
	assert.Equal(t, pkg.IntentVehicle, s.Store().CurrentTopic())
}

func TestFollowUpRequiresPreviousTopic(t *testing.T) {
	s := newTestService()

	// First turn of the session: marker present but no previous topic.
	reply := s.GenerateResponse("What about trucks?", sampleSnapshot())
	assert.NotContains(t, reply, "Since you're interested in")
}

func TestLoanToPricingContinuity(t *testing.T) {
	s := newTestService()
	snap := sampleSnapshot()

	s.GenerateResponse("What loan options do you have?", snap)
	reply := s.GenerateResponse("And how much do these cost?", snap)
	assert.Contains(t, reply, "loan calculator")
}

func TestNonAdjacentTopicsNotAugmented(t *testing.T) {
	s := newTestService()
	snap := sampleSnapshot()

	s.GenerateResponse("what are your hours", snap)
	reply := s.GenerateResponse("and do you have suvs", snap)
	assert.NotContains(t, reply, "Since you're interested in")
	assert.NotContains(t, reply, "loan calculator")
}

func TestQuickActionsBaseSet(t *testing.T) {
	s := newTestService()
	actions := s.QuickActions()
	require.Len(t, actions, 4)
	assert.Equal(t, "Browse Vehicles", actions[0].Label)
	assert.Equal(t, "Calculate Loan", actions[1].Label)
	assert.Equal(t, "Compare Cars", actions[2].Label)
	assert.Equal(t, "Contact Us", actions[3].Label)
}

func TestQuickActionsWithCartAndCompare(t *testing.T) {
	s := newTestService()
	snap := sampleSnapshot()
	snap.CartItems = []pkg.CartItem{
		{Brand: "Toyota", Model: "RAV4", Shape: "SUV", Price: 32500, Quantity: 1},
	}
	snap.CompareItems = []pkg.Vehicle{
		{Brand: "BMW", Model: "X5", Shape: "SUV", Price: 68500},
	}
	s.UpdateAppContext(snap)

	actions := s.QuickActions()
	require.Len(t, actions, 6)
	assert.Equal(t, "View Comparison", actions[0].Label)
	assert.Equal(t, "View Cart", actions[1].Label)
	assert.Equal(t, "Browse Vehicles", actions[2].Label)
}

func TestCartIntentBoostedWhenCartNonEmpty(t *testing.T) {
	s := newTestService()
	snap := sampleSnapshot()
	snap.CartItems = []pkg.CartItem{
		{Brand: "BMW", Model: "X5", Shape: "SUV", Price: 87000, Quantity: 1},
	}

	reply := s.GenerateResponse("What's in my cart?", snap)
	assert.Contains(t, reply, "1 item in your cart")
	assert.Contains(t, reply, "$87,000")
}

func TestRecentTopicLimitFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Assistant.RecentTopicLimit = 2
	s := New(cfg, conversation.NewStore())

	for i := 0; i < 4; i++ {
		s.GenerateResponse("show me suvs", sampleSnapshot())
	}
	assert.Len(t, s.Store().Preferences().RecentTopics, 2)
}

func TestHistorySummary(t *testing.T) {
	s := newTestService()
	s.GenerateResponse("hello", sampleSnapshot())

	summary := s.HistorySummary()
	assert.Contains(t, summary, "user: hello")
	assert.Contains(t, summary, "bot: ")
}

func TestUpperCaseInputHandled(t *testing.T) {
	s := newTestService()
	reply := s.GenerateResponse("SHOW ME SUVS", sampleSnapshot())
	if !strings.Contains(reply, "SUVs") {
		t.Errorf("upper-case utterance not routed to the vehicle generator: %q", reply)
	}
}
