package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerbot/pkg"
)

func inventoryFixture() []pkg.Vehicle {
	return []pkg.Vehicle{
		{Brand: "Toyota", Model: "RAV4", Shape: "SUV", Price: 32500, NewVehicle: true},
		{Brand: "Honda", Model: "Civic", Shape: "Sedan", Price: 24900, NewVehicle: true},
		{Brand: "Toyota", Model: "Prius", Shape: "Hatchback", Price: 28300},
		{Brand: "BMW", Model: "X5", Shape: "SUV", Price: 68500, NewVehicle: true},
	}
}

func TestRecordTurnKeepsOrder(t *testing.T) {
	s := NewStore()
	s.RecordTurn(pkg.RoleUser, "show me suvs")
	s.RecordTurn(pkg.RoleBot, "we have two")
	s.RecordTurn(pkg.RoleUser, "what about trucks")

	turns := s.History()
	require.Len(t, turns, 3)
	assert.Equal(t, pkg.RoleUser, turns[0].Role)
	assert.Equal(t, "we have two", turns[1].Text)
	assert.Equal(t, "what about trucks", turns[2].Text)
}

func TestSessionIDAssigned(t *testing.T) {
	a, b := NewStore(), NewStore()
	assert.NotEmpty(t, a.SessionID())
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestIngestSnapshotRecomputesFacts(t *testing.T) {
	s := NewStore()
	s.IngestSnapshot(pkg.Snapshot{Vehicles: inventoryFixture()})

	facts := s.Facts()
	assert.Equal(t, []string{"Toyota", "Honda", "BMW"}, facts.Brands)
	assert.Equal(t, 24900, facts.PriceRange.Min)
	assert.Equal(t, 68500, facts.PriceRange.Max)
}

func TestIngestSnapshotIdempotent(t *testing.T) {
	s := NewStore()
	snap := pkg.Snapshot{Vehicles: inventoryFixture()}

	s.IngestSnapshot(snap)
	first := s.Facts()
	prefs := s.Preferences()

	s.IngestSnapshot(snap)
	assert.Equal(t, first, s.Facts())
	assert.Equal(t, prefs, s.Preferences())
}

func TestIngestSnapshotKeepsStaleFacts(t *testing.T) {
	s := NewStore()
	s.IngestSnapshot(pkg.Snapshot{Vehicles: inventoryFixture()})
	before := s.Facts()

	// An empty inventory (failed fetch upstream) must not wipe the
	// previously derived aggregates.
	s.IngestSnapshot(pkg.Snapshot{})
	assert.Equal(t, before, s.Facts())
	assert.Empty(t, s.Snapshot().Vehicles)
}

func TestUpdatePreferencesShapeAndFuel(t *testing.T) {
	s := NewStore()

	s.UpdatePreferences(pkg.IntentVehicle, "show me suvs")
	assert.Equal(t, "SUV", s.Preferences().PreferredShape)

	// Last write wins.
	s.UpdatePreferences(pkg.IntentVehicle, "actually a truck")
	assert.Equal(t, "Truck", s.Preferences().PreferredShape)

	s.UpdatePreferences(pkg.IntentVehicle, "an electric one")
	assert.Equal(t, "Electric", s.Preferences().PreferredFuel)

	// Shape keywords only count on vehicle turns.
	s.UpdatePreferences(pkg.IntentPricing, "sedan prices")
	assert.Equal(t, "Truck", s.Preferences().PreferredShape)
}

func TestUpdatePreferencesBudgetRange(t *testing.T) {
	s := NewStore()

	s.UpdatePreferences(pkg.IntentPricing, "something affordable")
	assert.Equal(t, "affordable", s.Preferences().BudgetRange)

	s.UpdatePreferences(pkg.IntentPricing, "show me luxury options")
	assert.Equal(t, "luxury", s.Preferences().BudgetRange)
}

func TestRecentTopicsCappedMostRecentFirst(t *testing.T) {
	s := NewStore()
	sequence := []pkg.Intent{
		pkg.IntentVehicle, pkg.IntentLoan, pkg.IntentPricing,
		pkg.IntentCart, pkg.IntentHelp, pkg.IntentGeneral, pkg.IntentVehicle,
	}
	for _, intent := range sequence {
		s.UpdatePreferences(intent, "message")
	}

	topics := s.Preferences().RecentTopics
	require.Len(t, topics, 5)
	assert.Equal(t, pkg.IntentVehicle, topics[0])
	assert.Equal(t, pkg.IntentGeneral, topics[1])
}

func TestCurrentTopicLagsOneTurn(t *testing.T) {
	s := NewStore()
	assert.Equal(t, pkg.Intent(""), s.CurrentTopic())

	s.UpdatePreferences(pkg.IntentVehicle, "show me suvs")
	assert.Equal(t, pkg.IntentVehicle, s.CurrentTopic())

	s.UpdatePreferences(pkg.IntentLoan, "loan options")
	assert.Equal(t, pkg.IntentLoan, s.CurrentTopic())
}

func TestSummaryWindow(t *testing.T) {
	s := NewStore()
	s.RecordTurn(pkg.RoleUser, "one")
	s.RecordTurn(pkg.RoleBot, "two")
	s.RecordTurn(pkg.RoleUser, "three")

	assert.Equal(t, "bot: two\nuser: three", s.Summary(2))
	assert.Equal(t, "user: one\nbot: two\nuser: three", s.Summary(10))
}

func TestPreferencesSummary(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.PreferencesSummary())

	s.UpdatePreferences(pkg.IntentVehicle, "suv please")
	summary := s.PreferencesSummary()
	assert.Contains(t, summary, "Preferred vehicle type: SUV")
	assert.Contains(t, summary, "Recent interests: vehicle_query")
}

func TestComputeFacts(t *testing.T) {
	facts := ComputeFacts(inventoryFixture())

	assert.Equal(t, []string{"Toyota", "Honda", "BMW"}, facts.Brands)
	assert.Equal(t, 24900, facts.PriceRange.Min)
	assert.Equal(t, 68500, facts.PriceRange.Max)
	assert.Equal(t, (32500+24900+28300+68500)/4, facts.PriceRange.Average)

	require.NotEmpty(t, facts.PopularVehicles)
	assert.Equal(t, "Civic", facts.PopularVehicles[0].Model)
}

func TestComputeFactsDoesNotMutateInput(t *testing.T) {
	vehicles := inventoryFixture()
	ComputeFacts(vehicles)
	assert.Equal(t, "RAV4", vehicles[0].Model)
}

func TestComputeFactsEmpty(t *testing.T) {
	facts := ComputeFacts(nil)
	assert.Empty(t, facts.Brands)
	assert.Empty(t, facts.PopularVehicles)
}
