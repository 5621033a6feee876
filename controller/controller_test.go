package controller

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/Nunojmeira/espn-api/espn"
	"github.com/Nunojmeira/espn-api/espn/mockespn"
	"github.com/Nunojmeira/espn-api/model"
	"github.com/Nunojmeira/espn-api/testutils"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"
)

const primaryView = `{"playerWatchList": [
  {"teamId": 3, "playerId": 11, "lineupSlotId": 1, "player": {"id": 11, "fullName": "Guard One", "defaultPositionId": 1, "proTeamId": 7}},
  {"teamId": 3, "playerId": 12, "player": {"id": "bad", "fullName": "Broken Player"}},
  {"teamId": 3, "playerId": 13, "playerPoolEntry": {"player": {"id": 13, "fullName": "Forward Two", "defaultPositionId": 4, "proTeamId": 2}}},
  {"teamId": 5, "playerId": 14, "player": {"id": 14, "fullName": "Other Team", "defaultPositionId": 5}}
]}`

var testSchedule = model.ProSchedule{
	7: {
		1: {ScoringPeriod: 1, Opponent: model.TEAM_LAL, Date: time.Date(2024, time.October, 22, 23, 30, 0, 0, time.UTC)},
	},
}

func newMockClient() *mockespn.Client {
	client := &mockespn.Client{}
	client.On("Year").Return(2024)
	return client
}

func TestTeamWatchlist(t *testing.T) {
	client := newMockClient()
	client.On("FetchPrimaryWatchlistView", mock.Anything).Return(primaryView, nil).Twice()
	client.On("FetchProSchedule", mock.Anything).Return(testSchedule, nil).Once()

	ctrl, err := New(clock.New(), client)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	for range 2 {
		players, err := ctrl.TeamWatchlist(context.Background(), 3, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(players) != 2 {
			t.Fatalf("expected two players, got %d", len(players))
		}
		if players[0].Name != "Guard One" || players[0].Position != model.POS_PG || players[0].LineupSlot != model.POS_SG {
			t.Errorf("unexpected first player: %+v", players[0])
		}
		if !reflect.DeepEqual(players[0].Schedule, testSchedule[7]) {
			t.Errorf("expected the DEN schedule, got %v", players[0].Schedule)
		}
		if players[1].Name != "Forward Two" || players[1].Position != model.POS_PF || players[1].ProTeam != model.TEAM_BOS {
			t.Errorf("unexpected second player: %+v", players[1])
		}
	}

	// The schedule is only loaded once.
	client.AssertNumberOfCalls(t, "FetchProSchedule", 1)
	client.AssertNotCalled(t, "FetchLegacyWatchlistView", mock.Anything, mock.Anything, mock.Anything)
	client.AssertExpectations(t)
}

func TestTeamWatchlistScheduleUnavailable(t *testing.T) {
	client := newMockClient()
	client.On("FetchPrimaryWatchlistView", mock.Anything).Return(primaryView, nil)
	client.On("FetchProSchedule", mock.Anything).Return(nil, errors.New("schedule is down"))

	ctrl, _ := New(clock.New(), client)

	for range 2 {
		players, err := ctrl.TeamWatchlist(context.Background(), 3, 10)
		if err != nil {
			t.Fatalf("a schedule failure should not fail the watchlist: %v", err)
		}
		if len(players) != 2 {
			t.Fatalf("expected two players, got %d", len(players))
		}
		if players[0].Schedule != nil {
			t.Errorf("expected no schedule, got %v", players[0].Schedule)
		}
	}

	// Failed loads are retried.
	client.AssertNumberOfCalls(t, "FetchProSchedule", 2)
}

func TestTeamWatchlistError(t *testing.T) {
	client := newMockClient()
	client.On("FetchPrimaryWatchlistView", mock.Anything).Return(nil, espn.ErrAccessDenied)

	ctrl, _ := New(clock.New(), client)
	players, err := ctrl.TeamWatchlist(context.Background(), 3, 10)
	if !errors.Is(err, espn.ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
	if players != nil {
		t.Errorf("expected no players, got %v", players)
	}
	client.AssertNotCalled(t, "FetchProSchedule", mock.Anything)
}

func TestTeamWatchlistEmpty(t *testing.T) {
	client := newMockClient()
	client.On("FetchPrimaryWatchlistView", mock.Anything).Return(`{"playerWatchList": []}`, nil)

	ctrl, _ := New(clock.New(), client)
	players, err := ctrl.TeamWatchlist(context.Background(), 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if players == nil || len(players) != 0 {
		t.Errorf("expected an empty list, got %v", players)
	}
	client.AssertNotCalled(t, "FetchProSchedule", mock.Anything)
}

func TestWatchlistPlayers(t *testing.T) {
	fake := testutils.NewFakeESPNServer()
	defer fake.Close()

	client := espn.NewForTest(fake.URL(), espn.Options{
		LeagueID: testutils.ESPNLeagueID,
		Year:     2024,
		ESPNS2:   "token",
		SWID:     "{1234-5678}",
	})
	ctrl, err := New(clock.New(), client)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	players, err := ctrl.WatchlistPlayers(context.Background(), 25, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 1 || players[0].Name != "LeBron James" {
		t.Fatalf("expected LeBron James, got %v", players)
	}
	if players[0].Schedule == nil || players[0].Schedule[10].Opponent != model.TEAM_DEN {
		t.Errorf("expected the LAL schedule to be attached, got %v", players[0].Schedule)
	}
}

func TestLeague(t *testing.T) {
	league := &model.League{ID: 1, Year: 2024, Name: "Test League"}

	client := newMockClient()
	client.On("FetchLeague", mock.Anything).Return(league, nil).Once()

	ctrl, _ := New(clock.New(), client)
	l, err := ctrl.League(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l != league {
		t.Errorf("expected the league from espn, got %+v", l)
	}
	client.AssertExpectations(t)
}

func TestLivePlusMinus(t *testing.T) {
	client := newMockClient()
	client.On("LivePlusMinus", mock.Anything, "Nikola Jokic").Return(12.0, true).Once()
	client.On("LivePlusMinus", mock.Anything, "Nobody").Return(0.0, false).Once()

	ctrl, _ := New(clock.New(), client)
	if v, found := ctrl.LivePlusMinus(context.Background(), "Nikola Jokic"); !found || v != 12 {
		t.Errorf("expected (12, true), got (%v, %t)", v, found)
	}
	if _, found := ctrl.LivePlusMinus(context.Background(), "Nobody"); found {
		t.Errorf("expected not found")
	}
	client.AssertExpectations(t)
}

func TestRefreshProSchedule(t *testing.T) {
	client := newMockClient()
	client.On("FetchProSchedule", mock.Anything).Return(testSchedule, nil).Once()
	client.On("FetchProSchedule", mock.Anything).Return(nil, errors.New("boom")).Once()

	ctrl, _ := New(clock.New(), client)
	if err := ctrl.RefreshProSchedule(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ctrl.RefreshProSchedule(context.Background()); err == nil {
		t.Errorf("expected an error")
	}

	// A failed refresh keeps the last good schedule.
	c := ctrl.(*controller)
	if !reflect.DeepEqual(c.proSchedule(context.Background()), testSchedule) {
		t.Errorf("expected the first schedule to be kept")
	}
	client.AssertNumberOfCalls(t, "FetchProSchedule", 2)
}

func TestRunPeriodicScheduleRefresh(t *testing.T) {
	client := newMockClient()
	client.On("FetchProSchedule", mock.Anything).Return(testSchedule, nil)

	ctrl, err := New(clock.New(), client)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	shutdown := make(chan bool, 1)
	go func() {
		time.Sleep(170 * time.Millisecond) // enough time to run at least a couple of times
		close(shutdown)
	}()
	var wg sync.WaitGroup

	wg.Add(1)
	ctrl.RunPeriodicScheduleRefresh(50*time.Millisecond, shutdown, &wg)
	wg.Wait()

	calls := 0
	for _, c := range client.Calls {
		if c.Method == "FetchProSchedule" {
			calls++
		}
	}
	if calls < 1 {
		t.Errorf("expected the schedule to be refreshed, got %d calls", calls)
	}
}
