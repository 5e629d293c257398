package openf1

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

const meetings2024 = `[
	{"meeting_key":1229,"meeting_name":"Bahrain Grand Prix","date_start":"2024-03-01T11:30:00+00:00","year":2024},
	{"meeting_key":1240,"meeting_name":"Hungarian Grand Prix","date_start":"2024-07-10T11:30:00+00:00","year":2024},
	{"meeting_key":1234,"meeting_name":"Emilia Romagna Grand Prix","date_start":"2024-05-20T11:30:00+00:00","year":2024}
]`

func TestGetLatestMeeting(t *testing.T) {
	api := newFakeAPI().respond("meetings?year=2024", meetings2024)
	c := newTestClient(t, api)

	m, err := c.GetLatestMeeting(context.Background())
	if err != nil {
		t.Fatalf("latest meeting: %v", err)
	}
	if m.MeetingKey != 1240 {
		t.Errorf("meeting_key = %d, want 1240", m.MeetingKey)
	}
	if got := m.DateStart.Format("2006-01-02"); got != "2024-07-10" {
		t.Errorf("date_start = %s, want 2024-07-10", got)
	}
}

func TestGetLatestMeetingDateOnly(t *testing.T) {
	api := newFakeAPI().respond("meetings?year=2024", `[
		{"meeting_key":1,"date_start":"2024-03-01"},
		{"meeting_key":2,"date_start":"2024-07-10"},
		{"meeting_key":3,"date_start":"2024-05-20"}
	]`)
	c := newTestClient(t, api)

	m, err := c.GetLatestMeeting(context.Background())
	if err != nil {
		t.Fatalf("latest meeting: %v", err)
	}
	if m.MeetingKey != 2 {
		t.Errorf("meeting_key = %d, want 2", m.MeetingKey)
	}
}

func TestGetLatestMeetingEmpty(t *testing.T) {
	api := newFakeAPI().respond("meetings?year=2024", `[]`)
	c := newTestClient(t, api)

	_, err := c.GetLatestMeeting(context.Background())
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
	if errors.Cause(err) != ErrEmptyResult {
		t.Errorf("cause = %v, want ErrEmptyResult", errors.Cause(err))
	}
}

func TestGetLatestSessions(t *testing.T) {
	api := newFakeAPI().
		respond("meetings?year=2024", meetings2024).
		respond("sessions?meeting_key=1240", `[
			{"session_key":9566,"session_name":"Practice 1","session_type":"Practice","meeting_key":1240},
			{"session_key":9574,"session_name":"Race","session_type":"Race","meeting_key":1240},
			{"session_key":9570,"session_name":"Qualifying","session_type":"Qualifying","meeting_key":1240}
		]`)
	c := newTestClient(t, api)

	sessions, err := c.GetLatestSessions(context.Background())
	if err != nil {
		t.Fatalf("latest sessions: %v", err)
	}
	want := []struct {
		key  int
		name string
	}{{9566, "Practice 1"}, {9574, "Race"}, {9570, "Qualifying"}}
	if len(sessions) != len(want) {
		t.Fatalf("got %d sessions, want %d", len(sessions), len(want))
	}
	for i, w := range want {
		if sessions[i].SessionKey != w.key || sessions[i].SessionName != w.name {
			t.Errorf("session %d = %+v, want %d %q", i, sessions[i], w.key, w.name)
		}
	}

	reqs := api.Requests()
	if len(reqs) != 2 || reqs[1] != "sessions?meeting_key=1240" {
		t.Errorf("requests = %v", reqs)
	}
}

func TestGetLatestSessionsPropagatesEmptyMeetings(t *testing.T) {
	api := newFakeAPI().respond("meetings?year=2024", `[]`)
	c := newTestClient(t, api)

	if _, err := c.GetLatestSessions(context.Background()); !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestGetDriversForSessionUnmodified(t *testing.T) {
	api := newFakeAPI().respond("drivers?session_key=9574", `[
		{"driver_number":1,"full_name":"Max VERSTAPPEN","name_acronym":"VER","team_name":"Red Bull Racing"},
		{"driver_number":4,"full_name":"Lando NORRIS","name_acronym":"NOR","team_name":"McLaren"}
	]`)
	c := newTestClient(t, api)

	drivers, err := c.GetDriversForSession(context.Background(), 9574)
	if err != nil {
		t.Fatalf("drivers: %v", err)
	}
	if len(drivers) != 2 || drivers[0].DriverNumber != 1 || drivers[1].TeamName != "McLaren" {
		t.Errorf("unexpected drivers: %+v", drivers)
	}
}
