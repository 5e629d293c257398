package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Meeting struct {
	MeetingKey          int    `json:"meeting_key"`
	MeetingName         string `json:"meeting_name"`
	MeetingOfficialName string `json:"meeting_official_name"`
	Location            string `json:"location"`
	CountryKey          int    `json:"country_key"`
	CountryCode         string `json:"country_code"`
	CountryName         string `json:"country_name"`
	CircuitKey          int    `json:"circuit_key"`
	CircuitShortName    string `json:"circuit_short_name"`
	DateStart           Date   `json:"date_start"`
	GMTOffset           string `json:"gmt_offset"`
	Year                int    `json:"year"`
}

func (m *Meeting) UnmarshalJSON(data []byte) error {
	type meeting Meeting
	if err := requireFields(data, "meeting_key", "date_start"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*meeting)(m))
}

type Session struct {
	SessionKey       int    `json:"session_key"`
	SessionName      string `json:"session_name"`
	SessionType      string `json:"session_type"`
	MeetingKey       int    `json:"meeting_key"`
	Location         string `json:"location"`
	CountryName      string `json:"country_name"`
	CircuitShortName string `json:"circuit_short_name"`
	DateStart        Date   `json:"date_start"`
	DateEnd          Date   `json:"date_end"`
	GMTOffset        string `json:"gmt_offset"`
	Year             int    `json:"year"`
}

func (s *Session) UnmarshalJSON(data []byte) error {
	type session Session
	if err := requireFields(data, "session_key", "session_name"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*session)(s))
}

// SessionRef is the projection of a session used to drive an export.
type SessionRef struct {
	SessionKey  int    `json:"session_key"`
	SessionName string `json:"session_name"`
}

func (s Session) Ref() SessionRef {
	return SessionRef{SessionKey: s.SessionKey, SessionName: s.SessionName}
}

type Driver struct {
	DriverNumber  int    `json:"driver_number"`
	BroadcastName string `json:"broadcast_name"`
	FullName      string `json:"full_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	NameAcronym   string `json:"name_acronym"`
	TeamName      string `json:"team_name"`
	TeamColour    string `json:"team_colour"`
	CountryCode   string `json:"country_code"`
	HeadshotURL   string `json:"headshot_url"`
	MeetingKey    int    `json:"meeting_key"`
	SessionKey    int    `json:"session_key"`
}

func (d *Driver) UnmarshalJSON(data []byte) error {
	type driver Driver
	if err := requireFields(data, "driver_number"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*driver)(d))
}

// Lap is a single lap of one driver. Timing fields are pointers because the
// API sends null for laps that were not completed or not timed.
type Lap struct {
	DriverNumber    int      `json:"driver_number"`
	LapNumber       int      `json:"lap_number"`
	LapDuration     *float64 `json:"lap_duration"`
	DateStart       *Date    `json:"date_start"`
	DurationSector1 *float64 `json:"duration_sector_1"`
	DurationSector2 *float64 `json:"duration_sector_2"`
	DurationSector3 *float64 `json:"duration_sector_3"`
	I1Speed         *int     `json:"i1_speed"`
	I2Speed         *int     `json:"i2_speed"`
	STSpeed         *int     `json:"st_speed"`
	IsPitOutLap     bool     `json:"is_pit_out_lap"`
	SegmentsSector1 []int    `json:"segments_sector_1"`
	SegmentsSector2 []int    `json:"segments_sector_2"`
	SegmentsSector3 []int    `json:"segments_sector_3"`
	MeetingKey      int      `json:"meeting_key"`
	SessionKey      int      `json:"session_key"`
}

func (l *Lap) UnmarshalJSON(data []byte) error {
	type lap Lap
	if err := requireFields(data, "driver_number"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*lap)(l))
}

// LapColumns are the CSV columns taken from a lap, in output order.
var LapColumns = []string{
	"date_start",
	"driver_number",
	"duration_sector_1",
	"duration_sector_2",
	"duration_sector_3",
	"i1_speed",
	"i2_speed",
	"is_pit_out_lap",
	"lap_duration",
	"lap_number",
	"meeting_key",
	"segments_sector_1",
	"segments_sector_2",
	"segments_sector_3",
	"session_key",
	"st_speed",
}

// DriverColumns are the CSV columns taken from a driver. The keys shared with
// the lap (driver_number, meeting_key, session_key) are written once, from
// the lap side.
var DriverColumns = []string{
	"broadcast_name",
	"country_code",
	"first_name",
	"full_name",
	"headshot_url",
	"last_name",
	"name_acronym",
	"team_colour",
	"team_name",
}

func (l Lap) CSVRecord() []string {
	dateStart := ""
	if l.DateStart != nil {
		dateStart = l.DateStart.Format(time.RFC3339Nano)
	}
	return []string{
		dateStart,
		strconv.Itoa(l.DriverNumber),
		formatFloat(l.DurationSector1),
		formatFloat(l.DurationSector2),
		formatFloat(l.DurationSector3),
		formatInt(l.I1Speed),
		formatInt(l.I2Speed),
		strconv.FormatBool(l.IsPitOutLap),
		formatFloat(l.LapDuration),
		strconv.Itoa(l.LapNumber),
		strconv.Itoa(l.MeetingKey),
		formatSegments(l.SegmentsSector1),
		formatSegments(l.SegmentsSector2),
		formatSegments(l.SegmentsSector3),
		strconv.Itoa(l.SessionKey),
		formatInt(l.STSpeed),
	}
}

func (d Driver) CSVRecord() []string {
	return []string{
		d.BroadcastName,
		d.CountryCode,
		d.FirstName,
		d.FullName,
		d.HeadshotURL,
		d.LastName,
		d.NameAcronym,
		d.TeamColour,
		d.TeamName,
	}
}

// formatFloat always keeps a decimal part, so 88 is written as 88.0.
func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatSegments(segments []int) string {
	if segments == nil {
		return ""
	}
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = strconv.Itoa(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// requireFields fails when any of the given keys is absent from the JSON
// object or set to null.
func requireFields(data []byte, fields ...string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	for _, f := range fields {
		v, ok := obj[f]
		if !ok || string(v) == "null" {
			return fmt.Errorf("missing required field %q", f)
		}
	}
	return nil
}
