package openf1

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"openf1lapexport/pkg/helper"
	"openf1lapexport/pkg/model"

	"github.com/pkg/errors"
)

// JoinedLap is one output row: a lap together with the driver who set it.
type JoinedLap struct {
	Lap    model.Lap
	Driver model.Driver
}

// ExportResult describes what happened to a single session during an export.
type ExportResult struct {
	MeetingKey  int
	SessionKey  int
	SessionName string
	Path        string
	Rows        int
	Fastest     *JoinedLap
	Skipped     bool
	Reason      string
}

// SortLapsByDuration returns a copy of laps ordered by ascending lap
// duration. Laps without a duration go last. Equal durations keep their
// input order.
func SortLapsByDuration(laps []model.Lap) []model.Lap {
	sorted := make([]model.Lap, len(laps))
	copy(sorted, laps)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].LapDuration, sorted[j].LapDuration
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a < *b
	})
	return sorted
}

// JoinLapsWithDrivers inner joins laps and drivers on driver_number, keeping
// the order of laps. Laps without a matching driver are dropped.
func JoinLapsWithDrivers(laps []model.Lap, drivers []model.Driver) []JoinedLap {
	byNumber := make(map[int][]model.Driver, len(drivers))
	for _, d := range drivers {
		byNumber[d.DriverNumber] = append(byNumber[d.DriverNumber], d)
	}

	rows := make([]JoinedLap, 0, len(laps))
	for _, l := range laps {
		for _, d := range byNumber[l.DriverNumber] {
			rows = append(rows, JoinedLap{Lap: l, Driver: d})
		}
	}
	return rows
}

// ExportLapsPerSession writes one CSV per session of the latest meeting.
// Sessions without drivers or laps are skipped and reported in the results.
// On error the results of the sessions already processed are returned too.
func (c *Client) ExportLapsPerSession(ctx context.Context) ([]ExportResult, error) {
	meeting, sessions, err := c.latestSessions(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ExportResult, 0, len(sessions))
	for _, s := range sessions {
		result, err := c.exportSession(ctx, meeting.MeetingKey, s)
		if err != nil {
			return results, errors.Wrapf(err, "exporting session %q", s.SessionName)
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *Client) exportSession(ctx context.Context, meetingKey int, s model.SessionRef) (ExportResult, error) {
	result := ExportResult{MeetingKey: meetingKey, SessionKey: s.SessionKey, SessionName: s.SessionName}

	drivers, err := c.GetDriversForSession(ctx, s.SessionKey)
	if err != nil {
		return result, err
	}
	laps, err := c.GetLapsForSession(ctx, s.SessionKey)
	if err != nil {
		return result, err
	}
	laps = SortLapsByDuration(laps)

	switch {
	case len(drivers) == 0 && len(laps) == 0:
		result.Reason = "no drivers and no laps"
	case len(drivers) == 0:
		result.Reason = "no drivers"
	case len(laps) == 0:
		result.Reason = "no laps"
	}
	if result.Reason != "" {
		result.Skipped = true
		log.Printf("Skipping session %q (%d): %s\n", s.SessionName, s.SessionKey, result.Reason)
		return result, nil
	}

	rows := JoinLapsWithDrivers(laps, drivers)
	result.Path = filepath.Join(c.outputDir, sessionFileName(s))
	if err := writeLapsCSV(result.Path, rows); err != nil {
		return result, err
	}
	result.Rows = len(rows)
	if len(rows) > 0 && rows[0].Lap.LapDuration != nil {
		fastest := rows[0]
		result.Fastest = &fastest
	}
	log.Printf("Wrote %d laps for session %q to %s\n", result.Rows, s.SessionName, result.Path)
	return result, nil
}

func sessionFileName(s model.SessionRef) string {
	name := helper.SanitizeFileName(s.SessionName)
	if name == "" {
		name = fmt.Sprintf("session_%d", s.SessionKey)
	}
	return name + ".csv"
}
