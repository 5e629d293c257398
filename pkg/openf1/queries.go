package openf1

import (
	"context"
	"sort"

	"openf1lapexport/pkg/model"

	"github.com/pkg/errors"
)

// GetLatestMeeting returns the meeting of the current calendar year with the
// most recent start date.
func (c *Client) GetLatestMeeting(ctx context.Context) (model.Meeting, error) {
	year := c.now().Year()
	meetings, err := fetchList[model.Meeting](ctx, c, endpointMeetings, Params{}.Add("year", year))
	if err != nil {
		return model.Meeting{}, err
	}
	if len(meetings) == 0 {
		return model.Meeting{}, errors.Wrapf(ErrEmptyResult, "no meetings found for %d", year)
	}

	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].DateStart.After(meetings[j].DateStart.Time)
	})
	return meetings[0], nil
}

// GetLatestSessions lists the sessions of the latest meeting in API order.
func (c *Client) GetLatestSessions(ctx context.Context) ([]model.SessionRef, error) {
	_, refs, err := c.latestSessions(ctx)
	return refs, err
}

func (c *Client) latestSessions(ctx context.Context) (model.Meeting, []model.SessionRef, error) {
	meeting, err := c.GetLatestMeeting(ctx)
	if err != nil {
		return model.Meeting{}, nil, err
	}
	sessions, err := fetchList[model.Session](ctx, c, endpointSessions, Params{}.Add("meeting_key", meeting.MeetingKey))
	if err != nil {
		return meeting, nil, err
	}

	refs := make([]model.SessionRef, 0, len(sessions))
	for _, s := range sessions {
		refs = append(refs, s.Ref())
	}
	return meeting, refs, nil
}

func (c *Client) GetDriversForSession(ctx context.Context, sessionKey int) ([]model.Driver, error) {
	return fetchList[model.Driver](ctx, c, endpointDrivers, Params{}.Add("session_key", sessionKey))
}

func (c *Client) GetLapsForSession(ctx context.Context, sessionKey int) ([]model.Lap, error) {
	return fetchList[model.Lap](ctx, c, endpointLaps, Params{}.Add("session_key", sessionKey))
}
