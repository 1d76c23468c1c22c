package handler

import (
	"github.com/familyhub/calendar-hub/internal/core/domain"
	"github.com/familyhub/calendar-hub/internal/core/ports"
)

// --- Service result → HTTP response ---

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Role:        string(u.Role),
		AvatarColor: u.AvatarColor,
		Initial:     u.Initial(),
	}
}

func toUserViewResponse(v ports.UserView) userResponse {
	r := toUserResponse(v.User)
	r.Active = v.Active
	return r
}

func toSessionResponse(s *ports.Session) sessionResponse {
	return sessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC(),
		User:      toUserResponse(s.User),
	}
}

func toEventResponse(v ports.EventView) eventResponse {
	return eventResponse{
		ID:          v.ID,
		Date:        v.Date.String(),
		Title:       v.Title,
		Type:        string(v.Type),
		Description: v.Description,
		CreatedBy:   v.CreatedBy,
		CreatorName: v.CreatorName,
		CanDelete:   v.CanDelete,
	}
}

func toEventResponses(views []ports.EventView) []eventResponse {
	out := make([]eventResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toEventResponse(v))
	}
	return out
}

func toMonthResponse(m *ports.MonthView) monthResponse {
	cells := make([]dayResponse, 0, len(m.Cells))
	for _, c := range m.Cells {
		day := dayResponse{Day: c.Day, IsToday: c.IsToday}
		if c.Day > 0 {
			day.Date = c.Date.String()
		}
		if len(c.Events) > 0 {
			day.Events = toEventResponses(c.Events)
		}
		cells = append(cells, day)
	}

	legend := make([]legendResponse, 0, len(m.Legend))
	for _, l := range m.Legend {
		legend = append(legend, legendResponse{Type: string(l.Type), Label: l.Label, Color: l.Color})
	}

	return monthResponse{
		Title:          m.Title,
		Year:           m.Year,
		Month:          int(m.Month),
		Current:        m.Current.String(),
		Today:          m.Today.String(),
		Filter:         string(m.Filter),
		StartDayOfWeek: m.StartDayOfWeek,
		DaysInMonth:    m.DaysInMonth,
		Weekdays:       m.Weekdays,
		Cells:          cells,
		Legend:         legend,
	}
}
