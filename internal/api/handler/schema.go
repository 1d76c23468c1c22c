package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type joinRequest struct {
	Name       string `json:"name"       validate:"required,notblank"`
	Passphrase string `json:"passphrase"`
}

type switchRequest struct {
	UserID     string `json:"user_id"    validate:"required"`
	Passphrase string `json:"passphrase"`
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      userResponse `json:"user"`
}

// --- Users ---

type userResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	AvatarColor string `json:"avatar_color"`
	Initial     string `json:"initial"`
	Active      bool   `json:"active,omitempty"`
}

// --- Events ---

type addEventRequest struct {
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Title       string `json:"title"       validate:"required,notblank"`
	Description string `json:"description"`
	Type        string `json:"type"        validate:"required,oneof=EVENT GOAL UPDATE"`
}

type eventResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	CreatedBy   string `json:"created_by"`
	CreatorName string `json:"creator_name"`
	CanDelete   bool   `json:"can_delete"`
}

type eventListResponse struct {
	Filter string          `json:"filter"`
	Date   string          `json:"date,omitempty"`
	Count  int             `json:"count"`
	Events []eventResponse `json:"events"`
}

// --- Calendar ---

type dayResponse struct {
	Day     int             `json:"day"`
	Date    string          `json:"date,omitempty"`
	IsToday bool            `json:"is_today,omitempty"`
	Events  []eventResponse `json:"events,omitempty"`
}

type legendResponse struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type monthResponse struct {
	Title          string           `json:"title"`
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	Current        string           `json:"current"`
	Today          string           `json:"today"`
	Filter         string           `json:"filter"`
	StartDayOfWeek int              `json:"start_day_of_week"`
	DaysInMonth    int              `json:"days_in_month"`
	Weekdays       []string         `json:"weekdays"`
	Cells          []dayResponse    `json:"cells"`
	Legend         []legendResponse `json:"legend"`
}

// --- Suggestions ---

type suggestionResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
