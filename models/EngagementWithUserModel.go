package models

// EngagementWithUser is an engagement with the acting user's display
// identity resolved, returned by the per-event listing.
type EngagementWithUser struct {
	Engagement
	UserName   string `json:"userName,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}
