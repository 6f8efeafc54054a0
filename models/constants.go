package models

// ✅ Engagement Types (like, dislike, comment)
const (
	EngagementTypeLike    = "like"
	EngagementTypeDislike = "dislike"
	EngagementTypeComment = "comment"
)

// ✅ Event Types
const (
	EventTypeAnnouncement = "announcement"
	EventTypeEvent        = "event"
	EventTypePodcast      = "podcast"
	EventTypeVideo        = "video"
)

// ✅ User Roles
const (
	RoleStudent    = "student"
	RoleClubAdmin  = "club_admin"
	RoleSuperAdmin = "super_admin"
)

// EventTags is the fixed vocabulary events may be tagged with.
var EventTags = []string{
	"technical", "cultural", "sports", "social", "educational",
	"music", "talk", "competition", "workshop", "seminar", "general",
}

// IsValidEngagementType reports whether t is one of the three engagement kinds.
func IsValidEngagementType(t string) bool {
	return t == EngagementTypeLike || t == EngagementTypeDislike || t == EngagementTypeComment
}

// IsValidEventType reports whether t is a known event type.
func IsValidEventType(t string) bool {
	switch t {
	case EventTypeAnnouncement, EventTypeEvent, EventTypePodcast, EventTypeVideo:
		return true
	}
	return false
}

// IsValidEventTag reports whether tag belongs to the tag vocabulary.
func IsValidEventTag(tag string) bool {
	for _, t := range EventTags {
		if t == tag {
			return true
		}
	}
	return false
}
