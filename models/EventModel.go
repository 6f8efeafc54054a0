package models

type Event struct {
	EventID     string   `dynamodbav:"eventId" json:"eventId"` // ✅ Partition Key
	Title       string   `dynamodbav:"title" json:"title"`
	Description string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	Type        string   `dynamodbav:"type" json:"type"`                               // ✅ announcement, event, podcast, video
	Tags        []string `dynamodbav:"tags,omitempty" json:"tags,omitempty"`           // Fixed vocabulary, see constants.go
	MediaURL    string   `dynamodbav:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`   // For video, podcast, etc.
	EventDate   string   `dynamodbav:"eventDate,omitempty" json:"eventDate,omitempty"` // Optional scheduled date
	CreatedBy   string   `dynamodbav:"createdBy" json:"createdBy"`                     // ✅ Owning club id, indexed via GSI
	CreatedAt   string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt   string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	ClubName    string   `json:"clubName,omitempty" dynamodbav:"-"` // Resolved on read (not stored in DB)
}

// ✅ Define table name
const EventsTable = "Events"

// ✅ Define GSI for querying a club's events
const EventCreatedByIndex = "createdBy-index" // PK: createdBy
