package models

type Engagement struct {
	PK          string `dynamodbav:"PK" json:"-"`                                        // ✅ Partition Key: "EVENT#<eventId>"
	SK          string `dynamodbav:"SK" json:"-"`                                        // ✅ Sort Key: "ENGAGEMENT#<userId>#<type>"
	EventID     string `dynamodbav:"eventId" json:"eventId"`                             // ✅ Event being reacted to
	UserID      string `dynamodbav:"userId" json:"userId"`                               // ✅ Acting user
	ClubID      string `dynamodbav:"clubId" json:"clubId"`                               // ✅ Club that owns the event (GSI key for cascade/analytics)
	Type        string `dynamodbav:"type" json:"type"`                                   // ✅ like, dislike, comment
	CommentText string `dynamodbav:"commentText,omitempty" json:"commentText,omitempty"` // Required only for comments
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`                         // ✅ Set once on first insert, kept on upsert
}

// ✅ Define table name
const EngagementsTable = "Engagements"

// ✅ Define GSI for querying engagements by owning club (cascade + analytics)
const EngagementClubIndex = "clubId-index" // PK: clubId

// EngagementPK builds the partition key for all engagements of an event.
func EngagementPK(eventID string) string {
	return "EVENT#" + eventID
}

// EngagementSK builds the sort key enforcing the one-row-per-(user,type) constraint.
func EngagementSK(userID, engagementType string) string {
	return "ENGAGEMENT#" + userID + "#" + engagementType
}

// ClubLikeCount is one output row of the per-club like aggregation.
type ClubLikeCount struct {
	ClubID    string `json:"clubId"`
	LikeCount int    `json:"likeCount"`
}
