package models

type Club struct {
	ClubID      string `dynamodbav:"clubId" json:"clubId"` // ✅ Partition Key
	Name        string `dynamodbav:"name" json:"name"`     // Indexed via GSI for uniqueness checks
	Description string `dynamodbav:"description,omitempty" json:"description,omitempty"`
	LogoURL     string `dynamodbav:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	IsApproved  bool   `dynamodbav:"isApproved" json:"isApproved"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// ✅ Define table name
const ClubsTable = "Clubs"

// ✅ Define GSI for looking clubs up by name
const ClubNameIndex = "name-index" // PK: name
