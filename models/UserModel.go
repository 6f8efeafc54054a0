package models

// User is the stored account document. PasswordHash never leaves the
// backend; the json tag strips it from every API response.
type User struct {
	UserID         string   `dynamodbav:"userId" json:"userId"` // ✅ Partition Key
	Name           string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	EmailID        string   `dynamodbav:"emailId" json:"emailId"` // Indexed via GSI for login
	PasswordHash   string   `dynamodbav:"passwordHash" json:"-"`
	Role           string   `dynamodbav:"role" json:"role"`                                                   // student, club_admin, super_admin
	ClubID         string   `dynamodbav:"clubId,omitempty" json:"clubId,omitempty"`                           // Set for club admins
	FollowingClubs []string `dynamodbav:"followingClubs,stringset,omitempty" json:"followingClubs,omitempty"` // Club ids the user follows
	ProfilePic     string   `dynamodbav:"profilePic,omitempty" json:"profilePic,omitempty"`
	CreatedAt      string   `dynamodbav:"createdAt" json:"createdAt"`
}

// ✅ Define table name
const UsersTable = "Users"

// ✅ Define GSI for login by email
const UserEmailIndex = "emailId-index" // PK: emailId
