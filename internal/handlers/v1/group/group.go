package group

// Group is the API response model for a group.
type Group struct {
	ID          string `json:"id" doc:"Group UUID"`
	Name        string `json:"name" doc:"Group name"`
	Description string `json:"description,omitempty" doc:"Optional description"`
	OwnerID     string `json:"ownerID" doc:"UUID of the owning user"`
}

// Member is the API response model for a group member.
type Member struct {
	UserID    string `json:"userID" doc:"User UUID"`
	FirstName string `json:"firstName" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
}
