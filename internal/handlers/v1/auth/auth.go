package auth

// User is the API response model for a user.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email" doc:"Email address"`
	FirstName string `json:"firstName" doc:"First name"`
	LastName  string `json:"lastName" doc:"Last name"`
}
