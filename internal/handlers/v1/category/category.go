package category

// Category is the API response model for a category.
type Category struct {
	ID          string `json:"id" doc:"Category UUID"`
	Name        string `json:"name" doc:"Category name, unique per user"`
	Type        string `json:"type" doc:"Category type, income or expense"`
	Description string `json:"description,omitempty" doc:"Optional description"`
}
