package transaction

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	CategoryID      string `json:"categoryID,omitempty" doc:"Category UUID, empty when the category was deleted"`
	GroupID         string `json:"groupID,omitempty" doc:"Group UUID, empty for personal transactions"`
	TransactionName string `json:"transactionName" doc:"Name of the transaction"`
	Type            string `json:"type" doc:"Transaction type, income or expense"`
	Amount          string `json:"amount" doc:"Decimal amount"`
	TransactionDate string `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}
