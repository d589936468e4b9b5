package sqlconfig

// TransactionType distinguishes money coming in from money going out.
// The amount column is always non-negative; the sign lives here.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two supported types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
