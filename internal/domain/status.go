package domain

// Borrow request statuses. PENDING is the only non-terminal state.
const (
	RequestStatusPending   string = "PENDING"
	RequestStatusApproved  string = "APPROVED"
	RequestStatusRejected  string = "REJECTED"
	RequestStatusCancelled string = "CANCELLED"
)

// Borrow transaction statuses. RETURNED is terminal.
const (
	TxnStatusBorrowing     string = "BORROWING"
	TxnStatusReturnPending string = "RETURN_PENDING"
	TxnStatusOverdue       string = "OVERDUE"
	TxnStatusReturned      string = "RETURNED"
)

// Review statuses.
const (
	ReviewStatusPending  string = "PENDING"
	ReviewStatusApproved string = "APPROVED"
	ReviewStatusRejected string = "REJECTED"
)

var requestTransitions = map[string][]string{
	RequestStatusPending: {RequestStatusApproved, RequestStatusRejected, RequestStatusCancelled},
}

var txnTransitions = map[string][]string{
	TxnStatusBorrowing:     {TxnStatusOverdue, TxnStatusReturnPending, TxnStatusReturned},
	TxnStatusOverdue:       {TxnStatusReturnPending, TxnStatusReturned},
	TxnStatusReturnPending: {TxnStatusReturned},
}

// CanRequestTransition reports whether a borrow request may move from one
// status to another. Terminal statuses permit nothing.
func CanRequestTransition(from, to string) bool {
	return contains(requestTransitions[from], to)
}

// CanTxnTransition reports whether a borrow transaction may move from one
// status to another.
func CanTxnTransition(from, to string) bool {
	return contains(txnTransitions[from], to)
}

func contains(allowed []string, s string) bool {
	for _, a := range allowed {
		if a == s {
			return true
		}
	}
	return false
}
