package model

// Payer is a club member or other party that can owe or pay money.
type Payer struct {
	ID               string
	Name             string
	MembershipNumber string
}

// CostCenter classifies financial entries for reporting
// (membership fees, events, merchandising, ...).
type CostCenter struct {
	ID             string
	Name           string
	Classification Classification // usual direction of money in this center
	Description    string
}
