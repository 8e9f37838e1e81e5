package domain

import "time"

// Invoice represents a billing record owned by exactly one company.
// ID is generated by the store on creation. CompCode references the owning
// company and is never altered after creation. Amt is the only field mutable
// through the API; Paid, AddDate and PaidDate are store-assigned.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}
