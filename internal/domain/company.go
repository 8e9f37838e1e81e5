// Package domain defines the core business entities of the BizTime API.
package domain

// Company represents a billable organization identified by a short code.
// The code is chosen by the client at creation time and is immutable; it is
// the only identity guarantee for the entity.
type Company struct {
	Code        string
	Name        string
	Description string
}
