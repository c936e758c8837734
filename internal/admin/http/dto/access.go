// Package dto contains request and response payloads for admin access endpoints.
package dto

// AccessStatusResponse reports the outcome of an admin access check.
type AccessStatusResponse struct {
	Authorized bool `json:"authorized"`
}
