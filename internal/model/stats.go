// internal/model/stats.go
package model

type Stats struct {
	TotalCustomers    int `json:"total_customers"`
	TotalInteractions int `json:"total_interactions"`
	PTEmails          int `json:"pt_emails"`
}

// Overview is everything the dashboard page shows.
type Overview struct {
	Customers    []Customer
	Interactions []Interaction
	Stats        Stats
}
