// internal/model/interaction.go
package model

// Interaction is an interactions row joined with its customer's name.
type Interaction struct {
	ID              int        `db:"id" json:"id"`
	CustomerName    string     `db:"customer_name" json:"customer_name"`
	InteractionType string     `db:"interaction_type" json:"interaction_type"` // email, call, meeting, support
	Subject         string     `db:"subject" json:"subject"`
	Description     *string    `db:"description" json:"description"`
	CreatedBy       *string    `db:"created_by" json:"created_by"`
	CreatedAt       *Timestamp `db:"created_at" json:"created_at"`
}
