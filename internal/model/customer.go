// internal/model/customer.go
package model

// Customer is one row of the customers table. Optional columns are pointers
// so NULL survives as JSON null.
type Customer struct {
	ID        int        `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Email     *string    `db:"email" json:"email"`
	Phone     *string    `db:"phone" json:"phone"`
	Address   *string    `db:"address" json:"address"`
	Company   *string    `db:"company" json:"company"`
	Notes     *string    `db:"notes" json:"notes"`
	CreatedAt *Timestamp `db:"created_at" json:"created_at"`
}
