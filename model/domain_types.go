// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\model\domain_types.go
package model

type Supplier struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Phone     string `db:"phone" json:"phone"`
	Email     string `db:"email" json:"email"`
	Address   string `db:"address" json:"address"`
	Notes     string `db:"notes" json:"notes"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}
