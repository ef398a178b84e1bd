// File: internal/model/user.go
package model

type User struct {
	ID       int    `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
	FullName string `db:"nombre_completo" json:"nombre_completo"`
	Role     string `db:"tipo_usuario" json:"tipo_usuario"`
	Active   bool   `db:"activo" json:"activo"`
}

// User roles. Standard users can only manage their own loans.
const (
	RoleAdmin    = "admin"
	RoleStandard = "standard"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
