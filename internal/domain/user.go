package domain

// Registration statuses returned by the sign-up eligibility check.
const (
	StatusUsuarioNaoEncontrado = "USUARIO_NAO_ENCONTRADO"
	StatusUsuarioNaoRegistrado = "USUARIO_NAO_REGISTRADO"
	StatusUsuarioRegistrado    = "USUARIO_REGISTRADO"
)

const RoleAdmin = "Admin"

type User struct {
	ID             int64   `db:"id"`
	Username       string  `db:"username"`
	RaNome         string  `db:"ra_nome"`
	Email          string  `db:"email"`
	ProtheusID     string  `db:"protheus_id"`
	HashedPassword string  `db:"hashed_password"`
	SecurityStamp  string  `db:"security_stamp"`
	CanModerate    bool    `db:"can_moderate"`
	CanManageUsers bool    `db:"can_manage_users"`
	Photo          []byte  `db:"photo"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
	DeletedAt      *int64  `db:"deleted_at"`
}

// UserProtheus is a row from the external payroll user table. Read-only:
// its existence gates sign-up eligibility.
type UserProtheus struct {
	Username   string `db:"username"`
	ProtheusID string `db:"protheus_id"`
	Email      string `db:"email"`
}

// Capabilities are the named boolean flags a role grants. Role names map
// to capability sets explicitly; nothing is derived at runtime.
type Capabilities struct {
	CanModerate    bool
	CanManageUsers bool
}

var roleCapabilities = map[string]Capabilities{
	RoleAdmin: {CanModerate: true, CanManageUsers: true},
}

// CapabilitiesForRole returns the capability set granted by a role name.
func CapabilitiesForRole(role string) (Capabilities, bool) {
	caps, ok := roleCapabilities[role]
	return caps, ok
}
