package auth

// User is the identity entity. Vendors and consumers share it; the
// vendor profile itself lives in the vendor package.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const (
	RoleVendor   = "VENDOR"
	RoleConsumer = "CONSUMER"
	RoleAdmin    = "ADMIN"
)
