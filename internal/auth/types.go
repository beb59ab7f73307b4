package auth

// Authority is the role string assigned by the external accounts service.
type Authority string

// Known authority values.
const (
	AuthorityAdmin    Authority = "admin"
	AuthorityOperator Authority = "operator"
	AuthorityViewer   Authority = "viewer"
)

// Identity is a validated session: who the token belongs to and what they
// may do.
type Identity struct {
	UID         string      `json:"uid"`
	Authority   Authority   `json:"authority"`
	Permissions Permissions `json:"permissions"`
}

// Permissions is the capability set derived from an authority. The zero
// value grants nothing, which is the fallback whenever validation fails.
type Permissions struct {
	CanEdit   bool `json:"canEdit"`
	CanCreate bool `json:"canCreate"`
	CanDelete bool `json:"canDelete"`
}

// Restricted returns the most restrictive permission set.
func Restricted() Permissions {
	return Permissions{}
}
