package auth

// authorityPermissions maps each authority to its capability set. This is
// the single source of truth for the authorisation model. Unknown
// authorities get the zero (fully restricted) set.
var authorityPermissions = map[Authority]Permissions{
	AuthorityAdmin: {
		CanEdit:   true,
		CanCreate: true,
		CanDelete: true,
	},
	AuthorityOperator: {
		CanEdit:   true,
		CanCreate: true,
	},
	AuthorityViewer: {},
}

// PermissionsForAuthority returns the capability set for an authority.
// Unknown authorities are treated as fully restricted rather than
// rejected; the caller already has a valid token, it just grants nothing.
func PermissionsForAuthority(authority Authority) Permissions {
	return authorityPermissions[authority]
}
