// Package auth verifies session tokens minted by the external accounts
// service and maps authorities onto the capability set the API enforces.
//
// Validation failures never block read access; they degrade the caller to
// the fully restricted permission set. Token minting, refresh, and user
// management all live upstream.
package auth
