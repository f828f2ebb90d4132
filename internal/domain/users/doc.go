// Package users defines accounts, studio profiles and the contracts of the
// authentication flow (credentials, OAuth and session tokens).
package users
