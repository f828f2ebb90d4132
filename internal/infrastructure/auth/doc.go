// Package auth implements session tokens with golang-jwt and Google sign-in with x/oauth2.
package auth
