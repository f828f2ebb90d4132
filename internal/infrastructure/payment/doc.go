// Package payment implements the payment gateway on Stripe Checkout and its signed webhooks.
package payment
