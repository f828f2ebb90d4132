// Package payments describes checkout through a hosted payment page and the
// signed webhook notifications that settle an order.
package payments
