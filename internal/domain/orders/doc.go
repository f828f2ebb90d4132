// Package orders models a customer order, its fulfillment states and progress
// milestones, and the events published when it changes.
package orders
