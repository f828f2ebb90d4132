// Package photos holds the images flowing through an order: customer uploads,
// per-photo instructions with reference images and the generated results.
package photos
