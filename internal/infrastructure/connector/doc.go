// Package connector adapts external storage services to the domain's BlobConnector.
package connector
