// Package studio implements the four step studio wizard (welcome, upload,
// design, payment) as a plain state value plus the facts that cap it.
package studio
