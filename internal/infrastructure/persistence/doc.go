// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over PostgreSQL or SQLite for accounts,
// profiles, orders, photos and error logs. Repositories validate domain
// entities before writing and translate driver errors into domain categories.
package persistence
