// Package cache holds the redis-backed Document_ID sequence and the factory
// choosing between it and database counting.
package cache
