// Package service holds the provider registry: registration, listing,
// keyword discovery and tool dispatch by tool ID.
package service
