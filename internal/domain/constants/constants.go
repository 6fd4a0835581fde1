// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider identifiers used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Context keys set by the delivery layer.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// RoleAdmin guards the admin route group.
const RoleAdmin = "admin"
