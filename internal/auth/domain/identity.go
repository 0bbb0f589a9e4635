// Package domain defines the core entities for authentication and session rotation.
package domain

// Identity describes an authenticated principal. It is embedded in access
// token claims and carried alongside refresh credentials so a rotation can
// reissue tokens without consulting an external directory.
type Identity struct {
	// Subject is the stable principal identifier (the username).
	Subject string
	// DisplayName is a human-readable name for the principal.
	DisplayName string
	// Capabilities lists the operations the principal may perform.
	Capabilities []string
}
