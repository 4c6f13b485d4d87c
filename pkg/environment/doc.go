// Package environment names the deployment environment (development, staging,
// production), parses it from NODE_ENV style values and carries it through
// request contexts so handlers can branch on it.
package environment
