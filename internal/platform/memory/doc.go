// Package memory provides in-process implementations of the store interfaces.
// Nothing here survives a restart.
package memory
