// Package meta carries build metadata.
package meta

// Version is the released version of Dorphin.
const Version = "v0.1.0"
