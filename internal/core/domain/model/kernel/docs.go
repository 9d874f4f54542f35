// Package kernel holds the value objects shared by the fleet aggregates.
package kernel
