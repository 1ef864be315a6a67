// Package kernel holds the shared value objects of the domain model:
// UUID identifiers and geographic locations. Both are immutable and must
// be created through their constructor functions; zero values fail
// Validate.
package kernel
