// Package kernel contains shared value objects used across domain aggregates.
// Currently this is the UUID value object that wraps github.com/google/uuid
// to keep aggregate identity construction validated and immutable.
package kernel
