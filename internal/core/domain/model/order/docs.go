// Package order contains the Order aggregate: a merchant-supplied order record
// that is persisted locally and relayed to the external shipping aggregator.
//
// The aggregate enforces the submission lifecycle:
//
//	created ──┬──> submitted
//	          └──> failed
//
// An order is always persisted in created status before any external call is
// attempted, and transitions exactly once, forward only.
package order
