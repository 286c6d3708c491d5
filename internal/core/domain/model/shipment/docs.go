// Package shipment contains the Shipment aggregate: the courier-side record
// created as a side effect of a successful order submission to the shipping
// aggregator. A shipment always belongs to exactly one order and mirrors the
// aggregator's view of that consignment (AWB, courier, label, pickup,
// tracking snapshot).
//
// The fulfilment lifecycle only moves forward:
//
//	created ──> awb_assigned ──> label_generated ──> pickup_scheduled
//
// Individual steps may be skipped when the aggregator performed them out of
// band, but the status never moves backward.
package shipment
