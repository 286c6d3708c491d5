package commands

// BatchItemResult reports the local outcome for one shipment id in a batch
// operation. Matched is true when a local shipment with that aggregator id
// existed and was updated; ids the aggregator processed but the local store
// does not know stay in the result with Matched false.
type BatchItemResult struct {
	AggregatorShipmentID int64
	Matched              bool
}
