package shipment

// TrackingEvent is one entry of the aggregator's tracking history for a
// shipment. The shape mirrors the aggregator's unversioned wire contract, so
// all fields are free-form strings and none is required.
type TrackingEvent struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Activity string `json:"activity"`
	Location string `json:"location"`
}
