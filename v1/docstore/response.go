package docstore

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ClientSideRequestStatistics carries the synthetic timing and payload-size
// diagnostics attached to every response.
type ClientSideRequestStatistics struct {
	// RequestDurationInMs is the elapsed time of the operation in
	// milliseconds. Never negative; floored at zero to tolerate clock skew.
	RequestDurationInMs float64 `json:"requestDurationInMs"`

	// TotalResponsePayloadLengthInBytes is the serialized size of the
	// response resource(s). Zero when the resource is absent.
	TotalResponsePayloadLengthInBytes int `json:"totalResponsePayloadLengthInBytes"`
}

// Diagnostics mirrors the diagnostics block of the emulated service so
// consumers can exercise logging and telemetry code paths that read it.
type Diagnostics struct {
	ClientSideRequestStatistics ClientSideRequestStatistics `json:"clientSideRequestStatistics"`
}

// ItemResponse wraps a single, possibly absent, document.
type ItemResponse struct {
	// Resource is the document, or nil when the item does not exist.
	Resource Document `json:"resource,omitempty"`

	// RequestCharge is the emulated cost unit for this operation.
	RequestCharge float64 `json:"requestCharge"`

	// ActivityID uniquely identifies this operation.
	ActivityID string `json:"activityId"`

	// Diagnostics carries client-side request statistics.
	Diagnostics Diagnostics `json:"diagnostics"`
}

// FeedResponse wraps a list result. For full and id projections Resources
// holds Document values; for COUNT queries it holds a single number.
type FeedResponse struct {
	// Resources are the query or read-all results.
	Resources []any `json:"resources"`

	// RequestCharge is the emulated cost unit for this operation.
	RequestCharge float64 `json:"requestCharge"`

	// ActivityID uniquely identifies this operation.
	ActivityID string `json:"activityId"`

	// Diagnostics carries client-side request statistics.
	Diagnostics Diagnostics `json:"diagnostics"`
}

// newItemResponse builds the envelope for a single-document result.
// start must be captured before the operation executed.
func newItemResponse(start time.Time, charge float64, resource Document) *ItemResponse {
	length := 0
	if resource != nil {
		length = payloadLength(resource)
	}
	return &ItemResponse{
		Resource:      resource,
		RequestCharge: charge,
		ActivityID:    uuid.NewString(),
		Diagnostics:   newDiagnostics(start, length),
	}
}

// newFeedResponse builds the envelope for a list result.
func newFeedResponse(start time.Time, charge float64, resources []any) *FeedResponse {
	if resources == nil {
		resources = []any{}
	}
	return &FeedResponse{
		Resources:     resources,
		RequestCharge: charge,
		ActivityID:    uuid.NewString(),
		Diagnostics:   newDiagnostics(start, payloadLength(resources)),
	}
}

func newDiagnostics(start time.Time, payloadLength int) Diagnostics {
	elapsed := time.Since(start).Seconds() * 1000
	if elapsed < 0 {
		elapsed = 0
	}
	return Diagnostics{
		ClientSideRequestStatistics: ClientSideRequestStatistics{
			RequestDurationInMs:               elapsed,
			TotalResponsePayloadLengthInBytes: payloadLength,
		},
	}
}

// payloadLength is the serialized byte length of a resource.
func payloadLength(v any) int {
	raw, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(raw)
}
