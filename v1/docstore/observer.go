package docstore

import (
	"time"

	"github.com/Aleph-Alpha/docstore/v1/observability"
)

// observe notifies the observer about an operation if one is configured.
// This is used internally to track store operations for metrics.
//
// Notes:
//   - itemID: the document id the operation addressed, empty for
//     container-wide operations
//   - the reported size is the serialized payload length from the response
//     diagnostics
func (ct *Container) observe(operation, itemID string, start time.Time, err error, diag Diagnostics, metadata map[string]interface{}) {
	c := ct.database.client
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "docstore",
		Operation:   operation,
		Resource:    ct.database.id + "/" + ct.id,
		SubResource: itemID,
		Duration:    time.Since(start),
		Error:       err,
		Size:        int64(diag.ClientSideRequestStatistics.TotalResponsePayloadLengthInBytes),
		Metadata:    metadata,
	})
}
