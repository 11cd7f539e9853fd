package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteProfileEvent records a profile lifecycle event.
//
// This builds the history of the profile set: every add, update and
// remove becomes a point tagged by event and connection type, queryable
// for auditing ("when did this VPN profile last change?"). The write is
// non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - event: Lifecycle event name ("added", "updated", "removed")
//   - uuid: Profile UUID
//   - id: Human-readable profile name (may be empty for removals)
//   - ctype: Connection type (may be empty for removals)
//
// Example:
//
//	client.WriteProfileEvent("updated", rec.UUID, rec.ID, rec.Type)
func (c *Client) WriteProfileEvent(event, uuid, id, ctype string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"profile_events",
		map[string]string{
			"event": event,
			"type":  ctype,
		},
		map[string]interface{}{
			"uuid": uuid,
			"id":   id,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteProfileCount records the current size of the profile set.
//
// Written periodically so dashboards can graph profile churn without
// reconstructing it from events.
func (c *Client) WriteProfileCount(count int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"profile_count",
		map[string]string{},
		map[string]interface{}{
			"count": count,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for custom measurements that don't fit the helper methods.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}

// WritePointWithTime writes a custom point with a specific timestamp.
//
// Use this when the timestamp is not "now" (e.g., delayed data).
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
