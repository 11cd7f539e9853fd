package mqtt

import "fmt"

// Topic prefixes for the netweave MQTT surface.
//
// Profile topics use the scheme: netweave/profiles/{event}/{uuid}
const (
	// TopicPrefix is the base for all netweave topics.
	TopicPrefix = "netweave"

	// TopicPrefixProfiles is the base for profile lifecycle topics.
	TopicPrefixProfiles = "netweave/profiles"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "netweave/system"
)

// Profile lifecycle event names used in topic paths.
const (
	ProfileEventAdded   = "added"
	ProfileEventUpdated = "updated"
	ProfileEventRemoved = "removed"
)

// Topics provides builders for netweave MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	t := topics.ProfileEvent(mqtt.ProfileEventAdded, "6fd0cf30-...")
//	// Returns: "netweave/profiles/added/6fd0cf30-..."
type Topics struct{}

// ProfileEvent returns the topic for a profile lifecycle event.
//
// Example: netweave/profiles/updated/6fd0cf30-f1a9-4b04-8120-b0299f8cbb0e
func (Topics) ProfileEvent(event, uuid string) string {
	return fmt.Sprintf("%s/%s/%s", TopicPrefixProfiles, event, uuid)
}

// ProfileSecrets returns the topic for secrets-related notifications on a
// profile. Payloads never carry secret values, only the setting name.
//
// Example: netweave/profiles/secrets/6fd0cf30-f1a9-4b04-8120-b0299f8cbb0e
func (Topics) ProfileSecrets(uuid string) string {
	return fmt.Sprintf("%s/secrets/%s", TopicPrefixProfiles, uuid)
}

// SystemStatus returns the system status topic.
//
// Example: netweave/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// SystemShutdown returns the shutdown signal topic.
//
// Example: netweave/system/shutdown
func (Topics) SystemShutdown() string {
	return fmt.Sprintf("%s/shutdown", TopicPrefixSystem)
}

// AllProfileEvents returns a pattern matching every profile lifecycle
// event.
//
// Pattern: netweave/profiles/+/+
func (Topics) AllProfileEvents() string {
	return fmt.Sprintf("%s/+/+", TopicPrefixProfiles)
}

// AllTopics returns a pattern matching all netweave topics.
// Use with caution - this receives ALL traffic.
//
// Pattern: netweave/#
func (Topics) AllTopics() string {
	return "netweave/#"
}
