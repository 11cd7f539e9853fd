// Package mqtt provides MQTT client connectivity for the netweave daemon.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for offline detection
//   - Connection health monitoring
//
// # Architecture
//
// netweave publishes profile lifecycle events over MQTT so management
// frontends and other daemons can track the profile set without polling.
// Event payloads carry profile identity only; secret values never cross
// the bus.
//
//	netweave daemon → MQTT Broker → frontends / subscribers
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//   - Message payloads are not encrypted beyond TLS transport
//
// # Performance Characteristics
//
//   - Connection: <1 second to local broker
//   - Publish latency: <10ms for QoS 1 to local broker
//   - Reconnect: Exponential backoff 1s-60s with jitter
//   - Message throughput: Broker-limited (typically 10K+ msg/sec)
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Subscribe to all profile lifecycle events
//	err = client.Subscribe(mqtt.Topics{}.AllProfileEvents(), 1,
//	    func(topic string, payload []byte) error {
//	        log.Printf("Received: %s = %s", topic, payload)
//	        return nil
//	    })
//
//	// Publish a lifecycle event
//	topic := mqtt.Topics{}.ProfileEvent(mqtt.ProfileEventAdded, uuid)
//	client.Publish(topic, payload, 1, false)
package mqtt
