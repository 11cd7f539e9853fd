package profile

// Notification events let observers outside the core react to secrets
// changes (UI refresh, credential cache invalidation). Listeners are
// registered per connection and dispatched synchronously, in registration
// order, on the goroutine performing the secrets operation.
//
// Listeners must not mutate the connection they observe.

// OnSecretsUpdated registers a listener for the "secrets updated" event.
// The listener receives the affected setting kind name, or the empty
// string for a bulk update.
func (c *Connection) OnSecretsUpdated(fn func(settingName string)) {
	if fn == nil {
		return
	}
	c.secretsUpdated = append(c.secretsUpdated, fn)
}

// OnSecretsCleared registers a listener for the "secrets cleared" event.
func (c *Connection) OnSecretsCleared(fn func()) {
	if fn == nil {
		return
	}
	c.secretsCleared = append(c.secretsCleared, fn)
}

func (c *Connection) emitSecretsUpdated(settingName string) {
	for _, fn := range c.secretsUpdated {
		fn(settingName)
	}
}

func (c *Connection) emitSecretsCleared() {
	for _, fn := range c.secretsCleared {
		fn()
	}
}
