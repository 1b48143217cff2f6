package domain

// LocalConfig represents .desiege/config.local.json, the per-checkout
// defaults for the context flags
type LocalConfig struct {
	Namespace string `json:"namespace"`
	Network   string `json:"network,omitempty"`
	Sender    string `json:"sender,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNamespace ConfigKey = "namespace"
	ConfigKeyNetwork   ConfigKey = "network"
	ConfigKeySender    ConfigKey = "sender"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{
		Namespace: "default",
	}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNamespace,
		ConfigKeyNetwork,
		ConfigKeySender,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "ns" && validKey == ConfigKeyNamespace) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "ns" -> "namespace")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "ns" {
		return ConfigKeyNamespace
	}
	return ConfigKey(key)
}

// Get returns the value stored for key
func (c *LocalConfig) Get(key ConfigKey) string {
	switch key {
	case ConfigKeyNamespace:
		return c.Namespace
	case ConfigKeyNetwork:
		return c.Network
	case ConfigKeySender:
		return c.Sender
	}
	return ""
}

// Set stores value under key
func (c *LocalConfig) Set(key ConfigKey, value string) {
	switch key {
	case ConfigKeyNamespace:
		c.Namespace = value
	case ConfigKeyNetwork:
		c.Network = value
	case ConfigKeySender:
		c.Sender = value
	}
}
