package parameter

// Scene Streaming
const (
	// StreamBatchSize is nodes committed per job per tick
	// Small enough to spread large scenes over several ticks
	StreamBatchSize = 8

	// StreamMaxNodes caps a single manifest to guard against cycles
	// introduced by hand-edited files
	StreamMaxNodes = 4096
)
