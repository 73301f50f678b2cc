package ip2geo

// Option configures Open. The functional-options shape follows
// pg9182/ip2x's general preference for small, explicit constructors
// over config structs; this module's DB needs exactly one knob so far.
type Option func(*openConfig)

type openConfig struct {
	mmap bool
}

func defaultOpenConfig() openConfig {
	return openConfig{mmap: true}
}

// WithoutMmap disables memory-mapping the file, reading it fully into
// a heap buffer instead. Useful on filesystems where mmap is
// unreliable (network mounts) or in environments that disallow it.
func WithoutMmap() Option {
	return func(c *openConfig) {
		c.mmap = false
	}
}
