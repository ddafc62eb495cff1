// ABOUTME: Valid-buffer filter: ordered, gap-free subset of host buffers that are listed and exist
// ABOUTME: The host registry is injected so callers and tests control the buffer snapshot

package buffer

// Handle identifies a host-managed buffer. Only positive handles are valid.
type Handle int

// Valid reports whether h is a positive handle. It does not consult the host.
func (h Handle) Valid() bool {
	return h > 0
}

// Registry is the host's view of its buffers.
type Registry interface {
	// Buffers returns a snapshot of every buffer the host knows about.
	Buffers() []Handle
	// Exists reports whether h refers to a live buffer object.
	Exists(h Handle) bool
	// Listed reports the buffer's listed flag.
	Listed(h Handle) bool
}

// Status is what reg reported about one handle.
type Status struct {
	Exists bool
	Listed bool
}

// Valid reports whether the buffer exists and is listed.
func (s Status) Valid() bool {
	return s.Exists && s.Listed
}

// Classify queries reg about h once.
// Non-positive handles are rejected without querying reg, and Listed is only
// asked about buffers that exist.
func Classify(reg Registry, h Handle) Status {
	if !h.Valid() {
		return Status{}
	}
	s := Status{Exists: reg.Exists(h)}
	if s.Exists {
		s.Listed = reg.Listed(h)
	}
	return s
}

// IsValid reports whether h should appear in a tab line.
func IsValid(reg Registry, h Handle) bool {
	return Classify(reg, h).Valid()
}

// Filter returns the candidates that are valid, in their original order.
// The result is never nil; an empty candidate list yields an empty set.
func Filter(reg Registry, candidates ...Handle) []Handle {
	valid := make([]Handle, 0, len(candidates))
	for _, h := range candidates {
		if IsValid(reg, h) {
			valid = append(valid, h)
		}
	}
	return valid
}

// FilterAll snapshots every buffer known to reg and filters it.
func FilterAll(reg Registry) []Handle {
	return Filter(reg, reg.Buffers()...)
}
