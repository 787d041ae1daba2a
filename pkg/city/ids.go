package city

import "fmt"

// IDSource issues deterministic feature IDs from a monotonic counter. The
// engine injects one source per session so repeated runs over the same
// placements produce identical IDs, which is what golden tests assert on.
type IDSource struct {
	next int
}

// NewIDSource creates a source starting at zero.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next ID for the given kind, e.g. "road_0007".
func (s *IDSource) Next(kind string) string {
	id := fmt.Sprintf("%s_%04d", kind, s.next)
	s.next++
	return id
}

// Nextf returns the next ID with an extra descriptive suffix,
// e.g. "road_0007_connection".
func (s *IDSource) Nextf(kind, suffix string) string {
	id := fmt.Sprintf("%s_%04d_%s", kind, s.next, suffix)
	s.next++
	return id
}

// Counter exposes the current counter value, for snapshotting.
func (s *IDSource) Counter() int {
	return s.next
}
