package catalog

import "sync/atomic"

// Sequencer hands out product ids counting up from zero.
type Sequencer struct{ n atomic.Int64 }

// Next returns the next id.
func (s *Sequencer) Next() int { return int(s.n.Add(1) - 1) }
