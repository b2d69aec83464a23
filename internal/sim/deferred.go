package sim

// deferredSpawn is a spawn scheduled for a later game time.
// generation ties it to the session that scheduled it.
type deferredSpawn struct {
	fireAt     float64
	generation uint64
	action     func(*State)
}

// deferredQueue holds pending spawns keyed by game time, not wall-clock time,
// so pausing or restarting never fires them early or into the wrong session.
type deferredQueue struct {
	items []deferredSpawn
}

func (q *deferredQueue) schedule(fireAt float64, generation uint64, action func(*State)) {
	q.items = append(q.items, deferredSpawn{fireAt: fireAt, generation: generation, action: action})
}

// due removes and returns every entry with fireAt <= now that belongs to
// generation. Entries from other generations are dropped without running.
func (q *deferredQueue) due(now float64, generation uint64) []deferredSpawn {
	var ready []deferredSpawn
	pending := q.items[:0]
	for _, d := range q.items {
		switch {
		case d.generation != generation:
			// stale
		case d.fireAt <= now:
			ready = append(ready, d)
		default:
			pending = append(pending, d)
		}
	}
	q.items = pending
	return ready
}

func (q *deferredQueue) clear() {
	q.items = nil
}

// Len returns the number of pending entries.
func (q *deferredQueue) Len() int {
	return len(q.items)
}

// drainDeferred runs the deferred spawns that are due this tick.
// Actions may schedule new entries; those wait for a later drain.
func (s *State) drainDeferred() {
	for _, d := range s.deferred.due(s.gameTime, s.generation) {
		d.action(s)
	}
}
