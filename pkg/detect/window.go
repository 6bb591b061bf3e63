package detect

import "github.com/soundprediction/cooccur/pkg/types"

// window is the FIFO of recently seen, still-relevant events for one
// location group. Events are appended in scan order and evicted only from
// the front, so the window stays time-ordered whenever the input group is.
type window struct {
	events []types.Event
}

func (w *window) pushBack(e types.Event) {
	w.events = append(w.events, e)
}

func (w *window) popFront() {
	if len(w.events) > 0 {
		w.events = w.events[1:]
	}
}

func (w *window) len() int {
	return len(w.events)
}

// snapshot returns a copy of the current contents. The scan loop evicts from
// the window while iterating and appends the incoming event afterward, so it
// must walk a copy taken before the incoming event is processed.
func (w *window) snapshot() []types.Event {
	if len(w.events) == 0 {
		return nil
	}
	s := make([]types.Event, len(w.events))
	copy(s, w.events)
	return s
}
