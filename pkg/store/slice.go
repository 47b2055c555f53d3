package store

// Phase summarises where a slice is in its request cycle.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Slice is the state of one request cycle.
type Slice[T any] struct {
	Loading bool
	Data    *T
	Error   string
	Success bool
}

// Phase derives the slice's phase from its fields.
func (s Slice[T]) Phase() Phase {
	switch {
	case s.Loading:
		return Loading
	case s.Error != "":
		return Failed
	case s.Data != nil || s.Success:
		return Loaded
	default:
		return Idle
	}
}

// cycle names the events one slice reacts to.
type cycle struct {
	request, success, fail ActionType
	resets                 []ActionType
	// markSuccess sets Success on the SUCCESS event.
	markSuccess bool
}

// reduce applies ev to s. A REQUEST discards data and error, a reset returns
// the zero slice and anything unrecognised leaves s unchanged.
func reduce[T any](s Slice[T], ev Event, c cycle) Slice[T] {
	switch ev.Type {
	case c.request:
		return Slice[T]{Loading: true}
	case c.success:
		next := Slice[T]{Success: c.markSuccess}
		if data, ok := ev.Payload.(T); ok {
			next.Data = &data
		}
		return next
	case c.fail:
		msg, _ := ev.Payload.(string)
		return Slice[T]{Error: msg}
	}
	for _, r := range c.resets {
		if ev.Type == r {
			return Slice[T]{}
		}
	}
	return s
}
