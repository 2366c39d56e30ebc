package audit

import "log"

type Event struct {
	ProviderID uint
	ActorID    *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher hands events to a single background worker so a slow audit
// write never blocks a request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ProviderID,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop the event, the API never breaks over audit
		log.Println("audit queue full, dropping event")
	}
}
