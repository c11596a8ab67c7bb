package audit

import "log"

type Event struct {
	SalonID  uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

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
			ev.SalonID,
			ev.UserID,
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
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event rather than blocking the API
		log.Println("audit queue full, dropping event")
	}
}
