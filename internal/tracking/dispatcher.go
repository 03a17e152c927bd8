package tracking

import "log"

type Event struct {
	TrackingID string
	Status     string
}

// appender lets tests swap the GORM logger for a fake.
type appender interface {
	Log(trackingID, status string) error
}

// Dispatcher appends ledger entries off the request path. A failed or
// dropped append never reaches the caller; the state transition that
// triggered it has already been committed.
type Dispatcher struct {
	logger appender
	queue  chan Event
}

func NewDispatcher(logger appender) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.TrackingID, ev.Status); err != nil {
			log.Println("tracking append error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the entry rather than block the API
		log.Println("tracking queue full, dropping event")
	}
}
