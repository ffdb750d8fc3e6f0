package mail

import (
	"log"
	"sync"
)

// Dispatcher hands notifications to a background worker so callers never
// wait on mail transport. Failures are logged and dropped, never retried and
// never reported back to the operation that queued the mail.
type Dispatcher struct {
	sender Sender
	queue  chan Notification
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Notification, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for n := range d.queue {
		if err := d.sender.Send(n); err != nil {
			log.Printf("mail: %v", err)
		}
	}
}

// Dispatch enqueues a notification without blocking. If the queue is full
// the notification is dropped.
func (d *Dispatcher) Dispatch(n Notification) {
	select {
	case d.queue <- n:
	default:
		log.Printf("mail: queue full, dropping %q to %s", n.Subject, n.Recipient)
	}
}

// Stop drains the queue and waits for the worker to finish. Dispatch must
// not be called after Stop.
func (d *Dispatcher) Stop() {
	close(d.queue)
	d.wg.Wait()
}
