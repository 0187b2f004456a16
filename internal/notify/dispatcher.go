package notify

import (
	"go.uber.org/zap"
)

// Message is one in-app notification to be persisted for a user.
type Message struct {
	UserID    string
	Type      string
	Message   string
	Link      string
	EventName string
	DateTime  string
	Location  string
	Comments  string
}

// Dispatcher persists notifications off the request path through a
// buffered channel. A full queue drops the notification with a log line;
// notifying must never fail the API call that triggered it.
type Dispatcher struct {
	store  *Store
	queue  chan Message
	logger *zap.Logger
}

func NewDispatcher(store *Store, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		queue:  make(chan Message, 100),
		logger: logger,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.store.Save(msg); err != nil {
			d.logger.Error("notification save failed",
				zap.String("user_id", msg.UserID),
				zap.String("type", msg.Type),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping",
			zap.String("user_id", msg.UserID),
			zap.String("type", msg.Type),
		)
	}
}
