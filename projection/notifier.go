package projection

// Notifier is the render signal shared by every local store. Sends are
// coalesced: a consumer that has not drained the channel yet will see
// all intermediate mutations as a single wake-up.
type Notifier struct {
	ch chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

func (n *Notifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *Notifier) Wait() <-chan struct{} {
	return n.ch
}
