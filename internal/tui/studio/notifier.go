package studio

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/toastlab/internal/ports"
)

// Notifier hands notifications from the preview driver to the studio. Notify
// never blocks: when the buffer is full the notification is dropped.
type Notifier struct {
	ch chan ports.ToastProps
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier buffering up to size notifications.
func NewNotifier(size int) *Notifier {
	if size < 1 {
		size = 1
	}
	return &Notifier{ch: make(chan ports.ToastProps, size)}
}

// Notify implements ports.Notifier.
func (n *Notifier) Notify(props ports.ToastProps) {
	select {
	case n.ch <- props:
	default:
	}
}

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		props, ok := <-n.ch
		if !ok {
			return nil
		}
		return toastMsg{props: props}
	}
}
