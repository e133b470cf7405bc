package studio

import "github.com/alexisbeaulieu97/toastlab/internal/ports"

type pane int

const (
	paneEditor pane = iota
	paneExport
	paneDiff
)

// toastMsg carries a notification fired by the preview driver.
type toastMsg struct {
	props ports.ToastProps
}

// toastExpiredMsg removes a notification once its duration has passed.
type toastExpiredMsg struct {
	id int
}

// hostSchemeMsg reports the terminal background.
type hostSchemeMsg struct {
	dark bool
}
