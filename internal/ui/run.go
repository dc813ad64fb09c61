package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"csskit/internal/driver"
)

// Run shows the progress view on out while work runs. work receives the
// observer to hand to the driver; the view closes once work returns.
func Run(out io.Writer, title string, files []string, work func(driver.Observer) error) error {
	events := make(chan driver.Event, 256)
	errc := make(chan error, 1)
	go func() {
		err := work(func(ev driver.Event) { events <- ev })
		close(events)
		errc <- err
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out))
	_, uiErr := program.Run()
	// the view may quit early; keep workers from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	err := <-errc
	if uiErr != nil {
		return uiErr
	}
	return err
}
