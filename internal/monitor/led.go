package monitor

import (
	"log/slog"

	"github.com/stianeikeland/go-rpio"
)

// LED drives a GPIO pin through go-rpio. The pin is opened per operation so
// a crash never leaves the memory map held.
type LED struct {
	Pin int
}

func (l *LED) On() error {
	slog.Debug("LED.On", "pin", l.Pin)
	return l.set(true)
}

func (l *LED) Off() error {
	slog.Debug("LED.Off", "pin", l.Pin)
	return l.set(false)
}

func (l *LED) set(on bool) error {
	if err := rpio.Open(); err != nil {
		return err
	}

	defer rpio.Close()

	pin := rpio.Pin(l.Pin)
	pin.Output()

	if on {
		pin.High()
	} else {
		pin.Low()
	}

	return nil
}
