package logtime

import "github.com/gen2brain/beeep"

type Notificator interface {
	Notify(title, message string) error
}

type BeeepNotificator struct{}

func (no *BeeepNotificator) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}
