package entity

type MessageDispatcher interface {
	Send(notification []string) error
}
