package entity

// Observer receives the broadcast weather value.
type Observer interface {
	Update(notification string)
}

type subject interface {
	Attach(observer Observer)
	NotifyObservers()
}
