package service

// MetricsRecorder records business counters. Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	StoreToggled(isOpen bool)
	GateDenied()
	OrderTransitioned(from, to string)
	RealtimeEventPublished(collection string)
	RealtimeEventDropped()
	RealtimeSubscribersChanged(delta int)
}
