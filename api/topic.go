package api

type Topic string

const (
	ImageRenamed         Topic = "event-image-renamed"
	ExifLoaded           Topic = "event-exif-loaded"
	ProcessStatusUpdated Topic = "event-process-status-updated"
	ShowError            Topic = "event-show-error"
)
