package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityGrid
	PriorityFootprint
	PriorityTrackHistory
	PriorityPlatformIcon
	PriorityLabel
	PriorityOverlay
	PriorityStatus
	PriorityDebug
)
