package domain

import "time"

// GenerationRecord is one entry of the generation audit log.
type GenerationRecord struct {
	ID        string
	Topic     string
	Grade     string
	Subject   string
	Model     string
	Status    GenerationStatus
	ErrorCode string
	LatencyMs int64
	CreatedAt time.Time
}
