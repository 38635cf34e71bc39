package ws

import (
	"encoding/json"
	"time"

	"campushire/internal/domain/application"

	"github.com/google/uuid"
)

// ApplicationStatusEvent is pushed to dashboard clients whenever a
// transition commits, so status boards refresh without polling.
type ApplicationStatusEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

func (h *Hub) NotifyApplicationStatus(id, jobID uuid.UUID, status application.Status) {
	if h == nil {
		return
	}

	evt := ApplicationStatusEvent{
		Type:          "application_status_changed",
		ApplicationID: id.String(),
		JobID:         jobID.String(),
		Status:        string(status),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
