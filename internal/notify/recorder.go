package notify

import (
	"context"
	"fmt"

	"garage-desk/internal/models"
	"garage-desk/internal/store"

	"github.com/sirupsen/logrus"
)

const (
	TypeVehicleCreated = "VEHICLE_CREATED"
	TypeVehicleUpdated = "VEHICLE_UPDATE"
)

// Recorder writes domain events to the notification log as a fire-and-forget
// side effect: a failed write is logged and swallowed, it never fails the
// operation that triggered it.
type Recorder struct {
	notifications *store.NotificationStore
	log           logrus.FieldLogger
}

func NewRecorder(notifications *store.NotificationStore, log logrus.FieldLogger) *Recorder {
	return &Recorder{notifications: notifications, log: log}
}

func (r *Recorder) VehicleCreated(ctx context.Context, v *store.VehicleRow) {
	msg := fmt.Sprintf("New vehicle %s registered for %s", v.VehicleNumber, v.ClientName)
	r.record(ctx, TypeVehicleCreated, msg, v.ID)
}

func (r *Recorder) VehicleUpdated(ctx context.Context, v *store.VehicleRow) {
	msg := fmt.Sprintf("Vehicle %s was updated", v.VehicleNumber)
	r.record(ctx, TypeVehicleUpdated, msg, v.ID)
}

func (r *Recorder) record(ctx context.Context, eventType, message string, vehicleID uint) {
	n := models.Notification{
		Type:      eventType,
		Message:   message,
		VehicleID: &vehicleID,
	}
	if err := r.notifications.Create(ctx, &n); err != nil {
		r.log.WithError(err).WithFields(logrus.Fields{
			"type":       eventType,
			"vehicle_id": vehicleID,
		}).Warn("failed to record notification")
	}
}
