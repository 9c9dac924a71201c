package commands

import (
	"context"
	"time"

	"foodmarket/internal/core/ports"
)

// UpdatePartnerLocationCommandHandler handles delivery partner position
// reports. Position upserts are single-row writes with no cross-aggregate
// consistency requirements, so the handler works on the repository directly
// without a unit of work.
type UpdatePartnerLocationCommandHandler struct {
	locationRepo ports.LocationRepository
}

// NewUpdatePartnerLocationCommandHandler creates a handler for position reports.
func NewUpdatePartnerLocationCommandHandler(locationRepo ports.LocationRepository) UpdatePartnerLocationCommandHandler {
	return UpdatePartnerLocationCommandHandler{locationRepo: locationRepo}
}

// Handle stores the partner's last known position, replacing any previous report.
func (h *UpdatePartnerLocationCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.locationRepo.UpsertPartnerLocation(ctx, cmd.PartnerID(), cmd.Location(), time.Now())
}
