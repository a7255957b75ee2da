package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/lumastack/lightsd/internal/models"
)

// setFunc is the handler a device handle is bound to at open time.
type setFunc func(ctx context.Context, ls models.LightState) (models.State, *models.AppError)

// Device is an open handle on one logical light. The handler is
// resolved once when the handle is opened; every Set goes straight to
// it without name lookups.
type Device struct {
	id     string
	light  models.LightID
	set    setFunc
	closed atomic.Bool
}

// Open resolves a light name to a device handle. Unknown names, and the
// attention light on boards that lack it, fail with EINVAL.
func (c *Controller) Open(name string) (*Device, error) {
	id, ok := models.ParseLightID(name)
	if !ok {
		return nil, fmt.Errorf("open light %q: %w", name, unix.EINVAL)
	}

	var fn setFunc
	switch id {
	case models.LightBacklight:
		fn = c.SetBacklight
	case models.LightBattery:
		fn = c.SetBattery
	case models.LightNotifications:
		fn = c.SetNotifications
	case models.LightAttention:
		if !c.profile.Capabilities.Attention {
			return nil, fmt.Errorf("open light %q: %w", name, unix.EINVAL)
		}
		fn = c.SetAttention
	}

	d := &Device{id: uuid.NewString(), light: id, set: fn}
	slog.Debug("light device opened", "light", id.String(), "device_id", d.id)
	return d, nil
}

// ID returns the unique handle ID.
func (d *Device) ID() string { return d.id }

// Light returns the logical light this handle is bound to.
func (d *Device) Light() models.LightID { return d.light }

// Set forwards a state request to the bound handler.
func (d *Device) Set(ctx context.Context, ls models.LightState) (models.State, *models.AppError) {
	if d.closed.Load() {
		return models.State{}, models.ErrInternal("light device is closed")
	}
	return d.set(ctx, ls)
}

// Off is shorthand for setting a dark steady state.
func (d *Device) Off(ctx context.Context) (models.State, *models.AppError) {
	return d.Set(ctx, models.LightState{})
}

// Close releases the handle. Further Sets fail. Closing twice is a
// no-op.
func (d *Device) Close() {
	if d.closed.CompareAndSwap(false, true) {
		slog.Debug("light device closed", "light", d.light.String(), "device_id", d.id)
	}
}
