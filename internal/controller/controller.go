// Package controller implements the lighting state machine, the single
// source of truth for every logical light and the shared RGB LED.
package controller

import (
	"context"
	"sync"

	"github.com/lumastack/lightsd/internal/events"
	"github.com/lumastack/lightsd/internal/hardware"
	"github.com/lumastack/lightsd/internal/models"
)

// PropSource supplies render-time configuration properties. Values are
// read fresh on every arbitration pass; the source may change at any
// time between calls.
type PropSource interface {
	Tristate(key string, def int) int
}

// Controller is the central state machine for the lighting service.
// All state mutations go through the apply() method which ensures
// atomicity and event publishing. Hardware writes happen inside apply
// so an arbitration pass and the property read that shapes it are
// covered by a single lock.
type Controller struct {
	mu      sync.RWMutex
	state   models.State
	profile *hardware.Profile
	hw      hardware.Writer
	props   PropSource
	bus     *events.Bus
}

// New creates a controller with every light dark. Nothing is written to
// hardware until the first set request arrives.
func New(profile *hardware.Profile, hw hardware.Writer, props PropSource, bus *events.Bus) *Controller {
	return &Controller{
		state:   models.DefaultState(profile.Name, profile.Capabilities),
		profile: profile,
		hw:      hw,
		props:   props,
		bus:     bus,
	}
}

// State returns a deep copy of the current light state.
func (c *Controller) State() models.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.DeepCopy()
}

// GetLight returns the last requested state for a single light.
func (c *Controller) GetLight(name string) (models.LightState, *models.AppError) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ls, ok := c.state.Lights[name]
	if !ok {
		return models.LightState{}, models.ErrNotFound("light not found")
	}
	return ls, nil
}

// Supported returns the names of the lights this board exposes.
func (c *Controller) Supported() []string {
	return models.SupportedLights(c.profile.Capabilities)
}

// apply is the core mutation primitive. It:
//  1. Acquires the write lock
//  2. Makes a deep copy of current state
//  3. Calls fn to modify the copy (fn may return an error to abort)
//  4. If fn succeeds: commits the copy and publishes it
func (c *Controller) apply(fn func(*models.State) error) (models.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.DeepCopy()
	if err := fn(&next); err != nil {
		return models.State{}, err
	}

	c.state = next
	c.bus.Publish(c.state)
	return c.state, nil
}

// write pushes one value to a device file. Failures are logged by the
// writer and swallowed here; light handlers report success regardless
// of hardware health.
func (c *Controller) write(ctx context.Context, path string, value int) {
	_ = c.hw.WriteInt(ctx, path, value)
}
