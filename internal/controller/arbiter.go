package controller

import (
	"context"

	"github.com/lumastack/lightsd/internal/argb"
	"github.com/lumastack/lightsd/internal/metrics"
	"github.com/lumastack/lightsd/internal/models"
	"github.com/lumastack/lightsd/internal/props"
)

// arbitrate picks the winning source for the shared RGB LED and pushes
// the result to hardware. Battery wins whenever its color is lit,
// otherwise the notification state is rendered. Every pass rewrites the
// channels in full, so repeating an identical request repeats the same
// writes. Callers must hold the write lock.
func (c *Controller) arbitrate(ctx context.Context, s *models.State) {
	active := s.Lights[models.NameNotifications]
	winner := models.NameNotifications
	if battery := s.Lights[models.NameBattery]; argb.IsLit(battery.Color) {
		active = battery
		winner = models.NameBattery
	}
	s.Winner = winner
	metrics.IncArbitration(winner)

	r, g, b := argb.Channels(active.Color)

	// The bar LED property is read fresh on every pass. "only" moves
	// the color off the discrete channels onto the bar, "off" keeps
	// the discrete channels and darkens the bar.
	ambient := argb.Pack(r, g, b)
	switch c.props.Tristate(props.KeyBarLED, props.On) {
	case props.Off:
		ambient = 0
	case props.Only:
		r, g, b = 0, 0, 0
	}

	if c.blinking(active) {
		// Hardware latches the blink pattern. The pass sets the
		// enable bit when red drives it and touches nothing else.
		if r != 0 {
			c.write(ctx, c.profile.Paths.RedBlink, 1)
		}
		return
	}

	c.write(ctx, c.profile.Paths.Red, r)
	c.write(ctx, c.profile.Paths.Green, g)
	c.write(ctx, c.profile.Paths.Blue, b)
	c.write(ctx, c.profile.Paths.Ambient, ambient)
}

// blinking reports whether the active state asks for a timed flash the
// LED controller can run on its own.
func (c *Controller) blinking(active models.LightState) bool {
	return c.profile.Capabilities.Blink &&
		active.FlashMode == models.FlashTimed &&
		active.FlashOnMS > 0 && active.FlashOffMS > 0
}
