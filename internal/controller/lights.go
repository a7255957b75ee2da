package controller

import (
	"context"

	"github.com/lumastack/lightsd/internal/argb"
	"github.com/lumastack/lightsd/internal/metrics"
	"github.com/lumastack/lightsd/internal/models"
)

// SetBacklight drives the LCD backlight from the perceptual luma of the
// requested color. The shared LED is not involved.
func (c *Controller) SetBacklight(ctx context.Context, ls models.LightState) (models.State, *models.AppError) {
	if appErr := ls.Validate(); appErr != nil {
		return models.State{}, appErr
	}
	state, err := c.apply(func(s *models.State) error {
		s.Lights[models.NameBacklight] = ls
		metrics.IncLightSet(models.NameBacklight)
		c.write(ctx, c.profile.Paths.Backlight, argb.Brightness(ls.Color))
		return nil
	})
	if err != nil {
		return models.State{}, models.ErrInternal(err.Error())
	}
	return state, nil
}

// SetBattery records the battery light request and re-arbitrates the
// shared LED. A lit battery color takes priority over notifications.
func (c *Controller) SetBattery(ctx context.Context, ls models.LightState) (models.State, *models.AppError) {
	if appErr := ls.Validate(); appErr != nil {
		return models.State{}, appErr
	}
	state, err := c.apply(func(s *models.State) error {
		s.Lights[models.NameBattery] = ls
		metrics.IncLightSet(models.NameBattery)
		c.arbitrate(ctx, s)
		return nil
	})
	if err != nil {
		return models.State{}, models.ErrInternal(err.Error())
	}
	return state, nil
}

// SetNotifications records the notification light request and
// re-arbitrates the shared LED.
func (c *Controller) SetNotifications(ctx context.Context, ls models.LightState) (models.State, *models.AppError) {
	if appErr := ls.Validate(); appErr != nil {
		return models.State{}, appErr
	}
	state, err := c.apply(func(s *models.State) error {
		s.Lights[models.NameNotifications] = ls
		metrics.IncLightSet(models.NameNotifications)
		c.arbitrate(ctx, s)
		return nil
	})
	if err != nil {
		return models.State{}, models.ErrInternal(err.Error())
	}
	return state, nil
}

// SetAttention tracks the attention level. A HARDWARE flash latches the
// on-duration as the level, NONE clears it and TIMED leaves it alone.
// The arbiter runs afterwards but the level does not influence which
// source wins the shared LED.
func (c *Controller) SetAttention(ctx context.Context, ls models.LightState) (models.State, *models.AppError) {
	if appErr := ls.Validate(); appErr != nil {
		return models.State{}, appErr
	}
	if !c.profile.Capabilities.Attention {
		return models.State{}, models.ErrNotFound("attention light is not wired on this board")
	}
	state, err := c.apply(func(s *models.State) error {
		s.Lights[models.NameAttention] = ls
		switch ls.FlashMode {
		case models.FlashHardware:
			s.AttentionLevel = ls.FlashOnMS
		case models.FlashNone:
			s.AttentionLevel = 0
		}
		metrics.IncLightSet(models.NameAttention)
		metrics.SetAttentionLevel(s.AttentionLevel)
		c.arbitrate(ctx, s)
		return nil
	})
	if err != nil {
		return models.State{}, models.ErrInternal(err.Error())
	}
	return state, nil
}
