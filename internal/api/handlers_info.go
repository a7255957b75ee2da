package api

import (
	"net/http"

	"github.com/lumastack/lightsd/internal/hardware"
	"github.com/lumastack/lightsd/internal/identity"
	"github.com/lumastack/lightsd/internal/models"
)

func (h *Handlers) getInfo(w http.ResponseWriter, r *http.Request) {
	state := h.ctrl.State()
	info := models.Info{
		Hostname:     identity.GetHostname(),
		Version:      identity.GetVersion(),
		Board:        state.Board,
		Model:        identity.BoardModel(),
		Capabilities: state.Capabilities,
	}
	if temp, err := hardware.SoCTemp(); err == nil {
		info.SoCTempC = &temp
	}
	writeJSON(w, http.StatusOK, info)
}
