package restserver

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/skyplan/skyplan/internal/constants"
	"github.com/skyplan/skyplan/internal/log"
	"github.com/skyplan/skyplan/pkg/envelope"
	"github.com/skyplan/skyplan/pkg/profile"
	"github.com/skyplan/skyplan/pkg/responseformat"
	"github.com/skyplan/skyplan/pkg/wb"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// GetStatus reports service health and version
func (h *Handlers) GetStatus(w http.ResponseWriter, req *http.Request) {
	h.formatter.WriteResponse(w, req, statusResponse{Status: "ok", Version: constants.Version})
}

// ListAircraft returns all aircraft profiles without their detail rows
func (h *Handlers) ListAircraft(w http.ResponseWriter, req *http.Request) {
	list, err := h.controller.Profiles.List()
	if err != nil {
		log.Errorf("error listing aircraft: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "could not list aircraft")
		return
	}
	if list == nil {
		list = []profile.Aircraft{}
	}
	h.formatter.WriteResponse(w, req, list)
}

// GetAircraft returns one aircraft profile with stations and envelopes
func (h *Handlers) GetAircraft(w http.ResponseWriter, req *http.Request) {
	a := h.loadAircraft(w, req)
	if a == nil {
		return
	}
	h.formatter.WriteResponse(w, req, a)
}

// CreateAircraft inserts a new aircraft profile
func (h *Handlers) CreateAircraft(w http.ResponseWriter, req *http.Request) {
	var a profile.Aircraft
	if err := json.NewDecoder(req.Body).Decode(&a); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid aircraft payload")
		return
	}

	if a.Registration == "" {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "registration is required")
		return
	}

	if err := h.controller.Profiles.Create(&a); err != nil {
		log.Errorf("error creating aircraft: %v", err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "could not create aircraft")
		return
	}

	h.formatter.WriteResponseStatus(w, req, http.StatusCreated, a)
}

// UpdateAircraft replaces an aircraft profile's fields and stations
func (h *Handlers) UpdateAircraft(w http.ResponseWriter, req *http.Request) {
	var a profile.Aircraft
	if err := json.NewDecoder(req.Body).Decode(&a); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid aircraft payload")
		return
	}
	a.ID = mux.Vars(req)["id"]

	if err := h.controller.Profiles.Update(&a); err != nil {
		log.Errorf("error updating aircraft %s: %v", a.ID, err)
		h.formatter.WriteError(w, req, http.StatusNotFound, "could not update aircraft")
		return
	}
	h.formatter.WriteResponse(w, req, a)
}

// DeleteAircraft removes an aircraft profile
func (h *Handlers) DeleteAircraft(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if err := h.controller.Profiles.Delete(id); err != nil {
		log.Errorf("error deleting aircraft %s: %v", id, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "could not delete aircraft")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEnvelopes runs the envelope pipeline over the stored points and
// returns the prepared polygon and report for every category.
func (h *Handlers) GetEnvelopes(w http.ResponseWriter, req *http.Request) {
	a := h.loadAircraft(w, req)
	if a == nil {
		return
	}
	h.formatter.WriteResponse(w, req, a.PrepareEnvelopes())
}

// UpdateEnvelope replaces one category's boundary points with the
// user-edited set and returns the fresh validation result. Invalid
// polygons are stored anyway: validation failure is a preview state the
// UI surfaces, not a write error.
func (h *Handlers) UpdateEnvelope(w http.ResponseWriter, req *http.Request) {
	a := h.loadAircraft(w, req)
	if a == nil {
		return
	}
	cat, ok := parseCategory(mux.Vars(req)["category"])
	if !ok {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "unknown envelope category")
		return
	}

	var body envelopeUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid envelope payload")
		return
	}

	pts := envelope.Normalize(body.Points)
	if err := h.controller.Profiles.SaveEnvelope(a.ID, cat, pts); err != nil {
		log.Errorf("error saving %s envelope for %s: %v", cat, a.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "could not save envelope")
		return
	}

	sorted := envelope.SortPerimeter(pts)
	h.formatter.WriteResponse(w, req, envelopeResponse{
		Category: cat,
		Points:   sorted,
		Report:   envelope.Validate(sorted),
	})
}

// SortEnvelope sorts one category's stored points into perimeter order,
// persists the sorted sequence, and returns it with its report. This is
// the user-triggered "sort" action.
func (h *Handlers) SortEnvelope(w http.ResponseWriter, req *http.Request) {
	a := h.loadAircraft(w, req)
	if a == nil {
		return
	}
	cat, ok := parseCategory(mux.Vars(req)["category"])
	if !ok {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "unknown envelope category")
		return
	}

	result := envelope.Prepare(a.Envelopes[cat])
	if err := h.controller.Profiles.SaveEnvelope(a.ID, cat, result.Points); err != nil {
		log.Errorf("error saving sorted %s envelope for %s: %v", cat, a.ID, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "could not save envelope")
		return
	}

	h.formatter.WriteResponse(w, req, envelopeResponse{
		Category: cat,
		Points:   result.Points,
		Report:   result.Report,
	})
}

// ComputeWB runs the weight-and-balance calculator for one aircraft and
// the posted load entries, hands a summary to the trip log, and returns
// the full output.
func (h *Handlers) ComputeWB(w http.ResponseWriter, req *http.Request) {
	a := h.loadAircraft(w, req)
	if a == nil {
		return
	}

	var body wbRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid weight and balance payload")
		return
	}

	in := calculatorInput(a, body)
	out := wb.Run(in)

	if h.controller.Records != nil {
		// Best effort: a full distributor never blocks a computation.
		select {
		case h.controller.Records <- tripRecord(a, in, out):
		default:
			log.Warn("trip record distributor full; dropping record")
		}
	}

	h.formatter.WriteResponse(w, req, wbResponse{
		AircraftID:   a.ID,
		Registration: a.Registration,
		Output:       out,
		Envelopes:    in.Envelopes,
	})
}

// loadAircraft fetches the aircraft named in the route, writing the
// appropriate error response and returning nil when it cannot.
func (h *Handlers) loadAircraft(w http.ResponseWriter, req *http.Request) *profile.Aircraft {
	id := mux.Vars(req)["id"]
	a, err := h.controller.Profiles.Get(id)
	if err != nil {
		log.Errorf("error loading aircraft %s: %v", id, err)
		h.formatter.WriteError(w, req, http.StatusInternalServerError, "could not load aircraft")
		return nil
	}
	if a == nil {
		h.formatter.WriteError(w, req, http.StatusNotFound, "aircraft not found")
		return nil
	}
	return a
}
