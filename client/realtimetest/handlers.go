package realtimetest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/gs2io/gs2-realtime-go/client/internal/types"
)

const defaultPageSize = 30

type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("realtimetest: failed to encode JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message, Code: status})
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// pathVar returns the decoded value of a route variable.
func pathVar(r *http.Request, name string) string {
	v := mux.Vars(r)[name]
	if dec, err := url.PathUnescape(v); err == nil {
		return dec
	}
	return v
}

// paginate slices items using the numeric offset carried in pageToken.
func paginate[T any](w http.ResponseWriter, r *http.Request, items []T) {
	q := r.URL.Query()
	offset := 0
	if tok := q.Get("pageToken"); tok != "" {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid pageToken")
			return
		}
		offset = n
	}
	limit := defaultPageSize
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	if offset > len(items) {
		offset = len(items)
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	// nextPageToken is null once the listing is exhausted.
	page := struct {
		Items         []T     `json:"items"`
		NextPageToken *string `json:"nextPageToken"`
	}{Items: items[offset:end]}
	if end < len(items) {
		next := strconv.Itoa(end)
		page.NextPageToken = &next
	}
	writeJSON(w, http.StatusOK, page)
}

// DescribeGatheringPool GET /gatheringPool
func (s *Server) describeGatheringPool(w http.ResponseWriter, r *http.Request) {
	paginate(w, r, s.store.listPools())
}

// CreateGatheringPool POST /gatheringPool
func (s *Server) createGatheringPool(w http.ResponseWriter, r *http.Request) {
	var body types.CreateGatheringPoolBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if body.Name == nil || *body.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	p, err := s.store.createPool(*body.Name, body.Description)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.GatheringPoolItem{Item: &p})
}

// GetGatheringPool GET /gatheringPool/{pool}
func (s *Server) getGatheringPool(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.pool(pathVar(r, "pool"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.GatheringPoolItem{Item: &p})
}

// UpdateGatheringPool PUT /gatheringPool/{pool}
func (s *Server) updateGatheringPool(w http.ResponseWriter, r *http.Request) {
	var body types.UpdateGatheringPoolBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	p, err := s.store.updatePool(pathVar(r, "pool"), body.Description)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.GatheringPoolItem{Item: &p})
}

// DeleteGatheringPool DELETE /gatheringPool/{pool}
func (s *Server) deleteGatheringPool(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deletePool(pathVar(r, "pool")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DescribeGathering GET /gatheringPool/{pool}/gathering
func (s *Server) describeGathering(w http.ResponseWriter, r *http.Request) {
	gs, err := s.store.listGatherings(pathVar(r, "pool"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	paginate(w, r, gs)
}

// CreateGathering POST /gatheringPool/{pool}/gathering
func (s *Server) createGathering(w http.ResponseWriter, r *http.Request) {
	var body types.CreateGatheringBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	name := ""
	if body.Name != nil {
		name = *body.Name
	}
	var userIDs types.UserIDList
	if body.UserIDs != nil && len(*body.UserIDs) > 0 {
		userIDs = *body.UserIDs
	}
	g, err := s.store.createGathering(pathVar(r, "pool"), name, userIDs)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.GatheringItem{Item: &g})
}

// GetGathering GET /gatheringPool/{pool}/gathering/{gathering}
func (s *Server) getGathering(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.gathering(pathVar(r, "pool"), pathVar(r, "gathering"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.GatheringItem{Item: &g})
}

// DeleteGathering DELETE /gatheringPool/{pool}/gathering/{gathering}
func (s *Server) deleteGathering(w http.ResponseWriter, r *http.Request) {
	if err := s.store.deleteGathering(pathVar(r, "pool"), pathVar(r, "gathering")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
