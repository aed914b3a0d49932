package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dilemma-arena/internal/app/arena"
	"dilemma-arena/internal/narration"

	"github.com/rs/zerolog/log"
)

type ArenaHandlers struct {
	svc          *arena.Service
	maxBodyBytes int64
}

func NewArenaHandlers(svc *arena.Service, maxBodyBytes int64) *ArenaHandlers {
	return &ArenaHandlers{svc: svc, maxBodyBytes: maxBodyBytes}
}

func (h *ArenaHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	}
}

func (h *ArenaHandlers) Rules() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, h.svc.Rules())
	}
}

func (h *ArenaHandlers) RunTournament() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := h.decodeRun(w, r)
		if !ok {
			return
		}
		start := time.Now()
		resp, err := h.svc.Run(r.Context(), req)
		if err != nil {
			status, code := runErrorStatus(err)
			WriteHTTPError(w, status, code)
			return
		}
		recordRun(resp, time.Since(start))
		writeJSON(w, resp)
	}
}

// StreamTournament plays a tournament and pushes every narration event as
// server-sent events while it runs. The last event is "result" or "error".
func (h *ArenaHandlers) StreamTournament() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := h.decodeRun(w, r)
		if !ok {
			return
		}
		flusher, ok := w.(http.Flusher)
		if !ok {
			WriteHTTPError(w, http.StatusInternalServerError, "streaming_unsupported")
			return
		}
		setSSEHeaders(w)
		w.WriteHeader(http.StatusOK)
		metricStreamsActive.Add(1)
		defer metricStreamsActive.Add(-1)

		start := time.Now()
		resp, err := h.svc.RunWithEvents(r.Context(), req, func(ev narration.Event) {
			if err := writeSSE(w, strconv.Itoa(ev.Seq), string(ev.Type), ev); err != nil {
				return
			}
			flusher.Flush()
		})
		if err != nil {
			_, code := runErrorStatus(err)
			_ = writeSSE(w, "", "error", map[string]any{"error": code})
			flusher.Flush()
			return
		}
		recordRun(resp, time.Since(start))
		// The events were already streamed one by one.
		resp.Events = nil
		_ = writeSSE(w, "", "result", resp)
		flusher.Flush()
	}
}

func (h *ArenaHandlers) RunBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req arena.BatchRequest
		if !h.decodeJSON(w, r, &req) {
			return
		}
		resp, err := h.svc.RunBatch(r.Context(), req)
		if err != nil {
			status, code := runErrorStatus(err)
			WriteHTTPError(w, status, code)
			return
		}
		metricBatchRunsTotal.Add(int64(len(resp.Runs)))
		writeJSON(w, resp)
	}
}

func (h *ArenaHandlers) decodeRun(w http.ResponseWriter, r *http.Request) (arena.RunRequest, bool) {
	var req arena.RunRequest
	ok := h.decodeJSON(w, r, &req)
	return req, ok
}

// decodeJSON reads one strict JSON body into v and writes the error response
// itself when it fails.
func (h *ArenaHandlers) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteHTTPError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return false
		}
		WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
		return false
	}
	return true
}

func runErrorStatus(err error) (int, string) {
	metricTournamentsErrorsTotal.Add(1)
	switch {
	case errors.Is(err, arena.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "canceled"
	case errors.Is(err, arena.ErrTournamentFail):
		log.Error().Err(err).Msg("tournament failed")
		return http.StatusInternalServerError, "tournament_failed"
	default:
		log.Error().Err(err).Msg("tournament run error")
		return http.StatusInternalServerError, "internal_error"
	}
}

func recordRun(resp *arena.RunResponse, elapsed time.Duration) {
	metricTournamentsRunTotal.Add(1)
	metricMatchesPlayedTotal.Add(int64(resp.Matches))
	metricRoundsPlayedTotal.Add(int64(resp.Rounds))
	metricTournamentLastMS.Set(elapsed.Milliseconds())
	log.Info().
		Str("tournament_id", resp.TournamentID).
		Int64("seed", resp.Seed).
		Int("matches", resp.Matches).
		Int("rounds", resp.Rounds).
		Dur("elapsed", elapsed).
		Msg("tournament finished")
}
