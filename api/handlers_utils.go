package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/verus-stats/market-api/cache"
)

// setCacheStatusHeader sets the Cache-Status header based on cache status
func (s *Server) setCacheStatusHeader(w http.ResponseWriter, cacheStatus cache.Status) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", cacheStatus.String())
	}
}

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
	s.sendJSONBytes(w, responseBytes)
}

// sendJSONBytes writes a pre-marshaled JSON body with the same headers
// sendJSONResponse sets
func (s *Server) sendJSONBytes(w http.ResponseWriter, responseBytes []byte) {
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// sendError writes a JSON error body with the given status code
func (s *Server) sendError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Error writing error response: %v", err)
	}
}

// pageParams parses and validates page/per_page. On a violation it
// writes a 400 response and returns ok=false; validation happens before
// any computation starts.
func (s *Server) pageParams(w http.ResponseWriter, r *http.Request) (page, perPage int, ok bool) {
	page = 1
	perPage = s.cfg.Pagination.DefaultPerPage

	if raw := r.URL.Query().Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			s.sendError(w, http.StatusBadRequest, "page must be a positive integer")
			return 0, 0, false
		}
		page = value
	}

	if raw := r.URL.Query().Get("per_page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 || value > s.cfg.Pagination.MaxPerPage {
			s.sendError(w, http.StatusBadRequest, "per_page must be between 1 and "+strconv.Itoa(s.cfg.Pagination.MaxPerPage))
			return 0, 0, false
		}
		perPage = value
	}

	return page, perPage, true
}

// limitParam parses and validates a limit query parameter against
// [1, max], writing a 400 response when violated
func (s *Server) limitParam(w http.ResponseWriter, r *http.Request, def, max int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > max {
		s.sendError(w, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(max))
		return 0, false
	}
	return value, true
}

// timestampParam parses an optional unix-timestamp query parameter, 0
// meaning absent
func timestampParam(r *http.Request, key string) int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// cached runs loader through the response cache and writes the result.
// Loader failures bypass the cache entirely so a degraded body is never
// served beyond the request that computed it.
func (s *Server) cached(w http.ResponseWriter, resource, key string, ttl time.Duration, loader func() (interface{}, error)) error {
	body, status, err := s.cacheService.GetOrLoad(resource, key, ttl, func() ([]byte, error) {
		payload, err := loader()
		if err != nil {
			return nil, err
		}
		return json.Marshal(payload)
	})
	if err != nil {
		return err
	}

	s.setCacheStatusHeader(w, status)
	s.sendJSONBytes(w, body)
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}
