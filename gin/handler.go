package gin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rankcheck"
	"github.com/gin-gonic/gin"
)

// Response bodies returned to clients.
const (
	msgNotFound       = "The URL was not found in the search results."
	msgInternalServer = "Internal server error."
)

// findURLPositionResponse wraps the saved record on a successful lookup.
type findURLPositionResponse struct {
	SearchDTO *rankcheck.SearchRecord `json:"searchDto"`
}

// handleFindURLPosition handles POST /search/find-url-position.
func (s *Server) handleFindURLPosition(c *gin.Context) {
	query := rankcheck.SearchQuery{
		Keywords:  c.Query("keywords"),
		TargetURL: c.Query("targetUrl"),
	}
	if err := query.Validate(); err != nil {
		s.logger.Error(rankcheck.ErrorMessage(err))
		c.String(http.StatusBadRequest, rankcheck.ErrorMessage(err))
		return
	}

	result, err := s.searches.Search(c.Request.Context(), query)
	if err != nil {
		s.fail(c, "searching keywords and url", err)
		return
	}

	if !result.Found() {
		s.logger.Info("url not found in search results", "url", query.TargetURL, "keywords", query.Keywords)
		c.String(http.StatusNotFound, msgNotFound)
		return
	}

	s.logger.Info("url found in search results", "url", query.TargetURL, "keywords", query.Keywords)
	c.JSON(http.StatusOK, findURLPositionResponse{SearchDTO: result.Record})
}

// handleHistory handles GET /search/history.
// The response carries an ETag so unchanged history can be revalidated.
func (s *Server) handleHistory(c *gin.Context) {
	records, err := s.searches.History(c.Request.Context())
	if err != nil {
		s.fail(c, "fetching search history", err)
		return
	}

	if records == nil {
		records = []*rankcheck.SearchRecord{}
	}

	body, err := json.Marshal(records)
	if err != nil {
		s.fail(c, "encoding search history", err)
		return
	}

	etag := fmt.Sprintf(`"%016x"`, xxhash.Sum64(body))
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fail logs err and writes the response for its code. Details are never
// sent to the client.
func (s *Server) fail(c *gin.Context, msg string, err error) {
	code := rankcheck.ErrorCode(err)
	if code == rankcheck.EINVALID {
		c.String(http.StatusBadRequest, rankcheck.ErrorMessage(err))
		return
	}

	s.logger.Error("an error occurred while "+msg, "code", code, "err", err)
	c.String(http.StatusInternalServerError, msgInternalServer)
}
