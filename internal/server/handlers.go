package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gyeh/claimstats/internal/claims"
	"github.com/gyeh/claimstats/internal/model"
	"github.com/gyeh/claimstats/internal/normalize"
)

// claimsPayload is the JSON ingestion body: a batch of claims as snake_case
// field maps with string values (currency strings like "$100.00 " included).
type claimsPayload struct {
	Claims []map[string]string `json:"claims" binding:"required"`
}

func (s *Server) processClaims(c *gin.Context) {
	var payload claimsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	raws := make([]model.RawClaim, len(payload.Claims))
	for i, m := range payload.Claims {
		raws[i] = normalize.FromJSON(m)
	}

	stored, err := s.proc.IngestBatch(c.Request.Context(), raws)
	if err != nil {
		if claims.IsInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.log.Error().Err(err).Msg("claim batch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store claims"})
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (s *Server) processCSV(c *gin.Context) {
	text, err := s.csvBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := s.proc.IngestCSV(c.Request.Context(), text)
	// Skipped rows are reported via logs only; the response carries the
	// persisted claims.
	if accepted := report.Accepted; accepted != nil {
		c.JSON(http.StatusOK, accepted)
		return
	}
	c.JSON(http.StatusOK, []model.Claim{})
}

// csvBody reads the uploaded CSV: a multipart "file" part when present,
// otherwise the raw request body.
func (s *Server) csvBody(c *gin.Context) (string, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Server) topProviders(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = v
	}

	totals, err := s.proc.TopProviders(c.Request.Context(), limit)
	if err != nil {
		if err == claims.ErrInvalidLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.log.Error().Err(err).Msg("top providers query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate providers"})
		return
	}
	if totals == nil {
		totals = []model.ProviderTotal{}
	}
	c.JSON(http.StatusOK, totals)
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Claim Processing Service",
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
