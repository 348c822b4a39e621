package handler

import (
	"log"
	"net/http"

	"github.com/NikhilBollineni/newsproject/service"
	"github.com/NikhilBollineni/newsproject/types"
	"github.com/gin-gonic/gin"
)

type IngestHandler struct {
	ingest *service.IngestService
}

func NewIngestHandler(ingest *service.IngestService) *IngestHandler {
	return &IngestHandler{ingest: ingest}
}

// HandleIngest triggers one pipeline run. Internal failure details stay in
// the logs; the caller only sees a categorized generic message.
func (h *IngestHandler) HandleIngest(c *gin.Context) {
	count, err := h.ingest.Run(c.Request.Context())
	if err != nil {
		log.Printf("ingest request failed: %v", err)
		if service.IsFetchError(err) {
			c.JSON(http.StatusBadGateway, types.DataResponse{
				Status:  false,
				Message: "news fetch failed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: "operation failed",
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.IngestResponse{Ingested: count},
	})
}
