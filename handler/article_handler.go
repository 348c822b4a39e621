package handler

import (
	"errors"
	"net/http"

	"github.com/NikhilBollineni/newsproject/repository"
	"github.com/NikhilBollineni/newsproject/service"
	"github.com/NikhilBollineni/newsproject/types"
	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles      *repository.ArticleRepo
	enricher      *service.EnrichmentService
	notifications *service.NotificationService
}

func NewArticleHandler(
	articles *repository.ArticleRepo,
	enricher *service.EnrichmentService,
	notifications *service.NotificationService,
) *ArticleHandler {
	return &ArticleHandler{
		articles:      articles,
		enricher:      enricher,
		notifications: notifications,
	}
}

func (h *ArticleHandler) HandleListArticles(c *gin.Context) {
	filter := types.ArticleFilter{
		Category:  c.Query("category"),
		Industry:  c.Query("industry"),
		Sentiment: c.Query("sentiment"),
		Search:    c.Query("search"),
	}
	if v := c.Query("bookmarked"); v != "" {
		bookmarked := v == "true"
		filter.Bookmarked = &bookmarked
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   h.articles.List(filter),
	})
}

func (h *ArticleHandler) HandleGetArticle(c *gin.Context) {
	article, err := h.articles.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.DataResponse{
				Status:  false,
				Message: "article not found",
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
		Data:   article,
	})
}

// HandleCreateArticle runs a direct submission through the same enrichment
// and notification path as ingested items.
func (h *ArticleHandler) HandleCreateArticle(c *gin.Context) {
	var req types.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "title and content are required",
		})
		return
	}

	raw := types.RawArticle{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		Source:      req.Source,
		Category:    req.Category,
		Industry:    req.Industry,
		URL:         req.URL,
		PublishedAt: req.PublishedAt,
		Tags:        req.Tags,
	}
	article := h.enricher.Enrich(c.Request.Context(), []types.RawArticle{raw})[0]

	if _, err := h.articles.Append(article); err != nil {
		// In-memory table already holds the article; only the durable write
		// failed. Surface a generic failure to the caller.
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: "operation failed",
		})
		return
	}
	h.notifications.Dispatch(article)

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   article,
	})
}

func (h *ArticleHandler) HandleToggleBookmark(c *gin.Context) {
	article, err := h.articles.ToggleBookmark(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.DataResponse{
				Status:  false,
				Message: "article not found",
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
		Data:   article,
	})
}

func (h *ArticleHandler) HandleAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   h.articles.Analytics(10),
	})
}
