package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"songvault/internal/handlers/render"
	"songvault/internal/models"
	"songvault/internal/repositories"
	"songvault/internal/seed"
)

// upsertSongRequest carries the content fields of a create or replace
// request. Method is the optional sentinel that turns a plain POST into
// a seeding request, the wire variant some clients still use instead of
// POST /songs/seed.
type upsertSongRequest struct {
	Artist   string `json:"artist" form:"artist"`
	SongName string `json:"songName" form:"songName"`
	Album    string `json:"album" form:"album"`
	Genre    string `json:"genre" form:"genre"`

	Method string `json:"method" form:"method"`
	seedRequest
}

func (r *upsertSongRequest) complete() bool {
	return r.Artist != "" && r.SongName != "" && r.Album != "" && r.Genre != ""
}

// seedRequest is the body of a bulk seeding request
type seedRequest struct {
	Amount int  `json:"amount" form:"amount"`
	Reset  bool `json:"reset" form:"reset"`
}

// SongHandler handles song collection requests
type SongHandler struct {
	repository repositories.SongRepository
	renderer   *render.SongRenderer
	generator  *seed.Generator
}

// NewSongHandler creates a new song handler
func NewSongHandler(repository repositories.SongRepository, renderer *render.SongRenderer, generator *seed.Generator) *SongHandler {
	return &SongHandler{
		repository: repository,
		renderer:   renderer,
		generator:  generator,
	}
}

// List handles GET /songs
func (h *SongHandler) List(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := repositories.SongFilter{
		Search:        query.Search,
		FavoritesOnly: query.FavoritesOnly,
	}

	totalItems, err := h.repository.Count(c.Request.Context(), filter)
	if err != nil {
		slog.Error("Failed to count songs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var skip, limit int64
	if query.Paginated() {
		skip = (query.Page - 1) * query.Limit
		limit = query.Limit
	}

	songs, err := h.repository.Find(c.Request.Context(), filter, skip, limit)
	if err != nil {
		slog.Error("Failed to list songs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.renderer.Collection(songs, h.renderer.Paginate(query, totalItems)))
}

// Get handles GET /songs/:id with conditional retrieval: when the
// client's If-Modified-Since is at or past the stored modification
// time, the body is skipped entirely.
func (h *SongHandler) Get(c *gin.Context) {
	song, err := h.repository.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("Failed to fetch song", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if song == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
		return
	}

	// HTTP dates carry second precision, so the stored time is
	// truncated before any comparison or formatting.
	lastModified := song.LastModified.Truncate(time.Second)

	if since := c.GetHeader("If-Modified-Since"); since != "" {
		if precondition, err := http.ParseTime(since); err == nil && !lastModified.After(precondition) {
			c.Status(http.StatusNotModified)
			return
		}
	}

	c.Header("Last-Modified", lastModified.UTC().Format(http.TimeFormat))
	c.JSON(http.StatusOK, h.renderer.Song(song))
}

// Create handles POST /songs
func (h *SongHandler) Create(c *gin.Context) {
	var req upsertSongRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.EqualFold(req.Method, "SEED") {
		h.seedCollection(c, req.seedRequest)
		return
	}

	if !req.complete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	song := models.NewSong(req.Artist, req.SongName, req.Album, req.Genre)
	if err := h.repository.Save(c.Request.Context(), song); err != nil {
		slog.Error("Failed to create song", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.renderer.Song(song))
}

// Replace handles PUT /songs/:id as a full replacement of the four
// content fields; the favorite flag is left as stored.
func (h *SongHandler) Replace(c *gin.Context) {
	var req upsertSongRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !req.complete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	song, err := h.repository.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("Failed to fetch song", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if song == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
		return
	}

	song.Artist = req.Artist
	song.SongName = req.SongName
	song.Album = req.Album
	song.Genre = req.Genre

	if err := h.repository.Update(c.Request.Context(), song); err != nil {
		if errors.Is(err, repositories.ErrSongNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
			return
		}
		slog.Error("Failed to update song", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.renderer.Song(song))
}

// Patch handles PATCH /songs/:id as a presence-based merge: fields
// absent from the body keep their stored values, and an explicit empty
// string or false is a real value.
func (h *SongHandler) Patch(c *gin.Context) {
	var patch models.SongPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one field must be provided"})
		return
	}

	song, err := h.repository.ApplyPatch(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		if errors.Is(err, repositories.ErrSongNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
			return
		}
		slog.Error("Failed to patch song", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.renderer.Song(song))
}

// Delete handles DELETE /songs/:id
func (h *SongHandler) Delete(c *gin.Context) {
	err := h.repository.DeleteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrSongNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "song not found"})
			return
		}
		slog.Error("Failed to delete song", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Seed handles POST /songs/seed
func (h *SongHandler) Seed(c *gin.Context) {
	var req seedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.seedCollection(c, req)
}

// seedCollection optionally clears the collection, then inserts the
// requested number of generated songs one by one. A failure partway
// leaves the records inserted so far in place; seeding is test
// tooling, not a transaction.
func (h *SongHandler) seedCollection(c *gin.Context, req seedRequest) {
	if req.Amount < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than 0"})
		return
	}

	if req.Reset {
		if err := h.repository.DeleteAll(c.Request.Context()); err != nil {
			slog.Error("Failed to reset collection", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	for i := 0; i < req.Amount; i++ {
		if err := h.repository.Save(c.Request.Context(), h.generator.Song()); err != nil {
			slog.Error("Failed to seed song", "seeded", i, "requested", req.Amount, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	slog.Info("Seeded songs", "amount", req.Amount, "reset", req.Reset)
	c.JSON(http.StatusOK, gin.H{"message": "songs seeded", "amount": req.Amount})
}

// CollectionOptions handles OPTIONS /songs
func (h *SongHandler) CollectionOptions(c *gin.Context) {
	c.Header("Allow", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Status(http.StatusNoContent)
}

// ItemOptions handles OPTIONS /songs/:id
func (h *SongHandler) ItemOptions(c *gin.Context) {
	c.Header("Allow", "GET, PUT, PATCH, DELETE, OPTIONS")
	c.Header("Access-Control-Allow-Methods", "GET, PUT, PATCH, DELETE, OPTIONS")
	c.Status(http.StatusNoContent)
}
