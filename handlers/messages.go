package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"batepapo/database"
	"batepapo/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type postMessageRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"required,oneof=message private_message"`
}

func (h *Handler) CreateMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, []string{"request body must be valid JSON"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationMessages(err))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if req.To != models.Broadcast {
		_, err := h.store.FindOneByField(ctx, database.Users, "name", req.To)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusUnprocessableEntity, []string{"recipient not in participant list"})
			return
		}
		if err != nil {
			storeError(c, "CreateMessage", err)
			return
		}
	}

	from := c.GetHeader("user")
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user header"})
		return
	}

	message := models.Message{
		ID:   primitive.NewObjectID(),
		From: from,
		To:   req.To,
		Text: req.Text,
		Type: req.Type,
		Time: time.Now().Format(models.TimeLayout),
	}
	if err := h.store.InsertOne(ctx, database.Messages, message); err != nil {
		storeError(c, "CreateMessage", err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *Handler) ListMessages(c *gin.Context) {
	user := c.GetHeader("user")
	limit, _ := strconv.Atoi(c.Query("limit"))

	ctx, cancel := requestContext(c)
	defer cancel()

	messages, err := h.store.FindAll(ctx, database.Messages)
	if err != nil {
		storeError(c, "ListMessages", err)
		return
	}

	visible := []bson.M{}
	for _, m := range messages {
		if visibleTo(m, user) {
			visible = append(visible, m)
		}
	}

	if limit > 0 && limit < len(visible) {
		visible = visible[:limit]
	}

	c.JSON(http.StatusOK, visible)
}

// visibleTo keeps the original filter verbatim: a message addressed to
// the broadcast name only matches the last clause when its type is
// "message", so a private_message sent to "Todos" stays hidden from
// third parties.
func visibleTo(m bson.M, user string) bool {
	return m["from"] == user || m["to"] == user || (m["to"] == models.Broadcast && m["type"] == models.TypeMessage)
}
