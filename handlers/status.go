package handlers

import (
	"errors"
	"net/http"
	"time"

	"batepapo/database"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateStatus is the heartbeat: it bumps the caller's lastStatus so
// the inactivity sweep keeps them in the room.
func (h *Handler) UpdateStatus(c *gin.Context) {
	user := c.GetHeader("user")

	ctx, cancel := requestContext(c)
	defer cancel()

	doc, err := h.store.FindOneByField(ctx, database.Users, "name", user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "participant not found"})
		return
	}
	if err != nil {
		storeError(c, "UpdateStatus", err)
		return
	}

	id, ok := doc["_id"].(primitive.ObjectID)
	if !ok {
		storeError(c, "UpdateStatus", errors.New("participant document has no object id"))
		return
	}

	patch := bson.M{"lastStatus": time.Now().UnixMilli()}
	if err := h.store.UpdateOneByID(ctx, database.Users, id, patch); err != nil {
		storeError(c, "UpdateStatus", err)
		return
	}

	c.Status(http.StatusOK)
}
