package handlers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/henryjobel/evi-learnig-server-site/internal/models"
)

type FeedbackHandler struct {
	collection *mongo.Collection
}

func NewFeedbackHandler(client *mongo.Client, dbName string) *FeedbackHandler {
	return &FeedbackHandler{
		collection: client.Database(dbName).Collection("feedback"),
	}
}

// GetFeedback lists all feedback entries for the landing page carousel.
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cursor.Close(ctx)

	feedback := []models.Feedback{}
	if err = cursor.All(ctx, &feedback); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, feedback)
}
