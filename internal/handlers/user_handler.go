package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/models"
	"github.com/henryjobel/evi-learnig-server-site/internal/utils"
)

// userCollection is the subset of *mongo.Collection the user handler uses;
// tests substitute a fake built on the driver's document-backed results.
type userCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

type UserHandler struct {
	collection userCollection
	mailer     *utils.Mailer
	logger     *zap.SugaredLogger
}

func NewUserHandler(client *mongo.Client, dbName string, mailer *utils.Mailer, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		collection: client.Database(dbName).Collection("users"),
		mailer:     mailer,
		logger:     logger,
	}
}

// UpsertUser saves a user keyed by email on first login. An existing record
// is returned unchanged, so repeated logins never clobber a saved role. The
// one exception is a become-a-teacher request: when the payload carries
// status "Requested" the existing record is updated in place.
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}
	user.Email = email

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	query := bson.M{"email": email}

	var existing models.User
	err := h.collection.FindOne(ctx, query).Decode(&existing)
	switch {
	case err == nil:
		if user.Status == models.StatusRequested {
			result, err := h.collection.UpdateOne(ctx, query, bson.M{"$set": user})
			if err != nil {
				h.logger.Errorw("failed to update user status", "email", email, "error", err)
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			writeJSON(w, http.StatusOK, result)
			return
		}
		writeJSON(w, http.StatusOK, existing)
	case errors.Is(err, mongo.ErrNoDocuments):
		user.Timestamp = time.Now()
		result, err := h.collection.UpdateOne(ctx, query, bson.M{"$set": user}, options.Update().SetUpsert(true))
		if err != nil {
			h.logger.Errorw("failed to save user", "email", email, "error", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

// GetUsers lists every user. Admin dashboard only, so it sits behind the
// token guard.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// UpdateUser applies a partial update to the record keyed by email and
// refreshes its timestamp. Promoting a user to teacher triggers a
// best-effort notification email.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}
	// The path variable is the key; a partial payload must never $set a
	// blank email over it.
	user.Email = email
	user.Timestamp = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": user})
	if err != nil {
		h.logger.Errorw("failed to update user", "email", email, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	if user.Role == models.RoleTeacher && h.mailer != nil {
		body := "<p>Hi,</p><p>Your request to teach on evoLearn has been approved. You can now publish courses from your dashboard.</p>"
		go func() {
			if err := h.mailer.Send(email, "Your teacher request was approved", body); err != nil {
				h.logger.Warnw("failed to send teacher approval email", "email", email, "error", err)
			}
		}()
	}

	writeJSON(w, http.StatusOK, result)
}

// GetUser fetches one user by email. A missing record responds with a null
// body rather than 404; the frontend treats null as "not registered yet".
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := h.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
