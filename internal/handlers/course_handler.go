package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/henryjobel/evi-learnig-server-site/internal/models"
)

type CourseHandler struct {
	collection *mongo.Collection
	logger     *zap.SugaredLogger
}

func NewCourseHandler(client *mongo.Client, dbName string, logger *zap.SugaredLogger) *CourseHandler {
	return &CourseHandler{
		collection: client.Database(dbName).Collection("courses"),
		logger:     logger,
	}
}

// GetCourses lists every course. Public: the marketplace landing page reads
// it without a session.
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err = cursor.All(ctx, &courses); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// CreateCourse persists a new course for a teacher and returns the inserted
// id.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return
	}

	if course.Title == "" || course.Teacher.Email == "" {
		writeError(w, http.StatusBadRequest, errors.New("title and teacher email are required"))
		return
	}

	course.ID = primitive.NewObjectID()
	course.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := h.collection.InsertOne(ctx, course)
	if err != nil {
		h.logger.Errorw("failed to create course", "teacher", course.Teacher.Email, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// GetCourseByID fetches a single course. A malformed hex id is a client
// error; a missing course responds with a null body.
func (h *CourseHandler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	idParam := mux.Vars(r)["id"]

	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid course ID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var course models.Course
	err = h.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// GetCoursesByTeacher lists the courses taught by the given email, matched
// against the embedded teacher document.
func (h *CourseHandler) GetCoursesByTeacher(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{"teacher.email": email})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err = cursor.All(ctx, &courses); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, courses)
}
