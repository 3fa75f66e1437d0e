// Package httpapi exposes the dashboard REST API consumed by the web UI.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	app "github.com/transformhub/dashboard/internal/app"
	"github.com/transformhub/dashboard/internal/app/domain/action"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
	"github.com/transformhub/dashboard/internal/app/domain/meeting"
	"github.com/transformhub/dashboard/internal/app/domain/user"
	"github.com/transformhub/dashboard/internal/app/domain/validation"
	"github.com/transformhub/dashboard/internal/app/metrics"
	"github.com/transformhub/dashboard/internal/app/services/documents"
	"github.com/transformhub/dashboard/internal/app/storage"
)

// maxUploadMemory caps the in-memory portion of multipart parsing.
const maxUploadMemory = 32 << 20

// handler bundles the HTTP endpoints for the application services.
type handler struct {
	app *app.Application
	log *logrus.Logger
}

// NewHandler returns a router exposing the dashboard REST API. Middlewares
// are applied to the router so they can resolve the matched route template.
func NewHandler(application *app.Application, middlewares ...mux.MiddlewareFunc) http.Handler {
	h := &handler{app: application, log: application.Logger()}

	r := mux.NewRouter()
	r.Use(middlewares...)
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/stats", h.stats).Methods(http.MethodGet)

	api.HandleFunc("/initiatives", h.listInitiatives).Methods(http.MethodGet)
	api.HandleFunc("/initiatives", h.createInitiative).Methods(http.MethodPost)
	api.HandleFunc("/initiatives/{id}", h.updateInitiative).Methods(http.MethodPatch)

	api.HandleFunc("/meetings", h.listMeetings).Methods(http.MethodGet)
	api.HandleFunc("/meetings", h.createMeeting).Methods(http.MethodPost)
	api.HandleFunc("/meetings/{id}", h.updateMeeting).Methods(http.MethodPatch)
	api.HandleFunc("/meetings/{id}/summary", h.generateMeetingSummary).Methods(http.MethodPost)
	api.HandleFunc("/meetings/{id}/generate-actions", h.generateMeetingActions).Methods(http.MethodPost)

	api.HandleFunc("/action-items", h.listActionItems).Methods(http.MethodGet)
	api.HandleFunc("/action-items", h.createActionItem).Methods(http.MethodPost)
	api.HandleFunc("/action-items/{id}", h.updateActionItem).Methods(http.MethodPatch)

	api.HandleFunc("/documents", h.listDocuments).Methods(http.MethodGet)
	api.HandleFunc("/documents/upload", h.uploadDocument).Methods(http.MethodPost)
	api.HandleFunc("/documents/search", h.searchDocuments).Methods(http.MethodGet)

	api.HandleFunc("/chat/{sessionId}", h.listChatMessages).Methods(http.MethodGet)
	api.HandleFunc("/chat/{sessionId}", h.postChatMessage).Methods(http.MethodPost)

	api.HandleFunc("/reports", h.listReports).Methods(http.MethodGet)
	api.HandleFunc("/reports/generate-progress", h.generateProgressReport).Methods(http.MethodPost)

	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	return r
}

// Stats -----------------------------------------------------------------------

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.app.Stats.Overview(r.Context())
	if err != nil {
		h.respondError(w, err, "", "", "Failed to fetch stats")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// Initiatives -----------------------------------------------------------------

func (h *handler) listInitiatives(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Initiatives.List(r.Context())
	if err != nil {
		h.respondError(w, err, "", "", "Failed to fetch initiatives")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) createInitiative(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Status      string     `json:"status"`
		Progress    int        `json:"progress"`
		Priority    string     `json:"priority"`
		StartDate   *time.Time `json:"startDate"`
		EndDate     *time.Time `json:"endDate"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid initiative data")
		return
	}

	created, err := h.app.Initiatives.Create(r.Context(), initiative.Initiative{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      payload.Status,
		Progress:    payload.Progress,
		Priority:    payload.Priority,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
	})
	if err != nil {
		h.respondError(w, err, "Invalid initiative data", "", "Failed to create initiative")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) updateInitiative(w http.ResponseWriter, r *http.Request) {
	var patch initiative.Patch
	if err := decodeJSON(r.Body, &patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid initiative data")
		return
	}

	updated, err := h.app.Initiatives.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.respondError(w, err, "Invalid initiative data", "Initiative not found", "Failed to update initiative")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Meetings --------------------------------------------------------------------

func (h *handler) listMeetings(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Meetings.List(r.Context())
	if err != nil {
		h.respondError(w, err, "", "", "Failed to fetch meetings")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) createMeeting(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		ScheduledAt  time.Time `json:"scheduledAt"`
		Duration     int       `json:"duration"`
		Status       string    `json:"status"`
		Participants []string  `json:"participants"`
		Notes        string    `json:"notes"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid meeting data")
		return
	}

	created, err := h.app.Meetings.Create(r.Context(), meeting.Meeting{
		Title:        payload.Title,
		Description:  payload.Description,
		ScheduledAt:  payload.ScheduledAt,
		Duration:     payload.Duration,
		Status:       payload.Status,
		Participants: payload.Participants,
		Notes:        payload.Notes,
	})
	if err != nil {
		h.respondError(w, err, "Invalid meeting data", "", "Failed to create meeting")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) updateMeeting(w http.ResponseWriter, r *http.Request) {
	var patch meeting.Patch
	if err := decodeJSON(r.Body, &patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid meeting data")
		return
	}

	updated, err := h.app.Meetings.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.respondError(w, err, "Invalid meeting data", "Meeting not found", "Failed to update meeting")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) generateMeetingSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.app.Meetings.GenerateSummary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err, "", "Meeting or notes not found", "Failed to generate summary")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (h *handler) generateMeetingActions(w http.ResponseWriter, r *http.Request) {
	created, err := h.app.Actions.GenerateFromMeeting(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, err, "", "Meeting or notes not found", "Failed to generate action items")
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// Action items ----------------------------------------------------------------

func (h *handler) listActionItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Actions.List(r.Context())
	if err != nil {
		h.respondError(w, err, "", "", "Failed to fetch action items")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) createActionItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title        string     `json:"title"`
		Description  string     `json:"description"`
		Assignee     string     `json:"assignee"`
		Priority     string     `json:"priority"`
		Status       string     `json:"status"`
		DueDate      *time.Time `json:"dueDate"`
		MeetingID    string     `json:"meetingId"`
		InitiativeID string     `json:"initiativeId"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid action item data")
		return
	}

	created, err := h.app.Actions.Create(r.Context(), action.Item{
		Title:        payload.Title,
		Description:  payload.Description,
		Assignee:     payload.Assignee,
		Priority:     payload.Priority,
		Status:       payload.Status,
		DueDate:      payload.DueDate,
		MeetingID:    payload.MeetingID,
		InitiativeID: payload.InitiativeID,
	})
	if err != nil {
		h.respondError(w, err, "Invalid action item data", "", "Failed to create action item")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) updateActionItem(w http.ResponseWriter, r *http.Request) {
	var patch action.Patch
	if err := decodeJSON(r.Body, &patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid action item data")
		return
	}

	updated, err := h.app.Actions.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.respondError(w, err, "Invalid action item data", "Action item not found", "Failed to update action item")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Documents -------------------------------------------------------------------

func (h *handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Documents.List(r.Context())
	if err != nil {
		h.respondError(w, err, "", "", "Failed to fetch documents")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	created, err := h.app.Documents.Create(r.Context(), documents.Upload{
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
		Filename: header.Filename,
		FileType: header.Header.Get("Content-Type"),
		FileSize: header.Size,
	})
	if err != nil {
		h.respondError(w, err, "Invalid document data", "", "Failed to upload document")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) searchDocuments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeMessage(w, http.StatusBadRequest, "Search query required")
		return
	}

	matches, err := h.app.Documents.Search(r.Context(), query)
	if err != nil {
		h.respondError(w, err, "", "", "Failed to search documents")
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// Chat ------------------------------------------------------------------------

func (h *handler) listChatMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.app.Chat.Messages(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		h.respondError(w, err, "", "", "Failed to fetch chat messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *handler) postChatMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content string `json:"content"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil || payload.Content == "" {
		writeMessage(w, http.StatusBadRequest, "Message content required")
		return
	}

	assistant, err := h.app.Chat.Send(r.Context(), mux.Vars(r)["sessionId"], payload.Content, user.SystemID)
	if err != nil {
		h.respondError(w, err, "Message content required", "", "Failed to process chat message")
		return
	}
	writeJSON(w, http.StatusOK, assistant)
}

// Reports ---------------------------------------------------------------------

func (h *handler) listReports(w http.ResponseWriter, r *http.Request) {
	list, err := h.app.Reports.List(r.Context())
	if err != nil {
		h.respondError(w, err, "", "", "Failed to fetch reports")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) generateProgressReport(w http.ResponseWriter, r *http.Request) {
	created, err := h.app.Reports.GenerateProgress(r.Context())
	if err != nil {
		h.respondError(w, err, "", "", "Failed to generate progress report")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Misc ------------------------------------------------------------------------

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helpers ---------------------------------------------------------------------

// respondError maps service errors to the API's error envelope. Validation
// failures become 400s and missing records 404s with the supplied texts;
// anything else is logged and hidden behind a generic 500.
func (h *handler) respondError(w http.ResponseWriter, err error, invalid, notFound, internal string) {
	switch {
	case validation.IsError(err):
		writeMessage(w, http.StatusBadRequest, invalid)
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, meeting.ErrNoNotes):
		writeMessage(w, http.StatusNotFound, notFound)
	default:
		h.log.WithError(err).Error("request failed")
		writeMessage(w, http.StatusInternalServerError, internal)
	}
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
