package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transformhub/dashboard/internal/ai"
	app "github.com/transformhub/dashboard/internal/app"
	"github.com/transformhub/dashboard/internal/app/domain/initiative"
)

type stubGenerator struct {
	reply   string
	summary string
}

func (g stubGenerator) CompleteChat(context.Context, string, string) (string, error) {
	return g.reply, nil
}

func (g stubGenerator) SummarizeMeeting(context.Context, string) (string, error) {
	return g.summary, nil
}

func (g stubGenerator) AnalyzeDocument(context.Context, string, string) (string, error) {
	return "analysis", nil
}

func (g stubGenerator) ExtractActionItems(context.Context, string) ([]ai.ExtractedAction, error) {
	return nil, errors.New("not used")
}

func (g stubGenerator) SummarizeProgress(context.Context, []initiative.Initiative) (string, error) {
	return "insights", nil
}

func newTestServer(t *testing.T, generator ai.Generator, seed bool) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	application, err := app.New(app.Stores{}, generator, app.Options{SeedData: seed}, log)
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(application))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func patchJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestAPI_InitiativeFlow(t *testing.T) {
	srv := newTestServer(t, ai.Disabled{}, false)

	resp := postJSON(t, srv.URL+"/api/initiatives", map[string]interface{}{
		"title":    "CRM rollout",
		"progress": 30,
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created initiative.Initiative
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, initiative.StatusActive, created.Status)
	assert.Equal(t, 30, created.Progress)
	assert.False(t, created.CreatedAt.IsZero())

	resp = patchJSON(t, srv.URL+"/api/initiatives/"+created.ID, map[string]interface{}{
		"progress": 60,
		"status":   "completed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated initiative.Initiative
	decodeBody(t, resp, &updated)
	assert.Equal(t, 60, updated.Progress)
	assert.Equal(t, initiative.StatusCompleted, updated.Status)

	resp, err := http.Get(srv.URL + "/api/initiatives")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []initiative.Initiative
	decodeBody(t, resp, &list)
	assert.Len(t, list, 1)
}

func TestAPI_InitiativeErrors(t *testing.T) {
	srv := newTestServer(t, ai.Disabled{}, false)

	resp := postJSON(t, srv.URL+"/api/initiatives", map[string]interface{}{
		"title":    "bad",
		"progress": 150,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var msg map[string]string
	decodeBody(t, resp, &msg)
	assert.Equal(t, "Invalid initiative data", msg["message"])

	resp = patchJSON(t, srv.URL+"/api/initiatives/missing", map[string]interface{}{
		"progress": 10,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	decodeBody(t, resp, &msg)
	assert.Equal(t, "Initiative not found", msg["message"])
}

func TestAPI_Stats(t *testing.T) {
	srv := newTestServer(t, ai.Disabled{}, true)

	resp, err := http.Get(srv.URL + "/api/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]int
	decodeBody(t, resp, &stats)
	assert.Equal(t, 4, stats["activeInitiatives"])
	assert.Equal(t, 0, stats["completedMeetings"])
	assert.Equal(t, 59, stats["overallProgress"])
}

func TestAPI_MeetingSummary(t *testing.T) {
	srv := newTestServer(t, stubGenerator{summary: "Резюме на срещата"}, false)

	resp := postJSON(t, srv.URL+"/api/meetings", map[string]interface{}{
		"title":       "Retro",
		"scheduledAt": "2024-06-01T10:00:00Z",
		"notes":       "дълги бележки",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	decodeBody(t, resp, &created)
	id := created["id"].(string)

	resp = postJSON(t, srv.URL+"/api/meetings/"+id+"/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	decodeBody(t, resp, &result)
	assert.Equal(t, "Резюме на срещата", result["summary"])

	// A meeting without notes cannot be summarised.
	resp = postJSON(t, srv.URL+"/api/meetings", map[string]interface{}{
		"title":       "Planning",
		"scheduledAt": "2024-06-02T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeBody(t, resp, &created)

	resp = postJSON(t, srv.URL+"/api/meetings/"+created["id"].(string)+"/summary", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	decodeBody(t, resp, &result)
	assert.Equal(t, "Meeting or notes not found", result["message"])
}

func TestAPI_DocumentUpload(t *testing.T) {
	srv := newTestServer(t, stubGenerator{}, false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "plan.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("file body"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("title", "План"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/documents/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var doc map[string]interface{}
	decodeBody(t, resp, &doc)
	assert.Equal(t, "План", doc["title"])
	assert.Equal(t, "plan.txt", doc["filename"])
	assert.Equal(t, "general", doc["category"])

	// Upload without a file part.
	resp, err = http.Post(srv.URL+"/api/documents/upload", "multipart/form-data; boundary=x", strings.NewReader("--x--\r\n"))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var msg map[string]string
	decodeBody(t, resp, &msg)
	assert.Equal(t, "No file uploaded", msg["message"])
}

func TestAPI_DocumentSearch(t *testing.T) {
	srv := newTestServer(t, stubGenerator{}, false)

	resp, err := http.Get(srv.URL + "/api/documents/search")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var msg map[string]string
	decodeBody(t, resp, &msg)
	assert.Equal(t, "Search query required", msg["message"])

	resp, err = http.Get(srv.URL + "/api/documents/search?q=план")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	decodeBody(t, resp, &list)
	assert.Empty(t, list)
}

func TestAPI_Chat(t *testing.T) {
	srv := newTestServer(t, stubGenerator{reply: "Отговор"}, false)

	resp := postJSON(t, srv.URL+"/api/chat/s1", map[string]string{"content": "Въпрос"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var assistant map[string]interface{}
	decodeBody(t, resp, &assistant)
	assert.Equal(t, "assistant", assistant["role"])
	assert.Equal(t, "Отговор", assistant["content"])

	resp, err := http.Get(srv.URL + "/api/chat/s1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []map[string]interface{}
	decodeBody(t, resp, &messages)
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0]["role"])
	assert.Equal(t, "assistant", messages[1]["role"])

	resp = postJSON(t, srv.URL+"/api/chat/s1", map[string]string{"content": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var msg map[string]string
	decodeBody(t, resp, &msg)
	assert.Equal(t, "Message content required", msg["message"])
}

func TestAPI_Reports(t *testing.T) {
	srv := newTestServer(t, stubGenerator{}, true)

	resp := postJSON(t, srv.URL+"/api/reports/generate-progress", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var rep map[string]interface{}
	decodeBody(t, resp, &rep)
	assert.Equal(t, "progress", rep["type"])

	content, ok := rep["content"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "insights", content["insights"])
	assert.Len(t, content["initiatives"], 4)

	resp, err := http.Get(srv.URL + "/api/reports")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	decodeBody(t, resp, &list)
	assert.Len(t, list, 1)
}

func TestAPI_Healthz(t *testing.T) {
	srv := newTestServer(t, ai.Disabled{}, false)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]string
	decodeBody(t, resp, &status)
	assert.Equal(t, "ok", status["status"])
}
