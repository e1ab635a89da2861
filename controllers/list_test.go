package controllers_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EshRan/pooja-admin-ui/client"
	"github.com/EshRan/pooja-admin-ui/controllers"
	"github.com/EshRan/pooja-admin-ui/forms"
	"github.com/EshRan/pooja-admin-ui/models"
)

// itemBackend is a minimal in-memory rendition of the /api/items surface.
type itemBackend struct {
	mu      sync.Mutex
	records map[int]map[string]interface{}
	nextID  int
	creates int
	updates int
	deletes int
}

func newItemBackend() *itemBackend {
	return &itemBackend{records: map[int]map[string]interface{}{}, nextID: 1}
}

func (b *itemBackend) router() chi.Router {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		records := make([]map[string]interface{}, 0, len(b.records))
		for _, record := range b.records {
			records = append(records, record)
		}
		writeJSON(w, http.StatusOK, records)
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]interface{}{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		b.creates++
		payload["id"] = b.nextID
		b.records[b.nextID] = payload
		b.nextID++
		writeJSON(w, http.StatusCreated, payload)
	})
	router.Put("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(r, "id"))
		payload := map[string]interface{}{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		record, ok := b.records[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		b.updates++
		for name, value := range payload {
			record[name] = value
		}
		writeJSON(w, http.StatusOK, record)
	})
	router.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(r, "id"))
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.records[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		b.deletes++
		delete(b.records, id)
		w.WriteHeader(http.StatusOK)
	})
	return router
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func itemSearchText(item models.PoojaItem) []string {
	return []string{item.ItemName, item.ItemCode.String}
}

func newItemController(backendURL string, confirm controllers.Confirmer, alert controllers.Alerter) *controllers.ListController[models.PoojaItem] {
	api := client.New(client.Config{BaseURL: backendURL})
	return controllers.NewListController(client.Items(api), forms.Item(), itemSearchText, confirm, alert)
}

func TestSubmitWithoutEditingIDCreates(t *testing.T) {
	backend := newItemBackend()
	server := httptest.NewServer(backend.router())
	defer server.Close()

	ctrl := newItemController(server.URL, nil, nil)
	ctrl.OpenForCreate()
	ctrl.Session().SetField("itemName", "Rice")
	ctrl.Session().SetField("totalQuantity", "5")
	ctrl.Session().SetField("price", "120")

	require.NoError(t, ctrl.Submit(context.Background()))
	assert.Equal(t, 1, backend.creates)
	assert.Equal(t, 0, backend.updates)
	assert.Equal(t, controllers.SessionClosed, ctrl.Session().Mode(), "successful submit closes the session")

	items := ctrl.Items()
	require.Len(t, items, 1, "submit refreshes the list")
	assert.Equal(t, "Rice", items[0].ItemName)
	assert.True(t, items[0].ID.Valid)
}

func TestSubmitWithEditingIDUpdates(t *testing.T) {
	backend := newItemBackend()
	backend.records[4] = map[string]interface{}{"id": 4, "itemName": "Rice"}
	backend.nextID = 5
	server := httptest.NewServer(backend.router())
	defer server.Close()

	ctrl := newItemController(server.URL, nil, nil)
	record := models.PoojaItem{ItemName: "Rice"}
	ctrl.OpenForEdit(4, forms.ItemValues(record))
	ctrl.Session().SetField("itemName", "Basmati Rice")

	require.NoError(t, ctrl.Submit(context.Background()))
	assert.Equal(t, 0, backend.creates)
	assert.Equal(t, 1, backend.updates)

	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Basmati Rice", items[0].ItemName)
}

func TestSubmitValidationFailureNeverReachesNetwork(t *testing.T) {
	backend := newItemBackend()
	server := httptest.NewServer(backend.router())
	defer server.Close()

	ctrl := newItemController(server.URL, nil, nil)
	ctrl.OpenForCreate()

	err := ctrl.Submit(context.Background())
	require.Error(t, err)

	var errs forms.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Name is required", errs["itemName"])
	assert.Equal(t, 0, backend.creates)
	assert.Equal(t, controllers.SessionCreate, ctrl.Session().Mode(), "session stays open for the fix")
}

func TestSubmitFailureAlertsAndKeepsSessionOpen(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	})
	server := httptest.NewServer(router)
	defer server.Close()

	var alerted string
	ctrl := newItemController(server.URL, nil, func(message string) { alerted = message })
	ctrl.OpenForCreate()
	ctrl.Session().SetField("itemName", "Rice")

	err := ctrl.Submit(context.Background())
	require.Error(t, err)
	assert.Contains(t, alerted, "Failed to save record")
	assert.Equal(t, controllers.SessionCreate, ctrl.Session().Mode())
}

func TestRefreshFailureDegradesToEmptyList(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	server := httptest.NewServer(router)
	defer server.Close()

	ctrl := newItemController(server.URL, nil, nil)
	ctrl.Refresh(context.Background())

	assert.Empty(t, ctrl.Items(), "fetch failures show zero records, not an error banner")
	assert.Error(t, ctrl.LastError(), "the failure is still kept for diagnostics")
	assert.False(t, ctrl.Loading())
}

func TestFilterIsCaseInsensitiveSubset(t *testing.T) {
	backend := newItemBackend()
	backend.records[1] = map[string]interface{}{"id": 1, "itemName": "Basmati Rice", "itemCode": "RIC-01"}
	backend.records[2] = map[string]interface{}{"id": 2, "itemName": "Turmeric", "itemCode": "TUR-01"}
	backend.records[3] = map[string]interface{}{"id": 3, "itemName": "Camphor", "itemCode": "CAM-01"}
	backend.nextID = 4
	server := httptest.NewServer(backend.router())
	defer server.Close()

	ctrl := newItemController(server.URL, nil, nil)
	ctrl.Refresh(context.Background())
	require.Len(t, ctrl.Items(), 3)

	matched := ctrl.Filter("rIc")
	require.Len(t, matched, 2, "matches Basmati Rice by name and RIC-01 by code")
	for _, item := range matched {
		assert.NotEqual(t, "Camphor", item.ItemName)
	}

	assert.Len(t, ctrl.Filter(""), 3)
	assert.Len(t, ctrl.Items(), 3, "filter never mutates the stored list")
}

func TestRetryAfterFailedSaveResendsAttachment(t *testing.T) {
	var posts int
	var retriedImage string
	router := chi.NewRouter()
	router.Get("/api/nuts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]interface{}{})
	})
	router.Post("/api/nuts", func(w http.ResponseWriter, r *http.Request) {
		posts++
		if posts == 1 {
			http.Error(w, "backend hiccup", http.StatusInternalServerError)
			return
		}
		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		contents, err := ioutil.ReadAll(file)
		require.NoError(t, err)
		retriedImage = string(contents)
		writeJSON(w, http.StatusCreated, map[string]interface{}{"id": 1, "itemName": "Almond"})
	})
	server := httptest.NewServer(router)
	defer server.Close()

	api := client.New(client.Config{BaseURL: server.URL})
	ctrl := controllers.NewListController(client.Nuts(api), forms.Nut(), func(nut models.Nut) []string {
		return []string{nut.ItemName}
	}, nil, nil)

	ctrl.OpenForCreate()
	ctrl.Session().SetField("itemName", "Almond")
	ctrl.Session().StageAttachment(&client.Attachment{FileName: "almond.jpg", Data: []byte("jpg-bytes")})

	require.Error(t, ctrl.Submit(context.Background()))
	require.Equal(t, controllers.SessionCreate, ctrl.Session().Mode(), "failed save keeps the session open")
	require.NotNil(t, ctrl.Session().Attachment(), "the staged image survives the failure")

	require.NoError(t, ctrl.Submit(context.Background()))
	assert.Equal(t, 2, posts)
	assert.Equal(t, "jpg-bytes", retriedImage, "the retry carries the same image bytes")
}

func TestFilterWithoutExtractorDoesNotPanic(t *testing.T) {
	backend := newItemBackend()
	backend.records[1] = map[string]interface{}{"id": 1, "itemName": "Rice"}
	backend.nextID = 2
	server := httptest.NewServer(backend.router())
	defer server.Close()

	api := client.New(client.Config{BaseURL: server.URL})
	ctrl := controllers.NewListController(client.Items(api), forms.Item(), nil, nil, nil)
	ctrl.Refresh(context.Background())

	assert.Empty(t, ctrl.Filter("rice"), "no extractor means nothing matches")
	assert.Len(t, ctrl.Filter(""), 1, "an empty query still returns the full list")
}

func TestRemoveRequiresConfirmation(t *testing.T) {
	backend := newItemBackend()
	backend.records[1] = map[string]interface{}{"id": 1, "itemName": "Rice"}
	backend.nextID = 2
	server := httptest.NewServer(backend.router())
	defer server.Close()

	declined := func(string) bool { return false }
	ctrl := newItemController(server.URL, declined, nil)
	ctrl.Refresh(context.Background())

	require.NoError(t, ctrl.Remove(context.Background(), 1))
	assert.Equal(t, 0, backend.deletes, "declined confirmation never reaches the backend")
	assert.Len(t, ctrl.Items(), 1)
}

func TestDoubleRemoveIsIdempotent(t *testing.T) {
	backend := newItemBackend()
	backend.records[5] = map[string]interface{}{"id": 5, "itemName": "Rice"}
	backend.nextID = 6
	server := httptest.NewServer(backend.router())
	defer server.Close()

	ctrl := newItemController(server.URL, nil, nil)
	ctrl.Refresh(context.Background())
	require.Len(t, ctrl.Items(), 1)

	require.NoError(t, ctrl.Remove(context.Background(), 5))
	require.NoError(t, ctrl.Remove(context.Background(), 5), "second delete hits a 404 and still succeeds")
	assert.Empty(t, ctrl.Items())
}
