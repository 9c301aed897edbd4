package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MdSufiyan005/INHACK/cli/pkg/api"
	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	"github.com/MdSufiyan005/INHACK/cli/pkg/config"
	clierrors "github.com/MdSufiyan005/INHACK/cli/pkg/errors"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
	"github.com/MdSufiyan005/INHACK/cli/pkg/stock"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup points the shared client at a test backend and returns a
// session store already holding a logged-in vendor
func setup(t *testing.T, handler http.HandlerFunc) *session.Store {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	require.NoError(t, config.Init(filepath.Join(t.TempDir(), "config.toml")))
	require.NoError(t, config.SetString("api.base_url", server.URL))
	client.Init()

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(&session.Session{
		Vendor: api.Vendor{
			ID:           7,
			Name:         "Ravi Stores",
			PhoneNumber:  "+919812345678",
			Location:     "Pune",
			BusinessInfo: "Groceries",
		},
		SessionID: "sess-token",
	}))
	return store
}

// TestStockRenderListMergesCollections validates both collections are
// fetched and interleaved newest first
func TestStockRenderListMergesCollections(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/purchases/":
			w.Write([]byte(`[{"id": 1, "item_name": "Rice", "quantity": 5, "price": 450, "payment_method": "Cash", "created_at": "2025-03-01T10:00:00"}]`))
		case "/api/sales/":
			w.Write([]byte(`[{"id": 2, "item_name": "Oil", "quantity": 1, "total_price": 160, "payment_method": "online", "created_at": "2025-03-05T10:00:00"}]`))
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
	})

	view, err := NewStockService(store).RenderList(stock.FilterAll)
	require.NoError(t, err)

	assert.Contains(t, view, "Rice")
	assert.Contains(t, view, "Oil")
	// The newer sale renders above the older purchase
	assert.Less(t, strings.Index(view, "Oil"), strings.Index(view, "Rice"))
}

// TestStockRenderListSingleKind validates the filter skips the other
// collection's endpoint entirely
func TestStockRenderListSingleKind(t *testing.T) {
	saleRequests := 0
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/purchases/":
			w.Write([]byte(`[{"id": 1, "item_name": "Rice", "quantity": 5, "price": 450, "payment_method": "Cash"}]`))
		case "/api/sales/":
			saleRequests++
			w.Write([]byte(`[]`))
		}
	})

	view, err := NewStockService(store).RenderList(stock.FilterPurchase)
	require.NoError(t, err)

	assert.Contains(t, view, "Rice")
	assert.Zero(t, saleRequests, "purchase filter should not fetch sales")
}

// TestStockRenderListEmpty validates the empty feed message
func TestStockRenderListEmpty(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	view, err := NewStockService(store).RenderList(stock.FilterSale)
	require.NoError(t, err)
	assert.Equal(t, "No sale transactions found\n", view)
}

// TestStockListJSONOutput validates --output json emits the backing
// records instead of the rendered table
func TestStockListJSONOutput(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/purchases/":
			w.Write([]byte(`[{"id": 4242, "item_name": "Rice", "quantity": 5, "price": 450, "payment_method": "Cash", "created_at": "2025-03-01T10:00:00"}]`))
		case "/api/sales/":
			w.Write([]byte(`[]`))
		}
	})

	require.NoError(t, config.SetString("output.format", "json"))
	t.Cleanup(func() {
		_ = config.SetString("output.format", "text")
	})

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	listErr := NewStockService(store).List(stock.FilterAll)

	w.Close()
	os.Stdout = orig
	out, readErr := io.ReadAll(r)
	require.NoError(t, readErr)
	require.NoError(t, listErr)

	assert.Contains(t, string(out), `"ItemName": "Rice"`)
	assert.Contains(t, string(out), "4242")
	assert.NotContains(t, string(out), "₹", "json mode should skip the rendered table")
}

// TestRenderWithoutSession validates the login gate raises before any
// request is sent
func TestRenderWithoutSession(t *testing.T) {
	requests := 0
	setup(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	empty := session.NewStore(filepath.Join(t.TempDir(), "session.json"))

	_, err := NewStockService(empty).RenderList(stock.FilterAll)
	require.Error(t, err)
	assert.True(t, clierrors.IsUnauthenticated(err))
	assert.Zero(t, requests, "no request should go out without a session")
}

// TestExpiredSessionKeepsStore validates a 401 surfaces the re-auth
// signal without touching the persisted session
func TestExpiredSessionKeepsStore(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := NewStockService(store).List(stock.FilterAll)
	require.Error(t, err)
	assert.True(t, clierrors.IsUnauthenticated(err))

	// The vendor record survives; only a new login or an explicit
	// logout replaces it
	require.NotNil(t, store.Vendor())
	assert.Equal(t, "Ravi Stores", store.Vendor().Name)
}

// TestReminderRenderList validates the reminders fetch scopes to the
// active vendor
func TestReminderRenderList(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reminders/", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("vendor_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 3, "item_name": "Cement", "Amount": 5000, "ToWhom": "Sharma Traders", "Date_Time": "2025-12-01T09:30", "payment_method": "Cash"}]`))
	})

	view, err := NewReminderService(store).RenderList()
	require.NoError(t, err)
	assert.Contains(t, view, "Cement")
	assert.Contains(t, view, "₹5000")
}

// TestReminderAddRejectsPastDate validates a past date never reaches
// the backend
func TestReminderAddRejectsPastDate(t *testing.T) {
	requests := 0
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	err := NewReminderService(store).Add(
		"2020-01-01T09:00", "Cement", 5000, "Sharma Traders", "+919899999999", "Cash")
	require.Error(t, err)
	assert.True(t, clierrors.IsValidation(err))
	assert.Zero(t, requests, "invalid reminder should not be sent")
}

// TestEventsRenderListEmpty validates the no-events message
func TestEventsRenderListEmpty(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	view, err := NewEventsService(store).RenderList()
	require.NoError(t, err)
	assert.Equal(t, "No upcoming events found for your location.\n", view)
}

// TestProfileRenderFetchesFresh validates the profile view shows the
// server record, not the cached session copy
func TestProfileRenderFetchesFresh(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "Name": "Ravi Stores (Renamed)", "PhoneNumber": "+919812345678", "Location": "Mumbai", "BusinessInfo": "Groceries"}`))
	})

	view, err := NewProfileService(store).RenderProfile()
	require.NoError(t, err)
	assert.Contains(t, view, "Ravi Stores (Renamed)")
	assert.Contains(t, view, "Mumbai")
}

// TestProfileEditCarriesBusinessInfo validates a partial edit never
// blanks fields that were not touched
func TestProfileEditCarriesBusinessInfo(t *testing.T) {
	store := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/vendor/7", r.URL.Path)

		var req api.RegisterRequest
		require.NoError(t, decodeJSON(r, &req))
		assert.Equal(t, "New Name", req.Name)
		assert.Equal(t, "Pune", req.Location, "untouched location should carry forward")
		assert.Equal(t, "Groceries", req.BusinessInfo, "business info should carry forward")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "Name": "New Name", "PhoneNumber": "+919812345678", "Location": "Pune", "BusinessInfo": "Groceries"}`))
	})

	err := NewProfileService(store).Edit("New Name", "", "")
	require.NoError(t, err)

	// The session copy follows the server record
	assert.Equal(t, "New Name", store.Vendor().Name)
}

func decodeJSON(r *http.Request, target interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
