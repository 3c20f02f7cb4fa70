package profiles

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	providerstore "github.com/facilitiease/facilitiease/internal/app/store/providers"
	startupstore "github.com/facilitiease/facilitiease/internal/app/store/startups"
	"github.com/facilitiease/facilitiease/internal/app/system/auth"
	"github.com/facilitiease/facilitiease/internal/app/system/webapi"
	"github.com/facilitiease/facilitiease/internal/domain/models"
	"github.com/facilitiease/facilitiease/internal/testutil"
)

func newTestHandler(db *mongo.Database) *Handler {
	return NewHandler(startupstore.New(db), providerstore.New(db), zap.NewNop())
}

func sessionUser(u models.User) *auth.SessionUser {
	return &auth.SessionUser{ID: u.ID.Hex(), Email: u.Email, Role: u.Role}
}

func patchRequest(t *testing.T, target string, body any, user *auth.SessionUser, urlID string) *http.Request {
	t.Helper()
	req := testutil.AuthedJSONRequest(t, http.MethodPatch, target, body, user)
	return testutil.WithChiURLParam(req, "userID", urlID)
}

func TestUpdateOwnStartupProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "founder@example.com", "secret123", models.RoleStartup)
	fx.CreateStartupProfile(ctx, u.ID, "Acme Labs")

	body := map[string]any{
		"address":  "1 Main St",
		"logo_url": "https://cdn.test/acme.png",
	}
	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, patchRequest(t, "/profiles/"+u.ID.Hex(), body, sessionUser(u), u.ID.Hex()))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d\nbody: %s", rec.Code, rec.Body.String())
	}

	p, err := startupstore.New(db).GetByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if !p.Complete() {
		t.Fatal("profile should be complete after patch")
	}
}

func TestUpdateSanitizesMarkup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "founder@example.com", "secret123", models.RoleStartup)
	fx.CreateStartupProfile(ctx, u.ID, "Acme Labs")

	body := map[string]any{"address": `<img src=x onerror=alert(1)>1 Main St`}
	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, patchRequest(t, "/profiles/"+u.ID.Hex(), body, sessionUser(u), u.ID.Hex()))
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d\nbody: %s", rec.Code, rec.Body.String())
	}

	p, err := startupstore.New(db).GetByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if p.Address == nil || *p.Address != "1 Main St" {
		t.Fatalf("markup not stripped: %v", p.Address)
	}
}

func TestUpdateNotOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "founder@example.com", "secret123", models.RoleStartup)
	other := primitive.NewObjectID().Hex()

	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, patchRequest(t, "/profiles/"+other, map[string]any{"address": "x"}, sessionUser(u), other))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", rec.Code)
	}
	if code := testutil.ErrorCode(t, rec); code != webapi.CodeForbidden {
		t.Fatalf("got code %q, want forbidden", code)
	}
}

func TestUpdateNoSession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)

	id := primitive.NewObjectID().Hex()
	req := testutil.JSONRequest(t, http.MethodPatch, "/profiles/"+id, map[string]any{"address": "x"})
	req = testutil.WithChiURLParam(req, "userID", id)
	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", rec.Code)
	}
}

func TestUpdateProfileMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// User exists but their profile document does not.
	u := fx.CreateUser(ctx, "orphan@example.com", "secret123", models.RoleStartup)

	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, patchRequest(t, "/profiles/"+u.ID.Hex(), map[string]any{"address": "x"}, sessionUser(u), u.ID.Hex()))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
	if code := testutil.ErrorCode(t, rec); code != webapi.CodeNotFound {
		t.Fatalf("got code %q, want not_found", code)
	}
}

func TestUpdateRejectsNonStringValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "founder@example.com", "secret123", models.RoleStartup)
	fx.CreateStartupProfile(ctx, u.ID, "Acme Labs")

	rec := httptest.NewRecorder()
	h.ServeUpdate(rec, patchRequest(t, "/profiles/"+u.ID.Hex(), map[string]any{"address": 42}, sessionUser(u), u.ID.Hex()))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}

func TestMe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "provider@example.com", "secret123", models.RoleServiceProvider)
	fx.CreateProviderProfile(ctx, u.ID, "BioBench", u.Email)

	rec := httptest.NewRecorder()
	h.ServeMe(rec, testutil.AuthedJSONRequest(t, http.MethodGet, "/profiles/me", nil, sessionUser(u)))

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d\nbody: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Role     string `json:"role"`
		Complete bool   `json:"complete"`
		Profile  struct {
			ServiceName string `json:"service_name"`
		} `json:"profile"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Role != models.RoleServiceProvider {
		t.Fatalf("role %q", resp.Role)
	}
	if resp.Complete {
		t.Fatal("seeded profile must not be complete")
	}
	if resp.Profile.ServiceName != "BioBench" {
		t.Fatalf("service name %q", resp.Profile.ServiceName)
	}
}

func TestMeNoProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := newTestHandler(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "orphan@example.com", "secret123", models.RoleStartup)

	rec := httptest.NewRecorder()
	h.ServeMe(rec, testutil.AuthedJSONRequest(t, http.MethodGet, "/profiles/me", nil, sessionUser(u)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", rec.Code)
	}
}
