package route

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "ainexus_backend/internals/databases"
)

// These tests run the real HTTP stack against a live PostgreSQL database.
// Set RUN_INTEGRATION_TESTS=true plus TEST_DB_* to point them at a throwaway
// database; every test truncates all tables before it starts.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	envOr := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		envOr("TEST_DB_USER", "postgres"),
		envOr("TEST_DB_PASSWORD", "postgres"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "ainexus_test"),
		envOr("TEST_DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}

	database.DB = db
	database.Migrate()

	if err := db.Exec(`TRUNCATE member_clubs, members, announcements, events,
		coordinators, clubs, colleges RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("truncate: %v", err)
	}

	app := fiber.New()
	SetupRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (int, map[string]interface{}) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("unmarshal %q: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

func dataOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T (%v)", body["data"], body)
	}
	return data
}

func errCodeOf(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("error = %T (%v)", body["error"], body)
	}
	code, _ := errObj["code"].(string)
	return code
}

func createClub(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()
	status, body := doJSON(t, app, "POST", "/api/clubs", fiber.Map{"club_name": name})
	if status != fiber.StatusCreated {
		t.Fatalf("create club %q: status %d (%v)", name, status, body)
	}
	return uint(dataOf(t, body)["club_id"].(float64))
}

func TestClubDeleteIdempotence(t *testing.T) {
	app, _ := setupApp(t)

	id := createClub(t, app, "Chess Club")
	path := fmt.Sprintf("/api/clubs/%d", id)

	status, _ := doJSON(t, app, "DELETE", path, nil)
	if status != fiber.StatusOK {
		t.Fatalf("first delete: status %d", status)
	}

	status, body := doJSON(t, app, "DELETE", path, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("second delete: status %d, want 404", status)
	}
	if code := errCodeOf(t, body); code != "not_found" {
		t.Errorf("second delete code = %q", code)
	}

	// Still fetchable by id, flagged deleted.
	status, body = doJSON(t, app, "GET", path, nil)
	if status != fiber.StatusOK {
		t.Fatalf("get after delete: status %d", status)
	}
	if del, _ := dataOf(t, body)["is_deleted"].(bool); !del {
		t.Errorf("is_deleted = %v after delete", dataOf(t, body)["is_deleted"])
	}

	// Gone from the listing.
	status, body = doJSON(t, app, "GET", "/api/clubs", nil)
	if status != fiber.StatusOK {
		t.Fatalf("list: status %d", status)
	}
	clubs, _ := dataOf(t, body)["clubs"].([]interface{})
	if len(clubs) != 0 {
		t.Errorf("listing returned %d clubs after delete", len(clubs))
	}
}

func TestCollegeNameConflict(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doJSON(t, app, "POST", "/api/colleges", fiber.Map{"college_name": "Engineering"})
	if status != fiber.StatusCreated {
		t.Fatalf("create: status %d", status)
	}

	// Same name up to case and surrounding whitespace.
	status, body := doJSON(t, app, "POST", "/api/colleges", fiber.Map{"college_name": "  engineering "})
	if status != fiber.StatusConflict {
		t.Fatalf("duplicate create: status %d, want 409", status)
	}
	if code := errCodeOf(t, body); code != "duplicate_error" {
		t.Errorf("duplicate code = %q", code)
	}

	// Renaming another college onto the taken name conflicts too.
	status, body = doJSON(t, app, "POST", "/api/colleges", fiber.Map{"college_name": "Science"})
	if status != fiber.StatusCreated {
		t.Fatalf("create second: status %d", status)
	}
	otherID := uint(dataOf(t, body)["college_id"].(float64))
	status, body = doJSON(t, app, "PUT", fmt.Sprintf("/api/colleges/%d", otherID),
		fiber.Map{"college_name": "ENGINEERING"})
	if status != fiber.StatusConflict {
		t.Fatalf("rename onto taken name: status %d, want 409 (%v)", status, body)
	}
}

func TestMemberCreateAtomicity(t *testing.T) {
	app, db := setupApp(t)

	liveID := createClub(t, app, "Robotics")
	deadID := createClub(t, app, "Defunct Society")
	if status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/clubs/%d", deadID), nil); status != fiber.StatusOK {
		t.Fatalf("delete club: status %d", status)
	}

	status, body := doJSON(t, app, "POST", "/api/members", fiber.Map{
		"member_name": "Asha Rao",
		"club_ids":    []uint{liveID, deadID},
	})
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("create with dead club: status %d, want 422 (%v)", status, body)
	}
	if code := errCodeOf(t, body); code != "validation_error" {
		t.Errorf("code = %q", code)
	}

	// Nothing half-written.
	var members, links int64
	if err := db.Table("members").Count(&members).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if err := db.Table("member_clubs").Count(&links).Error; err != nil {
		t.Fatalf("count member_clubs: %v", err)
	}
	if members != 0 || links != 0 {
		t.Errorf("members = %d, member_clubs = %d after failed create", members, links)
	}

	// A valid create lands both the member and its links.
	status, body = doJSON(t, app, "POST", "/api/members", fiber.Map{
		"member_name": "Asha Rao",
		"club_ids":    []uint{liveID},
	})
	if status != fiber.StatusCreated {
		t.Fatalf("valid create: status %d (%v)", status, body)
	}
	if err := db.Table("member_clubs").Count(&links).Error; err != nil {
		t.Fatalf("count member_clubs: %v", err)
	}
	if links != 1 {
		t.Errorf("member_clubs = %d after valid create", links)
	}
}

func TestClubUpdateRoundTrip(t *testing.T) {
	app, _ := setupApp(t)

	id := createClub(t, app, "Drama Club")

	status, body := doJSON(t, app, "PUT", fmt.Sprintf("/api/clubs/%d", id), fiber.Map{
		"club_name": "Theatre Society",
		"status":    "inactive",
	})
	if status != fiber.StatusOK {
		t.Fatalf("update: status %d (%v)", status, body)
	}
	data := dataOf(t, body)
	if data["club_name"] != "Theatre Society" {
		t.Errorf("updated club_name = %v", data["club_name"])
	}
	if data["status"] != "inactive" {
		t.Errorf("updated status = %v", data["status"])
	}

	// The response reflects what was stored.
	status, body = doJSON(t, app, "GET", fmt.Sprintf("/api/clubs/%d", id), nil)
	if status != fiber.StatusOK {
		t.Fatalf("get: status %d", status)
	}
	if got := dataOf(t, body)["club_name"]; got != "Theatre Society" {
		t.Errorf("stored club_name = %v", got)
	}
}

func TestClubListPagination(t *testing.T) {
	app, _ := setupApp(t)

	for i := 1; i <= 25; i++ {
		createClub(t, app, fmt.Sprintf("Club %02d", i))
	}

	status, body := doJSON(t, app, "GET", "/api/clubs?page=3&per_page=10", nil)
	if status != fiber.StatusOK {
		t.Fatalf("list: status %d", status)
	}
	clubs, _ := dataOf(t, body)["clubs"].([]interface{})
	if len(clubs) != 5 {
		t.Errorf("page 3 rows = %d, want 5", len(clubs))
	}
	meta, ok := body["meta"].(map[string]interface{})
	if !ok {
		t.Fatalf("meta = %T", body["meta"])
	}
	if meta["total"] != float64(25) || meta["pages"] != float64(3) {
		t.Errorf("meta = %v", meta)
	}
}
