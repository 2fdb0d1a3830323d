package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func bodyFor(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", handler)
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
	return resp.StatusCode, out
}

func TestJsonListEnvelope(t *testing.T) {
	status, body := bodyFor(t, func(c *fiber.Ctx) error {
		return JsonList(c, fiber.Map{"clubs": []string{"chess"}},
			BuildMeta(25, Params{Page: 3, PerPage: 10}))
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["status"] != true {
		t.Errorf("status field = %v", body["status"])
	}
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T", body["data"])
	}
	if _, ok := data["clubs"]; !ok {
		t.Errorf("data missing clubs: %v", data)
	}
	meta, ok := body["meta"].(map[string]interface{})
	if !ok {
		t.Fatalf("meta = %T", body["meta"])
	}
	if meta["total"] != float64(25) || meta["pages"] != float64(3) {
		t.Errorf("meta = %v", meta)
	}
}

func TestJsonListNilMeta(t *testing.T) {
	_, body := bodyFor(t, func(c *fiber.Ctx) error {
		return JsonList(c, []string{}, nil)
	})
	if _, ok := body["meta"]; ok {
		t.Errorf("meta present on nil: %v", body["meta"])
	}
}

func TestJsonErrorCodes(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{fiber.StatusBadRequest, CodeBadRequest},
		{fiber.StatusNotFound, CodeNotFound},
		{fiber.StatusUnprocessableEntity, CodeValidationError},
		{fiber.StatusConflict, CodeDuplicateError},
		{fiber.StatusUnsupportedMediaType, CodeUnsupportedMedia},
		{fiber.StatusInternalServerError, CodeDBError},
		{fiber.StatusServiceUnavailable, CodeDBError},
	}
	for _, tc := range cases {
		status, body := bodyFor(t, func(c *fiber.Ctx) error {
			return JsonError(c, tc.status, "boom")
		})
		if status != tc.status {
			t.Errorf("status = %d, want %d", status, tc.status)
		}
		if body["status"] != false {
			t.Errorf("status field = %v for %d", body["status"], tc.status)
		}
		errObj, ok := body["error"].(map[string]interface{})
		if !ok {
			t.Fatalf("error = %T", body["error"])
		}
		if errObj["code"] != tc.code {
			t.Errorf("code = %v, want %s", errObj["code"], tc.code)
		}
		if errObj["message"] != "boom" {
			t.Errorf("message = %v", errObj["message"])
		}
	}
}
