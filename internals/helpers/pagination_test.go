package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func paramsFor(t *testing.T, target string) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ParseFiber(c, "newest")
		return nil
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := paramsFor(t, "/x")
	if p.Page != 1 || p.PerPage != DefaultPerPage || p.Sort != "newest" {
		t.Fatalf("defaults = %+v", p)
	}
}

func TestParseFiberClamps(t *testing.T) {
	p := paramsFor(t, "/x?page=0&per_page=500&sort=NAME")
	if p.Page != 1 {
		t.Errorf("page = %d, want 1", p.Page)
	}
	if p.PerPage != MaxPerPage {
		t.Errorf("per_page = %d, want %d", p.PerPage, MaxPerPage)
	}
	if p.Sort != "name" {
		t.Errorf("sort = %q, want name", p.Sort)
	}

	p = paramsFor(t, "/x?per_page=-3")
	if p.PerPage != DefaultPerPage {
		t.Errorf("negative per_page = %d, want default", p.PerPage)
	}

	// limit is an accepted alias.
	p = paramsFor(t, "/x?limit=5")
	if p.PerPage != 5 {
		t.Errorf("limit alias = %d, want 5", p.PerPage)
	}
}

func TestLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if p.Limit() != 25 {
		t.Errorf("Limit = %d", p.Limit())
	}
	if p.Offset() != 50 {
		t.Errorf("Offset = %d", p.Offset())
	}
}

func TestOrderClause(t *testing.T) {
	allowed := map[string]string{
		"name":   "club_name ASC",
		"newest": "created_time DESC",
	}
	p := Params{Sort: "name"}
	if got := p.OrderClause(allowed, "newest"); got != "club_name ASC" {
		t.Errorf("OrderClause known = %q", got)
	}
	p.Sort = "club_name; DROP TABLE clubs"
	if got := p.OrderClause(allowed, "newest"); got != "created_time DESC" {
		t.Errorf("OrderClause unknown = %q", got)
	}
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(101, Params{Page: 2, PerPage: 20})
	if m.Pages != 6 {
		t.Errorf("Pages = %d, want 6", m.Pages)
	}
	if m.Total != 101 || m.Page != 2 || m.PerPage != 20 {
		t.Errorf("meta = %+v", m)
	}

	m = BuildMeta(0, Params{Page: 1, PerPage: 20})
	if m.Pages != 0 {
		t.Errorf("empty Pages = %d, want 0", m.Pages)
	}

	m = BuildMeta(20, Params{Page: 1, PerPage: 20})
	if m.Pages != 1 {
		t.Errorf("exact Pages = %d, want 1", m.Pages)
	}
}
