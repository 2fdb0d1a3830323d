// file: internals/helpers/params.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParamID reads a positive integer path parameter.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 32)
	if err != nil || n == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(n), nil
}

// QueryUint reads an optional positive integer query parameter; nil when
// absent or malformed.
func QueryUint(c *fiber.Ctx, name string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return nil
	}
	v := uint(n)
	return &v
}

// QueryUintForm reads an optional positive integer multipart/form field;
// nil when absent or malformed.
func QueryUintForm(c *fiber.Ctx, name string) *uint {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return nil
	}
	v := uint(n)
	return &v
}

// QueryUintList reads a repeated or CSV id parameter (?club_ids=1&club_ids=2
// or ?club_ids=1,2). Malformed entries are skipped.
func QueryUintList(c *fiber.Ctx, name string) []uint {
	var out []uint
	args := c.Context().QueryArgs()
	for _, raw := range args.PeekMulti(name) {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if n, err := strconv.ParseUint(part, 10, 32); err == nil && n > 0 {
				out = append(out, uint(n))
			}
		}
	}
	return out
}
