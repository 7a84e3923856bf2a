package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mos3ef-api/internal/delivery/dto"
	"mos3ef-api/internal/delivery/http/middleware"
	"mos3ef-api/pkg/apperror"
	"mos3ef-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// queryParser reads typed query parameters and remembers the first malformed one.
type queryParser struct {
	values url.Values
	err    error
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{values: r.URL.Query()}
}

func (p *queryParser) raw(name string) (string, bool) {
	v := strings.TrimSpace(p.values.Get(name))
	return v, v != ""
}

func (p *queryParser) fail(name string) {
	if p.err == nil {
		p.err = apperror.BadRequest("malformed query parameter %q", name)
	}
}

func (p *queryParser) String(name string) string {
	v, _ := p.raw(name)
	return v
}

func (p *queryParser) Bool(name string, def bool) bool {
	v, ok := p.raw(name)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name)
		return def
	}
	return b
}

func (p *queryParser) OptionalBool(name string) *bool {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name)
		return nil
	}
	return &b
}

func (p *queryParser) Int(name string, def int) int {
	v, ok := p.raw(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name)
		return def
	}
	return i
}

func (p *queryParser) OptionalInt(name string) *int {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name)
		return nil
	}
	return &i
}

func (p *queryParser) OptionalFloat(name string) *float64 {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(name)
		return nil
	}
	return &f
}

func (p *queryParser) OptionalDecimal(name string) *decimal.Decimal {
	v, ok := p.raw(name)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.fail(name)
		return nil
	}
	return &d
}

func (p *queryParser) Err() error {
	return p.err
}

// pathID reads a positive integer path variable.
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		return 0, apperror.BadRequest("invalid %s", name)
	}
	return id, nil
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	return nil
}

// currentUser returns the authenticated account ID set by the auth middleware.
func currentUser(r *http.Request) (uuid.UUID, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

// writePage sends the items of a page with pagination metadata in meta.
func writePage[T any](w http.ResponseWriter, message string, page *dto.PagedResponse[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	meta := response.NewMeta(page.PageNumber, page.PageSize, int64(page.TotalCount))
	response.SuccessWithMeta(w, http.StatusOK, message, items, meta)
}
