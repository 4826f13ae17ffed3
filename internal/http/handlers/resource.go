package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meusistema/clientes/internal/http/response"
	"github.com/meusistema/clientes/internal/pkg/dbctx"
	pkgerrors "github.com/meusistema/clientes/internal/pkg/errors"
	"github.com/meusistema/clientes/internal/pkg/pagination"
	"github.com/meusistema/clientes/internal/platform/apierr"
	"github.com/meusistema/clientes/internal/platform/ctxutil"
	"github.com/meusistema/clientes/internal/platform/logger"
)

// ResourceConfig carries the settings shared by every entity resource.
type ResourceConfig struct {
	Alerts          response.Alerts
	DefaultPageSize int
	MaxPageSize     int
}

// resource holds the request plumbing common to the entity handlers.
type resource struct {
	log    *logger.Logger
	entity string
	alerts response.Alerts
	pager  pagination.Parser
}

func newResource(log *logger.Logger, entity string, columns map[string]string, cfg ResourceConfig) resource {
	return resource{
		log:    log,
		entity: entity,
		alerts: cfg.Alerts,
		pager: pagination.Parser{
			Columns:     columns,
			DefaultSize: cfg.DefaultPageSize,
			MaxSize:     cfg.MaxPageSize,
		},
	}
}

func requestDB(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}

func (r resource) badRequest(c *gin.Context, code, msg string) {
	response.RespondAPIError(c, r.alerts, apierr.BadRequest(r.entity, code, msg))
}

// pathID reads a positive :id or answers 400 idinvalid.
func (r resource) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		r.badRequest(c, "idinvalid", "Invalid ID")
		return 0, false
	}
	return id, true
}

func (r resource) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		r.badRequest(c, "invalidjson", "Malformed JSON request body")
		return false
	}
	return true
}

// requireMergePatch answers 415 for content types other than JSON and merge-patch JSON.
func (r resource) requireMergePatch(c *gin.Context) bool {
	switch c.ContentType() {
	case "application/json", "application/merge-patch+json":
		return true
	}
	response.RespondError(c, http.StatusUnsupportedMediaType, "unsupportedmediatype",
		errors.New("content type must be application/json or application/merge-patch+json"))
	return false
}

// idRules applies the update id checks: body id present, equal to the path id.
func (r resource) idRules(c *gin.Context, pathID int64, bodyID int64, present bool) bool {
	if !present {
		r.badRequest(c, "idnull", "Invalid id")
		return false
	}
	if bodyID != pathID {
		r.badRequest(c, "idinvalid", "Invalid ID")
		return false
	}
	return true
}

func (r resource) pageable(c *gin.Context) (pagination.Pageable, bool) {
	p, err := r.pager.Parse(c.Request.URL.Query())
	if err != nil {
		code := "pageinvalid"
		var pe *pagination.ParseError
		if errors.As(err, &pe) && pe.Param == "sort" {
			code = "sortinvalid"
		}
		r.badRequest(c, code, err.Error())
		return pagination.Pageable{}, false
	}
	return p, true
}

// fail maps domain and service errors onto HTTP responses.
func (r resource) fail(c *gin.Context, op string, err error) {
	var apiErr *apierr.Error
	switch {
	case errors.As(err, &apiErr):
		response.RespondAPIError(c, r.alerts, apiErr)
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.RespondNotFound(c)
	default:
		_ = c.Error(err)
		r.log.Error(op+" failed", append(ctxutil.LogFields(c.Request.Context()), "entity", r.entity, "error", err)...)
		response.RespondInternal(c)
	}
}
