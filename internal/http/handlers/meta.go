package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/meusistema/clientes/internal/domain"
	"github.com/meusistema/clientes/internal/http/response"
	"github.com/meusistema/clientes/internal/platform/logger"
	"github.com/meusistema/clientes/internal/services"
)

type MetaHandler struct {
	resource
	metaService services.MetaService
}

func NewMetaHandler(log *logger.Logger, metaService services.MetaService, cfg ResourceConfig) *MetaHandler {
	return &MetaHandler{
		resource:    newResource(log.With("handler", "MetaHandler"), types.EntityMeta, types.MetaSortColumns, cfg),
		metaService: metaService,
	}
}

// POST /api/metas
func (h *MetaHandler) Create(c *gin.Context) {
	var in types.MetaInput
	if !h.bindJSON(c, &in) {
		return
	}
	meta, err := types.ValidateMetaInput(in)
	if err != nil {
		h.fail(c, "create meta", err)
		return
	}
	if in.ID.Present() {
		h.badRequest(c, "idexists", "A new meta cannot already have an ID")
		return
	}

	saved, err := h.metaService.Save(requestDB(c), meta)
	if err != nil {
		h.fail(c, "create meta", err)
		return
	}
	id := strconv.FormatInt(saved.ID, 10)
	c.Header("Location", "/api/metas/"+id)
	h.alerts.Created(c, types.EntityMeta, id)
	c.JSON(http.StatusCreated, saved)
}

// PUT /api/metas/:id
func (h *MetaHandler) Update(c *gin.Context) {
	pathID, ok := h.pathID(c)
	if !ok {
		return
	}
	var in types.MetaInput
	if !h.bindJSON(c, &in) {
		return
	}
	meta, err := types.ValidateMetaInput(in)
	if err != nil {
		h.fail(c, "update meta", err)
		return
	}
	if !h.idRules(c, pathID, meta.ID, in.ID.Present()) {
		return
	}

	dbc := requestDB(c)
	exists, err := h.metaService.Exists(dbc, pathID)
	if err != nil {
		h.fail(c, "update meta", err)
		return
	}
	if !exists {
		h.badRequest(c, "idnotfound", "Entity not found")
		return
	}

	saved, err := h.metaService.Update(dbc, meta)
	if err != nil {
		h.fail(c, "update meta", err)
		return
	}
	h.alerts.Updated(c, types.EntityMeta, strconv.FormatInt(saved.ID, 10))
	c.JSON(http.StatusOK, saved)
}

// PATCH /api/metas/:id
func (h *MetaHandler) PartialUpdate(c *gin.Context) {
	if !h.requireMergePatch(c) {
		return
	}
	pathID, ok := h.pathID(c)
	if !ok {
		return
	}
	var in types.MetaInput
	if !h.bindJSON(c, &in) {
		return
	}
	if err := types.ValidateMetaPatch(in); err != nil {
		h.fail(c, "partial update meta", err)
		return
	}
	bodyID, present := in.ID.Get()
	if !h.idRules(c, pathID, bodyID, present) {
		return
	}

	dbc := requestDB(c)
	exists, err := h.metaService.Exists(dbc, pathID)
	if err != nil {
		h.fail(c, "partial update meta", err)
		return
	}
	if !exists {
		h.badRequest(c, "idnotfound", "Entity not found")
		return
	}

	merged, err := h.metaService.PartialUpdate(dbc, pathID, in)
	if err != nil {
		// Removed between the existence check and the merge: 404.
		h.fail(c, "partial update meta", err)
		return
	}
	h.alerts.Updated(c, types.EntityMeta, strconv.FormatInt(merged.ID, 10))
	c.JSON(http.StatusOK, merged)
}

// GET /api/metas
func (h *MetaHandler) List(c *gin.Context) {
	p, ok := h.pageable(c)
	if !ok {
		return
	}
	page, err := h.metaService.FindAll(requestDB(c), p)
	if err != nil {
		h.fail(c, "list metas", err)
		return
	}
	response.RespondPage(c, page)
}

// GET /api/metas/:id
func (h *MetaHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	meta, err := h.metaService.FindOne(requestDB(c), id)
	if err != nil {
		h.fail(c, "get meta", err)
		return
	}
	response.RespondOK(c, meta)
}

// DELETE /api/metas/:id
func (h *MetaHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.metaService.Delete(requestDB(c), id); err != nil {
		h.fail(c, "delete meta", err)
		return
	}
	h.alerts.Deleted(c, types.EntityMeta, strconv.FormatInt(id, 10))
	c.Status(http.StatusNoContent)
}
