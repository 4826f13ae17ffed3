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

type AlunoHandler struct {
	resource
	alunoService services.AlunoService
}

func NewAlunoHandler(log *logger.Logger, alunoService services.AlunoService, cfg ResourceConfig) *AlunoHandler {
	return &AlunoHandler{
		resource:     newResource(log.With("handler", "AlunoHandler"), types.EntityAluno, types.AlunoSortColumns, cfg),
		alunoService: alunoService,
	}
}

// POST /api/alunos
func (h *AlunoHandler) Create(c *gin.Context) {
	var in types.AlunoInput
	if !h.bindJSON(c, &in) {
		return
	}
	aluno, err := types.ValidateAlunoInput(in)
	if err != nil {
		h.fail(c, "create aluno", err)
		return
	}
	if in.ID.Present() {
		h.badRequest(c, "idexists", "A new aluno cannot already have an ID")
		return
	}

	saved, err := h.alunoService.Save(requestDB(c), aluno)
	if err != nil {
		h.fail(c, "create aluno", err)
		return
	}
	id := strconv.FormatInt(saved.ID, 10)
	c.Header("Location", "/api/alunos/"+id)
	h.alerts.Created(c, types.EntityAluno, id)
	c.JSON(http.StatusCreated, saved)
}

// PUT /api/alunos/:id
func (h *AlunoHandler) Update(c *gin.Context) {
	pathID, ok := h.pathID(c)
	if !ok {
		return
	}
	var in types.AlunoInput
	if !h.bindJSON(c, &in) {
		return
	}
	aluno, err := types.ValidateAlunoInput(in)
	if err != nil {
		h.fail(c, "update aluno", err)
		return
	}
	if !h.idRules(c, pathID, aluno.ID, in.ID.Present()) {
		return
	}

	dbc := requestDB(c)
	exists, err := h.alunoService.Exists(dbc, pathID)
	if err != nil {
		h.fail(c, "update aluno", err)
		return
	}
	if !exists {
		h.badRequest(c, "idnotfound", "Entity not found")
		return
	}

	saved, err := h.alunoService.Update(dbc, aluno)
	if err != nil {
		h.fail(c, "update aluno", err)
		return
	}
	h.alerts.Updated(c, types.EntityAluno, strconv.FormatInt(saved.ID, 10))
	c.JSON(http.StatusOK, saved)
}

// PATCH /api/alunos/:id
func (h *AlunoHandler) PartialUpdate(c *gin.Context) {
	if !h.requireMergePatch(c) {
		return
	}
	pathID, ok := h.pathID(c)
	if !ok {
		return
	}
	var in types.AlunoInput
	if !h.bindJSON(c, &in) {
		return
	}
	if err := types.ValidateAlunoPatch(in); err != nil {
		h.fail(c, "partial update aluno", err)
		return
	}
	bodyID, present := in.ID.Get()
	if !h.idRules(c, pathID, bodyID, present) {
		return
	}

	dbc := requestDB(c)
	exists, err := h.alunoService.Exists(dbc, pathID)
	if err != nil {
		h.fail(c, "partial update aluno", err)
		return
	}
	if !exists {
		h.badRequest(c, "idnotfound", "Entity not found")
		return
	}

	merged, err := h.alunoService.PartialUpdate(dbc, pathID, in)
	if err != nil {
		// Removed between the existence check and the merge: 404.
		h.fail(c, "partial update aluno", err)
		return
	}
	h.alerts.Updated(c, types.EntityAluno, strconv.FormatInt(merged.ID, 10))
	c.JSON(http.StatusOK, merged)
}

// GET /api/alunos
func (h *AlunoHandler) List(c *gin.Context) {
	p, ok := h.pageable(c)
	if !ok {
		return
	}
	page, err := h.alunoService.FindAll(requestDB(c), p)
	if err != nil {
		h.fail(c, "list alunos", err)
		return
	}
	response.RespondPage(c, page)
}

// GET /api/alunos/:id
func (h *AlunoHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	aluno, err := h.alunoService.FindOne(requestDB(c), id)
	if err != nil {
		h.fail(c, "get aluno", err)
		return
	}
	response.RespondOK(c, aluno)
}

// DELETE /api/alunos/:id
func (h *AlunoHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.alunoService.Delete(requestDB(c), id); err != nil {
		h.fail(c, "delete aluno", err)
		return
	}
	h.alerts.Deleted(c, types.EntityAluno, strconv.FormatInt(id, 10))
	c.Status(http.StatusNoContent)
}
