package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

// ColaboradoresHandler manages employee accounts. Every route behind it is
// restricted to ADMINISTRADOR at the router.
type ColaboradoresHandler struct{ svc service.AuthService }

func NewColaboradoresHandler(svc service.AuthService) *ColaboradoresHandler {
	return &ColaboradoresHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar colaborador
// @Tags         colaboradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarColaboradorRequest true "Dados do colaborador"
// @Success      201 {object} dto.ColaboradorResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/colaboradores [post]
func (h *ColaboradoresHandler) Criar(c *gin.Context) {
	var req dto.CriarColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarColaborador(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar colaboradores
// @Tags         colaboradores
// @Produce      json
// @Security     BearerAuth
// @Param        incluir_inativos query bool false "Incluir desativados"
// @Success      200 {array} dto.ColaboradorResponse
// @Router       /v1/colaboradores [get]
func (h *ColaboradoresHandler) Listar(c *gin.Context) {
	incluirInativos := c.Query("incluir_inativos") == "true"
	resp, err := h.svc.ListarColaboradores(c.Request.Context(), incluirInativos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar colaborador
// @Tags         colaboradores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID do colaborador"
// @Param        body body dto.AtualizarColaboradorRequest true "Campos a alterar"
// @Success      200 {object} dto.ColaboradorResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/colaboradores/{id} [put]
func (h *ColaboradoresHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarColaborador(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desativar godoc
// @Summary      Desativar colaborador
// @Tags         colaboradores
// @Security     BearerAuth
// @Param        id path int true "ID do colaborador"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/colaboradores/{id} [delete]
func (h *ColaboradoresHandler) Desativar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesativarColaborador(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reativar godoc
// @Summary      Reativar colaborador
// @Tags         colaboradores
// @Security     BearerAuth
// @Param        id path int true "ID do colaborador"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/colaboradores/{id}/reativar [post]
func (h *ColaboradoresHandler) Reativar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ReativarColaborador(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
