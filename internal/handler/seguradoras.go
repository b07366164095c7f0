package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

type SeguradorasHandler struct{ svc service.SeguradoraService }

func NewSeguradorasHandler(svc service.SeguradoraService) *SeguradorasHandler {
	return &SeguradorasHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar seguradora
// @Tags         seguradoras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarSeguradoraRequest true "Dados da seguradora"
// @Success      201 {object} dto.SeguradoraResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/seguradoras [post]
func (h *SeguradorasHandler) Criar(c *gin.Context) {
	var req dto.CriarSeguradoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar seguradoras
// @Tags         seguradoras
// @Produce      json
// @Security     BearerAuth
// @Param        incluir_inativas query bool false "Incluir desativadas"
// @Success      200 {array} dto.SeguradoraResponse
// @Router       /v1/seguradoras [get]
func (h *SeguradorasHandler) Listar(c *gin.Context) {
	incluirInativas := c.Query("incluir_inativas") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), incluirInativas)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Consultar seguradora
// @Tags         seguradoras
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da seguradora"
// @Success      200 {object} dto.SeguradoraResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/seguradoras/{id} [get]
func (h *SeguradorasHandler) Obter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar seguradora
// @Tags         seguradoras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID da seguradora"
// @Param        body body dto.AtualizarSeguradoraRequest true "Campos a alterar"
// @Success      200 {object} dto.SeguradoraResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/seguradoras/{id} [put]
func (h *SeguradorasHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarSeguradoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desativar godoc
// @Summary      Desativar seguradora
// @Description  Soft delete: apólices existentes continuam apontando para ela.
// @Tags         seguradoras
// @Security     BearerAuth
// @Param        id path int true "ID da seguradora"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/seguradoras/{id} [delete]
func (h *SeguradorasHandler) Desativar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
