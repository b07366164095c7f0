package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

type TiposSeguroHandler struct{ svc service.TipoSeguroService }

func NewTiposSeguroHandler(svc service.TipoSeguroService) *TiposSeguroHandler {
	return &TiposSeguroHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar tipo de seguro
// @Tags         tipos-seguro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarTipoSeguroRequest true "Dados do tipo"
// @Success      201 {object} dto.TipoSeguroResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/tipos-seguro [post]
func (h *TiposSeguroHandler) Criar(c *gin.Context) {
	var req dto.CriarTipoSeguroRequest
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
// @Summary      Listar tipos de seguro
// @Tags         tipos-seguro
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TipoSeguroResponse
// @Router       /v1/tipos-seguro [get]
func (h *TiposSeguroHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Consultar tipo de seguro
// @Tags         tipos-seguro
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do tipo"
// @Success      200 {object} dto.TipoSeguroResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/tipos-seguro/{id} [get]
func (h *TiposSeguroHandler) Obter(c *gin.Context) {
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
// @Summary      Atualizar tipo de seguro
// @Tags         tipos-seguro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID do tipo"
// @Param        body body dto.AtualizarTipoSeguroRequest true "Campos a alterar"
// @Success      200 {object} dto.TipoSeguroResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/tipos-seguro/{id} [put]
func (h *TiposSeguroHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarTipoSeguroRequest
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

// Excluir godoc
// @Summary      Excluir tipo de seguro
// @Description  Recusa a exclusão enquanto houver apólices emitidas do tipo.
// @Tags         tipos-seguro
// @Security     BearerAuth
// @Param        id path int true "ID do tipo"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/tipos-seguro/{id} [delete]
func (h *TiposSeguroHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
