package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/apierror"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/middleware"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

type SinistrosHandler struct{ svc service.SinistroService }

func NewSinistrosHandler(svc service.SinistroService) *SinistrosHandler {
	return &SinistrosHandler{svc: svc}
}

// Criar godoc
// @Summary      Registrar sinistro
// @Description  Abre um sinistro com protocolo gerado automaticamente.
// @Tags         sinistros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarSinistroRequest true "Dados do sinistro"
// @Success      201 {object} dto.SinistroResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sinistros [post]
func (h *SinistrosHandler) Criar(c *gin.Context) {
	var req dto.CriarSinistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), middleware.GetScope(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar sinistros
// @Tags         sinistros
// @Produce      json
// @Security     BearerAuth
// @Param        status     query string false "Status (ABERTO | EM_ANALISE | APROVADO | NEGADO | PAGO | ENCERRADO | all)"
// @Param        apolice_id query int    false "Filtrar por apólice"
// @Param        page       query int    false "Página (default 1)"
// @Param        limit      query int    false "Registros por página (default 20)"
// @Success      200 {object} dto.SinistroListResponse
// @Router       /v1/sinistros [get]
func (h *SinistrosHandler) Listar(c *gin.Context) {
	var filter dto.SinistroFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), middleware.GetScope(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Consultar sinistro
// @Tags         sinistros
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do sinistro"
// @Success      200 {object} dto.SinistroResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sinistros/{id} [get]
func (h *SinistrosHandler) Obter(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), middleware.GetScope(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar sinistro
// @Description  Atualiza descrição, valores e status; marcar como PAGO exige valor indenizado.
// @Tags         sinistros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID do sinistro"
// @Param        body body dto.AtualizarSinistroRequest true "Campos a alterar"
// @Success      200 {object} dto.SinistroResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sinistros/{id} [put]
func (h *SinistrosHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarSinistroRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), middleware.GetScope(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary      Excluir sinistro
// @Description  Somente sinistros ainda ABERTOS podem ser removidos.
// @Tags         sinistros
// @Security     BearerAuth
// @Param        id path int true "ID do sinistro"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/sinistros/{id} [delete]
func (h *SinistrosHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), middleware.GetScope(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
