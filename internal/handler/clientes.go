package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/apierror"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/middleware"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarClienteRequest true "Dados do cliente"
// @Success      201 {object} dto.ClienteResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
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
// @Summary      Listar clientes
// @Description  Lista paginada; corretores só veem a própria carteira.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        texto query string false "Busca por nome ou CPF/CNPJ"
// @Param        page  query int    false "Página (default 1)"
// @Param        limit query int    false "Registros por página (default 20)"
// @Success      200 {object} dto.ClienteListResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	var filter dto.ClienteFilter
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
// @Summary      Consultar cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) Obter(c *gin.Context) {
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

// Detalhe godoc
// @Summary      Ficha do cliente
// @Description  Retorna o cadastro, as apólices e os agregados da carteira ativa.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do cliente"
// @Success      200 {object} dto.ClienteDetalheResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id}/detalhe [get]
func (h *ClientesHandler) Detalhe(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Detalhe(c.Request.Context(), middleware.GetScope(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID do cliente"
// @Param        body body dto.AtualizarClienteRequest true "Campos a alterar"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [put]
func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarClienteRequest
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
// @Summary      Excluir cliente
// @Description  Remove o cliente; com apólices em carteira apenas desativa o cadastro.
// @Tags         clientes
// @Security     BearerAuth
// @Param        id path int true "ID do cliente"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [delete]
func (h *ClientesHandler) Excluir(c *gin.Context) {
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
