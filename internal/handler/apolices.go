package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/apierror"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/middleware"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

// ApolicesHandler exposes the policy lifecycle. Renewal is under the same
// path tree (/apolices/{id}/renovar) but delegates to RenovacaoService.
type ApolicesHandler struct {
	svc    service.ApoliceService
	renSvc service.RenovacaoService
}

func NewApolicesHandler(svc service.ApoliceService, renSvc service.RenovacaoService) *ApolicesHandler {
	return &ApolicesHandler{svc: svc, renSvc: renSvc}
}

// Criar godoc
// @Summary      Emitir apólice
// @Description  Emite uma apólice ATIVA calculando as duas comissões a partir do prêmio.
// @Tags         apolices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarApoliceRequest true "Dados da apólice"
// @Success      201 {object} dto.ApoliceResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/apolices [post]
func (h *ApolicesHandler) Criar(c *gin.Context) {
	var req dto.CriarApoliceRequest
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
// @Summary      Listar apólices
// @Description  Lista paginada com o resumo da carteira; status VENCENDO/VENCIDA são calculados na resposta.
// @Tags         apolices
// @Produce      json
// @Security     BearerAuth
// @Param        status         query string false "Status armazenado (ATIVA | RENOVADA | CANCELADA | all)"
// @Param        cliente_id     query int    false "Filtrar por cliente"
// @Param        seguradora_id  query int    false "Filtrar por seguradora"
// @Param        colaborador_id query int    false "Filtrar por colaborador"
// @Param        texto          query string false "Busca por número ou nome do cliente"
// @Param        page           query int    false "Página (default 1)"
// @Param        limit          query int    false "Registros por página (default 20)"
// @Success      200 {object} dto.ApoliceListResponse
// @Router       /v1/apolices [get]
func (h *ApolicesHandler) Listar(c *gin.Context) {
	var filter dto.ApoliceFilter
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

// Vencimentos godoc
// @Summary      Apólices a vencer
// @Description  Varredura de vencimentos: apólices ATIVAS sem sucessora vencendo na janela, da mais próxima para a mais distante.
// @Tags         apolices
// @Produce      json
// @Security     BearerAuth
// @Param        dias query int false "Janela em dias (default: configuração do sistema)"
// @Success      200 {array} dto.ApoliceResponse
// @Router       /v1/apolices/vencimentos [get]
func (h *ApolicesHandler) Vencimentos(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "0"))
	resp, err := h.svc.ListarVencendo(c.Request.Context(), middleware.GetScope(c), dias)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Consultar apólice
// @Tags         apolices
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da apólice"
// @Success      200 {object} dto.ApoliceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/apolices/{id} [get]
func (h *ApolicesHandler) Obter(c *gin.Context) {
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
// @Summary      Atualizar apólice
// @Description  Altera uma apólice ativa; as comissões são recalculadas a partir do prêmio e dos percentuais vigentes.
// @Tags         apolices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID da apólice"
// @Param        body body dto.AtualizarApoliceRequest true "Campos a alterar"
// @Success      200 {object} dto.ApoliceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/apolices/{id} [put]
func (h *ApolicesHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarApoliceRequest
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

// Cancelar godoc
// @Summary      Cancelar apólice
// @Description  Encerramento manual e irreversível; exige confirmar=true.
// @Tags         apolices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID da apólice"
// @Param        body body dto.CancelarApoliceRequest true "Confirmação e motivo"
// @Success      200 {object} dto.ApoliceResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/apolices/{id}/cancelar [post]
func (h *ApolicesHandler) Cancelar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CancelarApoliceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cancelar(c.Request.Context(), middleware.GetScope(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Renovar godoc
// @Summary      Renovar apólice
// @Description  Emite a sucessora, grava o vínculo de renovação e marca a antecessora como RENOVADA, tudo em uma transação.
// @Tags         apolices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID da apólice a renovar"
// @Param        body body dto.RenovarApoliceRequest true "Dados da sucessora"
// @Success      201 {object} dto.RenovarApoliceResponse
// @Failure      409 {object} apierror.APIError
// @Router       /v1/apolices/{id}/renovar [post]
func (h *ApolicesHandler) Renovar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.RenovarApoliceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.renSvc.Renovar(c.Request.Context(), middleware.GetScope(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Excluir godoc
// @Summary      Excluir apólice
// @Description  Remoção definitiva, recusada enquanto houver sinistros ou renovações vinculados.
// @Tags         apolices
// @Security     BearerAuth
// @Param        id path int true "ID da apólice"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/apolices/{id} [delete]
func (h *ApolicesHandler) Excluir(c *gin.Context) {
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
