package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChristianALins/cliver-seguros/internal/apierror"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/middleware"
	"github.com/ChristianALins/cliver-seguros/internal/service"
)

type TarefasHandler struct{ svc service.TarefaService }

func NewTarefasHandler(svc service.TarefaService) *TarefasHandler {
	return &TarefasHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar tarefa
// @Tags         tarefas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarTarefaRequest true "Dados da tarefa"
// @Success      201 {object} dto.TarefaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/tarefas [post]
func (h *TarefasHandler) Criar(c *gin.Context) {
	var req dto.CriarTarefaRequest
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
// @Summary      Listar tarefas
// @Tags         tarefas
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Status (PENDENTE | EM_ANDAMENTO | CONCLUIDA | CANCELADA | all)"
// @Param        page   query int    false "Página (default 1)"
// @Param        limit  query int    false "Registros por página (default 20)"
// @Success      200 {object} dto.TarefaListResponse
// @Router       /v1/tarefas [get]
func (h *TarefasHandler) Listar(c *gin.Context) {
	var filter dto.TarefaFilter
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

// Pendentes godoc
// @Summary      Tarefas pendentes
// @Description  Abertas ordenadas por vencimento, prioridade e id.
// @Tags         tarefas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TarefaResponse
// @Router       /v1/tarefas/pendentes [get]
func (h *TarefasHandler) Pendentes(c *gin.Context) {
	resp, err := h.svc.ListarPendentes(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atrasadas godoc
// @Summary      Tarefas atrasadas
// @Description  Pendentes cujo vencimento já passou; nada é gravado, a classificação é de leitura.
// @Tags         tarefas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TarefaResponse
// @Router       /v1/tarefas/atrasadas [get]
func (h *TarefasHandler) Atrasadas(c *gin.Context) {
	resp, err := h.svc.ListarAtrasadas(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Consultar tarefa
// @Tags         tarefas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da tarefa"
// @Success      200 {object} dto.TarefaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/tarefas/{id} [get]
func (h *TarefasHandler) Obter(c *gin.Context) {
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
// @Summary      Atualizar tarefa
// @Tags         tarefas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID da tarefa"
// @Param        body body dto.AtualizarTarefaRequest true "Campos a alterar"
// @Success      200 {object} dto.TarefaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/tarefas/{id} [put]
func (h *TarefasHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AtualizarTarefaRequest
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

// Concluir godoc
// @Summary      Concluir tarefa
// @Description  Encerra a tarefa registrando obrigatoriamente o resultado.
// @Tags         tarefas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID da tarefa"
// @Param        body body dto.ConcluirTarefaRequest true "Resultado"
// @Success      200 {object} dto.TarefaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/tarefas/{id}/concluir [post]
func (h *TarefasHandler) Concluir(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ConcluirTarefaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Concluir(c.Request.Context(), middleware.GetScope(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Excluir godoc
// @Summary      Excluir tarefa
// @Tags         tarefas
// @Security     BearerAuth
// @Param        id path int true "ID da tarefa"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/tarefas/{id} [delete]
func (h *TarefasHandler) Excluir(c *gin.Context) {
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
