package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChristianALins/cliver-seguros/internal/config"
	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
	"github.com/ChristianALins/cliver-seguros/internal/dto"
	"github.com/ChristianALins/cliver-seguros/internal/model"
	"github.com/ChristianALins/cliver-seguros/internal/repository"
	"github.com/ChristianALins/cliver-seguros/internal/scope"
)

// AuthService authenticates colaboradores and manages their accounts. The
// rest of the system never sees credentials: it receives a scope.Scope built
// from the JWT claims this service issues.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	CriarColaborador(ctx context.Context, req dto.CriarColaboradorRequest) (*dto.ColaboradorResponse, error)
	ListarColaboradores(ctx context.Context, incluirInativos bool) ([]dto.ColaboradorResponse, error)
	AtualizarColaborador(ctx context.Context, id uint, req dto.AtualizarColaboradorRequest) (*dto.ColaboradorResponse, error)
	DesativarColaborador(ctx context.Context, id uint) error
	ReativarColaborador(ctx context.Context, id uint) error
}

type authService struct {
	repo repository.ColaboradorRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.ColaboradorRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	colab, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil || !colab.Ativo {
		return nil, domainerr.Forbidden("credenciais inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(colab.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, domainerr.Forbidden("credenciais inválidas")
	}
	return s.montarLoginResponse(colab)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerr.Forbidden("refresh token inválido ou expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerr.Forbidden("token mal formado")
	}
	idFloat, ok := claims["colaborador_id"].(float64)
	if !ok {
		return nil, domainerr.Forbidden("token mal formado")
	}

	colab, err := s.repo.FindByID(ctx, uint(idFloat))
	if err != nil || !colab.Ativo {
		return nil, domainerr.Forbidden("colaborador não encontrado ou inativo")
	}
	return s.montarLoginResponse(colab)
}

func (s *authService) montarLoginResponse(colab *model.Colaborador) (*dto.LoginResponse, error) {
	access, err := s.gerarToken(colab, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := s.gerarToken(colab, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Colaborador:  colaboradorToResponse(colab),
	}, nil
}

func (s *authService) CriarColaborador(ctx context.Context, req dto.CriarColaboradorRequest) (*dto.ColaboradorResponse, error) {
	if _, err := scope.ParsePerfil(req.Perfil); err != nil {
		return nil, err
	}
	if existente, err := s.repo.FindByEmail(ctx, req.Email); err == nil && existente.ID != 0 {
		return nil, domainerr.Duplicate("email", "já existe colaborador com este e-mail")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
	if err != nil {
		return nil, err
	}

	colab := &model.Colaborador{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
		Perfil:    req.Perfil,
		Ativo:     true,
	}
	if req.DataContratacao != nil {
		d, err := parseData("dataContratacao", *req.DataContratacao)
		if err != nil {
			return nil, err
		}
		colab.DataContratacao = &d
	}
	if err := s.repo.Create(ctx, colab); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := colaboradorToResponse(colab)
	return &resp, nil
}

func (s *authService) ListarColaboradores(ctx context.Context, incluirInativos bool) ([]dto.ColaboradorResponse, error) {
	colabs, err := s.repo.List(ctx, incluirInativos)
	if err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := make([]dto.ColaboradorResponse, len(colabs))
	for i := range colabs {
		resp[i] = colaboradorToResponse(&colabs[i])
	}
	return resp, nil
}

func (s *authService) AtualizarColaborador(ctx context.Context, id uint, req dto.AtualizarColaboradorRequest) (*dto.ColaboradorResponse, error) {
	colab, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, traduzErro(err, "colaborador")
	}
	if req.Nome != "" {
		colab.Nome = req.Nome
	}
	if req.Email != "" {
		colab.Email = req.Email
	}
	if req.Perfil != "" {
		if _, err := scope.ParsePerfil(req.Perfil); err != nil {
			return nil, err
		}
		colab.Perfil = req.Perfil
	}
	if req.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), 12)
		if err != nil {
			return nil, err
		}
		colab.SenhaHash = string(hash)
	}
	if req.DataContratacao != nil {
		d, err := parseData("dataContratacao", *req.DataContratacao)
		if err != nil {
			return nil, err
		}
		colab.DataContratacao = &d
	}
	if err := s.repo.Update(ctx, colab); err != nil {
		return nil, domainerr.Storage(err)
	}
	resp := colaboradorToResponse(colab)
	return &resp, nil
}

func (s *authService) DesativarColaborador(ctx context.Context, id uint) error {
	return traduzErro(s.repo.SoftDelete(ctx, id), "colaborador")
}

func (s *authService) ReativarColaborador(ctx context.Context, id uint) error {
	return traduzErro(s.repo.Reativar(ctx, id), "colaborador")
}

func (s *authService) gerarToken(colab *model.Colaborador, duracao time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"colaborador_id": colab.ID,
		"email":          colab.Email,
		"perfil":         colab.Perfil,
		"exp":            time.Now().Add(duracao).Unix(),
		"iat":            time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func colaboradorToResponse(c *model.Colaborador) dto.ColaboradorResponse {
	resp := dto.ColaboradorResponse{
		ID:     c.ID,
		Nome:   c.Nome,
		Email:  c.Email,
		Perfil: c.Perfil,
		Ativo:  c.Ativo,
	}
	if c.DataContratacao != nil {
		d := formatData(*c.DataContratacao)
		resp.DataContratacao = &d
	}
	return resp
}
