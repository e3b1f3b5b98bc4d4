package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/guonaihong/gout"

	"github.com/clubverd/pos-api/internal/config"
	"github.com/clubverd/pos-api/internal/domain"
)

var ErrAssistantUnavailable = errors.New("assistant service unavailable")

// AssistantService relays budtender questions to an external generation API.
// It only ever READS the catalog: the inventory is projected into the system
// prompt as text, and nothing the assistant returns is written back.
type AssistantService struct {
	conf        *config.AssistantConfig
	catalogRepo CatalogRepository
}

func NewAssistantService(conf *config.AssistantConfig, catalogRepo CatalogRepository) *AssistantService {
	return &AssistantService{
		conf:        conf,
		catalogRepo: catalogRepo,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	System string `json:"system_instruction"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

func (s *AssistantService) Ask(ctx context.Context, prompt string) (string, error) {
	products, err := s.catalogRepo.List(ctx, "")
	if err != nil {
		return "", fmt.Errorf("s.catalogRepo.List -> %w", err)
	}

	req := generateRequest{
		Model:  s.conf.Model,
		System: systemInstruction(products),
		Prompt: prompt,
	}

	var (
		resp generateResponse
		code int
	)
	err = gout.POST(s.conf.BaseURL + "/v1/generate").
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": "Bearer " + s.conf.APIKey}).
		SetJSON(&req).
		BindJSON(&resp).
		Code(&code).
		Do()
	if err != nil {
		return "", fmt.Errorf("gout.POST -> %w", err)
	}
	if code != http.StatusOK {
		return "", ErrAssistantUnavailable
	}

	return resp.Text, nil
}

// systemInstruction renders the read-only catalog projection handed to the
// assistant: name, category, strain, description, stock and price per item.
func systemInstruction(products []domain.Product) string {
	var b strings.Builder
	for _, p := range products {
		strain := p.StrainType
		if strain == "" {
			strain = "N/A"
		}
		fmt.Fprintf(&b, "%s (%s, %s): %s. Stock: %s%s, Precio: €%s/%s\n",
			p.Name, p.Category, strain, p.Description,
			p.Stock.String(), p.Category.Unit(), p.Price.String(), p.Category.Unit())
	}

	return `Eres un experto "Budtender" y gestor de inventario para una Asociación Cannábica de alta gama.
Tu tono es profesional, conocedor y servicial.
Tienes acceso al inventario actual:
` + b.String() + `
Responde preguntas sobre cepas, efectos, beneficios medicinales o ayuda a redactar descripciones de marketing.
Si te preguntan sobre el stock, consulta el inventario proporcionado.
Responde siempre en Español y sé conciso.`
}
