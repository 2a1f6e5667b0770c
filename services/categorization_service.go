// services/categorization_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/topvan/topvan-backend/models"
	"github.com/topvan/topvan-backend/utils"
)

// Categorizer classifies a free-text expense description into one of the
// fixed expense categories
type Categorizer interface {
	Categorize(description string) (string, error)
}

// CategorizationService classifies descriptions using the Claude API
type CategorizationService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewCategorizationService creates a categorization service reading the API
// key from the environment
func NewCategorizationService() *CategorizationService {
	return &CategorizationService{
		apiKey: os.Getenv("ANTHROPIC_API_KEY"),
		apiURL: "https://api.anthropic.com/v1/messages",
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Categorize asks the model for a single category label. Unknown labels fall
// back to "Outros"; transport failures propagate so the caller may retry or
// pick a category manually.
func (s *CategorizationService) Categorize(description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", utils.NewValidationError(utils.ErrDescriptionRequired)
	}
	if s.apiKey == "" {
		return "", fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}

	prompt := fmt.Sprintf(`Você é um assistente financeiro. Sua tarefa é categorizar um gasto com base em sua descrição.

As categorias disponíveis são: %s.

Analise a descrição do gasto e atribua a categoria mais apropriada. Se nenhuma categoria se encaixar perfeitamente, use "Outros".

Responda apenas com o nome da categoria, sem explicações.

Descrição do Gasto: %s`, strings.Join(utils.ExpenseCategories, ", "), description)

	requestBody := map[string]interface{}{
		"model":      "claude-sonnet-4-20250514",
		"max_tokens": 50,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Claude API request: %v", err)
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create Claude API request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Claude API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Claude API returned non-200 status: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var claudeResp models.ClaudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&claudeResp); err != nil {
		return "", fmt.Errorf("failed to decode Claude API response: %v", err)
	}

	var label string
	for _, content := range claudeResp.Content {
		if content.Type == "text" {
			label = content.Text
			break
		}
	}
	return NormalizeCategory(label), nil
}

// NormalizeCategory maps a model answer onto the closed category set.
// Anything unrecognized becomes "Outros".
func NormalizeCategory(label string) string {
	label = strings.TrimSpace(label)
	label = strings.Trim(label, `"'.`)
	for _, category := range utils.ExpenseCategories {
		if strings.EqualFold(label, category) {
			return category
		}
	}
	return utils.CategoryFallback
}
