// Package analyzer calls an OpenAI-style chat-completion endpoint to turn
// free-text food and activity descriptions into structured numbers. The
// endpoint is a black box: it either answers with a bare comma-separated
// value list or the answer is rejected as unparseable.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/strivefit/strivefit/internal/model"
)

const (
	foodSystemPrompt = "You are a nutrition expert. Provide accurate nutritional information for foods. " +
		"Only respond with the values in the exact format requested."
	activitySystemPrompt = "You are a fitness expert. Provide accurate estimates for activity data based on descriptions. " +
		"Only respond with the values in the exact format requested."
)

type Config struct {
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type service struct {
	config Config
	client *http.Client
}

func New(config Config) *service {
	return &service{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *service) complete(ctx context.Context, systemPrompt string, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model: s.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return "", fmt.Errorf("marshalling completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling analyzer endpoint: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("analyzer endpoint returned %d", res.StatusCode)
	}

	response := completionResponse{}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", model.ErrorUnparseableAnswer
	}

	return response.Choices[0].Message.Content, nil
}

// AnalyzeFood asks for calories, protein, carbs and fat of a food description.
func (s *service) AnalyzeFood(ctx context.Context, description string) (*model.FoodNutrition, error) {
	prompt := fmt.Sprintf("Can you repeat in that exact order the amount of calories, Protein, Carbohydrates, "+
		"and Fats in %s? Do not give me any other text, just these values. Eg. 300, 40, 12, 12. "+
		"Do not provide the units of measurment.", description)

	answer, err := s.complete(ctx, foodSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	values := strings.Split(answer, ",")
	if len(values) < 4 {
		return nil, model.ErrorUnparseableAnswer
	}

	numbers := make([]int, 4)
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(values[i]))
		if err != nil {
			return nil, model.ErrorUnparseableAnswer
		}
		numbers[i] = n
	}

	return &model.FoodNutrition{
		Calories: numbers[0],
		Protein:  numbers[1],
		Carbs:    numbers[2],
		Fat:      numbers[3],
	}, nil
}

// AnalyzeActivity asks for activity type, duration, distance and calories
// burned, e.g. "running, 30, 5, 300".
func (s *service) AnalyzeActivity(ctx context.Context, description string) (*model.Activity, error) {
	prompt := fmt.Sprintf("Can you analyze this physical activity description and return only the following "+
		"values in this exact order: activity type, duration in minutes, distance in km (if applicable, "+
		"otherwise 0), calories burned. Format your response as comma-separated values only, like this: "+
		"\"running, 30, 5, 300\". The description is: %q", description)

	answer, err := s.complete(ctx, activitySystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	values := strings.Split(answer, ",")
	if len(values) < 4 {
		return nil, model.ErrorUnparseableAnswer
	}
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	duration, err := strconv.Atoi(values[1])
	if err != nil {
		return nil, model.ErrorUnparseableAnswer
	}
	distance, err := strconv.ParseFloat(values[2], 64)
	if err != nil {
		distance = 0
	}
	burned, err := strconv.Atoi(values[3])
	if err != nil {
		return nil, model.ErrorUnparseableAnswer
	}

	activity := &model.Activity{
		Type:      strings.ToLower(values[0]),
		DurationM: duration,
		Calories:  burned,
	}
	if distance > 0 {
		activity.DistanceKM = distance
	}

	return activity, nil
}
