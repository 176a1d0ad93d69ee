package model

import (
	"github.com/cloudwego/eino/schema"
)

// Pricing is the USD rate per one million text tokens.
type Pricing struct {
	InputPerM  float64
	OutputPerM float64
}

// geminiPricing covers the models the assistant is configured to run on.
// Unknown model names price at zero rather than guessing.
var geminiPricing = map[string]Pricing{
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
}

// ResolvePricing looks up the rate card for a model name.
func ResolvePricing(model string) Pricing {
	return geminiPricing[model]
}

// ComputeCost converts token usage into USD amounts under the given rates.
func ComputeCost(usage *schema.TokenUsage, p Pricing) (inputCost, outputCost, total float64) {
	if usage == nil {
		return 0, 0, 0
	}
	inputCost = p.InputPerM * float64(usage.PromptTokens) / 1_000_000.0
	outputCost = p.OutputPerM * float64(usage.CompletionTokens) / 1_000_000.0
	return inputCost, outputCost, inputCost + outputCost
}
