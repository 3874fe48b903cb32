package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to get answers about his personal finances: paying off his debts,
			saving for retirement, and understanding where his money goes every month.
			If he is anxious about money, acknowledge it, then ground the answer in the experts' numbers.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.

			Never invent figures yourself. Every number in your answer must come from an expert.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewDebtCoach builds the expert in charge of the user's debts.
func NewDebtCoach() *Expert {

	lib := []Function{PayoffSchedule, CompareStrategiesTool}

	return &Expert{
		Name: "DebtCoach",
		Description: `This is the Debt Coach. He is in charge of the user's debts on file.
		He can compute full payoff schedules under the avalanche or snowball strategy,
		and compare both strategies for a given extra monthly payment.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a debt payoff coach working from the user's list of debts.
				You know how to use the Tools to compute payoff schedules and to compare
				the avalanche and snowball strategies.
				You are part of a team of experts, yours is everything about the user's debts.
				They might ask you questions about the user's debts, pardon their approximative
				language and figure out what they meant.

				Use the available tools to get
				  - the month-by-month payoff schedule for a strategy
				  - the interest saved by choosing avalanche over snowball
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewRetirementPlanner builds the expert for long term projections and
// portfolio allocation.
func NewRetirementPlanner() *Expert {

	lib := []Function{RunSimulation, RecommendAllocation}

	return &Expert{
		Name: "RetirementPlanner",
		Description: `This is the Retirement Planner. He runs Monte Carlo simulations of
		investment growth and recommends target portfolio allocations based on the
		user's age and withdrawal horizon.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a retirement planner. You know how to use the Tools to simulate
				the range of outcomes of an investment plan and to recommend a target
				allocation with concrete low-cost funds.

				Always report the pessimistic and optimistic percentiles, never just the median.
				When the user gives yearly figures, convert them to the monthly figures the
				tools expect before calling them.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}
