package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fincalc/fincalc"
	"github.com/fincalc/fincalc/date"
	"github.com/fincalc/fincalc/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// toolCurrency is the display currency for tool outputs. Tools render
// markdown for the model, so USD formatting is good enough.
const toolCurrency = "USD"

// LoadDebts reads the user's debts from the application's default debts file.
// If the file does not exist, it returns an empty list.
func LoadDebts() ([]fincalc.Debt, error) {
	debtsFile := "debts.jsonl"
	f, err := os.Open(debtsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open debts file %q: %w", debtsFile, err)
	}
	defer f.Close()

	debts, err := fincalc.ImportDebts(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode debts file %q: %w", debtsFile, err)
	}
	return debts, nil
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

// genai delivers JSON numbers as float64, but models occasionally send
// integers or quoted numbers. Be lenient.
func floatArg(args map[string]any, name string, def float64) (float64, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(n, "%g", &f); err != nil {
			return def, fmt.Errorf("argument %q must be a number, got %q", name, n)
		}
		return f, nil
	default:
		return def, fmt.Errorf("argument %q must be a number, got %T", name, v)
	}
}

func stringArg(args map[string]any, name, def string) (string, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, fmt.Errorf("argument %q must be a string, got %T", name, v)
	}
	return s, nil
}

func dateArg(args map[string]any, name string) (date.Date, error) {
	s, err := stringArg(args, name, "")
	if err != nil {
		return date.Date{}, err
	}
	if s == "" {
		return date.Date{}, fmt.Errorf("argument %q is required", name)
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, fmt.Errorf("argument %q must be a YYYY-MM-DD date, got %q", name, s)
	}
	return d, nil
}

var PayoffSchedule = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "PayoffSchedule",
		Description: `PayoffSchedule computes the month-by-month payoff plan for all the
		user's debts on file, under a given strategy and extra monthly payment.
		It reports the payoff date, the total interest paid, and the schedule of
		each debt.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"strategy": {
					Type:        genai.TypeString,
					Description: `Payoff strategy, "avalanche" (highest rate first) or "snowball" (smallest balance first). Default is avalanche.`,
				},
				"extra": {
					Type:        genai.TypeNumber,
					Description: "Extra amount paid every month on top of all minimum payments. Default is 0.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted payoff plan with one section per debt.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		name, err := stringArg(args, "strategy", "avalanche")
		if err != nil {
			return errResponse(id, "PayoffSchedule", err)
		}
		strategy, err := fincalc.ParseStrategy(name)
		if err != nil {
			return errResponse(id, "PayoffSchedule", err)
		}
		extra, err := floatArg(args, "extra", 0)
		if err != nil {
			return errResponse(id, "PayoffSchedule", err)
		}
		debts, err := LoadDebts()
		if err != nil {
			return errResponse(id, "PayoffSchedule", err)
		}
		plan := fincalc.Payoff(debts, decimal.NewFromFloat(extra), strategy)
		return okResponse(id, "PayoffSchedule", renderer.PayoffMarkdown(plan, toolCurrency))
	},
}

var CompareStrategiesTool = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "CompareStrategies",
		Description: `CompareStrategies runs both the avalanche and the snowball payoff plan
		on the user's debts on file and reports the interest and time saved by each.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"extra": {
					Type:        genai.TypeNumber,
					Description: "Extra amount paid every month on top of all minimum payments. Default is 0.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted side by side comparison of the two strategies.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		extra, err := floatArg(args, "extra", 0)
		if err != nil {
			return errResponse(id, "CompareStrategies", err)
		}
		debts, err := LoadDebts()
		if err != nil {
			return errResponse(id, "CompareStrategies", err)
		}
		cmp := fincalc.CompareStrategies(debts, decimal.NewFromFloat(extra))
		return okResponse(id, "CompareStrategies", renderer.ComparisonMarkdown(cmp, toolCurrency))
	},
}

var RunSimulation = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "RunSimulation",
		Description: `RunSimulation runs a Monte Carlo simulation of an investment plan and
		reports the yearly percentile bands of portfolio value, the median and mean
		final values, and the probabilities of doubling the money or losing some.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"initial": {
					Type:        genai.TypeNumber,
					Description: "Starting portfolio value. Default is 0.",
				},
				"monthly": {
					Type:        genai.TypeNumber,
					Description: "Monthly contribution. Default is 0.",
				},
				"annualReturn": {
					Type:        genai.TypeNumber,
					Description: "Expected annual return in percent, e.g. 7 for 7%. Default is 7.",
				},
				"volatility": {
					Type:        genai.TypeNumber,
					Description: "Annual volatility in percent, e.g. 15 for 15%. Default is 15.",
				},
				"inflation": {
					Type:        genai.TypeNumber,
					Description: "Annual inflation in percent used to deflate the bands. Default is 0.",
				},
				"years": {
					Type:        genai.TypeNumber,
					Description: "Investment horizon in years.",
				},
			},
			Required: []string{"years"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted simulation report with yearly percentile bands.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		var p fincalc.SimulationParams
		var err error
		if p.InitialValue, err = floatArg(args, "initial", 0); err != nil {
			return errResponse(id, "RunSimulation", err)
		}
		if p.MonthlyContribution, err = floatArg(args, "monthly", 0); err != nil {
			return errResponse(id, "RunSimulation", err)
		}
		annualReturn, err := floatArg(args, "annualReturn", 7)
		if err != nil {
			return errResponse(id, "RunSimulation", err)
		}
		volatility, err := floatArg(args, "volatility", 15)
		if err != nil {
			return errResponse(id, "RunSimulation", err)
		}
		inflation, err := floatArg(args, "inflation", 0)
		if err != nil {
			return errResponse(id, "RunSimulation", err)
		}
		years, err := floatArg(args, "years", 0)
		if err != nil {
			return errResponse(id, "RunSimulation", err)
		}
		if years <= 0 {
			return errResponse(id, "RunSimulation", fmt.Errorf("argument %q must be a positive number of years", "years"))
		}
		p.AnnualReturn = fincalc.Percent(annualReturn)
		p.AnnualVolatility = fincalc.Percent(volatility)
		p.AnnualInflation = fincalc.Percent(inflation)
		p.Years = int(years)
		p.Paths = 1000
		res := fincalc.Simulate(p)
		return okResponse(id, "RunSimulation", renderer.SimulationMarkdown(res, toolCurrency))
	},
}

var RecommendAllocation = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "RecommendAllocation",
		Description: `RecommendAllocation recommends a target portfolio allocation from the
		user's birthdate, the date of first withdrawal, the planned yearly withdrawal,
		and the current portfolio size. It names concrete low-cost funds for each slice
		and warns when the withdrawal rate looks unsustainable.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"birthdate": {
					Type:        genai.TypeString,
					Description: "The user's birthdate, YYYY-MM-DD.",
				},
				"firstWithdrawal": {
					Type:        genai.TypeString,
					Description: "Date the user plans to start withdrawing, YYYY-MM-DD.",
				},
				"annualWithdrawal": {
					Type:        genai.TypeNumber,
					Description: "Planned yearly withdrawal amount. Default is 0.",
				},
				"portfolio": {
					Type:        genai.TypeNumber,
					Description: "Current portfolio value. Default is 0.",
				},
			},
			Required: []string{"birthdate", "firstWithdrawal"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted allocation with risk level, percentages, fund picks and warnings.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		birthdate, err := dateArg(args, "birthdate")
		if err != nil {
			return errResponse(id, "RecommendAllocation", err)
		}
		firstWithdrawal, err := dateArg(args, "firstWithdrawal")
		if err != nil {
			return errResponse(id, "RecommendAllocation", err)
		}
		withdrawal, err := floatArg(args, "annualWithdrawal", 0)
		if err != nil {
			return errResponse(id, "RecommendAllocation", err)
		}
		portfolio, err := floatArg(args, "portfolio", 0)
		if err != nil {
			return errResponse(id, "RecommendAllocation", err)
		}
		rec := fincalc.Recommend(birthdate, firstWithdrawal, withdrawal, portfolio)
		return okResponse(id, "RecommendAllocation", renderer.RecommendationMarkdown(rec, toolCurrency))
	},
}
