package strategy

import (
	"fmt"

	"euchre/internal/analysis"
	"euchre/internal/config"
)

// Base class names recognized in the strategies config section.
const (
	ClassRandom = "StrategyRandom"
	ClassSimple = "StrategySimple"
	ClassSmart  = "StrategySmart"
	ClassHybrid = "StrategyHybrid"
	ClassRemote = "StrategyRemote"
)

// New instantiates a configured strategy by name. Parameters come from
// the base_strategy_params entry for the base class, overlaid with the
// strategy's own strategy_params.
func New(name string, cfg *config.Config) (Strategy, error) {
	return newStrategy(name, cfg, nil)
}

// newStrategy tracks the resolution chain so hybrid configs cannot
// recurse into themselves.
func newStrategy(name string, cfg *config.Config, chain []string) (Strategy, error) {
	for _, seen := range chain {
		if seen == name {
			return nil, config.Errorf("circular strategy reference involving '%s'", name)
		}
	}

	entry, err := cfg.Strategy(name)
	if err != nil {
		return nil, err
	}
	base, err := cfg.BaseStrategyParams(entry.BaseClass)
	if err != nil {
		return nil, err
	}

	switch entry.BaseClass {
	case ClassRandom:
		var params RandomParams
		if err := config.DecodeParams(&params, base, entry.StrategyParams); err != nil {
			return nil, fmt.Errorf("bad params for strategy '%s': %w", name, err)
		}
		return NewRandom(params), nil

	case ClassSimple:
		var params SimpleParams
		if err := config.DecodeParams(&params, base, entry.StrategyParams); err != nil {
			return nil, fmt.Errorf("bad params for strategy '%s': %w", name, err)
		}
		return NewSimple(params), nil

	case ClassSmart:
		var params SmartParams
		if err := config.DecodeParams(&params, base, entry.StrategyParams); err != nil {
			return nil, fmt.Errorf("bad params for strategy '%s': %w", name, err)
		}
		analysisParams, err := smartAnalysisParams(cfg, entry.StrategyParams)
		if err != nil {
			return nil, fmt.Errorf("bad analysis params for strategy '%s': %w", name, err)
		}
		params.HandAnalysis = analysisParams
		s, err := NewSmart(params)
		if err != nil {
			return nil, fmt.Errorf("failed to build strategy '%s': %w", name, err)
		}
		return s, nil

	case ClassHybrid:
		var params HybridParams
		if err := config.DecodeParams(&params, base, entry.StrategyParams); err != nil {
			return nil, fmt.Errorf("bad params for strategy '%s': %w", name, err)
		}
		if params.BidStrategy == "" || params.PlayStrategy == "" {
			return nil, config.Errorf("hybrid strategy '%s' needs bid_strategy and play_strategy", name)
		}
		chain = append(chain, name)
		bid, err := newStrategy(params.BidStrategy, cfg, chain)
		if err != nil {
			return nil, err
		}
		var discard Strategy
		if params.DiscardStrategy != "" {
			if discard, err = newStrategy(params.DiscardStrategy, cfg, chain); err != nil {
				return nil, err
			}
		}
		play, err := newStrategy(params.PlayStrategy, cfg, chain)
		if err != nil {
			return nil, err
		}
		return NewHybrid(bid, discard, play), nil

	case ClassRemote:
		var params RemoteParams
		if err := config.DecodeParams(&params, base, entry.StrategyParams); err != nil {
			return nil, fmt.Errorf("bad params for strategy '%s': %w", name, err)
		}
		s, err := NewRemote(params)
		if err != nil {
			return nil, fmt.Errorf("failed to build strategy '%s': %w", name, err)
		}
		return s, nil
	}

	return nil, config.Errorf("unknown base_class '%s' for strategy '%s'", entry.BaseClass, name)
}

// smartAnalysisParams merges the HandAnalysisSmart defaults with the
// strategy's hand_analysis override.
func smartAnalysisParams(cfg *config.Config, strategyParams map[string]any) (*analysis.SmartParams, error) {
	base, err := cfg.BaseAnalysisParams("HandAnalysisSmart")
	if err != nil {
		return nil, err
	}
	var override map[string]any
	if raw, ok := strategyParams["hand_analysis"]; ok && raw != nil {
		override, ok = raw.(map[string]any)
		if !ok {
			return nil, config.Errorf("hand_analysis must be a parameter map")
		}
	}
	params := analysis.DefaultSmartParams()
	if err := config.DecodeParams(&params, base, override); err != nil {
		return nil, err
	}
	return &params, nil
}
