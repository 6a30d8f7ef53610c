package config

// BaseConfig is the built-in configuration used when no config file is
// supplied. It defines one strategy per base class and a starter set of
// teams and tournaments.
const BaseConfig = `
default:
  base_analysis_params:
    HandAnalysisSmart:
      trump_values:     [0, 0, 0, 1, 2, 4, 7, 10]
      suit_values:      [0, 0, 0, 1, 5, 10]
      num_trump_scores: [0.0, 0.2, 0.4, 0.6, 0.8, 1.0]
      off_aces_scores:  [0.0, 0.2, 0.5, 1.0]
      voids_scores:     [0.0, 0.3, 0.7, 1.0]
      scoring_coeff:
        trump_score:     40
        max_suit_score:  10
        num_trump_score: 20
        off_aces_score:  15
        voids_score:     15

  base_strategy_params:
    StrategySimple:
      aggressive: 0

    StrategySmart:
      bid_thresh:        [35, 35, 35, 35, 35, 35, 35, 35]
      alone_margin:      [10, 10, 10, 10, 10, 10, 10, 10]
      def_alone_thresh:  [35, 35, 35, 35, 35, 35, 35, 35, 35, 35, 35]
      turn_card_value:   [10, 15, 0, 20, 25, 30, 0, 50]
      turn_card_coeff:   [25, 25, 25, 25]
      init_lead:
        - next_call_lead
        - draw_trump
        - lead_off_ace
        - lead_to_partner_call
        - lead_to_create_void
        - lead_low_from_long_suit
      subseq_lead:
        - lead_last_card
        - draw_trump
        - lead_to_partner_call
        - lead_off_ace
        - lead_suit_winner
        - lead_to_create_void
        - lead_low_non_trump
        - lead_low_from_long_suit
      part_winning:
        - play_last_card
        - follow_suit_low
        - throw_off_to_create_void
        - throw_off_low
        - play_low_trump
        - play_random_card
      opp_winning:
        - play_last_card
        - follow_suit_high
        - trump_low
        - throw_off_to_create_void
        - throw_off_low
        - play_random_card

    StrategyRemote:
      server_url: "http://localhost:8090/euchre"
      timeout_ms: 5000

  strategies:
    Random:
      base_class: StrategyRandom

    Simple:
      base_class: StrategySimple

    Simple Aggressive:
      base_class: StrategySimple
      strategy_params:
        aggressive: 3

    Smart:
      base_class: StrategySmart

    Smart Aggressive:
      base_class: StrategySmart
      strategy_params:
        bid_thresh: [30, 30, 30, 30, 30, 30, 30, 30]
        alone_margin: [8, 8, 8, 8, 8, 8, 8, 8]

    Smart Bidder:
      base_class: StrategyHybrid
      strategy_params:
        bid_strategy:  Smart
        play_strategy: Simple

  teams:
    Random Team:
      strategy: Random

    Simple Team:
      strategy: Simple

    Aggressive Team:
      strategy: Simple Aggressive

    Smart Team:
      strategy: Smart

    Smart Aggressive Team:
      strategy: Smart Aggressive

    Hybrid Team:
      strategy: Smart Bidder

  base_tourn_params:
    match_games:    2
    passes:         1
    reset_elo:      false
    elo_params:
      use_margin:   false
      d_value:      400
      k_factor:     24

  tournaments:
    demo_round_robin:
      tourn_type: round_robin
      teams:
        - Random Team
        - Simple Team
        - Aggressive Team
        - Smart Team
        - Smart Aggressive Team
        - Hybrid Team
      tourn_params:
        passes: 2

    demo_ladder:
      tourn_type: challenge_ladder
      teams:
        - Random Team
        - Simple Team
        - Smart Team
        - Hybrid Team
      tourn_params:
        round_matches: 3
        elim_passes:   2
`
