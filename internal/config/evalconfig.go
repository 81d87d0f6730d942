package config

// evalConfiguration holds the tunable weights of the static evaluator.
type evalConfiguration struct {
	KingShieldBonus int16

	KingCentralizationBonus int16

	DoubledPawnMalus int16

	PassedPawnBonus1 int16

	UsePawnCache  bool
	PawnCacheSize int

	EndgamePawnThreshold  int
	EndgameMinorThreshold int
}

func init() {
	Settings.Eval.KingShieldBonus = 4
	Settings.Eval.KingCentralizationBonus = 3
	Settings.Eval.DoubledPawnMalus = 6
	Settings.Eval.PassedPawnBonus1 = 10

	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSize = 16384

	Settings.Eval.EndgamePawnThreshold = 3
	Settings.Eval.EndgameMinorThreshold = 3
}

func setupEval() {}
