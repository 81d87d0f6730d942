package position

import "github.com/corvidchess/gambit/internal/types"

// Piece-square tables, one per piece type, indexed [distanceFromOwnBackRank][file].
// Distance 0 is the piece's own back rank; distance 7 is the opponent's
// back rank. This lets the same table serve both colors: White's
// distance-from-home is 7-internalRank (home = Rank7), Black's is
// internalRank (home = Rank0).
//
// Values are the familiar PeSTO-style piece-square bonuses, adapted to
// this engine's mid/end-game split; they are tunable constants, not
// derived from first principles.
var midPsqt = [types.PtLength][8][8]int16{
	types.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	types.Knight: {
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	},
	types.Bishop: {
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	},
	types.Rook: {
		{0, 0, 0, 5, 5, 0, 0, 0},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	types.Queen: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	types.King: {
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
	},
}

var endPsqt = [types.PtLength][8][8]int16{
	types.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 5, 10, 10, 10, 10, 5, 5},
		{10, 10, 20, 25, 25, 20, 10, 10},
		{20, 20, 30, 35, 35, 30, 20, 20},
		{35, 35, 40, 45, 45, 40, 35, 35},
		{60, 60, 65, 70, 70, 65, 60, 60},
		{90, 90, 90, 90, 90, 90, 90, 90},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	types.Knight: midPsqt[types.Knight],
	types.Bishop: midPsqt[types.Bishop],
	types.Rook:   midPsqt[types.Rook],
	types.Queen:  midPsqt[types.Queen],
	types.King: {
		{-50, -30, -30, -30, -30, -30, -30, -50},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -20, -10, 0, 0, -10, -20, -30},
		{-50, -40, -30, -20, -20, -30, -40, -50},
	},
}

// psqtValue returns the mid/end-game piece-square bonus for a piece of
// color c and type pt standing on sq.
func psqtValue(c types.Color, pt types.PieceType, sq types.Square, table *[types.PtLength][8][8]int16) int16 {
	rank := sq.RankOf()
	file := sq.FileOf()
	var distFromHome types.Rank
	if c == types.White {
		distFromHome = 7 - rank
	} else {
		distFromHome = rank
	}
	return table[pt][distFromHome][file]
}
