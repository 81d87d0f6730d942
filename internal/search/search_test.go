package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/config"
	"github.com/corvidchess/gambit/internal/position"
	"github.com/corvidchess/gambit/internal/types"
)

func init() {
	config.Setup()
}

func TestFindsMateInOne(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	// The scholar's-mate trap, one move from completion: Qh5xf7#.
	require.NoError(b.SetFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4"))

	s := New(b)
	best := s.FindBestMove(1, 4, 2*time.Second, false)
	require.True(best.IsValid())
	require.Equal(types.MakeSquare("h5"), best.From())
	require.Equal(types.MakeSquare("f7"), best.To())
}

func TestFindsBackRankMate(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	// Classic back-rank mate: the king's own pawns block every flight
	// square, so Rd1-d8 is mate in one.
	require.NoError(b.SetFEN("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1"))

	s := New(b)
	best := s.FindBestMove(1, 4, 2*time.Second, false)
	require.True(best.IsValid())
	require.Equal(types.MakeSquare("d1"), best.From())
	require.Equal(types.MakeSquare("d8"), best.To())
}

func TestAvoidsQueenSacrificeTrap(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	// Qxd5 looks like a free pawn but is recaptured by the c6 pawn,
	// net losing a queen for a pawn; search must not prefer it.
	require.NoError(b.SetFEN("4k3/8/2p5/3p4/4Q3/8/8/4K3 w - - 0 1"))

	s := New(b)
	best := s.FindBestMove(1, 3, 500*time.Millisecond, false)
	require.True(best.IsValid())
	bad := best.From() == types.MakeSquare("e4") && best.To() == types.MakeSquare("d5")
	require.False(bad, "search should not play the queen into a losing capture")
}

func TestSeeRejectsLosingCapture(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	// White queen could capture a pawn defended by another pawn: a
	// losing trade that SEE must score negative.
	require.NoError(b.SetFEN("4k3/8/2p5/3p4/4Q3/8/8/4K3 w - - 0 1"))

	from := types.MakeSquare("e4")
	to := types.MakeSquare("d5")
	see := b.See(b.SideToMove().Flip(), from, to, types.Queen, types.Pawn)
	require.Less(see, int32(0))
}
