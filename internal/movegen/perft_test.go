package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/gambit/internal/position"
)

// Perft results from https://www.chessprogramming.org/Perft_Results

func TestPerftStartPosition(t *testing.T) {
	b := position.NewBoard()
	cases := map[int]uint64{
		4: 197_281,
		5: 4_865_609,
	}
	for depth, want := range cases {
		assert.Equal(t, want, Perft(b, depth), "depth %d", depth)
	}
}

func TestPerftStartPositionDepth6(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 6 from the start position is slow; skipped with -short")
	}
	b := position.NewBoard()
	assert.Equal(t, uint64(119_060_324), Perft(b, 6))
}

func TestPerftKiwipete(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	require.NoError(b.SetFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"))

	cases := map[int]uint64{
		3: 97_862,
		4: 4_085_603,
	}
	for depth, want := range cases {
		require.Equal(want, Perft(b, depth), "depth %d", depth)
	}
}

func TestPerftPosition5(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	require.NoError(b.SetFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"))
	require.Equal(uint64(674_624), Perft(b, 5))
}

func TestPerftMirror(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	require.NoError(b.SetFEN("r2q1rk1/pP1p2pp/Q4n2/bbp1p3/Np6/1B3NBn/pPPP1PPP/R3K2R b KQ - 0 1"))
	require.Equal(uint64(422_333), Perft(b, 4))
}

func TestPerftPromotionHeavy(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	require.NoError(b.SetFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"))
	require.Equal(uint64(2_103_487), Perft(b, 4))
}

func TestPerftTalkchess(t *testing.T) {
	b := position.NewBoard()
	require := assert.New(t)
	require.NoError(b.SetFEN("r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"))
	require.Equal(uint64(89_890), Perft(b, 3))
}
