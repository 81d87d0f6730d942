package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/gambit/internal/types"
)

// SetFEN resets the board to the position described by fen, a
// six-field FEN string. Parse errors leave the board unmodified and are
// surfaced to the caller; per the external-interface contract, it is the
// driver's job to treat a parse failure as fatal and keep whatever
// position was previously loaded.
func (b *Board) SetFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("position: FEN must have 6 fields, got %d", len(fields))
	}

	var nb Board
	if err := nb.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		nb.halfMoveCount = 0
	case "b":
		nb.halfMoveCount = 1
	default:
		return fmt.Errorf("position: bad side to move %q", fields[1])
	}

	cr, err := parseCastling(fields[2])
	if err != nil {
		return err
	}
	nb.setCastlingRights(cr)

	if fields[3] != "-" {
		sq := types.MakeSquare(fields[3])
		if sq == types.SqNone {
			return fmt.Errorf("position: bad en-passant square %q", fields[3])
		}
		// The FEN en-passant square's rank tells us who just double-pushed
		// (and therefore who may now capture en passant): a skipped Rank2
		// means Black pushed and White may capture; a skipped Rank5 means
		// the reverse.
		color := types.White
		if sq.RankOf() == types.Rank5 {
			color = types.Black
		}
		nb.setEnPassantFile(color, sq.FileOf())
	}

	clock, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("position: bad half-move clock %q", fields[4])
	}
	nb.halfMoveClock = clock

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil {
		return fmt.Errorf("position: bad full-move number %q", fields[5])
	}
	// halfMoveCount already carries side-to-move parity; fold in the
	// full-move number so HalfMoveCount reflects total plies from game start.
	nb.halfMoveCount += 2 * (fullMove - 1)

	nb.hash = nb.recomputeHash()
	nb.score, nb.egScore = nb.recomputeScore()
	nb.recomputeEndgameFlag()
	nb.posHistory = append(nb.posHistory, nb.hash)

	*b = nb
	return nil
}

func (b *Board) parsePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("position: FEN placement must have 8 ranks, got %d", len(ranks))
	}
	for rankIdx, rankStr := range ranks {
		rank := types.Rank(rankIdx)
		file := types.FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += types.File(ch - '0')
				continue
			}
			pc := types.PieceFromChar(string(ch))
			if pc == types.PieceNone {
				return fmt.Errorf("position: bad piece character %q", ch)
			}
			if !file.IsValid() {
				return fmt.Errorf("position: rank %d overflows 8 files", rankIdx)
			}
			sq := types.SquareOf(file, rank)
			b.addPiece(pc, sq)
			file++
		}
		if file != 8 {
			return fmt.Errorf("position: rank %d does not sum to 8 files", rankIdx)
		}
	}
	return nil
}

func parseCastling(s string) (types.CastlingRights, error) {
	if s == "-" {
		return types.CastlingNone, nil
	}
	var cr types.CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr.Add(types.CastlingWhiteOO)
		case 'Q':
			cr.Add(types.CastlingWhiteOOO)
		case 'k':
			cr.Add(types.CastlingBlackOO)
		case 'q':
			cr.Add(types.CastlingBlackOOO)
		default:
			return 0, fmt.Errorf("position: bad castling character %q", ch)
		}
	}
	return cr, nil
}

// FEN renders the current position as a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := types.Rank(0); r <= types.Rank7; r++ {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			pc := b.squares[types.SquareOf(f, r)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != types.Rank7 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(b.SideToMove().String())
	sb.WriteString(" ")
	sb.WriteString(b.CastlingRights().String())
	sb.WriteString(" ")
	if ep := b.EnPassantSquare(); ep != types.SqNone {
		sb.WriteString(ep.String())
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveCount/2 + 1))
	return sb.String()
}
