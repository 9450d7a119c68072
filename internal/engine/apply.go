package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// movePlan is a fully validated move request. Building it reads the board
// only; executing it is the one place a ply mutates the board.
type movePlan struct {
	piece     *chess.Piece
	from, to  chess.Square
	class     chess.MoveClass
	captured  *chess.Piece
	promotion chess.PieceKind
	disambig  string
}

// Move plays one ply for the active colour. A missing promotion choice on a
// promoting move defaults to Queen; a choice on any other move is ignored.
// When an error is returned the board is unchanged.
func (g *Game) Move(from, to chess.Square, promotion chess.PieceKind) (*Move, error) {
	plan, err := g.plan(from, to, promotion)
	if err != nil {
		return nil, &errors.MoveError{
			Err:  err,
			From: from.String(),
			To:   to.String(),
			Ply:  g.Ply() + 1,
		}
	}
	m := g.execute(plan)
	return &m, nil
}

// MoveUCI plays a move given in coordinate notation such as "e7e8q".
func (g *Game) MoveUCI(text string) (*Move, error) {
	from, to, promotion, err := ParseUCIMove(text)
	if err != nil {
		return nil, &errors.MoveError{Err: err, Ply: g.Ply() + 1}
	}
	return g.Move(from, to, promotion)
}

// plan validates a move request without touching the board.
func (g *Game) plan(from, to chess.Square, promotion chess.PieceKind) (movePlan, error) {
	if !from.Valid() {
		return movePlan{}, fmt.Errorf("origin: %w", errors.ErrInvalidPosition)
	}
	piece := g.board.PieceAt(from)
	if piece == nil {
		return movePlan{}, fmt.Errorf("origin: %w", errors.ErrNoPiece)
	}
	if piece.Colour() != g.active {
		return movePlan{}, fmt.Errorf("%s piece on %s: %w: %w", piece.Colour(), from, errors.ErrInvalidMove, errors.ErrWrongTurn)
	}
	if !to.Valid() {
		return movePlan{}, fmt.Errorf("destination: %w", errors.ErrInvalidPosition)
	}
	if occupant := g.board.PieceAt(to); occupant != nil && occupant.Colour() == piece.Colour() {
		return movePlan{}, fmt.Errorf("destination: %w", errors.ErrPositionOccupied)
	}

	p := movePlan{
		piece:    piece,
		from:     from,
		to:       to,
		class:    classify(g.board, piece, to),
		captured: g.board.PieceAt(to),
	}
	if p.class == chess.EnPassantPawnMove {
		p.captured = enPassantVictim(g.board, piece, to)
	}

	if !piece.PossibleMoves(g.board).Contains(to) {
		return movePlan{}, fmt.Errorf("%s cannot reach %s: %w", piece.Kind(), to, errors.ErrInvalidMove)
	}
	if g.board.MoveWouldExposeKing(piece, to) {
		return movePlan{}, fmt.Errorf("%w: %w", errors.ErrInvalidMove, errors.ErrKingExposed)
	}

	if p.class == chess.PawnMoveWithPromotion {
		kind, err := promotionChoice(promotion)
		if err != nil {
			return movePlan{}, err
		}
		p.promotion = kind
	}
	p.disambig = g.disambiguation(piece, to)
	return p, nil
}

// execute applies a validated plan and records the move.
func (g *Game) execute(p movePlan) Move {
	board := g.board
	epBefore, hadEP := board.EnPassantTarget()
	m := Move{
		Ply:                g.Ply() + 1,
		Class:              p.class,
		From:               p.from,
		To:                 p.to,
		Piece:              p.piece.State(),
		EnPassantBefore:    epBefore,
		HadEnPassantTarget: hadEP,
		Disambiguation:     p.disambig,
	}

	if p.captured != nil {
		m.Captured = p.captured.State()
		_, err := board.TakePiece(p.captured.Position())
		must(err)
	}
	if m.IsCastle() {
		castleRook(board, p.piece, p.class)
	}
	updateEnPassant(board, p.piece, p.from, p.to)

	must(board.Relocate(p.piece, p.to))
	board.MarkMoved(p.piece)

	if p.class == chess.PawnMoveWithPromotion {
		m.Promotion = promote(board, p.piece, p.promotion).State()
	}

	if p.piece.Kind() == chess.Pawn || p.captured != nil {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if g.active == chess.Black {
		g.fullmoveNumber++
	}
	g.active = g.active.Opposite()
	g.repetitions.Record(g.positionKey())

	switch {
	case g.Checkmate(g.active):
		m.CheckStatus = chess.Checkmate
	case g.InCheck(g.active):
		m.CheckStatus = chess.Check
	}

	g.history = append(g.history, m)
	return m
}

// classify determines the move class of a pseudo-legal request.
func classify(b chess.Reader, piece *chess.Piece, to chess.Square) chess.MoveClass {
	from := piece.Position()
	switch piece.Kind() {
	case chess.Pawn:
		if enPassantVictim(b, piece, to) != nil {
			return chess.EnPassantPawnMove
		}
		if chess.CanPromote(piece.Colour(), to) {
			return chess.PawnMoveWithPromotion
		}
		return chess.PawnMove
	case chess.King:
		switch to.Col - from.Col {
		case 2:
			return chess.KingsideCastle
		case -2:
			return chess.QueensideCastle
		}
	}
	return chess.PieceMove
}

// disambiguation returns the origin file, rank or both needed when another
// piece of the same kind and colour could also legally reach to.
func (g *Game) disambiguation(piece *chess.Piece, to chess.Square) string {
	if piece.Kind() == chess.Pawn || piece.Kind() == chess.King {
		return ""
	}
	from := piece.Position()
	var rivals, sameFile, sameRank bool
	for _, other := range g.board.PiecesOfKindAndColour(piece.Kind(), piece.Colour()) {
		if other == piece || !g.legalDestinations(other).Contains(to) {
			continue
		}
		rivals = true
		pos := other.Position()
		sameFile = sameFile || pos.Col == from.Col
		sameRank = sameRank || pos.Row == from.Row
	}
	switch {
	case !rivals:
		return ""
	case !sameFile:
		return string(from.File())
	case !sameRank:
		return string(from.Rank())
	default:
		return from.String()
	}
}

// must panics when a board operation fails during a validated ply.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("engine: board invariant broken: %v", err))
	}
}
