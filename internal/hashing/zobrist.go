// Package hashing provides position keys, repetition tracking and duplicate
// detection for chess games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable across runs.
const zobristSeed = 0x5eed_c0de

var (
	pieceKeys     [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	blackToMove   uint64
	castlingKeys  [2][2]uint64 // [colour][kingside, queenside]
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
	for c := range castlingKeys {
		castlingKeys[c][0] = r.Uint64()
		castlingKeys[c][1] = r.Uint64()
	}
	for f := range enPassantKeys {
		enPassantKeys[f] = r.Uint64()
	}
}

// PositionKey returns the Zobrist key of a position: piece placement, side to
// move, castling availability and a capturable en passant target. Two
// positions with equal keys count as the same position for repetition.
func PositionKey(b chess.Reader, toMove chess.Colour) uint64 {
	var key uint64
	for _, p := range b.Pieces() {
		sq := p.Position()
		key ^= pieceKeys[p.Colour()][p.Kind()][sq.Row*chess.BoardSize+sq.Col]
	}
	if toMove == chess.Black {
		key ^= blackToMove
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kingside, queenside := b.CastlingAvailability(colour)
		if kingside {
			key ^= castlingKeys[colour][0]
		}
		if queenside {
			key ^= castlingKeys[colour][1]
		}
	}
	if target, ok := capturableEnPassant(b, toMove); ok {
		key ^= enPassantKeys[target.Col]
	}
	return key
}

// capturableEnPassant returns the en passant target only when a pawn of the
// side to move stands ready to capture onto it.
func capturableEnPassant(b chess.Reader, toMove chess.Colour) (chess.Square, bool) {
	target, ok := b.EnPassantTarget()
	if !ok {
		return target, false
	}
	behind := -toMove.Forward()
	for _, dc := range []int{-1, 1} {
		p := b.PieceAt(target.Offset(behind, dc))
		if p != nil && p.Kind() == chess.Pawn && p.Colour() == toMove {
			return target, true
		}
	}
	return target, false
}

// WeakHash is a fast order-independent checksum of the piece placement,
// used as a secondary check alongside PositionKey.
func WeakHash(b chess.Reader) uint64 {
	var sum uint64
	for _, p := range b.Pieces() {
		sq := p.Position()
		v := uint64(sq.Row*chess.BoardSize+sq.Col+1) * uint64(int(p.Kind())*2+int(p.Colour())+1)
		sum += v * v
	}
	return sum
}
