package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateZobristHash(board, chess.White)
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	d := NewDuplicateDetector(false, 0)
	board := chess.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.CheckAndAdd(board, chess.White, 0)
	}
}
