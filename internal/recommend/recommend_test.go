package recommend

import (
	"context"
	"errors"
	"testing"

	model "github.com/ravisharma-09/TSAP-Club/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	problems []model.Problem
	err      error
}

func (s *stubSource) Problems(ctx context.Context) ([]model.Problem, error) {
	return s.problems, s.err
}

func sampleProblems() []model.Problem {
	return []model.Problem{
		{ContestID: 1, Index: "A", Name: "Easy One", Rating: 900},
		{ContestID: 1, Index: "B", Name: "In Band Low", Rating: 1300},
		{ContestID: 2, Index: "A", Name: "In Band Mid", Rating: 1450},
		{ContestID: 2, Index: "B", Name: "In Band High", Rating: 1600},
		{ContestID: 3, Index: "A", Name: "Too Hard", Rating: 2400},
		{ContestID: 3, Index: "B", Name: "Unrated Problem"},
		{ContestID: 4, Index: "A", Name: "Already Solved", Rating: 1500},
	}
}

func TestSuggestRespectsBandAndSolvedSet(t *testing.T) {
	engine := NewEngine(&stubSource{problems: sampleProblems()})

	rating := 1200
	stats := &model.PlatformStats{
		Platform:   model.PlatformCodeforces,
		Rating:     &rating,
		SolvedKeys: []string{"4-A"},
		Supported:  true,
	}

	// Bande de progression pour 1200: [1300, 1600]
	got := engine.Suggest(context.Background(), stats)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 5)

	for _, p := range got {
		assert.GreaterOrEqual(t, p.Rating, 1300, "problème %s hors bande", p.Key())
		assert.LessOrEqual(t, p.Rating, 1600, "problème %s hors bande", p.Key())
		assert.NotEqual(t, "4-A", p.Key(), "problème déjà résolu proposé")
	}
}

func TestSuggestUnratedDefaultsTo800(t *testing.T) {
	problems := []model.Problem{
		{ContestID: 10, Index: "A", Rating: 800},  // sous la bande [900, 1200]
		{ContestID: 10, Index: "B", Rating: 1000}, // dans la bande
		{ContestID: 10, Index: "C", Rating: 1300}, // au-dessus
	}
	engine := NewEngine(&stubSource{problems: problems})

	got := engine.Suggest(context.Background(), &model.PlatformStats{Platform: model.PlatformCodeforces, Supported: true})
	require.Len(t, got, 1)
	assert.Equal(t, "10-B", got[0].Key())
}

func TestSuggestCapsAtFive(t *testing.T) {
	var problems []model.Problem
	for i := 0; i < 30; i++ {
		problems = append(problems, model.Problem{ContestID: 100 + i, Index: "A", Rating: 1400})
	}
	engine := NewEngine(&stubSource{problems: problems})

	rating := 1200
	got := engine.Suggest(context.Background(), &model.PlatformStats{Rating: &rating, Supported: true})
	assert.Len(t, got, 5)
}

func TestSuggestNeverErrors(t *testing.T) {
	t.Run("nil stats", func(t *testing.T) {
		engine := NewEngine(&stubSource{problems: sampleProblems()})
		assert.Empty(t, engine.Suggest(context.Background(), nil))
	})

	t.Run("failed platform record", func(t *testing.T) {
		engine := NewEngine(&stubSource{problems: sampleProblems()})
		st := &model.PlatformStats{Platform: model.PlatformCodeforces, Error: "down"}
		assert.Empty(t, engine.Suggest(context.Background(), st))
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		engine := NewEngine(&stubSource{err: errors.New("catalogue indisponible")})
		rating := 1200
		st := &model.PlatformStats{Rating: &rating, Supported: true}
		assert.Empty(t, engine.Suggest(context.Background(), st))
	})
}
