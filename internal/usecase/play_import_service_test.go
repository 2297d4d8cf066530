package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
	"github.com/graphiclux/kicker-league/internal/infrastructure/repository/memory"
	kickplaymock "github.com/graphiclux/kicker-league/internal/mocks/domain/kickplay"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestPlayImportService_ReplaceWeek_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewKickPlayRepository()
	svc := NewPlayImportService(repo, logging.NewNop())

	for i := 0; i < 2; i++ {
		inserted, err := svc.SeedSampleWeek(ctx, 2025, 1)
		if err != nil {
			t.Fatalf("seed sample week run %d: %v", i, err)
		}
		if inserted != 4 {
			t.Fatalf("unexpected inserted count on run %d: %d", i, inserted)
		}
	}

	count, err := svc.CountWeek(ctx, 2025, 1)
	if err != nil {
		t.Fatalf("count week: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 stored plays after re-import, got %d", count)
	}
}

func TestPlayImportService_ReplaceWeek_NormalizesInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewKickPlayRepository()
	svc := NewPlayImportService(repo, logging.NewNop())
	blocked := true

	_, err := svc.ReplaceWeek(ctx, 2025, 2, []PlayInput{
		{GameID: " g1 ", Possession: "kc", PlayType: "Extra_Point", Result: "MADE", Blocked: &blocked},
	})
	if err != nil {
		t.Fatalf("replace week: %v", err)
	}

	plays, err := repo.ListByWeek(ctx, 2025, 2)
	if err != nil {
		t.Fatalf("list week: %v", err)
	}
	if len(plays) != 1 {
		t.Fatalf("unexpected play count: %d", len(plays))
	}
	got := plays[0]
	if got.Possession != "KC" || got.GameID != "g1" || got.PlayType != kickplay.PlayTypeExtraPoint || got.Result != kickplay.ResultMade || !got.Blocked {
		t.Fatalf("unexpected normalized play: %+v", got)
	}
}

func TestPlayImportService_ReplaceWeek_RejectsWholeBatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewKickPlayRepository()
	svc := NewPlayImportService(repo, logging.NewNop())

	if _, err := svc.SeedSampleWeek(ctx, 2025, 1); err != nil {
		t.Fatalf("seed sample week: %v", err)
	}

	batch := append(SamplePlays(), PlayInput{GameID: "x", Possession: "BUF", PlayType: "punt", Result: "made"})
	_, err := svc.ReplaceWeek(ctx, 2025, 1, batch)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	count, err := repo.CountByWeek(ctx, 2025, 1)
	if err != nil {
		t.Fatalf("count week: %v", err)
	}
	if count != 4 {
		t.Fatalf("stored plays changed after rejected batch: %d", count)
	}
}

func TestPlayImportService_ReplaceWeek_ValidatesWeek(t *testing.T) {
	t.Parallel()

	svc := NewPlayImportService(memory.NewKickPlayRepository(), logging.NewNop())
	for _, week := range []int{0, MaxWeek + 1} {
		if _, err := svc.ReplaceWeek(context.Background(), 2025, week, nil); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("week %d: expected ErrInvalidInput, got %v", week, err)
		}
	}
}

func TestPlayImportService_ReplaceWeek_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := kickplaymock.NewRepository(t)
	svc := NewPlayImportService(repo, logging.NewNop())

	repo.
		On("ReplaceWeek", mock.Anything, 2025, 3, mock.MatchedBy(func(plays []kickplay.Play) bool { return len(plays) == 4 })).
		Return(0, errors.New("connection reset")).
		Once()

	_, err := svc.ReplaceWeek(ctx, 2025, 3, SamplePlays())
	if err == nil {
		t.Fatalf("expected repository error")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatalf("repository failure must not be reported as invalid input: %v", err)
	}
}
