package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/graphiclux/kicker-league/internal/platform/cache"
	"github.com/jonboulle/clockwork"
)

type stubKickerProvider struct {
	players []KickerCandidate
	err     error
	calls   int
}

func (p *stubKickerProvider) Name() string { return "stub" }

func (p *stubKickerProvider) ListPlayers(context.Context) ([]KickerCandidate, error) {
	p.calls++
	return p.players, p.err
}

func intPtr(v int) *int { return &v }

func TestKickerService_ListCurrentKickers_PicksStarter(t *testing.T) {
	t.Parallel()

	provider := &stubKickerProvider{players: []KickerCandidate{
		{PlayerID: "1", FullName: "Backup Buf", Position: "K", Team: "BUF", Active: true, DepthChartOrder: intPtr(2), DepthChartPosition: "K"},
		{PlayerID: "2", FullName: "Tyler Bass", Position: "K", Team: "buf", Active: true, DepthChartOrder: intPtr(1), DepthChartPosition: "K"},
		{PlayerID: "3", FullName: "Inactive Kc", Position: "K", Team: "KC", Active: false, DepthChartOrder: intPtr(1), DepthChartPosition: "K"},
		{PlayerID: "4", FullName: "Harrison Butker", Position: "K", Team: "KC", Active: true, DepthChartPosition: "K", InjuryStatus: "Questionable"},
		{PlayerID: "5", FullName: "No Depth", Position: "K", Team: "DEN", Active: true},
		{PlayerID: "6", FullName: "Free Agent", Position: "K", Active: true},
		{PlayerID: "7", FullName: "Not A Kicker", Position: "P", Team: "DEN", Active: true, DepthChartPosition: "K"},
	}}
	now := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	svc := NewKickerService(provider, nil, NewSeasonCalendar(2025, testSeasonStart, 18, clockwork.NewFakeClockAt(now)))

	list, err := svc.ListCurrentKickers(context.Background())
	if err != nil {
		t.Fatalf("list kickers: %v", err)
	}
	if list.Source != "stub" || !list.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected list metadata: %+v", list)
	}

	want := map[string]string{"BUF": "2", "DEN": "5", "KC": "4"}
	if len(list.Kickers) != len(want) {
		t.Fatalf("unexpected kicker count: %+v", list.Kickers)
	}
	if list.Kickers[0].Team != "BUF" || list.Kickers[2].Team != "KC" {
		t.Fatalf("kickers should be ordered by team: %+v", list.Kickers)
	}
	for _, k := range list.Kickers {
		if want[k.Team] != k.PlayerID {
			t.Fatalf("%s: got player %s want %s", k.Team, k.PlayerID, want[k.Team])
		}
	}
}

func TestKickerService_ListCurrentKickers_CachesResult(t *testing.T) {
	t.Parallel()

	provider := &stubKickerProvider{players: []KickerCandidate{{PlayerID: "1", FullName: "A", Position: "K", Team: "ARI", Active: true}}}
	svc := NewKickerService(provider, cache.NewStore(time.Minute), NewSeasonCalendar(2025, testSeasonStart, 18, nil))

	for i := 0; i < 3; i++ {
		if _, err := svc.ListCurrentKickers(context.Background()); err != nil {
			t.Fatalf("list kickers run %d: %v", i, err)
		}
	}
	if provider.calls != 1 {
		t.Fatalf("expected provider to be called once, got %d", provider.calls)
	}
}

func TestKickerService_ListCurrentKickers_ProviderError(t *testing.T) {
	t.Parallel()

	provider := &stubKickerProvider{err: errors.New("status=503")}
	svc := NewKickerService(provider, nil, NewSeasonCalendar(2025, testSeasonStart, 18, nil))

	if _, err := svc.ListCurrentKickers(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	var unset KickerService
	if _, err := unset.ListCurrentKickers(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable without provider, got %v", err)
	}
}
