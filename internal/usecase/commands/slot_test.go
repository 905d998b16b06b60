//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"studio-booking/internal/domain/authz"
	"studio-booking/internal/domain/slot"
	"studio-booking/internal/domain/user"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlotRepo mimics the conditional-update semantics of the real
// repository: Claim succeeds only while the row is still available,
// under a lock, so concurrent claims race the same way they do in
// Postgres.
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*queries.SlotView
}

func newFakeSlotRepo(views ...*queries.SlotView) *fakeSlotRepo {
	m := make(map[uuid.UUID]*queries.SlotView, len(views))
	for _, v := range views {
		m[v.ID] = v
	}
	return &fakeSlotRepo{slots: m}
}

func (f *fakeSlotRepo) Create(_ context.Context, s *slot.Slot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.slots[s.ID()] = &queries.SlotView{
		ID:          s.ID(),
		StartTime:   s.StartTime(),
		DurationMin: s.DurationMin(),
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return nil
}

func (f *fakeSlotRepo) Update(_ context.Context, id uuid.UUID, startTime time.Time, durationMin int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", errors.New("no rows"), infra.KindNotFound)
	}
	v.StartTime = startTime
	v.DurationMin = durationMin
	return nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.slots[id]; !ok {
		return infra.WrapRepoErr("slot not found", errors.New("no rows"), infra.KindNotFound)
	}
	delete(f.slots, id)
	return nil
}

func (f *fakeSlotRepo) Claim(_ context.Context, id uuid.UUID, contact slot.Contact, claimedBy uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.slots[id]
	if !ok {
		return infra.WrapRepoErr("slot not found", errors.New("no rows"), infra.KindNotFound)
	}
	if !v.Available {
		return infra.WrapRepoErr("slot already claimed", errors.New("zero rows"), infra.KindConflict)
	}
	v.Available = false
	v.ClientName = contact.ClientName
	v.PhoneNumber = contact.PhoneNumber
	v.Comment = contact.Comment
	id2 := claimedBy
	v.ClaimedBy = &id2
	return nil
}

func (f *fakeSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*queries.SlotView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", errors.New("no rows"), infra.KindNotFound)
	}
	cp := *v
	return &cp, nil
}

var validContact = slot.Contact{
	ClientName:  "Hanako Yamada",
	PhoneNumber: "090-1234-5678",
	Comment:     "First visit",
}

func TestCreateSlot(t *testing.T) {
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)
	client := authz.NewViewer(uuid.New(), user.RoleClient)
	start := time.Now().Add(24 * time.Hour)

	t.Run("admin creates a slot", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		view, err := cmds.CreateSlot(context.Background(), admin, start, 60)
		require.NoError(t, err)
		assert.True(t, view.Available)
		assert.Equal(t, 60, view.DurationMin)
	})

	t.Run("guest is unauthenticated", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.CreateSlot(context.Background(), authz.Guest(), start, 60)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("client is forbidden", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.CreateSlot(context.Background(), client, start, 60)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("invalid duration", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.CreateSlot(context.Background(), admin, start, 0)
		require.ErrorIs(t, err, commands.ErrSlotValidation)
	})

	t.Run("past start time is accepted", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		view, err := cmds.CreateSlot(context.Background(), admin, time.Now().Add(-24*time.Hour), 30)
		require.NoError(t, err)
		assert.True(t, view.Available)
	})
}

func TestUpdateSlot(t *testing.T) {
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)

	t.Run("unknown slot", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.UpdateSlot(context.Background(), admin, uuid.New(), time.Now(), 60)
		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("reschedule keeps the claim", func(t *testing.T) {
		claimant := uuid.New()
		claimed := builder.NewSlotBuilder().AsClaimed(claimant).BuildView()
		repo := newFakeSlotRepo(claimed)
		cmds := commands.NewSlotCommands(repo, repo)

		newStart := time.Now().Add(72 * time.Hour)
		view, err := cmds.UpdateSlot(context.Background(), admin, claimed.ID, newStart, 90)
		require.NoError(t, err)

		assert.False(t, view.Available)
		require.NotNil(t, view.ClaimedBy)
		assert.Equal(t, claimant, *view.ClaimedBy)
		assert.Equal(t, 90, view.DurationMin)
	})

	t.Run("client cannot reschedule", func(t *testing.T) {
		open := builder.NewSlotBuilder().BuildView()
		repo := newFakeSlotRepo(open)
		cmds := commands.NewSlotCommands(repo, repo)

		client := authz.NewViewer(uuid.New(), user.RoleClient)
		_, err := cmds.UpdateSlot(context.Background(), client, open.ID, time.Now(), 60)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestDeleteSlot(t *testing.T) {
	admin := authz.NewViewer(uuid.New(), user.RoleAdmin)

	t.Run("claimed slots are deletable", func(t *testing.T) {
		claimed := builder.NewSlotBuilder().AsClaimed(uuid.New()).BuildView()
		repo := newFakeSlotRepo(claimed)
		cmds := commands.NewSlotCommands(repo, repo)

		require.NoError(t, cmds.DeleteSlot(context.Background(), admin, claimed.ID))
	})

	t.Run("unknown slot", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		err := cmds.DeleteSlot(context.Background(), admin, uuid.New())
		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})
}

func TestClaimSlot(t *testing.T) {
	client := authz.NewViewer(uuid.New(), user.RoleClient)

	t.Run("claim an open slot", func(t *testing.T) {
		open := builder.NewSlotBuilder().BuildView()
		repo := newFakeSlotRepo(open)
		cmds := commands.NewSlotCommands(repo, repo)

		view, err := cmds.ClaimSlot(context.Background(), client, open.ID, validContact)
		require.NoError(t, err)

		assert.False(t, view.Available)
		assert.Equal(t, validContact.ClientName, view.ClientName)
		require.NotNil(t, view.ClaimedBy)
		assert.Equal(t, client.ID, *view.ClaimedBy)
	})

	t.Run("guest cannot claim", func(t *testing.T) {
		open := builder.NewSlotBuilder().BuildView()
		repo := newFakeSlotRepo(open)
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.ClaimSlot(context.Background(), authz.Guest(), open.ID, validContact)
		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("missing client name", func(t *testing.T) {
		open := builder.NewSlotBuilder().BuildView()
		repo := newFakeSlotRepo(open)
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.ClaimSlot(context.Background(), client, open.ID, slot.Contact{})
		require.ErrorIs(t, err, commands.ErrSlotValidation)
	})

	t.Run("unknown slot is not found, not conflict", func(t *testing.T) {
		repo := newFakeSlotRepo()
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.ClaimSlot(context.Background(), client, uuid.New(), validContact)
		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("already claimed slot is a conflict", func(t *testing.T) {
		claimed := builder.NewSlotBuilder().AsClaimed(uuid.New()).BuildView()
		repo := newFakeSlotRepo(claimed)
		cmds := commands.NewSlotCommands(repo, repo)

		_, err := cmds.ClaimSlot(context.Background(), client, claimed.ID, validContact)
		require.ErrorIs(t, err, commands.ErrSlotAlreadyClaimed)
	})

	t.Run("exactly one concurrent claimant wins", func(t *testing.T) {
		open := builder.NewSlotBuilder().BuildView()
		repo := newFakeSlotRepo(open)
		cmds := commands.NewSlotCommands(repo, repo)

		const racers = 16
		results := make(chan error, racers)

		var start sync.WaitGroup
		start.Add(1)
		for i := 0; i < racers; i++ {
			viewer := authz.NewViewer(uuid.New(), user.RoleClient)
			go func() {
				start.Wait()
				_, err := cmds.ClaimSlot(context.Background(), viewer, open.ID, validContact)
				results <- err
			}()
		}
		start.Done()

		var wins, conflicts int
		for i := 0; i < racers; i++ {
			err := <-results
			switch {
			case err == nil:
				wins++
			case errors.Is(err, commands.ErrSlotAlreadyClaimed):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}

		assert.Equal(t, 1, wins)
		assert.Equal(t, racers-1, conflicts)
	})
}
