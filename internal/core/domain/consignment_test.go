// internal/core/domain/consignment_test.go
package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibubooks/consign-be/internal/core/domain"
)

func TestContribution(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.ConsignmentState
		expected int
		wantErr  bool
	}{
		{name: "available_contributes_one", state: domain.StateAvailable, expected: 1},
		{name: "not_in_store_contributes_zero", state: domain.StateNotInStore, expected: 0},
		{name: "sold_contributes_zero", state: domain.StateSold, expected: 0},
		{name: "complete_contributes_zero", state: domain.StateComplete, expected: 0},
		{name: "unknown_state_fails", state: "returned", wantErr: true},
		{name: "empty_state_fails", state: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.Contribution(tt.state)
			if tt.wantErr {
				require.Error(t, err)
				var se *domain.InvalidStateError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, string(tt.state), se.State)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestStateDelta(t *testing.T) {
	states := []domain.ConsignmentState{
		domain.StateAvailable,
		domain.StateNotInStore,
		domain.StateSold,
		domain.StateComplete,
	}

	// The delta for every valid pair is the literal difference of the
	// contribution table entries.
	expected := map[domain.ConsignmentState]int{
		domain.StateAvailable:  1,
		domain.StateNotInStore: 0,
		domain.StateSold:       0,
		domain.StateComplete:   0,
	}

	for _, prev := range states {
		for _, next := range states {
			delta, err := domain.StateDelta(prev, next)
			require.NoError(t, err)
			assert.Equal(t, expected[next]-expected[prev], delta,
				"delta for %s -> %s", prev, next)
			assert.GreaterOrEqual(t, delta, -1)
			assert.LessOrEqual(t, delta, 1)
		}
	}
}

func TestStateDelta_SpotChecks(t *testing.T) {
	tests := []struct {
		name  string
		prev  domain.ConsignmentState
		next  domain.ConsignmentState
		delta int
	}{
		{"available_to_sold", domain.StateAvailable, domain.StateSold, -1},
		{"sold_to_available", domain.StateSold, domain.StateAvailable, +1},
		{"not_in_store_to_complete", domain.StateNotInStore, domain.StateComplete, 0},
		{"available_to_available", domain.StateAvailable, domain.StateAvailable, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, err := domain.StateDelta(tt.prev, tt.next)
			require.NoError(t, err)
			assert.Equal(t, tt.delta, delta)
		})
	}
}

func TestStateDelta_InvalidStates(t *testing.T) {
	_, err := domain.StateDelta("returned", domain.StateSold)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidState(err))

	_, err = domain.StateDelta(domain.StateAvailable, "lost")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidState(err))
}

func TestConsignmentItem_Validate(t *testing.T) {
	valid := func() *domain.ConsignmentItem {
		return &domain.ConsignmentItem{
			ItemID:       uuid.New(),
			ConsignorID:  uuid.New(),
			BookID:       uuid.New(),
			Price:        decimal.NewFromFloat(20.00),
			CurrentState: domain.StateAvailable,
		}
	}

	t.Run("valid_item_passes", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing_consignor_fails", func(t *testing.T) {
		item := valid()
		item.ConsignorID = uuid.Nil
		require.Error(t, item.Validate())
	})

	t.Run("missing_book_fails", func(t *testing.T) {
		item := valid()
		item.BookID = uuid.Nil
		require.Error(t, item.Validate())
	})

	t.Run("negative_price_fails", func(t *testing.T) {
		item := valid()
		item.Price = decimal.NewFromFloat(-1.00)
		require.Error(t, item.Validate())
	})

	t.Run("unknown_state_fails", func(t *testing.T) {
		item := valid()
		item.CurrentState = "returned"
		err := item.Validate()
		require.Error(t, err)
		assert.True(t, domain.IsInvalidState(err))
	})
}

func TestConsignmentItem_PrepareForStorage(t *testing.T) {
	item := &domain.ConsignmentItem{
		ConsignorID: uuid.New(),
		BookID:      uuid.New(),
		Price:       decimal.NewFromInt(15),
	}

	item.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, item.ItemID)
	assert.Equal(t, domain.StateAvailable, item.CurrentState)
	assert.False(t, item.CreatedAt.IsZero())
	assert.False(t, item.UpdatedAt.IsZero())
}

func TestBook_CoursesRoundTrip(t *testing.T) {
	b := &domain.Book{Courses: []string{"CS101", "MATH221"}}
	assert.Equal(t, "CS101,MATH221", b.CoursesString())

	var parsed domain.Book
	parsed.SetCoursesString("CS101,MATH221")
	assert.Equal(t, b.Courses, parsed.Courses)

	parsed.SetCoursesString("")
	assert.Nil(t, parsed.Courses)
}
