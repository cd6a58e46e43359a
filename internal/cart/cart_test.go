package cart

import (
	"context"
	"math"
	"strconv"
	"testing"

	"gemshop/internal/catalog"
	"gemshop/internal/store"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) (*Engine, *catalog.Manager, store.Store) {
	t.Helper()

	s := store.NewMemStore()
	c := catalog.NewManager(s, zap.NewNop())
	require.NoError(t, c.Load(context.Background()))
	return NewEngine(s, c, zap.NewNop()), c, s
}

func seedIDs(c *catalog.Manager) []int64 {
	var ids []int64
	for _, p := range c.List("") {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestAdd_NewProductAppendsLineWithQtyOne(t *testing.T) {
	ctx := context.Background()
	e, c, _ := newTestEngine(t)
	id := seedIDs(c)[0]

	require.NoError(t, e.Add(ctx, id))

	items := e.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, 1, items[0].Qty)
}

func TestAdd_ExistingProductMergesQuantity(t *testing.T) {
	ctx := context.Background()
	e, c, _ := newTestEngine(t)
	id := seedIDs(c)[0]

	require.NoError(t, e.Add(ctx, id))
	require.NoError(t, e.Add(ctx, id))
	require.NoError(t, e.Add(ctx, id))

	items := e.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Qty)
}

func TestAdd_UnknownProductIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t)

	require.NoError(t, e.Add(ctx, 424242))
	assert.Empty(t, e.Items(ctx))
}

func TestSetQuantity_Clamps(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"0", 1},
		{"-5", 1},
		{"abc", 1},
		{"", 1},
		{"3", 3},
		{"2.9", 2},
		{"7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ctx := context.Background()
			e, c, _ := newTestEngine(t)
			require.NoError(t, e.Add(ctx, seedIDs(c)[0]))

			require.NoError(t, e.SetQuantity(ctx, 0, tt.raw))
			assert.Equal(t, tt.want, e.Items(ctx)[0].Qty)
		})
	}
}

func TestSetQuantity_OutOfRangeLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	e, c, _ := newTestEngine(t)
	require.NoError(t, e.Add(ctx, seedIDs(c)[0]))
	before := e.Items(ctx)

	assert.ErrorIs(t, e.SetQuantity(ctx, -1, "3"), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.SetQuantity(ctx, 1, "3"), ErrIndexOutOfRange)
	assert.Equal(t, before, e.Items(ctx))
}

func TestRemove_OutOfRangeLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	e, c, _ := newTestEngine(t)
	require.NoError(t, e.Add(ctx, seedIDs(c)[0]))
	before := e.Items(ctx)

	assert.ErrorIs(t, e.Remove(ctx, -1), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.Remove(ctx, 1), ErrIndexOutOfRange)
	assert.Equal(t, before, e.Items(ctx))
}

func TestRemove_DeletesByPosition(t *testing.T) {
	ctx := context.Background()
	e, c, _ := newTestEngine(t)
	ids := seedIDs(c)

	require.NoError(t, e.Add(ctx, ids[0]))
	require.NoError(t, e.Add(ctx, ids[1]))
	require.NoError(t, e.Remove(ctx, 0))

	items := e.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, ids[1], items[0].ID)
}

func TestClear_DeletesPersistedCart(t *testing.T) {
	ctx := context.Background()
	e, c, s := newTestEngine(t)
	require.NoError(t, e.Add(ctx, seedIDs(c)[0]))

	require.NoError(t, e.Clear(ctx))

	assert.Empty(t, e.Items(ctx))
	_, err := s.Read(ctx, store.KeyCart)
	assert.ErrorIs(t, err, store.ErrAbsent)
}

// For any sequence of adds: cart length never exceeds the number of
// distinct product ids added, and total quantity equals the number of
// add calls.
func TestProperty_AddMergeInvariant(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("Σqty equals add calls and lines stay merged", prop.ForAll(
		func(picks []int) bool {
			ctx := context.Background()
			e, c, _ := newTestEngine(t)
			ids := seedIDs(c)

			distinct := make(map[int64]bool)
			for _, pick := range picks {
				id := ids[pick%len(ids)]
				distinct[id] = true
				if err := e.Add(ctx, id); err != nil {
					return false
				}
			}

			items := e.Items(ctx)
			if len(items) > len(distinct) {
				t.Logf("FAIL: %d lines for %d distinct products", len(items), len(distinct))
				return false
			}

			totalQty := 0
			for _, item := range items {
				totalQty += item.Qty
			}
			return totalQty == len(picks)
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Total always equals Σ(price×qty) recomputed from the current items.
func TestProperty_TotalIsNeverStale(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total matches a fresh recomputation after any mutation", prop.ForAll(
		func(adds []int, qty int) bool {
			ctx := context.Background()
			e, c, _ := newTestEngine(t)
			ids := seedIDs(c)

			for _, pick := range adds {
				if err := e.Add(ctx, ids[pick%len(ids)]); err != nil {
					return false
				}
			}

			if len(e.Items(ctx)) > 0 {
				if err := e.SetQuantity(ctx, 0, "1"); err != nil {
					return false
				}
				if qty > 0 {
					if err := e.SetQuantity(ctx, 0, strconv.Itoa(qty)); err != nil {
						return false
					}
				}
			}

			expected := 0.0
			for _, item := range e.Items(ctx) {
				expected += item.Price * float64(item.Qty)
			}

			return math.Abs(e.Total(ctx)-expected) < 1e-9
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Items never hands back the persisted cart's backing state: mutating
// the returned slice must not leak into the store.
func TestItems_ReturnsDetachedSnapshot(t *testing.T) {
	ctx := context.Background()
	e, c, _ := newTestEngine(t)
	require.NoError(t, e.Add(ctx, seedIDs(c)[0]))

	items := e.Items(ctx)
	items[0].Qty = 99

	assert.Equal(t, 1, e.Items(ctx)[0].Qty)
}

func TestEngineAgainstFileStore(t *testing.T) {
	ctx := context.Background()
	fs, err := store.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	c := catalog.NewManager(fs, zap.NewNop())
	require.NoError(t, c.Load(ctx))
	e := NewEngine(fs, c, zap.NewNop())

	first := c.List("")[0]

	require.NoError(t, e.Add(ctx, first.ID))
	require.NoError(t, e.Add(ctx, first.ID))

	assert.Equal(t, 2, e.ItemCount(ctx))
	assert.Equal(t, first.Price*2, e.Total(ctx))
}
