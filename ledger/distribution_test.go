package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/muhammadheryan/garment-erp/ledger"
	"github.com/stretchr/testify/require"
)

func TestComputeRemaining(t *testing.T) {
	sizes := ledger.SizeLedger{"S": 10, "M": 20, "L": 5}
	allocations := []ledger.Allocation{
		{BatchID: 1, Size: "S", Quantity: 4},
		{BatchID: 2, Size: "S", Quantity: 6},
		{BatchID: 1, Size: "M", Quantity: 15},
		{BatchID: 1, Size: "XXL", Quantity: 3},
	}

	got := ledger.ComputeRemaining(sizes, allocations)

	require.Equal(t, map[string]int{"S": 0, "M": 5, "L": 5}, got)
}

func TestMaxForBatch(t *testing.T) {
	require.Equal(t, 9, ledger.MaxForBatch(5, 4))
	require.Equal(t, 4, ledger.MaxForBatch(0, 4))
	require.Equal(t, 0, ledger.MaxForBatch(-3, 2))
}

func TestValidateDistribution(t *testing.T) {
	tests := []struct {
		name        string
		sizes       ledger.SizeLedger
		allocations []ledger.Allocation
		wantErr     string
	}{
		{
			name:  "success: fully distributed across two batches",
			sizes: ledger.SizeLedger{"M": 10, "L": 4},
			allocations: []ledger.Allocation{
				{BatchID: 1, Size: "M", Quantity: 6},
				{BatchID: 2, Size: "M", Quantity: 4},
				{BatchID: 2, Size: "L", Quantity: 4},
			},
		},
		{
			name:        "error: partial distribution reports the remainder",
			sizes:       ledger.SizeLedger{"L": 5},
			allocations: []ledger.Allocation{{BatchID: 1, Size: "L", Quantity: 3}},
			wantErr:     "size L has 2 remaining",
		},
		{
			name:  "error: smallest size is reported first",
			sizes: ledger.SizeLedger{"XL": 2, "S": 3},
			allocations: []ledger.Allocation{
				{BatchID: 1, Size: "XL", Quantity: 1},
			},
			wantErr: "size S has 3 remaining",
		},
		{
			name:        "error: over allocation",
			sizes:       ledger.SizeLedger{"M": 5},
			allocations: []ledger.Allocation{{BatchID: 1, Size: "M", Quantity: 7}},
			wantErr:     "size M exceeds total by 2",
		},
		{
			name:        "error: unknown size",
			sizes:       ledger.SizeLedger{"M": 5},
			allocations: []ledger.Allocation{{BatchID: 1, Size: "XS", Quantity: 5}},
			wantErr:     "size XS is not part of the order",
		},
		{
			name:  "error: negative quantity",
			sizes: ledger.SizeLedger{"M": 5},
			allocations: []ledger.Allocation{
				{BatchID: 1, Size: "M", Quantity: 8},
				{BatchID: 2, Size: "M", Quantity: -3},
			},
			wantErr: "size M has a negative quantity for batch 2",
		},
		{
			name:  "error: same batch and size twice",
			sizes: ledger.SizeLedger{"M": 4},
			allocations: []ledger.Allocation{
				{BatchID: 1, Size: "M", Quantity: 2},
				{BatchID: 1, Size: "M", Quantity: 2},
			},
			wantErr: "size M is allocated twice to batch 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.ValidateDistribution(tt.sizes, tt.allocations)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var verr *ledger.ValidationError
			require.ErrorAs(t, err, &verr)
			require.EqualError(t, err, tt.wantErr)
		})
	}
}

// Random plans are only accepted when no size is over or under allocated.
func TestValidateDistribution_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := ledger.SizeLedger{"S": 7, "M": 12, "L": 3}
	names := sizes.Sizes()

	for i := 0; i < 2000; i++ {
		var allocations []ledger.Allocation
		for batch := uint64(1); batch <= 3; batch++ {
			for _, s := range names {
				if rng.Intn(3) == 0 {
					continue
				}
				allocations = append(allocations, ledger.Allocation{BatchID: batch, Size: s, Quantity: rng.Intn(sizes[s] + 1)})
			}
		}

		err := ledger.ValidateDistribution(sizes, allocations)

		sums := map[string]int{}
		for _, a := range allocations {
			sums[a.Size] += a.Quantity
		}
		exact := true
		for _, s := range names {
			if sums[s] != sizes[s] {
				exact = false
			}
		}
		if err == nil {
			for _, s := range names {
				require.LessOrEqual(t, sums[s], sizes[s])
			}
		}
		require.Equal(t, exact, err == nil, "plan %v", allocations)
	}
}

func TestSortSizes(t *testing.T) {
	sizes := []string{"XL", "38", "s", "M", "XXL", "36", "L"}
	ledger.SortSizes(sizes)
	require.Equal(t, []string{"s", "M", "L", "XL", "XXL", "36", "38"}, sizes)
}
