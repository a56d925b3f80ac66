package validatorx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Size     string `json:"size" validate:"required,size"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

type request struct {
	Items []item `json:"items" validate:"required,min=1,dive"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     request
		wantErr bool
		message string
	}{
		{name: "valid", req: request{Items: []item{{Size: "XL", Quantity: 2}}}},
		{name: "empty items", req: request{}, wantErr: true, message: "items failed required"},
		{name: "zero quantity", req: request{Items: []item{{Size: "M"}}}, wantErr: true, message: "items[0].quantity failed gt=0"},
		{name: "size with space", req: request{Items: []item{{Size: "X L", Quantity: 1}}}, wantErr: true, message: "items[0].size failed size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.message, Message(err))
		})
	}
}

func TestValidateStruct_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Init()
		}()
		go func() {
			defer wg.Done()
			errs <- ValidateStruct(&request{Items: []item{{Size: "S", Quantity: 1}}})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
