package vessel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVessel_JSONWireFormat(t *testing.T) {
	raw := `{"id":1,"nombre":"Barco A","capacidad":10,"descripcion":"x","fechaProgramada":"2024-01-01"}`

	var v Vessel
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	assert.Equal(t, Vessel{ID: 1, Name: "Barco A", Capacity: 10, Description: "x", ScheduledDate: NewDate(2024, 1, 1)}, v)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: `"2024-03-15"`, want: NewDate(2024, 3, 15)},
		{name: "timestamp", input: `"2024-03-15T10:30:00Z"`, want: NewDate(2024, 3, 15)},
		{name: "null", input: `null`, want: Date{}},
		{name: "empty", input: `""`, want: Date{}},
		{name: "garbage", input: `"mañana"`, wantErr: true},
		{name: "number", input: `20240315`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %s", d)
		})
	}
}

func TestDate_ZeroMarshalsNull(t *testing.T) {
	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
	assert.Equal(t, "", Date{}.String())
}
