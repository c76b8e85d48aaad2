package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmptyInputFallsBackToDefaultOpenWeek(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte(""), []byte("not json"), []byte("{broken")} {
		week := Decode(raw)

		require.Len(t, week, 7)
		for _, name := range DayOrder {
			day := week[name]
			assert.True(t, day.IsOpen, name)
			require.Len(t, day.Ranges, 1, name)
			assert.Equal(t, "09:00", day.Ranges[0].OpenTime)
			assert.Equal(t, "22:00", day.Ranges[0].CloseTime)
		}
	}
}

func TestDecodeLegacyShapeUpgradesToRanges(t *testing.T) {
	raw := []byte(`{"monday":{"isOpen":true,"openTime":"10:00","closeTime":"20:00"}}`)

	week := Decode(raw)

	monday := week["monday"]
	assert.True(t, monday.IsOpen)
	require.Len(t, monday.Ranges, 1)
	assert.Equal(t, Range{OpenTime: "10:00", CloseTime: "20:00"}, monday.Ranges[0])
}

func TestLegacyUpgradeRoundTrip(t *testing.T) {
	raw := []byte(`{"monday":{"isOpen":true,"openTime":"10:00","closeTime":"20:00"}}`)

	encoded, err := Encode(Decode(raw))
	require.NoError(t, err)

	var out map[string]Day
	require.NoError(t, json.Unmarshal(encoded, &out))
	assert.Equal(t, Day{IsOpen: true, Ranges: []Range{{OpenTime: "10:00", CloseTime: "20:00"}}}, out["monday"])
}

func TestEncodeClosedDayAlwaysHasEmptyRanges(t *testing.T) {
	week := DefaultWeek()
	week["sunday"] = Day{
		IsOpen: false,
		// stale ranges left over from before the day was toggled closed
		Ranges: []Range{{OpenTime: "12:00", CloseTime: "16:00"}},
	}

	encoded, err := Encode(week)
	require.NoError(t, err)

	var out map[string]Day
	require.NoError(t, json.Unmarshal(encoded, &out))
	assert.False(t, out["sunday"].IsOpen)
	assert.Empty(t, out["sunday"].Ranges)
	assert.NotNil(t, out["sunday"].Ranges)
}

func TestEncodeAlwaysEmitsCurrentShape(t *testing.T) {
	encoded, err := Encode(DefaultWeek())
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &out))
	require.Len(t, out, 7)
	assert.Contains(t, string(out["monday"]), `"ranges"`)
	assert.NotContains(t, string(out["monday"]), `"openTime":"09:00","closeTime":"22:00","ranges"`)
}

func TestPreviewListsOpenDaysInOrder(t *testing.T) {
	week := Week{}
	for _, name := range DayOrder {
		week[name] = Day{IsOpen: false, Ranges: []Range{}}
	}
	week["monday"] = Day{IsOpen: true, Ranges: []Range{
		{OpenTime: "09:00", CloseTime: "14:00"},
		{OpenTime: "17:00", CloseTime: "22:00"},
	}}
	week["saturday"] = Day{IsOpen: true, Ranges: []Range{{OpenTime: "10:00", CloseTime: "23:00"}}}

	got := Preview(week)

	assert.Equal(t, "Lunes: 09:00 - 14:00, 17:00 - 22:00\nSábado: 10:00 - 23:00", got)
}

func TestPreviewAllClosedIsCerrado(t *testing.T) {
	week := Week{}
	for _, name := range DayOrder {
		week[name] = Day{IsOpen: false, Ranges: []Range{}}
	}

	assert.Equal(t, "Cerrado", Preview(week))
}
