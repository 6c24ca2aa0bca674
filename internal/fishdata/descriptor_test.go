package fishdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/catchpool/internal/domain"
)

const sampleDescriptor = "0/3/mixed/1/3/600 1300 1800 2400/spring summer/sunny/0/0/0.3/0/2"

func TestParseDescriptor(t *testing.T) {
	desc, err := ParseDescriptor(sampleDescriptor)
	require.NoError(t, err)

	assert.Equal(t, domain.FishTraits{Name: "0", Difficulty: 3, MotionType: domain.MotionMixed, MinSize: 1, MaxSize: 3}, desc.Traits)
	require.Len(t, desc.Records, 2)

	assert.Equal(t, 600, desc.Records[0].StartTime)
	assert.Equal(t, 1300, desc.Records[0].EndTime)
	assert.Equal(t, 1800, desc.Records[1].StartTime)
	assert.Equal(t, 2400, desc.Records[1].EndTime)

	for _, r := range desc.Records {
		assert.Equal(t, 0.3, r.BaseChance)
		assert.Equal(t, domain.Spring|domain.Summer, r.Seasons)
		assert.Equal(t, domain.Sunny, r.Weathers)
		assert.Equal(t, domain.AllWaterTypes, r.WaterTypes)
		assert.Equal(t, 2, r.MinFishingLevel)
	}
}

func TestParseDescriptor_TooFewFields(t *testing.T) {
	desc, err := ParseDescriptor("Pufferfish/80/floater/1/37/1200 1600/summer/sunny/0/0/0.3/0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRawData)
	assert.Equal(t, ReasonTooFewFields, skipReason(err))
	assert.Empty(t, desc.Records)
}

func TestParseDescriptor_BadNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"difficulty", "Carp/x/mixed/1/3/600 2600/spring/both/0/0/0.3/0/0"},
		{"weight", "Carp/15/mixed/1/3/600 2600/spring/both/0/0/lots/0/0"},
		{"nan weight", "Carp/15/mixed/1/3/600 2600/spring/both/0/0/NaN/0/0"},
		{"infinite weight", "Carp/15/mixed/1/3/600 2600/spring/both/0/0/Inf/0/0"},
		{"negative infinite weight", "Carp/15/mixed/1/3/600 2600/spring/both/0/0/-Infinity/0/0"},
		{"level", "Carp/15/mixed/1/3/600 2600/spring/both/0/0/0.3/0/two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDescriptor(tt.raw)
			require.Error(t, err)
			assert.Equal(t, ReasonBadNumber, skipReason(err))
		})
	}
}

func TestParseDescriptor_Fields(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		seasons  domain.Seasons
		weathers domain.Weathers
		motion   domain.MotionType
		windows  [][2]int
	}{
		{
			name:     "both weathers and every season",
			raw:      "Carp/15/SMOOTH/15/50/600 2600/spring summer fall winter/both/0/0/0.2/0/0",
			seasons:  domain.AllSeasons,
			weathers: domain.AllWeathers,
			motion:   domain.MotionSmooth,
			windows:  [][2]int{{600, 2600}},
		},
		{
			name:     "unknown tokens ignored",
			raw:      "Eel/70/wiggle/12/80/1600 2600/autumn monsoon/foggy/0/0/0.1/0/3",
			seasons:  domain.Fall,
			weathers: domain.AllWeathers,
			motion:   domain.MotionMixed,
			windows:  [][2]int{{1600, 2600}},
		},
		{
			name:     "no seasons means all",
			raw:      "Eel/70/sinker/12/80/1600 2600//rainy/0/0/0.1/0/3",
			seasons:  domain.AllSeasons,
			weathers: domain.Rainy,
			motion:   domain.MotionSink,
			windows:  [][2]int{{1600, 2600}},
		},
		{
			name:     "malformed and inverted windows skipped",
			raw:      "Eel/70/dart/12/80/900 x 1400 1200 600 1000 700/spring/sunny/0/0/0.1/0/3",
			seasons:  domain.Spring,
			weathers: domain.Sunny,
			motion:   domain.MotionDart,
			windows:  [][2]int{{600, 1000}},
		},
		{
			name:     "no valid window uses the default",
			raw:      "Eel/70/floater/12/80/2000 1000/spring/sunny/0/0/0.1/0/3",
			seasons:  domain.Spring,
			weathers: domain.Sunny,
			motion:   domain.MotionFloater,
			windows:  [][2]int{{domain.DefaultStartTime, domain.DefaultEndTime}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := ParseDescriptor(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.motion, desc.Traits.MotionType)
			require.Len(t, desc.Records, len(tt.windows))
			for i, r := range desc.Records {
				assert.Equal(t, tt.seasons, r.Seasons)
				assert.Equal(t, tt.weathers, r.Weathers)
				assert.Equal(t, tt.windows[i], [2]int{r.StartTime, r.EndTime})
			}
		})
	}
}

func TestParseTrashDescriptor(t *testing.T) {
	info, ok := parseTrashDescriptor("Seaweed/5/floater/1/1/600 1200 1500 2600/spring summer/both/0/0/nope/0/x")
	require.True(t, ok)
	assert.Equal(t, 0.0, info.BaseChance, "falls back to the alternate weight field")
	assert.Equal(t, 0, info.MinFishingLevel)
	assert.Equal(t, 600, info.StartTime)
	assert.Equal(t, 1200, info.EndTime)

	info, ok = parseTrashDescriptor("Algae/5/floater/1/1//spring/both/0/x/nope/0/x")
	require.True(t, ok)
	assert.Equal(t, DefaultBaseChance, info.BaseChance)
	assert.Equal(t, domain.DefaultStartTime, info.StartTime)

	_, ok = parseTrashDescriptor("Algae/5")
	assert.False(t, ok)
}

func TestParseTrashDescriptor_NonFiniteWeight(t *testing.T) {
	info, ok := parseTrashDescriptor("Seaweed/5/floater/1/1/600 2600/spring/both/0/0.7/NaN/0/0")
	require.True(t, ok)
	assert.Equal(t, 0.7, info.BaseChance, "falls back to the alternate weight field")

	info, ok = parseTrashDescriptor("Seaweed/5/floater/1/1/600 2600/spring/both/0/Inf/+Inf/0/0")
	require.True(t, ok)
	assert.Equal(t, DefaultBaseChance, info.BaseChance)
}
