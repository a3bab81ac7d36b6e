package enum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/enumium/enum"
	"github.com/zjrosen/enumium/internal/testutil"
)

// End-to-end scenarios exercising the library the way an embedding
// application would.

func TestScenario_ColorEnum(t *testing.T) {
	reg := enum.NewRegistry()
	colors := testutil.Colors(t, testutil.InRegistry(reg))

	require.True(t, colors.Validate(2))
	require.False(t, colors.Validate(9))

	green, ok := colors.ValueByPayload(2)
	require.True(t, ok)
	require.Equal(t, "Green", green.Name())

	require.Contains(t, colors.String(), "Color.Red = 1")

	sum, err := colors.ExecutePlugin("Math", "sum")
	require.NoError(t, err)
	require.Equal(t, float64(6), sum)
}

func TestScenario_FreezeBlocksGrowth(t *testing.T) {
	colors := testutil.Colors(t)
	colors.Freeze()

	_, err := colors.AddValue("Purple", 4)
	require.ErrorIs(t, err, enum.ErrFrozen)
	require.Equal(t, 3, colors.Len())
}

func TestScenario_StatusMetadata(t *testing.T) {
	statuses := testutil.StatusCodes(t)

	v, ok := statuses.Value("NotFound")
	require.True(t, ok)
	class, ok := v.Metadata("class")
	require.True(t, ok)
	require.Equal(t, "client_error", class)
}

func TestScenario_ComposeWeekendSchedule(t *testing.T) {
	weekdays := testutil.Weekdays(t)
	colors := testutil.Colors(t)

	combined, err := weekdays.Compose(colors)
	require.NoError(t, err)
	require.Equal(t, "Weekday_Color_Composed", combined.Name())
	require.Equal(t, 10, combined.Len())
}

func TestScenario_RoundTripThroughRegistry(t *testing.T) {
	reg := enum.NewRegistry()
	colors := testutil.Colors(t, testutil.InRegistry(reg))

	restored, err := enum.Deserialize(colors.Serialize(), enum.WithRegistry(reg))
	require.NoError(t, err)

	// The restored set overwrote the original registration.
	got, ok := reg.Lookup("Color")
	require.True(t, ok)
	require.Same(t, restored, got)
	require.True(t, colors.Equals(restored))
}
