package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagUnmarshalParam(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1", "true", "True", "on", "ON", "yes", "YES"} {
		var f Flag
		require.NoError(t, f.UnmarshalParam(in), in)
		assert.True(t, f.Bool(), in)
	}

	for _, in := range []string{"0", "false", "off", "no"} {
		f := Flag(true)
		require.NoError(t, f.UnmarshalParam(in), in)
		assert.False(t, f.Bool(), in)
	}

	var f Flag
	assert.Error(t, f.UnmarshalParam("maybe"))
}

func TestStringSetDropsDuplicates(t *testing.T) {
	t.Parallel()

	var s StringSet
	require.NoError(t, json.Unmarshal([]byte(`["b","a","b","c","a"]`), &s))
	assert.Equal(t, StringSet{"b", "a", "c"}, s)
	assert.True(t, s.Contains("c"))
	assert.False(t, s.Contains("z"))

	out, err := json.Marshal(StringSet(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

func TestDurationDecodesSecondsAndStrings(t *testing.T) {
	t.Parallel()

	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`90`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))

	out, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.JSONEq(t, `1.5`, string(out))
}

func TestDurationRejectsOverflow(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`1e12`, `-1e12`, `"1e12"`, `9223372037`} {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(in), &d), in)
	}

	var d Duration
	assert.Error(t, d.UnmarshalParam("1e12"))

	d, err := DurationFromSeconds(9223372036)
	require.NoError(t, err)
	assert.Positive(t, int64(d))
}

func TestTimeOfDay(t *testing.T) {
	t.Parallel()

	tod, err := ParseTimeOfDay("14:23:55.003")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 14, Minute: 23, Second: 55, Nanosecond: 3000000}, tod)
	assert.Equal(t, "14:23:55.003", tod.String())

	tod, err = ParseTimeOfDay("07:05")
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", tod.String())

	_, err = ParseTimeOfDay("25:00:00")
	assert.Error(t, err)
}

func TestThingPatchAppliesOnlySentFields(t *testing.T) {
	t.Parallel()

	desc := "God Of War"
	thing := Thing{Name: "Murugan", Description: &desc, Price: 666666}

	var patch ThingPatch
	require.NoError(t, json.Unmarshal([]byte(`{"price": 10, "tags": ["a"]}`), &patch))

	updated := patch.Apply(thing)
	assert.Equal(t, "Murugan", updated.Name)
	assert.Equal(t, &desc, updated.Description)
	assert.Equal(t, 10.0, updated.Price)
	assert.Equal(t, []string{"a"}, updated.Tags)
	assert.Equal(t, 666666.0, thing.Price)
}

func TestVehicleNormalize(t *testing.T) {
	t.Parallel()

	plane := Vehicle{Type: VehiclePlane}.Normalize()
	require.NotNil(t, plane.Size)
	assert.Equal(t, DefaultPlaneSize, *plane.Size)

	size := 3.0
	car := Vehicle{Type: VehicleCar, Size: &size}.Normalize()
	assert.Nil(t, car.Size)
}

func TestUserInDBOutDropsHash(t *testing.T) {
	t.Parallel()

	u := UserInDB{UserBase: UserBase{Username: "john", Email: "john@example.com"}, HashedPassword: "x"}
	out, err := json.Marshal(u.Out())
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"john","email":"john@example.com"}`, string(out))
}

func TestReturnsTotal(t *testing.T) {
	t.Parallel()

	price, tax, zero := 100.0, 6.5, 0.0

	assert.InDelta(t, 106.5, Returns{Price: &price, Tax: &tax}.Total(), 1e-9)
	assert.InDelta(t, 100.0, Returns{Price: &price}.Total(), 1e-9)
	assert.Zero(t, Returns{Price: &zero}.Total())
}

func TestThingInputNormalizesTags(t *testing.T) {
	t.Parallel()

	price := 0.0
	thing := ThingInput{Name: "Vel", Price: &price}.Thing()

	assert.Equal(t, "Vel", thing.Name)
	assert.Zero(t, thing.Price)
	assert.Equal(t, []string{}, thing.Tags)
	assert.Equal(t, []string{"a"}, Thing{Tags: []string{"a"}}.Normalize().Tags)
}
