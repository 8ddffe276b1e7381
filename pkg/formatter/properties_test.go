package formatter_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guynir/jack/pkg/formatter"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "decimalplaces", formatter.NormalizeKey("  DecimalPlaces "))
	require.Equal(t, "", formatter.NormalizeKey("   "))
}

func TestProperties_Normalize(t *testing.T) {
	t.Parallel()

	props := formatter.Properties{" Rounding ": " true ", "decimalPlaces": "3"}
	require.Equal(t, formatter.Properties{"rounding": "true", "decimalplaces": "3"}, props.Normalize())
}

func TestProperties_Restrict(t *testing.T) {
	t.Parallel()

	t.Run("allowed keys ignore case and spaces", func(t *testing.T) {
		t.Parallel()
		props := formatter.Properties{" DECIMALPLACES": "2", "rounding ": "true"}

		require.NoError(t, props.Restrict("decimalPlaces", "Rounding"))
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		props := formatter.Properties{"precision": "2"}

		err := props.Restrict("decimalPlaces")
		require.ErrorIs(t, err, formatter.ErrUnknownProperty)

		var propErr *formatter.PropertyError
		require.True(t, errors.As(err, &propErr))
		require.Equal(t, "precision", propErr.Property)
	})

	t.Run("nothing allowed", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, formatter.Properties(nil).Restrict())
		require.ErrorIs(t, formatter.Properties{"a": "b"}.Restrict(), formatter.ErrUnknownProperty)
	})
}

func TestProperties_Int(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		props   formatter.Properties
		want    int
		wantErr error
	}{
		{name: "absent uses default", props: nil, want: 7},
		{name: "parsed", props: formatter.Properties{"Places": " 3 "}, want: 3},
		{name: "negative parsed", props: formatter.Properties{"places": "-1"}, want: -1},
		{name: "empty", props: formatter.Properties{"places": "  "}, want: 7, wantErr: formatter.ErrEmptyProperty},
		{name: "not a number", props: formatter.Properties{"places": "two"}, want: 7, wantErr: formatter.ErrInvalidProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.props.Int("places", 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestProperties_NonNegativeInt(t *testing.T) {
	t.Parallel()

	_, err := formatter.Properties{"places": "-1"}.NonNegativeInt("places", 2)
	require.ErrorIs(t, err, formatter.ErrPropertyConstraint)

	n, err := formatter.Properties{"places": "0"}.NonNegativeInt("places", 2)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestProperties_Bool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    bool
		wantErr error
	}{
		{name: "true", value: "true", want: true},
		{name: "upper case", value: "TRUE", want: true},
		{name: "false", value: " false ", want: false},
		{name: "yes is rejected", value: "yes", wantErr: formatter.ErrInvalidProperty},
		{name: "one is rejected", value: "1", wantErr: formatter.ErrInvalidProperty},
		{name: "empty", value: "", wantErr: formatter.ErrEmptyProperty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := formatter.Properties{"rounding": tt.value}.Bool("rounding", false)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestProperties_Text(t *testing.T) {
	t.Parallel()

	v, err := formatter.Properties{"Policy": " SAFE "}.Text("policy", "strict")
	require.NoError(t, err)
	require.Equal(t, "safe", v)

	v, err = formatter.Properties{}.Text("policy", "strict")
	require.NoError(t, err)
	require.Equal(t, "strict", v)
}
