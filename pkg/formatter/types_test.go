package formatter_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/guynir/jack/pkg/formatter"
)

type celsius float64

func TestTypeSet(t *testing.T) {
	t.Parallel()

	set := formatter.NewTypeSet(
		formatter.TypeOf[int](),
		formatter.TypeOf[float64](),
		formatter.TypeOf[int](),
		nil,
	)

	require.Equal(t, 2, set.Len())
	require.Equal(t, []reflect.Type{formatter.TypeOf[int](), formatter.TypeOf[float64]()}, set.Types())
	require.True(t, set.Supports(42))
	require.True(t, set.Supports(4.2))
	require.False(t, set.Supports(int64(42)))
	require.False(t, set.Supports(celsius(4.2)), "named types do not match their underlying type")
	require.False(t, set.Supports(nil))
	require.False(t, set.Contains(nil))
	require.Equal(t, "[int, float64]", set.String())
}

func TestTypeSet_TypesIsACopy(t *testing.T) {
	t.Parallel()

	set := formatter.NewTypeSet(formatter.TypeOf[time.Time]())
	types := set.Types()
	types[0] = formatter.TypeOf[string]()

	require.True(t, set.Supports(time.Time{}))
}
