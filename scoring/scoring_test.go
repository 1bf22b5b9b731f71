package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/javdevA/SmartDormCapstonePro/types"
)

func TestCompatibility(t *testing.T) {
	d1 := types.Dorm{ID: "D1"}

	t.Run("preference rank bonus decays by two per rank", func(t *testing.T) {
		// year 2 contributes the full year bonus of 5
		for rank, want := range []float64{15, 13, 11, 9, 7, 5, 5} {
			prefs := []string{"X0", "X1", "X2", "X3", "X4", "X5"}
			if rank < len(prefs) {
				prefs[rank] = "D1"
			}
			s := types.Student{Year: 2, PreferredDorms: joinComma(prefs)}
			require.Equal(t, want, Compatibility(s, d1), "rank %d", rank)
		}
	})

	t.Run("only the first occurrence counts", func(t *testing.T) {
		s := types.Student{Year: 2, PreferredDorms: "D2,D1,D1"}

		require.Equal(t, 8.0+5.0, Compatibility(s, d1))
	})

	t.Run("priority adds three per level", func(t *testing.T) {
		s := types.Student{Year: 2, Priority: 3}

		require.Equal(t, 9.0+5.0, Compatibility(s, d1))
	})

	t.Run("year affinity peaks at year two and floors at zero", func(t *testing.T) {
		cases := map[int]float64{2: 5, 1: 4, 3: 4, 4: 3, 7: 0, 9: 0, -5: 0}
		for year, want := range cases {
			require.Equal(t, want, Compatibility(types.Student{Year: year}, d1), "year %d", year)
		}
	})

	t.Run("quiet bonus uses substring match on raw tags", func(t *testing.T) {
		quiet := types.Dorm{ID: "D1", Attributes: "quiet"}

		require.Equal(t, 7.0, Compatibility(types.Student{Year: 2, Tags: "quiet"}, quiet))
		require.Equal(t, 7.0, Compatibility(types.Student{Year: 2, Tags: "unquiet,party"}, quiet))
		require.Equal(t, 5.0, Compatibility(types.Student{Year: 2, Tags: "party"}, quiet))
	})

	t.Run("library bonus needs near_library attribute and studious tag", func(t *testing.T) {
		lib := types.Dorm{ID: "D1", Attributes: "near_library, quiet"}

		require.Equal(t, 9.0, Compatibility(types.Student{Year: 2, Tags: "quiet,studious"}, lib))
		require.Equal(t, 5.0, Compatibility(types.Student{Year: 2, Tags: "studious"}, types.Dorm{ID: "D1", Attributes: "library"}))
	})

	t.Run("is deterministic", func(t *testing.T) {
		s := types.Student{Year: 3, Priority: 1, PreferredDorms: "D1", Tags: "quiet"}
		d := types.Dorm{ID: "D1", Attributes: "quiet"}

		require.Equal(t, Compatibility(s, d), Compatibility(s, d))
	})
}

func TestRank(t *testing.T) {
	dorms := []types.Dorm{{ID: "D1"}, {ID: "D2"}, {ID: "D3"}, {ID: "D4"}}

	t.Run("orders by score descending", func(t *testing.T) {
		s := types.Student{Year: 2, PreferredDorms: "D3,D1"}

		ranked := Rank(s, dorms)

		require.Equal(t, []string{"D3", "D1", "D2", "D4"}, ids(ranked))
		require.Equal(t, 15.0, ranked[0].Score)
		require.Equal(t, 13.0, ranked[1].Score)
	})

	t.Run("keeps input order on ties", func(t *testing.T) {
		ranked := Rank(types.Student{Year: 2}, dorms)

		require.Equal(t, []string{"D1", "D2", "D3", "D4"}, ids(ranked))
	})

	t.Run("empty dorm list", func(t *testing.T) {
		require.Empty(t, Rank(types.Student{}, nil))
	})
}

func ids(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Dorm.ID
	}

	return out
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ","
		}
		out += p
	}

	return out
}
