package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/turf-booking/internal/testutil"
)

func TestListTurfsTreatsWildcardsLiterally(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "owner", true)
	testutil.CreateTurf(t, db, owner.ID, "Percent", "100% City", 500)
	testutil.CreateTurf(t, db, owner.ID, "Underscore", "Pune_North", 500)
	testutil.CreateTurf(t, db, owner.ID, "Plain", "PuneXNorth", 500)

	repo := NewTurfGormRepository(db)
	ctx := context.Background()

	names := func(city string) []string {
		turfs, err := repo.ListTurfs(ctx, city)
		require.NoError(t, err)
		out := []string{}
		for _, tf := range turfs {
			out = append(out, tf.Name)
		}
		return out
	}

	assert.Equal(t, []string{"Percent"}, names("%"))
	assert.Equal(t, []string{"Underscore"}, names("_"))
	assert.Equal(t, []string{"Underscore"}, names("pune_"))
	assert.Equal(t, []string{"Underscore", "Plain"}, names("pune"))
	assert.Empty(t, names(`\`))
	assert.Len(t, names(""), 3)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
	assert.Equal(t, "mumbai", escapeLike("mumbai"))
}
