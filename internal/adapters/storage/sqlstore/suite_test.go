package sqlstore

import (
	"context"
	"testing"
	"time"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/reviews"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreSuite corre los mismos casos sobre cualquier driver ya migrado.
func runStoreSuite(t *testing.T, s *Store) {
	ctx := context.Background()
	base := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

	t.Run("pets crud", func(t *testing.T) {
		require.NoError(t, s.Reset(ctx))

		in := pets.Pet{
			Name: "Luna", Type: "cat", Breed: "Persian Cat", Sex: "Female", Age: 4,
			Location: "San Francisco", Description: "Calm", Image: "/images/cat-1.png",
			Traits: "Calm,Affectionate", PrimaryCol: "#F5E6D3", AccentCol: "#8B7355",
			CreatedAt: base,
		}
		created, err := s.Pets.Create(ctx, in)
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		got, err := s.Pets.GetByID(ctx, created.ID)
		require.NoError(t, err)
		in.ID = created.ID
		if diff := cmp.Diff(in, got); diff != "" {
			t.Fatalf("stored pet mismatch (-want +got):\n%s", diff)
		}

		name, liked := "Luna II", true
		renamed, err := s.Pets.Update(ctx, created.ID, pets.Patch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Luna II", renamed.Name)
		assert.False(t, renamed.IsLiked)

		// un segundo patch disperso no pisa el primero
		_, err = s.Pets.Update(ctx, created.ID, pets.Patch{IsLiked: &liked})
		require.NoError(t, err)
		again, err := s.Pets.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Luna II", again.Name)
		assert.True(t, again.IsLiked)
		assert.Equal(t, "San Francisco", again.Location)
		assert.Equal(t, base, again.CreatedAt)

		unchanged, err := s.Pets.Update(ctx, created.ID, pets.Patch{})
		require.NoError(t, err)
		assert.Equal(t, again, unchanged)

		require.NoError(t, s.Pets.Delete(ctx, created.ID))
		assert.ErrorIs(t, s.Pets.Delete(ctx, created.ID), pets.ErrNotFound)
		_, err = s.Pets.Update(ctx, created.ID, pets.Patch{Name: &name})
		assert.ErrorIs(t, err, pets.ErrNotFound)
		_, err = s.Pets.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, pets.ErrNotFound)
	})

	t.Run("list order and availability", func(t *testing.T) {
		require.NoError(t, s.Reset(ctx))

		var ids []int64
		for i := 0; i < 3; i++ {
			p, err := s.Pets.Create(ctx, pets.Pet{
				Name: "p", Breed: "b", Sex: "s", CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
			ids = append(ids, p.ID)
		}

		all, err := s.Pets.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, ids[2], all[0].ID, "newest first")

		_, err = s.Adoptions.Create(ctx, adoptions.Adoption{Name: "x", PetID: ids[1], CreatedAt: base})
		require.NoError(t, err)
		// adopción sin mascota: no rompe nada
		_, err = s.Adoptions.Create(ctx, adoptions.Adoption{Name: "y", PetID: 999999, CreatedAt: base})
		require.NoError(t, err)

		avail, err := s.Pets.ListAvailable(ctx)
		require.NoError(t, err)
		var got []int64
		for _, p := range avail {
			got = append(got, p.ID)
		}
		assert.Equal(t, []int64{ids[2], ids[0]}, got)

		// borrar una mascota adoptada no toca la adopción
		require.NoError(t, s.Pets.Delete(ctx, ids[1]))
		ads, err := s.Adoptions.List(ctx)
		require.NoError(t, err)
		assert.Len(t, ads, 2)
	})

	t.Run("reviews", func(t *testing.T) {
		require.NoError(t, s.Reset(ctx))

		_, err := s.Reviews.Create(ctx, reviews.Review{Name: "old", PetName: "Luna", Rating: 4, CreatedAt: base})
		require.NoError(t, err)
		newer, err := s.Reviews.Create(ctx, reviews.Review{Name: "new", PetName: "Max", Rating: 5, Img: "/images/r.png", CreatedAt: base.Add(time.Hour)})
		require.NoError(t, err)

		items, err := s.Reviews.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		if diff := cmp.Diff(newer, items[0]); diff != "" {
			t.Fatalf("review mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reset clears everything", func(t *testing.T) {
		_, err := s.Pets.Create(ctx, pets.Pet{Name: "p", Breed: "b", Sex: "s", CreatedAt: base})
		require.NoError(t, err)
		require.NoError(t, s.Reset(ctx))

		all, err := s.Pets.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
		rs, err := s.Reviews.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, rs)
	})
}
