package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/gnwankwo/casting-agency/internal/model"
)

func TestCastUniquePerMovie(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	movie := seedMovie(t, db, "Treadstone")
	seedCast(t, db, movie.ID)

	dup := &model.Cast{MovieID: movie.ID}
	if err := NewCastRepo(db).Create(ctx, dup); !errors.Is(err, ErrDuplicateMovieCast) {
		t.Errorf("second cast for movie err = %v, want ErrDuplicateMovieCast", err)
	}
}

func TestCastGetByMovieID(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewCastRepo(db)

	movie := seedMovie(t, db, "Treadstone")
	if _, err := repo.GetByMovieID(ctx, movie.ID); !errors.Is(err, ErrCastNotFound) {
		t.Errorf("GetByMovieID before create err = %v, want ErrCastNotFound", err)
	}
	cast := seedCast(t, db, movie.ID)
	got, err := repo.GetByMovieID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("GetByMovieID: %v", err)
	}
	if got.ID != cast.ID {
		t.Errorf("GetByMovieID = %+v, want id %d", got, cast.ID)
	}
}

func TestCastUpdateMovieID(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewCastRepo(db)

	first := seedMovie(t, db, "Treadstone")
	second := seedMovie(t, db, "Rise of Skywalker")
	third := seedMovie(t, db, "1917")
	cast := seedCast(t, db, first.ID)
	taken := seedCast(t, db, second.ID)
	_ = taken

	if err := repo.UpdateMovieID(ctx, cast.ID, third.ID); err != nil {
		t.Fatalf("UpdateMovieID: %v", err)
	}
	got, _ := repo.GetByID(ctx, cast.ID)
	if got.MovieID != third.ID {
		t.Errorf("MovieID = %d, want %d", got.MovieID, third.ID)
	}

	if err := repo.UpdateMovieID(ctx, cast.ID, second.ID); !errors.Is(err, ErrDuplicateMovieCast) {
		t.Errorf("moving onto a taken movie err = %v, want ErrDuplicateMovieCast", err)
	}
	if err := repo.UpdateMovieID(ctx, 9999, first.ID); !errors.Is(err, ErrCastNotFound) {
		t.Errorf("UpdateMovieID(9999) err = %v, want ErrCastNotFound", err)
	}
}

func TestCastDeleteCascades(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	movie := seedMovie(t, db, "Treadstone")
	cast := seedCast(t, db, movie.ID)
	actor := seedActor(t, db, "Jeremy Irvine")
	seedStar(t, db, cast.ID, actor.ID)

	if err := NewCastRepo(db).Delete(ctx, cast.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if stars, _ := NewStarringRepo(db).List(ctx); len(stars) != 0 {
		t.Errorf("stars survived cast delete: %+v", stars)
	}
	// The movie itself stays.
	if _, err := NewMovieRepo(db).GetByID(ctx, movie.ID); err != nil {
		t.Errorf("movie deleted by cast cascade: %v", err)
	}
}
